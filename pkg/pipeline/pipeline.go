// Package pipeline orchestrates the render → compose stages of a mosaic run.
//
// The pipeline renders each PDF page to a bitmap at the requested width,
// caching rendered pages by document content hash, then hands the ordered
// page sequence to the layout core. The caller encodes the composed canvas to
// a file; the pipeline itself never writes output.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Columns: 4, PageWidth: 300}
//	result, err := runner.Execute(ctx, doc, docHash, opts)
//	if err != nil {
//	    return err
//	}
//	// result.Mosaic.Image is the composed canvas
package pipeline

import (
	"github.com/charmbracelet/log"

	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

// Default values shared by CLI flags, config, and prompts.
const (
	// DefaultColumns is the default grid column count.
	DefaultColumns = 4

	// DefaultPageWidth is the default rendered page width in pixels.
	DefaultPageWidth = 300
)

// Options contains the configuration for a mosaic run.
type Options struct {
	// Columns is the grid column count. May exceed the page count; a
	// single short row is centered like any other incomplete last row.
	Columns int

	// PageWidth is the pixel width every page is rendered to.
	PageWidth int

	// Refresh bypasses cache reads and re-renders every page.
	Refresh bool

	// Progress, when set, receives an event per page rendered and per
	// placement computed. Events arrive in page order.
	Progress Progress

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// Validate checks the options for a run.
func (o *Options) Validate() error {
	if err := errors.ValidateColumns(o.Columns); err != nil {
		return err
	}
	return errors.ValidatePageWidth(o.PageWidth)
}

// SetDefaults fills unset options with defaults.
func (o *Options) SetDefaults() {
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.PageWidth == 0 {
		o.PageWidth = DefaultPageWidth
	}
}

// Progress receives pipeline events during a run.
type Progress func(Event)

// Event is a progress event emitted by the pipeline.
// Concrete types: PageRendered, PagePlaced.
type Event interface {
	event()
}

// PageRendered reports that a page bitmap is ready, either freshly rendered
// or loaded from cache.
type PageRendered struct {
	Page   int // zero-based page index
	Total  int // page count of the document
	Width  int
	Height int
	Cached bool
}

// PagePlaced reports the computed placement of a page within the canvas.
type PagePlaced struct {
	Page int // zero-based page index
	X    int
	Y    int
}

func (PageRendered) event() {}
func (PagePlaced) event()   {}

// emit delivers an event to the progress callback, if any.
func (o *Options) emit(e Event) {
	if o.Progress != nil {
		o.Progress(e)
	}
}

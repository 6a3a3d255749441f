package mosaic

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

// background is the canvas fill color behind and between pages.
var background = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Result is a composed mosaic: the canvas image, its grid geometry, and the
// placement of every input page within it.
type Result struct {
	Image      *image.NRGBA
	Layout     Layout
	Placements []Placement
}

// Compose lays the pages out in a grid with the given column count and pastes
// them onto a black canvas, in page order. The input bitmaps are never
// mutated.
//
// All pages must share the width of pages[0]; a page of any other width
// fails with an INVALID_INPUT error, so placements can never overlap and
// paste order does not affect the output.
func Compose(pages []image.Image, columns int) (*Result, error) {
	if len(pages) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no pages to compose")
	}

	pageWidth := pages[0].Bounds().Dx()
	heights := make([]int, len(pages))
	for i, p := range pages {
		if w := p.Bounds().Dx(); w != pageWidth {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"page %d is %d px wide, want uniform width %d", i, w, pageWidth)
		}
		heights[i] = p.Bounds().Dy()
	}

	layout, err := CanvasSize(len(pages), columns, pageWidth, heights)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(layout.Width, layout.Height, background)
	placements := make([]Placement, len(pages))

	for i, p := range pages {
		x, y := PlacePage(i, len(pages), columns, layout.PageWidth, layout.PageHeight, heights[i])
		canvas = imaging.Paste(canvas, p, image.Pt(x, y))
		placements[i] = Placement{Index: i, X: x, Y: y}
	}

	return &Result{
		Image:      canvas,
		Layout:     layout,
		Placements: placements,
	}, nil
}

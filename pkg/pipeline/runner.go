package pipeline

import (
	"bytes"
	"context"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/pdfmosaic/pdfmosaic/pkg/cache"
	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
	"github.com/pdfmosaic/pdfmosaic/pkg/mosaic"
	"github.com/pdfmosaic/pdfmosaic/pkg/pdf"
)

// Runner executes mosaic runs with page-render caching.
//
// The Runner is stateless except for the cache and logger; it holds no run
// results. Rendering is sequential and cancellable between pages.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Stats carries per-stage timings and cache information for a run.
type Stats struct {
	RenderTime  time.Duration
	ComposeTime time.Duration
	CacheHits   int
}

// Result is the outcome of a mosaic run.
type Result struct {
	Mosaic *mosaic.Result
	Stats  Stats
}

// Execute renders every page of the document at opts.PageWidth and composes
// the pages into a mosaic with opts.Columns columns.
//
// docHash identifies the document's content for cache keys; pass an empty
// string to disable cache lookups for this run. Pages are rendered in order,
// one at a time, and ctx is honored between page renders. A document with no
// pages fails with an EMPTY_INPUT error.
func (r *Runner) Execute(ctx context.Context, renderer pdf.Renderer, docHash string, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	total := renderer.PageCount()
	if total < 1 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "document has no pages")
	}

	result := &Result{}

	renderStart := time.Now()
	pages := make([]image.Image, total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, cached, err := r.renderPage(ctx, renderer, docHash, i, opts)
		if err != nil {
			return nil, err
		}
		pages[i] = img
		if cached {
			result.Stats.CacheHits++
		}

		opts.emit(PageRendered{
			Page:   i,
			Total:  total,
			Width:  img.Bounds().Dx(),
			Height: img.Bounds().Dy(),
			Cached: cached,
		})
		logger.Debug("page ready", "page", i+1, "total", total, "cached", cached)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered pages",
		"pages", total,
		"cached", result.Stats.CacheHits,
		"duration", result.Stats.RenderTime.Round(time.Millisecond))

	composeStart := time.Now()
	m, err := mosaic.Compose(pages, opts.Columns)
	if err != nil {
		return nil, err
	}
	result.Mosaic = m
	result.Stats.ComposeTime = time.Since(composeStart)

	for _, p := range m.Placements {
		opts.emit(PagePlaced{Page: p.Index, X: p.X, Y: p.Y})
	}

	logger.Info("composed mosaic",
		"grid", m.Layout,
		"duration", result.Stats.ComposeTime.Round(time.Millisecond))

	return result, nil
}

// renderPage returns the page bitmap, consulting the cache first.
// Cache failures are never fatal; they degrade to a fresh render.
func (r *Runner) renderPage(ctx context.Context, renderer pdf.Renderer, docHash string, pageIndex int, opts Options) (image.Image, bool, error) {
	key := ""
	if docHash != "" {
		key = cache.PageKey(docHash, pageIndex, opts.PageWidth)
	}

	if key != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if img, err := imaging.Decode(bytes.NewReader(data)); err == nil && img.Bounds().Dx() == opts.PageWidth {
				return img, true, nil
			}
		}
	}

	img, err := renderer.RenderPage(ctx, pageIndex, opts.PageWidth)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.PNG); err == nil {
			_ = r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLPage)
		}
	}

	return img, false, nil
}

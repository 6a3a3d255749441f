// Package pdf converts PDF pages to bitmaps via the MuPDF rendering engine.
//
// The rendering engine is an explicit dependency boundary: the rest of the
// application consumes the Renderer interface, so layout and pipeline code
// stays testable with synthetic bitmaps and without a real PDF library.
package pdf

import (
	"context"
	"image"
)

// Renderer converts the pages of an open document to bitmaps.
//
// Implementations must preserve each page's aspect ratio when scaling to the
// target width, so every rendered bitmap has exactly targetWidth pixels of
// width while heights vary with page proportions.
type Renderer interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// RenderPage renders the zero-based page at the given pixel width.
	RenderPage(ctx context.Context, pageIndex, targetWidth int) (image.Image, error)

	// Close releases the resources held by the renderer.
	Close() error
}

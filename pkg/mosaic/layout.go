package mosaic

import (
	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

// Layout describes the derived grid geometry of a mosaic canvas.
// All values are in pixels.
type Layout struct {
	Columns    int // grid column count (user-supplied)
	Rows       int // ceil(pageCount / Columns)
	PageWidth  int // width of every rendered page
	PageHeight int // row height: the tallest rendered page
	Width      int // canvas width: Columns * PageWidth
	Height     int // canvas height: Rows * PageHeight
}

// Placement is the top-left position of a page within the mosaic canvas.
type Placement struct {
	Index int // zero-based page index
	X     int
	Y     int
}

// CanvasSize computes the mosaic canvas geometry for pageCount pages rendered
// at pageWidth, with the given per-page heights.
//
// Heights may differ across pages because rendering preserves each page's
// aspect ratio; the row height is the maximum over all pages. The canvas is
// always an exact multiple of the cell size: Columns*PageWidth wide and
// Rows*PageHeight tall.
func CanvasSize(pageCount, columns, pageWidth int, heights []int) (Layout, error) {
	if pageCount < 1 {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "page count must be positive, got %d", pageCount)
	}
	if err := errors.ValidateColumns(columns); err != nil {
		return Layout{}, err
	}
	if err := errors.ValidatePageWidth(pageWidth); err != nil {
		return Layout{}, err
	}
	if len(heights) != pageCount {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput,
			"expected %d page heights, got %d", pageCount, len(heights))
	}

	pageHeight := 0
	for i, h := range heights {
		if h < 1 {
			return Layout{}, errors.New(errors.ErrCodeInvalidInput,
				"page %d has non-positive height %d", i, h)
		}
		if h > pageHeight {
			pageHeight = h
		}
	}

	rows := (pageCount + columns - 1) / columns

	return Layout{
		Columns:    columns,
		Rows:       rows,
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Width:      columns * pageWidth,
		Height:     rows * pageHeight,
	}, nil
}

// PlacePage computes the top-left placement of the page at index within the
// mosaic canvas.
//
// Pages are laid out row-major (row = index/columns, col = index%columns).
// When the last row holds fewer than columns pages, every page in that row is
// shifted right by (columns-remaining)*pageWidth/2 so the row is centered
// within the full canvas width. Integer division means an odd total offset
// leans one pixel left; that asymmetry is intentional. Rows other than the
// last are never shifted.
//
// A page shorter than pageHeight is centered vertically within its row by
// (pageHeight-ownHeight)/2.
//
// Inputs are assumed valid per CanvasSize; the returned coordinates keep a
// pageWidth x ownHeight bitmap fully inside the canvas.
func PlacePage(index, pageCount, columns, pageWidth, pageHeight, ownHeight int) (x, y int) {
	row := index / columns
	col := index % columns

	x = col * pageWidth

	rows := (pageCount + columns - 1) / columns
	if row == rows-1 {
		remaining := pageCount - row*columns
		if remaining < columns {
			x += (columns - remaining) * pageWidth / 2
		}
	}

	y = row * pageHeight
	if ownHeight < pageHeight {
		y += (pageHeight - ownHeight) / 2
	}

	return x, y
}

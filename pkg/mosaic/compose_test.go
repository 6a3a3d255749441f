package mosaic

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

// page creates a solid-color test bitmap.
func page(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

func TestComposeEmpty(t *testing.T) {
	_, err := Compose(nil, 3)
	if err == nil {
		t.Fatal("Compose() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeEmptyInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyInput)
	}
}

func TestComposeInvalidColumns(t *testing.T) {
	pages := []image.Image{page(100, 100, color.NRGBA{R: 255, A: 255})}

	_, err := Compose(pages, 0)
	if err == nil {
		t.Fatal("Compose() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestCompose(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}

	// Five pages of width 100, heights [200 200 200 150 150], three columns.
	pages := []image.Image{
		page(100, 200, red),
		page(100, 200, red),
		page(100, 200, red),
		page(100, 150, green),
		page(100, 150, green),
	}

	result, err := Compose(pages, 3)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	wantLayout := Layout{Columns: 3, Rows: 2, PageWidth: 100, PageHeight: 200, Width: 300, Height: 400}
	if result.Layout != wantLayout {
		t.Errorf("Layout = %+v, want %+v", result.Layout, wantLayout)
	}

	bounds := result.Image.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 400 {
		t.Errorf("canvas = %dx%d, want 300x400", bounds.Dx(), bounds.Dy())
	}

	wantPlacements := []Placement{
		{Index: 0, X: 0, Y: 0},
		{Index: 1, X: 100, Y: 0},
		{Index: 2, X: 200, Y: 0},
		{Index: 3, X: 50, Y: 225},
		{Index: 4, X: 150, Y: 225},
	}
	if len(result.Placements) != len(wantPlacements) {
		t.Fatalf("got %d placements, want %d", len(result.Placements), len(wantPlacements))
	}
	for i, want := range wantPlacements {
		if result.Placements[i] != want {
			t.Errorf("Placements[%d] = %+v, want %+v", i, result.Placements[i], want)
		}
	}

	// Page pixels land at their placements.
	if got := result.Image.NRGBAAt(0, 0); got != red {
		t.Errorf("pixel at (0,0) = %v, want %v", got, red)
	}
	if got := result.Image.NRGBAAt(150, 225); got != green {
		t.Errorf("pixel at (150,225) = %v, want %v", got, green)
	}

	// The area left of the centered last row stays background black.
	if got := result.Image.NRGBAAt(10, 300); got != background {
		t.Errorf("pixel at (10,300) = %v, want background %v", got, background)
	}
	// So does the strip above a vertically centered page.
	if got := result.Image.NRGBAAt(160, 210); got != background {
		t.Errorf("pixel at (160,210) = %v, want background %v", got, background)
	}
}

func TestComposeSingleShortRowCentered(t *testing.T) {
	blue := color.NRGBA{B: 255, A: 255}
	pages := []image.Image{page(80, 100, blue)}

	result, err := Compose(pages, 5)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if result.Layout.Width != 400 || result.Layout.Height != 100 {
		t.Errorf("canvas = %dx%d, want 400x100", result.Layout.Width, result.Layout.Height)
	}

	want := Placement{Index: 0, X: 160, Y: 0}
	if result.Placements[0] != want {
		t.Errorf("Placements[0] = %+v, want %+v", result.Placements[0], want)
	}
}

func TestComposeMismatchedWidths(t *testing.T) {
	// A page wider than the rest would overlap its neighbor when pasted, so
	// composition rejects non-uniform widths outright.
	red := color.NRGBA{R: 255, A: 255}
	pages := []image.Image{
		page(100, 100, red),
		page(120, 100, red),
	}

	_, err := Compose(pages, 2)
	if err == nil {
		t.Fatal("Compose() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestComposeDoesNotMutateInputs(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	p := page(50, 60, red)

	if _, err := Compose([]image.Image{p, page(50, 80, red)}, 2); err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for y := 0; y < 60; y++ {
		for x := 0; x < 50; x++ {
			if got := p.NRGBAAt(x, y); got != red {
				t.Fatalf("input page mutated at (%d,%d): %v", x, y, got)
			}
		}
	}
}

func TestComposeIdempotent(t *testing.T) {
	pages := []image.Image{
		page(40, 50, color.NRGBA{R: 200, A: 255}),
		page(40, 30, color.NRGBA{G: 200, A: 255}),
		page(40, 50, color.NRGBA{B: 200, A: 255}),
	}

	first, err := Compose(pages, 2)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	second, err := Compose(pages, 2)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if !bytes.Equal(first.Image.Pix, second.Image.Pix) {
		t.Error("repeated Compose produced different pixels")
	}
}

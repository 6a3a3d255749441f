package pdf

import (
	"context"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"

	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

// basePointDPI is the resolution at which PDF page bounds are expressed.
const basePointDPI = 72.0

// Document renders PDF pages using go-fitz (MuPDF).
type Document struct {
	doc  *fitz.Document
	path string
}

// Open opens the PDF file at path.
// It fails with a FILE_NOT_FOUND error if the file does not exist and a
// PDF_READ error if the document cannot be parsed.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "PDF file %q not found", path)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePDFRead, err, "open %s", path)
	}

	return &Document{doc: doc, path: path}, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// PageBounds returns the page box of the zero-based page, in points.
func (d *Document) PageBounds(pageIndex int) (image.Rectangle, error) {
	bounds, err := d.doc.Bound(pageIndex)
	if err != nil {
		return image.Rectangle{}, errors.Wrap(errors.ErrCodePDFRead, err, "read bounds of page %d", pageIndex+1)
	}
	return bounds, nil
}

// RenderPage renders the zero-based page to a bitmap of exactly targetWidth
// pixels, preserving the page's aspect ratio.
//
// The page is rasterized at a DPI derived from its point width, then resized
// to the exact target width; MuPDF's own pixel rounding can otherwise leave
// rendered pages a pixel short.
func (d *Document) RenderPage(ctx context.Context, pageIndex, targetWidth int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pageIndex < 0 || pageIndex >= d.doc.NumPage() {
		return nil, errors.New(errors.ErrCodeRender, "page %d out of range (document has %d pages)",
			pageIndex+1, d.doc.NumPage())
	}
	if err := errors.ValidatePageWidth(targetWidth); err != nil {
		return nil, err
	}

	bounds, err := d.doc.Bound(pageIndex)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "read bounds of page %d", pageIndex+1)
	}
	if bounds.Dx() <= 0 {
		return nil, errors.New(errors.ErrCodeRender, "page %d has zero width", pageIndex+1)
	}

	img, err := d.doc.ImageDPI(pageIndex, renderDPI(bounds.Dx(), targetWidth))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render page %d", pageIndex+1)
	}

	if img.Bounds().Dx() == targetWidth {
		return img, nil
	}
	return imaging.Resize(img, targetWidth, 0, imaging.Lanczos), nil
}

// Close releases the underlying MuPDF document.
func (d *Document) Close() error {
	return d.doc.Close()
}

// renderDPI computes the rasterization DPI that scales a page of pointWidth
// points to approximately targetWidth pixels.
func renderDPI(pointWidth, targetWidth int) float64 {
	return basePointDPI * float64(targetWidth) / float64(pointWidth)
}

// Ensure Document implements Renderer.
var _ Renderer = (*Document)(nil)

// Package sink writes composed mosaic bitmaps to image files.
//
// The output format is inferred from the file extension. JPEG output honors a
// quality setting; PNG output always uses the strongest compression level.
package sink

import (
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

// DefaultQuality is the default JPEG encoding quality.
const DefaultQuality = 95

// Save encodes img to path, inferring the format from the file extension.
//
// It fails with an INVALID_FORMAT error for an unrecognized extension, an
// INVALID_INPUT error for an out-of-range quality, and an ENCODE error when
// encoding or writing fails.
func Save(img image.Image, path string, quality int) error {
	if err := errors.ValidateQuality(quality); err != nil {
		return err
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "unsupported output format for %s", path)
	}

	err := imaging.Save(img, path,
		imaging.JPEGQuality(quality),
		imaging.PNGCompressionLevel(png.BestCompression),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "save %s", path)
	}
	return nil
}

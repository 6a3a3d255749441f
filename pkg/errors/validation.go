package errors

// ValidateColumns validates a grid column count.
func ValidateColumns(columns int) error {
	if columns < 1 {
		return New(ErrCodeInvalidInput, "columns must be positive, got %d", columns)
	}
	return nil
}

// ValidatePageWidth validates a page width in pixels.
func ValidatePageWidth(width int) error {
	if width < 1 {
		return New(ErrCodeInvalidInput, "page width must be positive, got %d", width)
	}
	return nil
}

// ValidateQuality validates a JPEG quality setting.
// Quality follows the usual 1-100 encoder scale.
func ValidateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return New(ErrCodeInvalidInput, "quality must be between 1 and 100, got %d", quality)
	}
	return nil
}

package imaging

import "errors"

// Sentinel errors for the imaging package.
var (
	// ErrInvalidBuffer is returned when a buffer has zero or negative dimensions.
	ErrInvalidBuffer = errors.New("imaging: invalid buffer dimensions")

	// ErrDegenerateSelection is returned when a selection clamps to zero area.
	ErrDegenerateSelection = errors.New("imaging: degenerate selection")

	// ErrEmptyText is returned when a text overlay has nothing to draw.
	ErrEmptyText = errors.New("imaging: empty text")

	// ErrUnreadableFile is returned when a file cannot be opened or decoded.
	ErrUnreadableFile = errors.New("imaging: unreadable file")

	// ErrWriteError is returned when an encoded image cannot be written.
	ErrWriteError = errors.New("imaging: write error")

	// ErrUnsupportedFormat is returned for output formats other than png and jpg.
	ErrUnsupportedFormat = errors.New("imaging: unsupported format")
)

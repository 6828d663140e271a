package pixbuf

import "errors"

// Errors returned by surface creation and export.
var (
	// ErrInvalidDimension is returned when a surface is requested with a
	// non-positive width or height. It is reported before any allocation.
	ErrInvalidDimension = errors.New("pixbuf: invalid dimension")

	// ErrAllocation is returned when the pixel buffer cannot be obtained:
	// width*height overflows int or exceeds the configured pixel limit.
	ErrAllocation = errors.New("pixbuf: pixel buffer allocation failed")

	// ErrFileIO is returned when an export cannot open or fully write its
	// target. The partial file, if any, is left in place.
	ErrFileIO = errors.New("pixbuf: file i/o failure")
)

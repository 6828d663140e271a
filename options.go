package pixbuf

// DefaultMaxPixels is the default upper bound on width*height accepted by
// NewSurface (64 Mpx, 256 MiB of pixel data).
const DefaultMaxPixels = 1 << 26

// SurfaceOption configures a Surface during creation.
// Use functional options to customize the initial drawing style.
//
// Example:
//
//	// Default white surface, black ink, 1px strokes
//	s, _ := pixbuf.NewSurface(320, 240)
//
//	// Dark background with a thick yellow pen
//	s, _ := pixbuf.NewSurface(320, 240,
//	    pixbuf.WithClearColor(pixbuf.Ink),
//	    pixbuf.WithStrokeColor(pixbuf.Yellow),
//	    pixbuf.WithStrokeWidth(3))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	clearColor  Color
	strokeColor Color
	fillColor   Color
	strokeWidth int
	maxPixels   int
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		clearColor:  White,
		strokeColor: Black,
		fillColor:   Black,
		strokeWidth: 1,
		maxPixels:   DefaultMaxPixels,
	}
}

// WithClearColor sets the color the surface is created with and that
// Clear uses.
func WithClearColor(c Color) SurfaceOption {
	return func(o *surfaceOptions) {
		o.clearColor = c
	}
}

// WithStrokeColor sets the initial stroke color.
func WithStrokeColor(c Color) SurfaceOption {
	return func(o *surfaceOptions) {
		o.strokeColor = c
	}
}

// WithFillColor sets the initial fill color.
func WithFillColor(c Color) SurfaceOption {
	return func(o *surfaceOptions) {
		o.fillColor = c
	}
}

// WithStrokeWidth sets the initial stroke width. Values below 1 are
// clamped to 1.
func WithStrokeWidth(w int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.strokeWidth = w
	}
}

// WithMaxPixels sets the largest width*height NewSurface will allocate.
// Larger requests fail with ErrAllocation. A value <= 0 restores
// DefaultMaxPixels.
func WithMaxPixels(n int) SurfaceOption {
	return func(o *surfaceOptions) {
		if n <= 0 {
			n = DefaultMaxPixels
		}
		o.maxPixels = n
	}
}

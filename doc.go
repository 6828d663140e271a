// Package pixbuf provides a small software rasterizer over a fixed-size
// pixel buffer.
//
// # Overview
//
// pixbuf owns an RGBA pixel buffer (Surface) together with its drawing
// style: clear, stroke and fill colors and a stroke width. Integer-only
// primitives (pixel, Bresenham line, rectangle, midpoint circle) write into
// the buffer, and the buffer can be exported as a binary PPM (P6) or PNG.
//
// Higher layers live in sub-packages:
//   - glyph: named procedural icons composed from primitives
//   - anim: time-progress state machine driving glyph transforms
//   - present: pluggable presenters (files, terminal, tcell, displays)
//   - recording: a Canvas that records drawing commands for playback
//
// # Quick Start
//
//	s, err := pixbuf.NewSurface(64, 64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s.SetFillColor(pixbuf.Red)
//	s.FillCircle(32, 32, 20)
//	s.DrawLine(0, 0, 63, 63)
//	if err := s.SavePPM("out.ppm"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases
// down. Pixels are stored row-major.
//
// # Errors
//
// Only resource acquisition fails: NewSurface returns ErrInvalidDimension or
// ErrAllocation, and exports return errors wrapping ErrFileIO. Out-of-bounds
// pixel access and degenerate shapes are absorbed by the primitives.
//
// # Concurrency
//
// A Surface is not safe for concurrent mutation. Callers sharing one across
// goroutines must serialize access themselves.
package pixbuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

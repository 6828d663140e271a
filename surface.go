package pixbuf

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Surface is a fixed-size pixel buffer with drawing style state.
//
// Pixels are stored row-major with (0,0) at the top-left. The dimensions
// never change after creation; every drawing call mutates the buffer in
// place. Surface implements Canvas, image.Image and draw.Image.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	width  int
	height int
	pix    []Color

	clearColor  Color
	strokeColor Color
	fillColor   Color
	strokeWidth int
}

var _ Canvas = (*Surface)(nil)

// NewSurface creates a surface with the given dimensions, every pixel set
// to the clear color (White unless WithClearColor is given).
//
// It returns an error wrapping ErrInvalidDimension when width or height is
// not positive, and ErrAllocation when the buffer size overflows or exceeds
// the pixel limit (see WithMaxPixels).
func NewSurface(width, height int, opts ...SurfaceOption) (*Surface, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width > math.MaxInt/height || width*height > options.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			ErrAllocation, width, height, options.maxPixels)
	}

	s := &Surface{
		width:       width,
		height:      height,
		pix:         make([]Color, width*height),
		clearColor:  options.clearColor,
		strokeColor: options.strokeColor,
		fillColor:   options.fillColor,
		strokeWidth: max(options.strokeWidth, 1),
	}
	s.Clear()

	Logger().Debug("pixbuf: surface created", "width", width, "height", height)
	return s, nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Pixels returns the live pixel slice (row-major, len = Width*Height).
// Writes through the slice bypass bounds policy and are visible immediately.
func (s *Surface) Pixels() []Color {
	return s.pix
}

// Clone returns an independent copy of the surface, style included.
func (s *Surface) Clone() *Surface {
	c := *s
	c.pix = make([]Color, len(s.pix))
	copy(c.pix, s.pix)
	return &c
}

// Clear overwrites every pixel with the clear color.
func (s *Surface) Clear() {
	c := s.clearColor
	for i := range s.pix {
		s.pix[i] = c
	}
}

// ClearRect overwrites the pixels of r that lie on the surface with the
// clear color. Animation loops use it to erase a glyph's prior footprint.
func (s *Surface) ClearRect(r Rect) {
	r = r.Intersect(Rect{W: s.width, H: s.height})
	if r.Empty() {
		return
	}
	c := s.clearColor
	for y := r.Y; y < r.Y+r.H; y++ {
		row := s.pix[y*s.width+r.X : y*s.width+r.X+r.W]
		for i := range row {
			row[i] = c
		}
	}
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the surface are ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = c
}

// GetPixel returns the color of a single pixel, or Transparent when the
// coordinates lie outside the surface.
func (s *Surface) GetPixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	return s.pix[y*s.width+x]
}

// hspan writes c to pixels [x0, x1] of row y, clipped to the surface.
// An empty range (x0 > x1) writes nothing.
func (s *Surface) hspan(x0, x1, y int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, s.width-1)
	if x0 > x1 {
		return
	}
	row := s.pix[y*s.width+x0 : y*s.width+x1+1]
	for i := range row {
		row[i] = c
	}
}

// ClearColor returns the color used by Clear.
func (s *Surface) ClearColor() Color { return s.clearColor }

// StrokeColor returns the color used by stroke primitives.
func (s *Surface) StrokeColor() Color { return s.strokeColor }

// FillColor returns the color used by fill primitives.
func (s *Surface) FillColor() Color { return s.fillColor }

// StrokeWidth returns the current stroke width (always >= 1).
func (s *Surface) StrokeWidth() int { return s.strokeWidth }

// SetClearColor sets the color used by Clear and ClearRect.
func (s *Surface) SetClearColor(c Color) { s.clearColor = c }

// SetStrokeColor sets the color used by stroke primitives.
func (s *Surface) SetStrokeColor(c Color) { s.strokeColor = c }

// SetFillColor sets the color used by fill primitives.
func (s *Surface) SetFillColor(c Color) { s.fillColor = c }

// SetStrokeWidth sets the stroke width, clamped to a minimum of 1.
func (s *Surface) SetStrokeWidth(w int) { s.strokeWidth = max(w, 1) }

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the surface to an image.NRGBA copy.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	for i, c := range s.pix {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = c.A
	}
	return img
}

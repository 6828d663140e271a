package pixbuf

// Canvas is the drawing capability set shared by every backend: a fixed
// size, a clear operation, the drawing style, and the primitives.
//
// Backends are chosen at composition time. *Surface rasterizes into its own
// pixel buffer; recording.Recorder captures the calls for later playback.
// Glyph and animation code only ever talks to a Canvas.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Clear fills the whole canvas with the clear color.
	Clear()

	ClearColor() Color
	StrokeColor() Color
	FillColor() Color
	StrokeWidth() int

	SetClearColor(c Color)
	SetStrokeColor(c Color)
	SetFillColor(c Color)

	// SetStrokeWidth sets the stroke width, clamped to a minimum of 1.
	SetStrokeWidth(w int)

	// DrawPixel plots (x, y) in the stroke color.
	DrawPixel(x, y int)

	// DrawLine strokes the segment between two points, both inclusive.
	DrawLine(x0, y0, x1, y1 int)

	// DrawRect strokes the outline of [x, x+w) x [y, y+h).
	DrawRect(x, y, w, h int)

	// FillRect fills [x, x+w) x [y, y+h) with the fill color.
	FillRect(x, y, w, h int)

	// DrawCircle strokes a circle of radius r around (cx, cy).
	DrawCircle(cx, cy, r int)

	// FillCircle fills a disc of radius r around (cx, cy).
	FillCircle(cx, cy, r int)
}

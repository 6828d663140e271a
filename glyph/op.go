// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

// ReferenceSize is the width of the frame glyph scripts are authored in.
// Coordinates run from -ReferenceSize/2 to +ReferenceSize/2 around the
// glyph centre.
const ReferenceSize = 32

// OpKind identifies the primitive an Op draws.
type OpKind uint8

const (
	OpPixel      OpKind = iota // Single pixel at (X, Y)
	OpLine                     // Segment (X, Y) to (X2, Y2)
	OpRect                     // Outline of W x H at (X, Y)
	OpFillRect                 // Filled W x H at (X, Y)
	OpCircle                   // Circle outline of radius R at (X, Y)
	OpFillCircle               // Disc of radius R at (X, Y)
)

var opKindNames = [...]string{
	OpPixel:      "Pixel",
	OpLine:       "Line",
	OpRect:       "Rect",
	OpFillRect:   "FillRect",
	OpCircle:     "Circle",
	OpFillCircle: "FillCircle",
}

// String returns the string representation of an OpKind.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// IsFill reports whether the op paints with the fill color by default.
func (k OpKind) IsFill() bool {
	return k == OpFillRect || k == OpFillCircle
}

// Paint selects which canvas color an op is drawn with.
type Paint uint8

const (
	// PaintDefault uses the stroke color for outlines and pixels and the
	// fill color for filled shapes.
	PaintDefault Paint = iota
	// PaintStroke always uses the stroke color.
	PaintStroke
	// PaintFill always uses the fill color.
	PaintFill
	// PaintClear uses the clear color, knocking the shape out of whatever
	// was drawn before it.
	PaintClear
)

var paintNames = [...]string{
	PaintDefault: "Default",
	PaintStroke:  "Stroke",
	PaintFill:    "Fill",
	PaintClear:   "Clear",
}

// String returns the string representation of a Paint role.
func (p Paint) String() string {
	if int(p) < len(paintNames) {
		return paintNames[p]
	}
	return "Unknown"
}

// Op is one primitive of a glyph script in reference units.
type Op struct {
	Kind OpKind

	X, Y   float64 // position, top-left corner or centre
	X2, Y2 float64 // line end
	W, H   float64 // rectangle size
	R      float64 // radius

	// Width is the stroke width in reference units. Zero keeps the
	// canvas stroke width.
	Width float64

	Role Paint
}

// Pixel returns an op plotting one pixel.
func Pixel(x, y float64) Op {
	return Op{Kind: OpPixel, X: x, Y: y}
}

// Line returns an op stroking the segment (x0, y0)-(x1, y1).
func Line(x0, y0, x1, y1 float64) Op {
	return Op{Kind: OpLine, X: x0, Y: y0, X2: x1, Y2: y1}
}

// Rect returns an op stroking the outline of a w x h rectangle.
func Rect(x, y, w, h float64) Op {
	return Op{Kind: OpRect, X: x, Y: y, W: w, H: h}
}

// FillRect returns an op filling a w x h rectangle.
func FillRect(x, y, w, h float64) Op {
	return Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h}
}

// Circle returns an op stroking a circle.
func Circle(cx, cy, r float64) Op {
	return Op{Kind: OpCircle, X: cx, Y: cy, R: r}
}

// FillCircle returns an op filling a disc.
func FillCircle(cx, cy, r float64) Op {
	return Op{Kind: OpFillCircle, X: cx, Y: cy, R: r}
}

// With returns a copy of op painted with role.
func (op Op) With(role Paint) Op {
	op.Role = role
	return op
}

// Thick returns a copy of op stroked w reference units wide.
func (op Op) Thick(w float64) Op {
	op.Width = w
	return op
}

// Script is an ordered list of ops. Later ops paint over earlier ones.
type Script []Op

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"math"

	"github.com/gogpu/pixbuf"
)

// Placement positions a glyph on a canvas.
type Placement struct {
	// X and Y are the glyph centre in pixels.
	X, Y int
	// Size is the rendered width of the reference frame in pixels.
	// A size <= 0 draws nothing.
	Size int
	// Angle rotates the glyph about its centre, in radians. Positive
	// angles turn clockwise on screen.
	Angle float64
}

// At returns an unrotated placement.
func At(x, y, size int) Placement {
	return Placement{X: x, Y: y, Size: size}
}

// resolved is an op scaled and rotated to integer pixel offsets from the
// glyph centre.
type resolved struct {
	kind           OpKind
	x0, y0, x1, y1 int
	w, h           int
	r              int
	width          int // 0 keeps the canvas stroke width
	role           Paint
}

// resolve converts a script to pixel offsets for the given size and angle.
func resolve(script Script, size int, angle float64) []resolved {
	k := float64(size) / ReferenceSize
	rot := pixbuf.Rotate(angle)
	rotated := angle != 0

	point := func(x, y float64) (int, int) {
		fx, fy := rot.Apply(x, y)
		return pixbuf.Round(fx), pixbuf.Round(fy)
	}

	out := make([]resolved, 0, len(script))
	for _, op := range script {
		ro := resolved{kind: op.Kind, role: op.Role}
		if op.Width > 0 {
			ro.width = max(pixbuf.Round(op.Width*k), 1)
		}

		switch op.Kind {
		case OpPixel:
			ro.x0, ro.y0 = point(op.X*k, op.Y*k)

		case OpLine:
			ro.x0, ro.y0 = point(op.X*k, op.Y*k)
			ro.x1, ro.y1 = point(op.X2*k, op.Y2*k)

		case OpRect, OpFillRect:
			x0, y0 := pixbuf.Round(op.X*k), pixbuf.Round(op.Y*k)
			w := scaledExtent(op.X, op.W, k)
			h := scaledExtent(op.Y, op.H, k)
			ro.x0, ro.y0, ro.w, ro.h = x0, y0, w, h
			if !rotated || w <= 0 || h <= 0 {
				break
			}
			if op.Kind == OpRect {
				out = append(out, rectEdges(ro, point)...)
				continue
			}
			hw, hh := float64(w-1)/2, float64(h-1)/2
			cx, cy := rot.Apply(float64(x0)+hw, float64(y0)+hh)
			ro.x0, ro.y0 = pixbuf.Round(cx-hw), pixbuf.Round(cy-hh)

		case OpCircle, OpFillCircle:
			ro.x0, ro.y0 = point(op.X*k, op.Y*k)
			ro.r = pixbuf.Round(op.R * k)
			if op.R > 0 {
				ro.r = max(ro.r, 1)
			}
		}
		out = append(out, ro)
	}
	return out
}

// scaledExtent scales the span [pos, pos+ext) by rounding both edges, so
// adjacent rectangles stay adjacent at every size. A positive extent never
// collapses below one pixel.
func scaledExtent(pos, ext, k float64) int {
	if ext <= 0 {
		return 0
	}
	n := pixbuf.Round((pos+ext)*k) - pixbuf.Round(pos*k)
	return max(n, 1)
}

// rectEdges turns a rotated rectangle outline into four lines between its
// rotated corner pixels.
func rectEdges(r resolved, point func(x, y float64) (int, int)) []resolved {
	left, top := float64(r.x0), float64(r.y0)
	right, bottom := float64(r.x0+r.w-1), float64(r.y0+r.h-1)

	var c [4][2]int
	c[0][0], c[0][1] = point(left, top)
	c[1][0], c[1][1] = point(right, top)
	c[2][0], c[2][1] = point(right, bottom)
	c[3][0], c[3][1] = point(left, bottom)

	edges := make([]resolved, 4)
	for i := range edges {
		j := (i + 1) % 4
		edges[i] = resolved{
			kind:  OpLine,
			x0:    c[i][0],
			y0:    c[i][1],
			x1:    c[j][0],
			y1:    c[j][1],
			width: r.width,
			role:  r.role,
		}
	}
	return edges
}

// draw paints the op translated by (ox, oy).
func (r resolved) draw(c pixbuf.Canvas, ox, oy int) {
	restore := r.applyStyle(c)
	defer restore()

	x0, y0 := r.x0+ox, r.y0+oy
	switch r.kind {
	case OpPixel:
		c.DrawPixel(x0, y0)
	case OpLine:
		c.DrawLine(x0, y0, r.x1+ox, r.y1+oy)
	case OpRect:
		c.DrawRect(x0, y0, r.w, r.h)
	case OpFillRect:
		c.FillRect(x0, y0, r.w, r.h)
	case OpCircle:
		c.DrawCircle(x0, y0, r.r)
	case OpFillCircle:
		c.FillCircle(x0, y0, r.r)
	}
}

// applyStyle points the color slot the op paints with at its role's color
// and sets its stroke width. The returned func restores the canvas style.
func (r resolved) applyStyle(c pixbuf.Canvas) func() {
	var (
		get func() pixbuf.Color
		set func(pixbuf.Color)
	)
	if r.kind.IsFill() {
		get, set = c.FillColor, c.SetFillColor
	} else {
		get, set = c.StrokeColor, c.SetStrokeColor
	}

	var want pixbuf.Color
	switch r.role {
	case PaintStroke:
		want = c.StrokeColor()
	case PaintFill:
		want = c.FillColor()
	case PaintClear:
		want = c.ClearColor()
	default:
		want = get()
	}

	prevColor, prevWidth := get(), c.StrokeWidth()
	if want != prevColor {
		set(want)
	}
	if r.width > 0 && r.width != prevWidth {
		c.SetStrokeWidth(r.width)
	}
	return func() {
		if want != prevColor {
			set(prevColor)
		}
		if r.width > 0 && r.width != prevWidth {
			c.SetStrokeWidth(prevWidth)
		}
	}
}

// bounds returns the pixels the op can touch, relative to the glyph
// centre, when drawn on a canvas with the given stroke width. Ops with
// their own width ignore strokeWidth.
func (r resolved) bounds(strokeWidth int) pixbuf.Rect {
	w := r.width
	if w <= 0 {
		w = strokeWidth
	}
	pad := max(w, 1) / 2
	switch r.kind {
	case OpPixel:
		return pixbuf.R(r.x0, r.y0, 1, 1)
	case OpLine:
		x0, x1 := min(r.x0, r.x1), max(r.x0, r.x1)
		y0, y1 := min(r.y0, r.y1), max(r.y0, r.y1)
		return pixbuf.R(x0, y0, x1-x0+1, y1-y0+1).Inset(-pad, -pad)
	case OpRect:
		if r.w <= 0 || r.h <= 0 {
			return pixbuf.Rect{}
		}
		return pixbuf.R(r.x0, r.y0, r.w, r.h).Inset(-pad, -pad)
	case OpFillRect:
		return pixbuf.R(r.x0, r.y0, r.w, r.h)
	case OpCircle:
		if r.r <= 0 {
			return pixbuf.R(r.x0, r.y0, 1, 1)
		}
		return pixbuf.R(r.x0-r.r, r.y0-r.r, 2*r.r+1, 2*r.r+1)
	case OpFillCircle:
		if r.r <= 0 {
			return pixbuf.Rect{}
		}
		return pixbuf.R(r.x0-r.r, r.y0-r.r, 2*r.r+1, 2*r.r+1)
	}
	return pixbuf.Rect{}
}

// normalizeAngle folds angle into [0, 2*pi) so equivalent rotations share
// a cache entry. NaN and infinities become 0.
func normalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a == 0 || a >= 2*math.Pi {
		return 0
	}
	return a
}

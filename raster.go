package pixbuf

import "math"

// DrawPixel plots (x, y) in the stroke color.
func (s *Surface) DrawPixel(x, y int) {
	s.SetPixel(x, y, s.strokeColor)
}

// DrawLine strokes the segment (x0, y0)-(x1, y1) with the integer
// Bresenham algorithm. Both endpoints are plotted. The endpoints are
// traced in a canonical order, so swapping them yields the same pixels.
//
// With a stroke width w > 1, every pixel whose center lies within w/2 of
// the segment is also plotted, which gives the stroke round caps.
//
// Only the steps that land on the surface are traced. Segments with a
// coordinate beyond ±lineLimit are first clipped to the surface in
// floating point, so their visible pixels approximate the exact trace.
func (s *Surface) DrawLine(x0, y0, x1, y1 int) {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	pad := s.strokeWidth / 2
	if !s.touches(x0, y0, x1, y1, pad) {
		return
	}
	if outsideLimit(x0, y0, x1, y1) {
		var ok bool
		x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1,
			-pad-1, -pad-1, s.width+pad, s.height+pad)
		if !ok {
			return
		}
	}

	c := s.strokeColor
	s.bresenham(x0, y0, x1, y1, c)
	if s.strokeWidth > 1 {
		s.thickLine(x0, y0, x1, y1, s.strokeWidth, c)
	}
}

// lineLimit bounds the coordinates traced exactly. Within it every
// product in bresenham and withinStroke fits in an int64.
const lineLimit = 1 << 29

func outsideLimit(coords ...int) bool {
	for _, v := range coords {
		if v < -lineLimit || v > lineLimit {
			return true
		}
	}
	return false
}

// touches reports whether the bounding box of the segment, grown by pad,
// overlaps the surface.
func (s *Surface) touches(x0, y0, x1, y1, pad int) bool {
	minY, maxY := min(y0, y1), max(y0, y1)
	return x1 >= -pad && x0 < s.width+pad && maxY >= -pad && minY < s.height+pad
}

// clipLine clips the segment to the closed box [minX, maxX] x [minY, maxY]
// (Liang-Barsky). A clipped endpoint sits exactly on the edge that cut it;
// its other coordinate is rounded and kept inside the box. The segment
// direction is kept. ok is false when nothing of the segment lies inside.
func clipLine(x0, y0, x1, y1, minX, minY, maxX, maxY int) (cx0, cy0, cx1, cy1 int, ok bool) {
	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	t0, t1 := 0.0, 1.0
	e0, e1 := -1, -1

	edges := [4][2]float64{
		{-dx, fx0 - float64(minX)},
		{dx, float64(maxX) - fx0},
		{-dy, fy0 - float64(minY)},
		{dy, float64(maxY) - fy0},
	}
	for i, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 && t > t0 {
			t0, e0 = t, i
		} else if p > 0 && t < t1 {
			t1, e1 = t, i
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}

	point := func(t float64, edge, x, y int) (int, int) {
		fx := clampf(math.Round(fx0+t*dx), minX, maxX)
		fy := clampf(math.Round(fy0+t*dy), minY, maxY)
		switch edge {
		case 0:
			return minX, fy
		case 1:
			return maxX, fy
		case 2:
			return fx, minY
		case 3:
			return fx, maxY
		}
		return x, y
	}
	cx0, cy0 = point(t0, e0, x0, y0)
	cx1, cy1 = point(t1, e1, x1, y1)
	return cx0, cy0, cx1, cy1, true
}

func clampf(v float64, lo, hi int) int {
	if v <= float64(lo) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return int(v)
}

// bresenham traces the segment one major-axis step at a time. The caller
// passes the endpoints in canonical order (x0 <= x1). Steps outside the
// surface are skipped by starting the decision variable at the first
// visible step: after k steps the minor axis has moved
// (2*k*minor + major - 1) / (2*major) pixels.
func (s *Surface) bresenham(x0, y0, x1, y1 int, c Color) {
	dx, dy := x1-x0, abs(y1-y0)
	sy := 1
	if y1 < y0 {
		sy = -1
	}

	if dx >= dy {
		if dx == 0 {
			s.SetPixel(x0, y0, c)
			return
		}
		first, last := max(0, -x0), min(dx, s.width-1-x0)
		s.traceSteps(first, last, dx, dy, func(k, m int) {
			s.SetPixel(x0+k, y0+sy*m, c)
		})
		return
	}

	var first, last int
	if sy > 0 {
		first, last = max(0, -y0), min(dy, s.height-1-y0)
	} else {
		first, last = max(0, y0-(s.height-1)), min(dy, y0)
	}
	s.traceSteps(first, last, dy, dx, func(k, m int) {
		s.SetPixel(x0+m, y0+sy*k, c)
	})
}

// traceSteps runs the Bresenham decision loop over steps first..last of a
// line with the given major and minor extents (major > 0), calling plot
// with the step index and the minor-axis offset.
func (s *Surface) traceSteps(first, last, major, minor int, plot func(k, m int)) {
	if first > last {
		return
	}
	m := (2*first*minor + major - 1) / (2 * major)
	// d decides whether step k+1 also moves along the minor axis.
	d := 2*(first+1)*minor - major - 2*m*major
	for k := first; k <= last; k++ {
		plot(k, m)
		if d > 0 {
			m++
			d -= 2 * major
		}
		d += 2 * minor
	}
}

// thickLine plots the capsule of radius w/2 around the segment, clipped to
// the surface.
func (s *Surface) thickLine(x0, y0, x1, y1, w int, c Color) {
	pad := (w + 1) / 2
	minX := max(min(x0, x1)-pad, 0)
	maxX := min(max(x0, x1)+pad, s.width-1)
	minY := max(min(y0, y1)-pad, 0)
	maxY := min(max(y0, y1)+pad, s.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if withinStroke(x, y, x0, y0, x1, y1, w) {
				s.pix[y*s.width+x] = c
			}
		}
	}
}

// withinStroke reports whether (px, py) is no farther than w/2 from the
// segment (x0, y0)-(x1, y1). All comparisons are squared and scaled by 4
// so the test stays in integers.
func withinStroke(px, py, x0, y0, x1, y1, w int) bool {
	dx, dy := int64(x1-x0), int64(y1-y0)
	qx, qy := int64(px-x0), int64(py-y0)
	ww := int64(w) * int64(w)

	dot := qx*dx + qy*dy
	ll := dx*dx + dy*dy
	switch {
	case ll == 0 || dot <= 0:
		return 4*(qx*qx+qy*qy) <= ww
	case dot >= ll:
		rx, ry := int64(px-x1), int64(py-y1)
		return 4*(rx*rx+ry*ry) <= ww
	default:
		cross := qx*dy - qy*dx
		if cross > 1<<30 || cross < -(1<<30) || ll > math.MaxInt64/ww {
			fc := float64(cross)
			return 4*fc*fc <= float64(ww)*float64(ll)
		}
		return 4*cross*cross <= ww*ll
	}
}

// DrawRect strokes the outline of [x, x+w) x [y, y+h) with four DrawLine
// calls. Empty rectangles are ignored.
func (s *Surface) DrawRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	s.DrawLine(x, y, x1, y)
	s.DrawLine(x1, y, x1, y1)
	s.DrawLine(x1, y1, x, y1)
	s.DrawLine(x, y1, x, y)
}

// FillRect fills [x, x+w) x [y, y+h) with the fill color. Empty
// rectangles are ignored.
func (s *Surface) FillRect(x, y, w, h int) {
	r := Rect{X: x, Y: y, W: w, H: h}.Intersect(Rect{W: s.width, H: s.height})
	if r.Empty() {
		return
	}
	for row := r.Y; row < r.Y+r.H; row++ {
		s.hspan(r.X, r.X+r.W-1, row, s.fillColor)
	}
}

// DrawCircle strokes a circle with the midpoint algorithm, plotting the
// eight symmetric boundary points of each step in the stroke color.
//
// A radius <= 0 plots the single center pixel. With a stroke width w > 1
// the ring grows inward to a thickness of w pixels, so the outline never
// leaves the disc FillCircle would cover.
func (s *Surface) DrawCircle(cx, cy, r int) {
	c := s.strokeColor
	if r <= 0 {
		s.SetPixel(cx, cy, c)
		return
	}

	x, y := 0, r
	d := 1 - r
	for x <= y {
		s.SetPixel(cx+x, cy+y, c)
		s.SetPixel(cx-x, cy+y, c)
		s.SetPixel(cx+x, cy-y, c)
		s.SetPixel(cx-x, cy-y, c)
		s.SetPixel(cx+y, cy+x, c)
		s.SetPixel(cx-y, cy+x, c)
		s.SetPixel(cx+y, cy-x, c)
		s.SetPixel(cx-y, cy-x, c)

		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}

	if s.strokeWidth > 1 {
		s.annulus(cx, cy, r, r-s.strokeWidth, c)
	}
}

// FillCircle fills a disc: for every scanline it covers all pixels between
// the symmetric boundary offsets of the midpoint circle, so the result is
// a superset of DrawCircle's pixels for r >= 1. A radius <= 0 draws nothing.
func (s *Surface) FillCircle(cx, cy, r int) {
	if r <= 0 {
		return
	}
	half := circleSpans(r)
	for dy := -r; dy <= r; dy++ {
		hw := half[abs(dy)]
		s.hspan(cx-hw, cx+hw, cy+dy, s.fillColor)
	}
}

// annulus fills the pixels inside the disc of radius outer but outside the
// disc of radius inner.
func (s *Surface) annulus(cx, cy, outer, inner int, c Color) {
	out := circleSpans(outer)
	var in []int
	if inner > 0 {
		in = circleSpans(inner)
	}
	for dy := -outer; dy <= outer; dy++ {
		ady := abs(dy)
		ow := out[ady]
		if ady >= len(in) {
			s.hspan(cx-ow, cx+ow, cy+dy, c)
			continue
		}
		iw := in[ady]
		s.hspan(cx-ow, cx-iw-1, cy+dy, c)
		s.hspan(cx+iw+1, cx+ow, cy+dy, c)
	}
}

// circleSpans returns, for each row offset 0..r, the largest x offset the
// midpoint circle of radius r reaches on that row.
func circleSpans(r int) []int {
	half := make([]int, r+1)
	for i := range half {
		half[i] = -1
	}
	x, y := 0, r
	d := 1 - r
	for x <= y {
		half[y] = max(half[y], x)
		half[x] = max(half[x], y)
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}
	for i := 1; i <= r; i++ {
		if half[i] < 0 {
			half[i] = half[i-1]
		}
	}
	return half
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

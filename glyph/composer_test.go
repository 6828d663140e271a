// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/recording"
)

func newSurface(t *testing.T, w, h int, opts ...pixbuf.SurfaceOption) *pixbuf.Surface {
	t.Helper()
	s, err := pixbuf.NewSurface(w, h, opts...)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	return s
}

// inked returns the pixels that differ from the surface clear color.
func inked(s *pixbuf.Surface) map[pixbuf.Point]bool {
	set := make(map[pixbuf.Point]bool)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetPixel(x, y) != s.ClearColor() {
				set[pixbuf.Pt(x, y)] = true
			}
		}
	}
	return set
}

var sizes = []int{6, 16, 32, 47, 64}

func TestNames(t *testing.T) {
	want := []string{"coffee", "heart", "home", "leaf", "moon", "smile", "sparkle", "target"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got := NewComposer(WithoutBuiltins()).Names(); len(got) != 0 {
		t.Errorf("WithoutBuiltins Names() = %v, want none", got)
	}
}

func TestDrawDeterministicAndStyleNeutral(t *testing.T) {
	for _, name := range Names() {
		for _, size := range sizes {
			for _, angle := range []float64{0, 0.7} {
				t.Run(fmt.Sprintf("%s/%d/%.1f", name, size, angle), func(t *testing.T) {
					a := newSurface(t, 100, 100)
					b := newSurface(t, 100, 100)
					for _, s := range []*pixbuf.Surface{a, b} {
						s.SetStrokeColor(pixbuf.Ink)
						s.SetFillColor(pixbuf.Coffee)
						s.SetStrokeWidth(1)
					}

					p := Placement{X: 50, Y: 50, Size: size, Angle: angle}
					if err := DrawPlacement(a, name, p); err != nil {
						t.Fatal(err)
					}
					if err := DrawPlacement(b, name, p); err != nil {
						t.Fatal(err)
					}
					if !slices.Equal(a.Pixels(), b.Pixels()) {
						t.Fatal("identical draws produced different pixels")
					}
					if a.StrokeColor() != pixbuf.Ink || a.FillColor() != pixbuf.Coffee ||
						a.ClearColor() != pixbuf.White || a.StrokeWidth() != 1 {
						t.Errorf("style changed: stroke %v fill %v clear %v width %d",
							a.StrokeColor(), a.FillColor(), a.ClearColor(), a.StrokeWidth())
					}
					if len(inked(a)) == 0 {
						t.Error("glyph drew nothing")
					}
				})
			}
		}
	}
}

func TestDrawTranslationInvariant(t *testing.T) {
	for _, name := range Names() {
		for _, angle := range []float64{0, 0.5} {
			a := newSurface(t, 120, 120)
			b := newSurface(t, 120, 120)
			if err := DrawPlacement(a, name, Placement{X: 40, Y: 40, Size: 40, Angle: angle}); err != nil {
				t.Fatal(err)
			}
			if err := DrawPlacement(b, name, Placement{X: 73, Y: 51, Size: 40, Angle: angle}); err != nil {
				t.Fatal(err)
			}
			pa, pb := inked(a), inked(b)
			if len(pa) != len(pb) {
				t.Fatalf("%s: %d vs %d pixels after translation", name, len(pa), len(pb))
			}
			for p := range pa {
				if !pb[p.Add(pixbuf.Pt(33, 11))] {
					t.Fatalf("%s angle %.1f: %v has no translated twin", name, angle, p)
				}
			}
		}
	}
}

func TestDrawStaysInsideBounds(t *testing.T) {
	for _, width := range []int{1, 2, 5} {
		for _, name := range Names() {
			for _, size := range sizes {
				for _, angle := range []float64{0, 1.1, -0.3} {
					s := newSurface(t, 120, 120, pixbuf.WithStrokeWidth(width))
					p := Placement{X: 60, Y: 60, Size: size, Angle: angle}
					if err := DrawPlacement(s, name, p); err != nil {
						t.Fatal(err)
					}
					r, err := Default().Bounds(name, p, s.StrokeWidth())
					if err != nil {
						t.Fatal(err)
					}
					for px := range inked(s) {
						if !r.Contains(px) {
							t.Fatalf("%s width %d size %d angle %.1f: pixel %v outside bounds %v",
								name, width, size, angle, px, r)
						}
					}
				}
			}
		}
	}
}

func TestOffsetsScaleWithSize(t *testing.T) {
	c := NewComposer(WithoutBuiltins())
	if err := c.Register("dot", Script{Pixel(3, -5)}); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		size int
		want pixbuf.Point
	}{
		{32, pixbuf.Pt(3, -5)},
		{64, pixbuf.Pt(6, -10)},
		{16, pixbuf.Pt(2, -2)}, // 1.5 and -2.5 round half up
		{96, pixbuf.Pt(9, -15)},
	}
	for _, tt := range tests {
		s := newSurface(t, 60, 60)
		if err := c.Draw(s, "dot", 30, 30, tt.size); err != nil {
			t.Fatal(err)
		}
		want := pixbuf.Pt(30, 30).Add(tt.want)
		got := inked(s)
		if len(got) != 1 || !got[want] {
			t.Errorf("size %d: pixels %v, want %v", tt.size, got, want)
		}
	}
}

func TestRotation(t *testing.T) {
	c := NewComposer(WithoutBuiltins())
	scripts := map[string]Script{
		"dot":   {Pixel(8, 0)},
		"bar":   {FillRect(4, -1, 6, 3)},
		"frame": {Rect(-4, -4, 8, 8)},
	}
	for name, s := range scripts {
		if err := c.Register(name, s); err != nil {
			t.Fatal(err)
		}
	}

	s := newSurface(t, 40, 40)
	if err := c.DrawPlacement(s, "dot", Placement{X: 20, Y: 20, Size: 32, Angle: math.Pi / 2}); err != nil {
		t.Fatal(err)
	}
	if got := inked(s); len(got) != 1 || !got[pixbuf.Pt(20, 28)] {
		t.Errorf("quarter turn of (8,0) = %v, want (20,28)", got)
	}

	// Filled rects keep their extent and move their centre.
	r, err := c.Bounds("bar", Placement{X: 20, Y: 20, Size: 32, Angle: math.Pi}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if r != pixbuf.R(20-9, 20-1, 6, 3) {
		t.Errorf("half turn bar bounds = %v, want %v", r, pixbuf.R(11, 19, 6, 3))
	}

	// Stroked rects become four lines.
	rec := recording.NewRecorder(40, 40)
	if err := c.DrawPlacement(rec, "frame", Placement{X: 20, Y: 20, Size: 32, Angle: 0.4}); err != nil {
		t.Fatal(err)
	}
	got := rec.FinishRecording()
	if got.Count(recording.CmdLine) != 4 || got.Count(recording.CmdRect) != 0 {
		t.Errorf("rotated frame recorded %v", got.Commands())
	}
}

func TestEquivalentAnglesShareCacheEntry(t *testing.T) {
	c := NewComposer()
	s := newSurface(t, 64, 64)
	for _, a := range []float64{0, 2 * math.Pi, -2 * math.Pi, math.NaN()} {
		if err := c.DrawPlacement(s, "smile", Placement{X: 32, Y: 32, Size: 32, Angle: a}); err != nil {
			t.Fatal(err)
		}
	}
	st := c.CacheStats()
	if st.Misses != 1 || st.Hits != 3 {
		t.Errorf("CacheStats() = %+v, want 1 miss 3 hits", st)
	}
}

func TestPaintRoles(t *testing.T) {
	c := NewComposer(WithoutBuiltins())
	err := c.Register("knock", Script{
		FillRect(-4, -4, 8, 8),
		FillRect(-1, -1, 2, 2).With(PaintClear),
		FillRect(-4, 6, 2, 2).With(PaintStroke),
		Pixel(6, 6).With(PaintFill),
	})
	if err != nil {
		t.Fatal(err)
	}

	s := newSurface(t, 30, 30)
	s.SetClearColor(pixbuf.Paper)
	s.Clear()
	s.SetStrokeColor(pixbuf.Red)
	s.SetFillColor(pixbuf.Blue)
	if err := c.Draw(s, "knock", 15, 15, 32); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want pixbuf.Color
	}{
		{11, 11, pixbuf.Blue},
		{15, 15, pixbuf.Paper},
		{14, 14, pixbuf.Paper},
		{11, 21, pixbuf.Red},
		{21, 21, pixbuf.Blue},
	}
	for _, tt := range tests {
		if got := s.GetPixel(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if s.StrokeColor() != pixbuf.Red || s.FillColor() != pixbuf.Blue {
		t.Error("paint roles leaked into the canvas style")
	}
}

func TestMoonIsCrescent(t *testing.T) {
	s := newSurface(t, 64, 64)
	s.SetFillColor(pixbuf.MoonGlow)
	if err := Draw(s, "moon", 32, 32, 32); err != nil {
		t.Fatal(err)
	}
	if s.GetPixel(32-10, 32) != pixbuf.MoonGlow {
		t.Error("moon body missing on the left")
	}
	if s.GetPixel(32+6, 32-4) != pixbuf.White {
		t.Error("crescent cut-out not cleared")
	}
}

func TestDrawErrors(t *testing.T) {
	s := newSurface(t, 10, 10)
	err := Draw(s, "unicorn", 5, 5, 10)
	if !errors.Is(err, ErrUnknownGlyph) {
		t.Errorf("Draw(unknown) error = %v, want ErrUnknownGlyph", err)
	}
	if _, err := Default().Bounds("unicorn", At(0, 0, 10), 1); !errors.Is(err, ErrUnknownGlyph) {
		t.Errorf("Bounds(unknown) error = %v, want ErrUnknownGlyph", err)
	}
	if len(inked(s)) != 0 {
		t.Error("failed draw touched pixels")
	}
}

func TestNonPositiveSizeDrawsNothing(t *testing.T) {
	for _, size := range []int{0, -5} {
		s := newSurface(t, 20, 20)
		if err := Draw(s, "target", 10, 10, size); err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if len(inked(s)) != 0 {
			t.Errorf("size %d drew pixels", size)
		}
		r, err := Default().Bounds("target", At(10, 10, size), 1)
		if err != nil || !r.Empty() {
			t.Errorf("size %d Bounds = %v, %v; want empty", size, r, err)
		}
	}
}

func TestRegister(t *testing.T) {
	c := NewComposer()
	tests := []struct {
		name   string
		glyph  string
		script Script
		want   error
	}{
		{"ok", "dot", Script{Pixel(0, 0)}, nil},
		{"duplicate builtin", "smile", Script{Pixel(0, 0)}, ErrDuplicateGlyph},
		{"duplicate", "dot", Script{Pixel(1, 1)}, ErrDuplicateGlyph},
		{"empty", "none", nil, ErrEmptyScript},
		{"no name", "", Script{Pixel(0, 0)}, ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Register(tt.glyph, tt.script); !errors.Is(err, tt.want) {
				t.Errorf("Register(%q) error = %v, want %v", tt.glyph, err, tt.want)
			}
		})
	}

	script, ok := c.Lookup("dot")
	if !ok || len(script) != 1 {
		t.Fatalf("Lookup(dot) = %v, %v", script, ok)
	}
	script[0] = Pixel(9, 9)
	if again, _ := c.Lookup("dot"); again[0] != Pixel(0, 0) {
		t.Error("Lookup returned shared storage")
	}
}

func TestGlyphOnRecorderRestoresStyle(t *testing.T) {
	s := newSurface(t, 64, 64)
	rec := recording.NewRecorderFor(s)
	if err := Draw(rec, "home", 32, 32, 48); err != nil {
		t.Fatal(err)
	}
	r := rec.FinishRecording()
	if r.Count(recording.CmdSetStrokeWidth)%2 != 0 {
		t.Errorf("unbalanced stroke width changes: %v", r.Commands())
	}

	direct := newSurface(t, 64, 64)
	if err := Draw(direct, "home", 32, 32, 48); err != nil {
		t.Fatal(err)
	}
	r.Playback(s)
	if !slices.Equal(s.Pixels(), direct.Pixels()) {
		t.Error("recorded glyph replays differently from a direct draw")
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Copysign(0, -1), 0},
		{2 * math.Pi, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{math.Inf(1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := normalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpKindString(t *testing.T) {
	for k, want := range map[OpKind]string{
		OpPixel: "Pixel", OpLine: "Line", OpRect: "Rect", OpFillRect: "FillRect",
		OpCircle: "Circle", OpFillCircle: "FillCircle", OpKind(99): "Unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("OpKind(%d).String() = %q, want %q", k, got, want)
		}
	}
	if PaintClear.String() != "Clear" || Paint(42).String() != "Unknown" {
		t.Error("Paint.String mismatch")
	}
}

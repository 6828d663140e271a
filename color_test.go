package pixbuf

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"opaque red", Red, 0xffff, 0, 0, 0xffff},
		{"transparent", Transparent, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"self", RGBA(1, 2, 3, 4), RGBA(1, 2, 3, 4)},
		{"nrgba", color.NRGBA{R: 10, G: 20, B: 30, A: 255}, RGB(10, 20, 30)},
		{"rgba opaque", color.RGBA{R: 200, G: 100, B: 50, A: 255}, RGB(200, 100, 50)},
		{"gray", color.Gray{Y: 128}, RGB(128, 128, 128)},
		{"transparent", color.Transparent, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00f", Blue},
		{"#fff8", RGBA(255, 255, 255, 0x88)},
		{"#faf9f7", RGB(0xfa, 0xf9, 0xf7)},
		{"#2C2C2C", RGB(0x2c, 0x2c, 0x2c)},
		{"#11223344", RGBA(0x11, 0x22, 0x33, 0x44)},
		{"", Black},
		{"#12", Black},
		{"#zzzzzz", Black},
		{"#1234567", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpaque(t *testing.T) {
	if got := RGBA(1, 2, 3, 0).Opaque(); got != RGB(1, 2, 3) {
		t.Errorf("Opaque() = %v", got)
	}
}

func TestPaletteIsOpaque(t *testing.T) {
	for _, c := range []Color{Paper, Ink, Muted, Border, Leaf, Coffee, MoonGlow} {
		if c.A != 255 {
			t.Errorf("palette color %v is not opaque", c)
		}
	}
}

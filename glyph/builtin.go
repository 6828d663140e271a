// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

// Built-in glyph scripts, authored on a 32-unit frame centred on (0, 0).
var builtins = map[string]Script{
	"smile": {
		Circle(0, 0, 14).Thick(2),
		FillCircle(-5, -4, 2),
		FillCircle(5, -4, 2),
		Line(-8, 3, -4, 7).Thick(2),
		Line(-4, 7, 4, 7).Thick(2),
		Line(4, 7, 8, 3).Thick(2),
	},

	"leaf": {
		FillCircle(1, -3, 10),
		FillCircle(-4, 2, 7),
		Line(-7, 6, 7, -9).With(PaintClear),
		Line(-14, 14, -7, 6).Thick(2).With(PaintStroke),
	},

	"coffee": {
		FillRect(-12, -4, 18, 14),
		Rect(-12, -4, 18, 14).Thick(1),
		Circle(9, 3, 4).Thick(2),
		Line(-15, 13, 12, 13).Thick(2),
		Line(-7, -14, -5, -8),
		Line(-2, -15, 0, -8),
		Line(3, -14, 5, -8),
	},

	"moon": {
		FillCircle(0, 0, 13),
		FillCircle(6, -4, 11).With(PaintClear),
		Pixel(10, 9),
		Pixel(13, 4),
	},

	"sparkle": {
		Line(0, -14, 0, 14).Thick(2),
		Line(-14, 0, 14, 0).Thick(2),
		Line(-6, -6, 6, 6),
		Line(-6, 6, 6, -6),
		FillCircle(0, 0, 3),
		Pixel(-11, -11),
		Pixel(11, -11),
		Pixel(11, 11),
		Pixel(-11, 11),
	},

	"heart": {
		FillCircle(-6, -5, 7),
		FillCircle(6, -5, 7),
		FillRect(-12, -3, 24, 4),
		FillRect(-10, 1, 20, 4),
		FillRect(-7, 5, 14, 4),
		FillRect(-4, 9, 8, 3),
		FillRect(-1, 12, 2, 2),
	},

	"target": {
		Circle(0, 0, 14).Thick(2),
		Circle(0, 0, 9).Thick(2),
		FillCircle(0, 0, 4),
	},

	"home": {
		Line(-15, 0, 0, -14).Thick(2),
		Line(0, -14, 15, 0).Thick(2),
		Rect(-11, 0, 22, 15).Thick(2),
		FillRect(-3, 6, 6, 9),
		Rect(5, 3, 4, 4),
	},
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyph draws named procedural icons onto a pixbuf.Canvas.
//
// A glyph is a Script: an ordered list of primitive operations laid out
// in a reference frame ReferenceSize units wide and centred on the glyph
// origin. Drawing a glyph at size s scales every offset, radius and
// stroke width by s/ReferenceSize and rounds half up, so proportions do
// not depend on the size and moving the origin by whole pixels moves
// every pixel by the same amount.
//
// # Built-in glyphs
//
// The default Composer knows smile, leaf, coffee, moon, sparkle, heart,
// target and home:
//
//	s, _ := pixbuf.NewSurface(64, 64)
//	s.SetStrokeColor(pixbuf.Ink)
//	s.SetFillColor(pixbuf.MoonGlow)
//	if err := glyph.Draw(s, "moon", 32, 32, 48); err != nil {
//	    log.Fatal(err)
//	}
//
// Glyphs paint with the canvas's current stroke and fill colors. Ops may
// name a different Paint role for a single call (the moon's crescent is
// cut out with PaintClear); the canvas style is restored afterwards, so a
// draw never changes anything but pixels.
//
// # Rotation
//
// Placement.Angle rotates the composition about the glyph centre before
// rasterization. Points, line endpoints and circle centres rotate;
// stroked rectangles become four rotated lines; filled rectangles keep
// their axis-aligned extent and only their centre moves.
//
// # Caching
//
// Each Composer keeps an LRU cache of scripts resolved to integer pixel
// offsets, keyed by glyph name, size and angle. Composer is safe for
// concurrent use; the canvases it draws on are not.
package glyph

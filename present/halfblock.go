// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import "github.com/gogpu/pixbuf"

// upperHalf is drawn with the top pixel as foreground and the bottom
// pixel as background, packing two rows into one text line.
const upperHalf = '▀'

// cell returns the two pixels shown by the text cell at (x, row).
// hasLower is false on the last row of an odd-height surface.
func cell(s *pixbuf.Surface, x, row int) (upper, lower pixbuf.Color, hasLower bool) {
	y := row * 2
	upper = s.GetPixel(x, y).Opaque()
	if y+1 >= s.Height() {
		return upper, pixbuf.Color{}, false
	}
	return upper, s.GetPixel(x, y+1).Opaque(), true
}

// rows returns the number of text lines needed for s.
func rows(s *pixbuf.Surface) int {
	return (s.Height() + 1) / 2
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package present hands finished pixbuf frames to a display or file.
//
// A Presenter receives a *pixbuf.Surface once per frame. Built-in
// backends, in priority order:
//
//   - screen (100): a tcell.Screen, two pixels per cell using half blocks
//   - displayer (90): any tinygo drivers.Displayer (SPI panels, e-paper)
//   - terminal (50): ANSI escape output to an io.Writer via termenv
//   - png (20), bmp (15), ppm (10): image files
//
// Backends are kept in a registry so that other packages can add their
// own:
//
//	func init() {
//	    present.Register("sixel", 60, newSixel, sixelSupported)
//	}
//
// NewPresenter picks the highest-priority backend whose factory accepts
// the given Options; NewPresenterByName asks for one explicitly:
//
//	p, err := present.NewPresenterByName("ppm", present.Options{Path: "frame%03d.ppm"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//	p.Present(surface)
//
// File backends expand a single integer verb in Path with a frame counter
// and upscale by Options.Scale with nearest-neighbour sampling.
package present

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gogpu/pixbuf"
	"tinygo.org/x/drivers"
)

// displayerPresenter pushes frames to a tinygo display driver.
type displayerPresenter struct {
	mu     sync.Mutex
	dev    drivers.Displayer
	closed bool
}

func newDisplayer(opts Options) (Presenter, error) {
	if opts.Displayer == nil {
		return nil, fmt.Errorf("%w: displayer backend needs Displayer", ErrMissingOption)
	}
	return &displayerPresenter{dev: opts.Displayer}, nil
}

// Present copies the overlap of s and the display, then flushes.
func (p *displayerPresenter) Present(s *pixbuf.Surface) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	dw, dh := p.dev.Size()
	w := min(s.Width(), int(dw))
	h := min(s.Height(), int(dh))
	pix := s.Pixels()
	for y := range h {
		for x := range w {
			c := pix[y*s.Width()+x]
			p.dev.SetPixel(int16(x), int16(y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	if err := p.dev.Display(); err != nil {
		return fmt.Errorf("present: display: %w", err)
	}
	return nil
}

func (p *displayerPresenter) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/pixbuf"
)

// screenPresenter draws frames onto a tcell screen owned by the caller.
type screenPresenter struct {
	mu     sync.Mutex
	screen tcell.Screen
	closed bool
}

func newScreen(opts Options) (Presenter, error) {
	if opts.Screen == nil {
		return nil, fmt.Errorf("%w: screen backend needs Screen", ErrMissingOption)
	}
	return &screenPresenter{screen: opts.Screen}, nil
}

// Present draws s from the top-left cell, cropped to the screen, and shows it.
func (p *screenPresenter) Present(s *pixbuf.Surface) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	cols, lines := p.screen.Size()
	for row := range min(rows(s), lines) {
		for x := range min(s.Width(), cols) {
			upper, lower, ok := cell(s, x, row)
			style := tcell.StyleDefault.Foreground(tcellColor(upper))
			if ok {
				style = style.Background(tcellColor(lower))
			}
			p.screen.SetContent(x, row, upperHalf, nil, style)
		}
	}
	p.screen.Show()
	return nil
}

func (p *screenPresenter) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

func tcellColor(c pixbuf.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

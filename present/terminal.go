// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/pixbuf"
	"github.com/muesli/termenv"
)

// terminalPresenter writes frames as colored half blocks.
type terminalPresenter struct {
	mu     sync.Mutex
	out    *termenv.Output
	home   bool
	frames int
	closed bool
}

func newTerminal(opts Options) (Presenter, error) {
	if opts.Writer == nil {
		return nil, fmt.Errorf("%w: terminal backend needs Writer", ErrMissingOption)
	}
	return &terminalPresenter{
		out:  termenv.NewOutput(opts.Writer, termenv.WithProfile(opts.Profile)),
		home: opts.Home,
	}, nil
}

func (p *terminalPresenter) Present(s *pixbuf.Surface) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	w := bufio.NewWriter(p.out)
	if p.home {
		if p.frames == 0 {
			fmt.Fprint(w, termenv.CSI+termenv.HideCursorSeq)
		}
		fmt.Fprintf(w, termenv.CSI+termenv.CursorPositionSeq, 1, 1)
	}
	for row := range rows(s) {
		if _, err := w.WriteString(renderRow(p.out, s, row)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("present: terminal write: %w", err)
	}
	p.frames++
	return nil
}

// Close restores the cursor if frames were drawn in place.
func (p *terminalPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	if p.home && p.frames > 0 {
		_, err := fmt.Fprint(p.out, termenv.CSI+termenv.ShowCursorSeq)
		return err
	}
	return nil
}

// renderRow renders one text line of s.
func renderRow(out *termenv.Output, s *pixbuf.Surface, row int) string {
	var b strings.Builder
	for x := range s.Width() {
		upper, lower, ok := cell(s, x, row)
		style := out.String(string(upperHalf)).Foreground(out.Color(hexOf(upper)))
		if ok {
			style = style.Background(out.Color(hexOf(lower)))
		}
		b.WriteString(style.String())
	}
	return b.String()
}

func hexOf(c pixbuf.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

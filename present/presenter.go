// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/pixbuf"
	"github.com/muesli/termenv"
	"tinygo.org/x/drivers"
)

// Presenter shows or stores finished frames.
type Presenter interface {
	// Present outputs the current contents of s.
	Present(s *pixbuf.Surface) error

	// Close releases the presenter. It does not close resources passed in
	// through Options.
	Close() error
}

// Options configures presenter creation. Each backend reads only the
// fields it needs.
type Options struct {
	// Path is the output file for png, bmp and ppm. A single integer verb
	// such as %d or %04d is replaced with the frame number.
	Path string

	// Scale upsamples file output by an integer factor. Values < 1 mean 1.
	Scale int

	// Writer receives terminal output.
	Writer io.Writer

	// Profile is the terminal color profile. The zero value is
	// termenv.TrueColor.
	Profile termenv.Profile

	// Home moves the terminal cursor to the top-left corner before each
	// frame so that successive frames overwrite each other.
	Home bool

	// Screen is an initialized tcell screen for the screen backend.
	Screen tcell.Screen

	// Displayer is the device for the displayer backend.
	Displayer drivers.Displayer
}

func (o Options) scale() int {
	return max(o.Scale, 1)
}

// Errors.
var (
	// ErrMissingOption is returned by a factory when Options lacks the
	// field its backend needs.
	ErrMissingOption = errors.New("present: missing option")

	// ErrFormatMismatch is returned by a file backend when Path has the
	// extension of a different format.
	ErrFormatMismatch = errors.New("present: path extension does not match format")

	// ErrClosed is returned by Present after Close.
	ErrClosed = errors.New("present: presenter closed")
)

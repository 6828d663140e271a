// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/pixbuf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

type format int

const (
	formatPNG format = iota
	formatBMP
	formatPPM
)

var formatNames = [...]string{
	formatPNG: "png",
	formatBMP: "bmp",
	formatPPM: "ppm",
}

func (f format) String() string { return formatNames[f] }

// formatFromExt returns the format for a file extension.
func formatFromExt(path string) (format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return formatPNG, true
	case ".bmp":
		return formatBMP, true
	case ".ppm", ".pnm":
		return formatPPM, true
	}
	return 0, false
}

// filePresenter writes each frame to an image file.
type filePresenter struct {
	mu     sync.Mutex
	format format
	path   string
	scale  int
	frame  int
	closed bool
}

func fileFactory(f format) Factory {
	return func(opts Options) (Presenter, error) {
		if opts.Path == "" {
			return nil, fmt.Errorf("%w: %s backend needs Path", ErrMissingOption, f)
		}
		if ext, ok := formatFromExt(opts.Path); ok && ext != f {
			return nil, fmt.Errorf("%w: %s backend, path %q", ErrFormatMismatch, f, opts.Path)
		}
		return &filePresenter{format: f, path: opts.Path, scale: opts.scale()}, nil
	}
}

// Present writes s to the next file name.
func (p *filePresenter) Present(s *pixbuf.Surface) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	path := framePath(p.path, p.frame)
	src := upscale(s, p.scale)

	var err error
	switch p.format {
	case formatPNG:
		err = src.SavePNG(path)
	case formatBMP:
		err = pixbuf.SaveFile(path, "bmp", func(w io.Writer) error {
			return bmp.Encode(w, src)
		})
	default:
		err = src.SavePPM(path)
	}
	if err != nil {
		return err
	}

	pixbuf.Logger().Debug("present: frame written", "format", p.format.String(), "path", path)
	p.frame++
	return nil
}

func (p *filePresenter) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

// framePath expands the frame counter in pattern. A pattern is a
// template when it holds exactly one integer verb (%d, %4d, %04d); in a
// template %% stands for a literal percent sign. Any other path is
// returned unchanged, so each frame overwrites the last.
func framePath(pattern string, frame int) string {
	var (
		b     strings.Builder
		verbs int
	)
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			b.WriteByte(pattern[i])
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '%' {
			b.WriteByte('%')
			i++
			continue
		}
		j := i + 1
		for j < len(pattern) && pattern[j] >= '0' && pattern[j] <= '9' {
			j++
		}
		if j >= len(pattern) || pattern[j] != 'd' {
			return pattern
		}
		verbs++
		b.WriteString(fmt.Sprintf(pattern[i:j+1], frame))
		i = j
	}
	if verbs != 1 {
		return pattern
	}
	return b.String()
}

// upscale returns s enlarged by an integer factor with nearest-neighbour
// sampling. A factor of 1 returns s itself.
func upscale(s *pixbuf.Surface, k int) *pixbuf.Surface {
	if k <= 1 {
		return s
	}
	dst, err := pixbuf.NewSurface(s.Width()*k, s.Height()*k,
		pixbuf.WithClearColor(s.ClearColor()))
	if err != nil {
		pixbuf.Logger().Warn("present: scale skipped", "scale", k, "err", err)
		return s
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), s, s.Bounds(), draw.Src, nil)
	return dst
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/pixbuf"
)

// stubPresenter counts presented frames.
type stubPresenter struct {
	name   string
	frames int
}

func (p *stubPresenter) Present(*pixbuf.Surface) error { p.frames++; return nil }
func (p *stubPresenter) Close() error                  { return nil }

func stubFactory(name string) Factory {
	return func(Options) (Presenter, error) {
		return &stubPresenter{name: name}, nil
	}
}

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, stubFactory("test"), nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" || entry.Priority != 50 {
		t.Errorf("entry = %s/%d, want test/50", entry.Name, entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, stubFactory("temp"), nil)
	r.Unregister("temp")

	if _, ok := r.Get("temp"); ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryListOrder tests priority ordering with name tie-break.
func TestRegistryListOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)
	r.Register("b", 50, stubFactory("b"), nil)
	r.Register("a", 50, stubFactory("a"), nil)

	want := []string{"high", "a", "b", "low"}
	got := r.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

// TestRegistryAvailable tests filtering by availability.
func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register("available", 100, stubFactory("available"), func() bool { return true })
	r.Register("unavailable", 200, stubFactory("unavailable"), func() bool { return false })

	available := r.Available()
	if len(available) != 1 || available[0] != "available" {
		t.Fatalf("Available() = %v, want [available]", available)
	}

	_, err := r.NewPresenterByName("unavailable", Options{})
	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("error = %v, want BackendUnavailableError", err)
	}
}

// TestRegistryFallthrough tests that rejected options fall to the next backend.
func TestRegistryFallthrough(t *testing.T) {
	r := NewRegistry()
	r.Register("picky", 100, func(Options) (Presenter, error) {
		return nil, ErrMissingOption
	}, nil)
	r.Register("broken", 90, func(Options) (Presenter, error) {
		return nil, errors.New("device gone")
	}, nil)
	r.Register("easy", 10, stubFactory("easy"), nil)

	p, err := r.NewPresenter(Options{})
	if err != nil {
		t.Fatalf("NewPresenter() error = %v", err)
	}
	if got := p.(*stubPresenter).name; got != "easy" {
		t.Errorf("selected %s, want easy", got)
	}
}

// TestRegistryLogLevels checks that selection logs at Info and fallback at Warn.
func TestRegistryLogLevels(t *testing.T) {
	orig := pixbuf.Logger()
	t.Cleanup(func() { pixbuf.SetLogger(orig) })

	var buf bytes.Buffer
	pixbuf.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := NewRegistry()
	r.Register("broken", 90, func(Options) (Presenter, error) {
		return nil, errors.New("device gone")
	}, nil)
	r.Register("easy", 10, stubFactory("easy"), nil)

	if _, err := r.NewPresenter(Options{}); err != nil {
		t.Fatalf("NewPresenter() error = %v", err)
	}

	var sawWarn, sawInfo bool
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.Contains(line, "falling back"):
			sawWarn = strings.Contains(line, "level=WARN") && strings.Contains(line, "name=broken")
		case strings.Contains(line, "selected backend"):
			sawInfo = strings.Contains(line, "level=INFO") && strings.Contains(line, "name=easy")
		}
	}
	if !sawWarn {
		t.Errorf("missing WARN fallback record for broken, got: %s", buf.String())
	}
	if !sawInfo {
		t.Errorf("missing INFO selection record for easy, got: %s", buf.String())
	}
}

// TestRegistryAllFail tests that the last factory error is reported.
func TestRegistryAllFail(t *testing.T) {
	r := NewRegistry()
	r.Register("only", 10, func(Options) (Presenter, error) {
		return nil, ErrMissingOption
	}, nil)

	if _, err := r.NewPresenter(Options{}); !errors.Is(err, ErrMissingOption) {
		t.Errorf("error = %v, want ErrMissingOption", err)
	}
}

// TestRegistryEmpty tests the no-backend error.
func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry()

	if _, err := r.NewPresenter(Options{}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("error = %v, want ErrNoBackendAvailable", err)
	}

	_, err := r.NewPresenterByName("nope", Options{})
	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "nope" {
		t.Errorf("error = %v, want BackendNotFoundError(nope)", err)
	}
}

// TestRegistryGetReturnsCopy tests that Get does not expose internal state.
func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register("x", 5, stubFactory("x"), nil)

	e, _ := r.Get("x")
	e.Priority = 999

	e2, _ := r.Get("x")
	if e2.Priority != 5 {
		t.Errorf("Priority = %d after modifying copy, want 5", e2.Priority)
	}
}

// TestBuiltinBackends tests the global registry contents.
func TestBuiltinBackends(t *testing.T) {
	want := []string{"screen", "displayer", "terminal", "png", "bmp", "ppm"}
	got := List()
	if len(got) < len(want) {
		t.Fatalf("List() = %v, want at least %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

// TestNewPresenterPicksFormatByExtension tests auto-selection for files.
func TestNewPresenterPicksFormatByExtension(t *testing.T) {
	tests := []struct {
		path string
		want format
	}{
		{"a.png", formatPNG},
		{"a.BMP", formatBMP},
		{"frame%03d.ppm", formatPPM},
		{"noext", formatPNG},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := NewPresenter(Options{Path: tt.path})
			if err != nil {
				t.Fatalf("NewPresenter() error = %v", err)
			}
			fp, ok := p.(*filePresenter)
			if !ok {
				t.Fatalf("got %T, want *filePresenter", p)
			}
			if fp.format != tt.want {
				t.Errorf("format = %s, want %s", fp.format, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (&BackendNotFoundError{Name: "x"}).Error(); got != "present: backend not found: x" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&BackendUnavailableError{Name: "y"}).Error(); got != "present: backend unavailable: y" {
		t.Errorf("Error() = %q", got)
	}
}

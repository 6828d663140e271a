// Command pixwin opens a desktop window showing the glyph set. Clicking a
// glyph plays a random animation on it; Escape closes the window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/anim"
	"github.com/gogpu/pixbuf/glyph"
)

func main() {
	var (
		size    = flag.Int("size", 32, "glyph size in pixels")
		cols    = flag.Int("cols", 4, "glyphs per row")
		zoom    = flag.Int("zoom", 3, "window pixels per surface pixel")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		pixbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, g, err := newScene(max(*size, 4), max(*cols, 1))
	if err != nil {
		log.Fatal(err)
	}
	if err := runWindow(s, g, max(*zoom, 1)); err != nil {
		log.Fatal(err)
	}
}

// newScene lays the glyphs out on a grid of square cells twice the glyph
// size.
func newScene(size, cols int) (*pixbuf.Surface, *anim.Group, error) {
	names := glyph.Names()
	cell := size * 2
	rows := (len(names) + cols - 1) / cols

	s, err := pixbuf.NewSurface(cols*cell, rows*cell, pixbuf.WithClearColor(pixbuf.Paper))
	if err != nil {
		return nil, nil, err
	}

	g := &anim.Group{}
	for i, name := range names {
		a, err := anim.New(nil, name, (i%cols)*cell+cell/2, (i/cols)*cell+cell/2, size, anim.DefaultConfig(anim.Bounce))
		if err != nil {
			return nil, nil, err
		}
		g.Add(a)
	}
	return s, g, nil
}

// play starts a random animation on a unless one is already running.
func play(a *anim.Animation) {
	if a.State().Active() {
		return
	}
	kinds := anim.Kinds()
	if err := a.SetConfig(anim.DefaultConfig(kinds[rand.IntN(len(kinds))])); err != nil {
		log.Print(err)
		return
	}
	if err := a.Start(); err != nil {
		log.Print(err)
	}
}

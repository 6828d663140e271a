// Command pixdemo renders the built-in glyphs and their animations to
// image files or the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/anim"
	"github.com/gogpu/pixbuf/glyph"
	"github.com/gogpu/pixbuf/present"
	"github.com/gogpu/pixbuf/recording"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	var (
		size     = flag.Int("size", 32, "glyph size in pixels")
		cols     = flag.Int("cols", 4, "glyphs per row")
		output   = flag.String("output", "demo.ppm", "output file; %d numbers animation frames")
		backend  = flag.String("backend", "", "presenter backend (default: chosen from -output)")
		scale    = flag.Int("scale", 1, "file output scale factor")
		kind     = flag.String("anim", "", "animation kind to render (bounce, pulse, spin, wiggle)")
		fps      = flag.Int("fps", 30, "animation frames per second")
		angle    = flag.Float64("angle", 0, "rotate the gallery by this many degrees")
		terminal = flag.Bool("terminal", false, "draw to the terminal instead of a file")
		list     = flag.Bool("list", false, "list glyphs and animations, then exit")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		pixbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *list {
		printList()
		return
	}

	names := glyph.Names()
	cell := *size * 2
	rowsN := (len(names) + *cols - 1) / *cols
	s, err := pixbuf.NewSurface(*cols*cell, rowsN*cell, pixbuf.WithClearColor(pixbuf.Paper))
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	p, err := newPresenter(*backend, *output, *scale, *terminal)
	if err != nil {
		log.Fatalf("Failed to open presenter: %v", err)
	}
	defer p.Close()

	if *kind == "" {
		if err := drawGallery(s, names, *cols, cell, *angle*math.Pi/180); err != nil {
			log.Fatalf("Failed to draw: %v", err)
		}
		if err := p.Present(s); err != nil {
			log.Fatalf("Failed to present: %v", err)
		}
		if !*terminal {
			log.Printf("Gallery saved to %s (%dx%d)\n", *output, s.Width(), s.Height())
		}
		return
	}

	k, err := anim.ParseKind(*kind)
	if err != nil {
		log.Fatal(err)
	}
	frames, err := animate(s, p, names, *cols, cell, anim.DefaultConfig(k), *fps)
	if err != nil {
		log.Fatalf("Failed to animate: %v", err)
	}
	if !*terminal {
		log.Printf("%d %s frames saved to %s\n", frames, k, *output)
	}
}

func newPresenter(name, output string, scale int, terminal bool) (present.Presenter, error) {
	opts := present.Options{Path: output, Scale: scale}
	if terminal {
		opts = present.Options{
			Writer:  os.Stdout,
			Profile: termenv.ColorProfile(),
			Home:    true,
		}
		if name == "" {
			name = "terminal"
		}
	}
	if name != "" {
		return present.NewPresenterByName(name, opts)
	}
	return present.NewPresenter(opts)
}

// cellCenter returns the centre of grid cell i.
func cellCenter(i, cols, cell int) (int, int) {
	return (i%cols)*cell + cell/2, (i/cols)*cell + cell/2
}

// drawGallery records every glyph once and plays the recording back onto s.
func drawGallery(s *pixbuf.Surface, names []string, cols, cell int, angle float64) error {
	rec := recording.NewRecorderFor(s)
	for i, name := range names {
		x, y := cellCenter(i, cols, cell)
		p := glyph.At(x, y, cell/2)
		p.Angle = angle
		if err := glyph.DrawPlacement(rec, name, p); err != nil {
			return err
		}
	}
	r := rec.FinishRecording()
	pixbuf.Logger().Info("gallery recorded",
		"glyphs", len(names), "commands", r.Len(), "fills", r.Count(recording.CmdFillCircle)+r.Count(recording.CmdFillRect))
	r.Playback(s)
	return nil
}

// animate runs one animation per glyph to completion and presents each
// frame. It returns the number of frames presented.
func animate(s *pixbuf.Surface, p present.Presenter, names []string, cols, cell int, cfg anim.Config, fps int) (int, error) {
	var g anim.Group
	for i, name := range names {
		x, y := cellCenter(i, cols, cell)
		a, err := anim.New(nil, name, x, y, cell/2, cfg)
		if err != nil {
			return 0, err
		}
		if err := a.Start(); err != nil {
			return 0, err
		}
		g.Add(a)
	}

	dt := time.Second / time.Duration(max(fps, 1))
	frames := 0
	for {
		if err := g.Draw(s); err != nil {
			return frames, err
		}
		if err := p.Present(s); err != nil {
			return frames, err
		}
		frames++
		if g.Active() == 0 {
			return frames, nil
		}
		g.Advance(dt)
	}
}

func printList() {
	title := cases.Title(language.English)

	fmt.Printf("pixbuf %s\n\n", pixbuf.Version)
	fmt.Println("Glyphs:")
	for _, name := range glyph.Names() {
		fmt.Printf("  %-10s %s\n", name, title.String(name))
	}

	fmt.Println("Animations:")
	for _, k := range anim.Kinds() {
		cfg := anim.DefaultConfig(k)
		fmt.Printf("  %-10s %-8s %v\n", k, title.String(k.String()), cfg.Duration)
	}

	fmt.Println("Presenters:")
	fmt.Printf("  %s\n", strings.Join(present.List(), ", "))
}

// Command pixterm shows the glyph set in the terminal. Clicking a glyph
// plays a random animation on it.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/anim"
	"github.com/gogpu/pixbuf/glyph"
	"github.com/gogpu/pixbuf/present"
	"github.com/mattn/go-runewidth"
)

var styleStatus = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2c2c2c)).Background(tcell.NewHexColor(0xd1cfcb))

type app struct {
	screen  tcell.Screen
	out     present.Presenter
	size    int
	surface *pixbuf.Surface
	group   *anim.Group
	status  string
	quit    bool
}

func main() {
	var (
		size    = flag.Int("size", 16, "glyph size in pixels")
		fps     = flag.Int("fps", 30, "frames per second")
		logFile = flag.String("log", "", "write debug log to this file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		pixbuf.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	a := &app{screen: screen, size: max(*size, 4), status: "click a glyph, q to quit"}
	err = a.run(time.Second / time.Duration(max(*fps, 1)))
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

func (a *app) run(frame time.Duration) error {
	out, err := present.NewPresenterByName("screen", present.Options{Screen: a.screen})
	if err != nil {
		return err
	}
	defer out.Close()
	a.out = out

	if err := a.layout(); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()

	for !a.quit {
		select {
		case ev := <-events:
			if err := a.handle(ev); err != nil {
				return err
			}
		case now := <-ticker.C:
			a.group.Advance(now.Sub(last))
			last = now
			if err := a.draw(); err != nil {
				return err
			}
		}
	}
	return nil
}

// layout sizes the surface to the screen, keeping the bottom line for
// the status bar, and lays the glyphs out on a grid.
func (a *app) layout() error {
	cols, lines := a.screen.Size()
	w, h := max(cols, 1), max((lines-1)*2, 1)

	s, err := pixbuf.NewSurface(w, h, pixbuf.WithClearColor(pixbuf.Paper))
	if err != nil {
		return err
	}

	cell := a.size * 2
	perRow := max(w/cell, 1)
	g := &anim.Group{}
	for i, name := range glyph.Names() {
		x := (i%perRow)*cell + cell/2
		y := (i/perRow)*cell + cell/2
		an, err := anim.New(nil, name, x, y, a.size, anim.DefaultConfig(anim.Bounce))
		if err != nil {
			return err
		}
		g.Add(an)
	}

	a.surface, a.group = s, g
	a.screen.Clear()
	return a.draw()
}

func (a *app) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return a.layout()

	case *tcell.EventKey:
		switch ev.Name() {
		case "Ctrl+C", "Esc", "Rune[q]":
			a.quit = true
		case "Rune[a]":
			for _, an := range a.group.Animations() {
				a.play(an)
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return nil
		}
		x, y := ev.Position()
		// Each text line shows two pixel rows.
		if an := a.group.At(pixbuf.Pt(x, y*2)); an != nil {
			a.play(an)
		} else if an := a.group.At(pixbuf.Pt(x, y*2+1)); an != nil {
			a.play(an)
		}
	}
	return nil
}

// play starts a random animation on an unless one is already running.
func (a *app) play(an *anim.Animation) {
	if an.State().Active() {
		return
	}
	kinds := anim.Kinds()
	k := kinds[rand.IntN(len(kinds))]
	if err := an.SetConfig(anim.DefaultConfig(k)); err != nil {
		a.status = err.Error()
		return
	}
	if err := an.Start(); err != nil {
		a.status = err.Error()
		return
	}
	a.status = fmt.Sprintf("%s: %s", an.Glyph(), k)
}

func (a *app) draw() error {
	if err := a.group.Draw(a.surface); err != nil {
		return err
	}
	a.drawStatus()
	return a.out.Present(a.surface)
}

// drawStatus writes the status text on the last screen line, truncated
// to the screen width.
func (a *app) drawStatus() {
	cols, lines := a.screen.Size()
	if lines < 1 {
		return
	}
	text := fmt.Sprintf(" %s | active %d/%d", a.status, a.group.Active(), a.group.Len())
	text = runewidth.Truncate(text, cols, "…")

	x := 0
	for _, r := range text {
		a.screen.SetContent(x, lines-1, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	for ; x < cols; x++ {
		a.screen.SetContent(x, lines-1, ' ', nil, styleStatus)
	}
}

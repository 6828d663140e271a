//go:build cgo

package main

import (
	"time"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/anim"
	"github.com/hajimehoshi/ebiten/v2"
)

const tps = 60

// runWindow shows s in a window and blocks until it closes.
func runWindow(s *pixbuf.Surface, g *anim.Group, zoom int) error {
	ebiten.SetWindowTitle("pixwin")
	ebiten.SetWindowSize(s.Width()*zoom, s.Height()*zoom)
	ebiten.SetTPS(tps)

	return ebiten.RunGame(&game{surface: s, group: g})
}

type game struct {
	surface *pixbuf.Surface
	group   *anim.Group
	img     *ebiten.Image
	rgba    []byte
	pressed bool
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if down && !g.pressed {
		x, y := ebiten.CursorPosition()
		if a := g.group.At(pixbuf.Pt(x, y)); a != nil {
			play(a)
		}
	}
	g.pressed = down

	g.group.Advance(time.Second / tps)
	return g.group.Draw(g.surface)
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.surface.Width(), g.surface.Height()
	if g.img == nil {
		g.img = ebiten.NewImage(w, h)
		g.rgba = make([]byte, w*h*4)
	}

	for i, c := range g.surface.Pixels() {
		j := i * 4
		g.rgba[j+0] = c.R
		g.rgba[j+1] = c.G
		g.rgba[j+2] = c.B
		g.rgba[j+3] = 0xFF
	}

	g.img.WritePixels(g.rgba)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.Width(), g.surface.Height()
}

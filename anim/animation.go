package anim

import (
	"fmt"
	"time"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/glyph"
)

// Animation animates one glyph placement.
type Animation struct {
	composer *glyph.Composer
	name     string
	rest     glyph.Placement
	cfg      Config
	state    State
}

// New creates an idle animation of the glyph name centred on (x, y).
// It fails with glyph.ErrUnknownGlyph when the composer does not know the
// glyph and with ErrInvalidDuration when cfg cannot be started.
func New(c *glyph.Composer, name string, x, y, size int, cfg Config) (*Animation, error) {
	if c == nil {
		c = glyph.Default()
	}
	if _, ok := c.Lookup(name); !ok {
		return nil, fmt.Errorf("%w: %q", glyph.ErrUnknownGlyph, name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Animation{
		composer: c,
		name:     name,
		rest:     glyph.At(x, y, size),
		cfg:      cfg,
	}, nil
}

// Glyph returns the animated glyph name.
func (a *Animation) Glyph() string { return a.name }

// Config returns the animation config.
func (a *Animation) Config() Config { return a.cfg }

// SetConfig replaces the config. A running animation keeps its progress
// but is retimed on the next Start.
func (a *Animation) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// Start runs the animation from the beginning.
func (a *Animation) Start() error {
	if err := a.state.Start(a.cfg.Duration); err != nil {
		return err
	}
	pixbuf.Logger().Debug("anim: started",
		"glyph", a.name, "kind", a.cfg.Kind, "duration", a.cfg.Duration)
	return nil
}

// Advance moves the animation forward by dt.
func (a *Animation) Advance(dt time.Duration) {
	if a.state.Advance(dt) {
		pixbuf.Logger().Debug("anim: completed", "glyph", a.name, "kind", a.cfg.Kind)
	}
}

// Stop cancels the animation, returning the glyph to rest.
func (a *Animation) Stop() {
	a.state.Stop()
}

// State returns a copy of the progress state.
func (a *Animation) State() State { return a.state }

// Transform returns the transform for the current progress.
func (a *Animation) Transform() Transform {
	return a.cfg.Transform(a.state.T(), a.rest.Size)
}

// Rest returns the placement of the glyph at rest.
func (a *Animation) Rest() glyph.Placement { return a.rest }

// Placement returns where the glyph is drawn this frame.
func (a *Animation) Placement() glyph.Placement {
	return a.Transform().Apply(a.rest)
}

// Footprint returns the pixels this frame's glyph can touch on a canvas
// with the given stroke width.
func (a *Animation) Footprint(strokeWidth int) pixbuf.Rect {
	r, err := a.composer.Bounds(a.name, a.Placement(), strokeWidth)
	if err != nil {
		return pixbuf.Rect{}
	}
	return r
}

// Draw draws the current frame of the glyph onto c.
func (a *Animation) Draw(c pixbuf.Canvas) error {
	return a.composer.DrawPlacement(c, a.name, a.Placement())
}

// Group animates several glyphs on one canvas and erases their previous
// frames before drawing the next.
type Group struct {
	items []*groupItem
}

type groupItem struct {
	anim *Animation
	last pixbuf.Rect
}

// Add appends a to the group. Later animations draw on top.
func (g *Group) Add(a *Animation) {
	g.items = append(g.items, &groupItem{anim: a})
}

// Len returns the number of animations in the group.
func (g *Group) Len() int { return len(g.items) }

// Animations returns the animations in drawing order.
func (g *Group) Animations() []*Animation {
	out := make([]*Animation, len(g.items))
	for i, it := range g.items {
		out[i] = it.anim
	}
	return out
}

// Advance moves every animation forward by dt.
func (g *Group) Advance(dt time.Duration) {
	for _, it := range g.items {
		it.anim.Advance(dt)
	}
}

// Active returns how many animations are running.
func (g *Group) Active() int {
	n := 0
	for _, it := range g.items {
		if it.anim.State().Active() {
			n++
		}
	}
	return n
}

// At returns the topmost animation whose resting glyph covers p, or nil.
func (g *Group) At(p pixbuf.Point) *Animation {
	for i := len(g.items) - 1; i >= 0; i-- {
		a := g.items[i].anim
		r, err := a.composer.Bounds(a.name, a.rest, 1)
		if err == nil && r.Contains(p) {
			return a
		}
	}
	return nil
}

// Draw erases what the group drew last time and draws every animation's
// current frame. Erasing paints the canvas clear color.
func (g *Group) Draw(c pixbuf.Canvas) error {
	for _, it := range g.items {
		clearRect(c, it.last)
	}
	for _, it := range g.items {
		if err := it.anim.Draw(c); err != nil {
			return err
		}
		it.last = it.anim.Footprint(c.StrokeWidth())
	}
	return nil
}

// clearRect fills r with the clear color, leaving the style unchanged.
func clearRect(c pixbuf.Canvas, r pixbuf.Rect) {
	if r.Empty() {
		return
	}
	if s, ok := c.(*pixbuf.Surface); ok {
		s.ClearRect(r)
		return
	}
	fill := c.FillColor()
	c.SetFillColor(c.ClearColor())
	c.FillRect(r.X, r.Y, r.W, r.H)
	c.SetFillColor(fill)
}

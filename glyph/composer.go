// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/internal/cache"
)

// Errors returned by Composer.
var (
	// ErrUnknownGlyph is returned when drawing or measuring a name that
	// was never registered.
	ErrUnknownGlyph = errors.New("glyph: unknown glyph")

	// ErrDuplicateGlyph is returned by Register for a name already in use.
	ErrDuplicateGlyph = errors.New("glyph: glyph already registered")

	// ErrEmptyScript is returned by Register for a script with no ops.
	ErrEmptyScript = errors.New("glyph: empty script")

	// ErrInvalidName is returned by Register for an empty name.
	ErrInvalidName = errors.New("glyph: invalid name")
)

// DefaultCacheSize is the number of resolved (name, size, angle) entries a
// Composer keeps unless WithCacheSize says otherwise.
const DefaultCacheSize = 256

// Option configures a Composer.
type Option func(*composerOptions)

type composerOptions struct {
	cacheSize int
	builtins  bool
}

// WithCacheSize sets how many resolved glyphs are cached. A value <= 0
// disables eviction.
func WithCacheSize(n int) Option {
	return func(o *composerOptions) {
		o.cacheSize = n
	}
}

// WithoutBuiltins creates a Composer with no glyphs registered.
func WithoutBuiltins() Option {
	return func(o *composerOptions) {
		o.builtins = false
	}
}

type cacheKey struct {
	name  string
	size  int
	angle float64
}

// Composer draws registered glyph scripts onto canvases.
//
// Composer is safe for concurrent use.
type Composer struct {
	mu      sync.RWMutex
	scripts map[string]Script

	resolved *cache.Cache[cacheKey, []resolved]
}

// NewComposer creates a Composer holding the built-in glyphs.
func NewComposer(opts ...Option) *Composer {
	o := composerOptions{cacheSize: DefaultCacheSize, builtins: true}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Composer{
		scripts:  make(map[string]Script),
		resolved: cache.New[cacheKey, []resolved](o.cacheSize),
	}
	if o.builtins {
		for name, script := range builtins {
			c.scripts[name] = script
		}
	}
	return c
}

var defaultComposer = sync.OnceValue(func() *Composer { return NewComposer() })

// Default returns the shared Composer used by the package-level functions.
func Default() *Composer {
	return defaultComposer()
}

// Register adds a glyph under name. The script is copied.
func (c *Composer) Register(name string, script Script) error {
	if name == "" {
		return ErrInvalidName
	}
	if len(script) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyScript, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.scripts[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateGlyph, name)
	}
	c.scripts[name] = slices.Clone(script)
	return nil
}

// Lookup returns a copy of the script registered under name.
func (c *Composer) Lookup(name string) (Script, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.scripts[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

// Names returns the registered glyph names in sorted order.
func (c *Composer) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.scripts))
}

// CacheStats returns statistics of the resolved-glyph cache.
func (c *Composer) CacheStats() cache.Stats {
	return c.resolved.Stats()
}

// Draw draws the glyph name centred on (x, y), size pixels wide.
func (c *Composer) Draw(canvas pixbuf.Canvas, name string, x, y, size int) error {
	return c.DrawPlacement(canvas, name, At(x, y, size))
}

// DrawPlacement draws the glyph name at p. The canvas style is the same
// after the call as before it.
func (c *Composer) DrawPlacement(canvas pixbuf.Canvas, name string, p Placement) error {
	ops, err := c.ops(name, p)
	if err != nil {
		return err
	}
	for _, op := range ops {
		op.draw(canvas, p.X, p.Y)
	}
	return nil
}

// Bounds returns the rectangle of pixels drawing the glyph at p can
// touch on a canvas whose stroke width is strokeWidth (values below 1
// mean 1). The rectangle is empty when p.Size <= 0.
func (c *Composer) Bounds(name string, p Placement, strokeWidth int) (pixbuf.Rect, error) {
	ops, err := c.ops(name, p)
	if err != nil {
		return pixbuf.Rect{}, err
	}
	var r pixbuf.Rect
	for _, op := range ops {
		r = r.Union(op.bounds(strokeWidth))
	}
	if r.Empty() {
		return pixbuf.Rect{}, nil
	}
	return r.Offset(p.X, p.Y), nil
}

// ops returns the resolved ops for name at p's size and angle.
func (c *Composer) ops(name string, p Placement) ([]resolved, error) {
	c.mu.RLock()
	script, ok := c.scripts[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGlyph, name)
	}
	if p.Size <= 0 {
		return nil, nil
	}

	key := cacheKey{name: name, size: p.Size, angle: normalizeAngle(p.Angle)}
	return c.resolved.GetOrCreate(key, func() []resolved {
		pixbuf.Logger().Debug("glyph: resolving", "name", name, "size", key.size, "angle", key.angle)
		return resolve(script, key.size, key.angle)
	}), nil
}

// Draw draws a glyph with the default Composer.
func Draw(canvas pixbuf.Canvas, name string, x, y, size int) error {
	return Default().Draw(canvas, name, x, y, size)
}

// DrawPlacement draws a glyph with the default Composer.
func DrawPlacement(canvas pixbuf.Canvas, name string, p Placement) error {
	return Default().DrawPlacement(canvas, name, p)
}

// Names returns the glyph names known to the default Composer.
func Names() []string {
	return Default().Names()
}

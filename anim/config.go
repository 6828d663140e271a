package anim

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/glyph"
)

// BounceRatio is the bounce height, as a fraction of the glyph size, at
// Intensity 1.
const BounceRatio = 0.25

// wiggleAngle is the peak wiggle rotation at Intensity 1.
const wiggleAngle = 10 * math.Pi / 180

// Config describes one kind of animation.
type Config struct {
	Kind     Kind
	Duration time.Duration
	// Intensity scales the effect: bounce height, pulse growth (0.2 peaks
	// at 120% size), wiggle angle. Spin ignores it.
	Intensity float64
}

// DefaultConfig returns the stock timing and intensity for kind.
func DefaultConfig(kind Kind) Config {
	switch kind {
	case Bounce:
		return Config{Kind: Bounce, Duration: 500 * time.Millisecond, Intensity: 1}
	case Pulse:
		return Config{Kind: Pulse, Duration: 600 * time.Millisecond, Intensity: 0.2}
	case Spin:
		return Config{Kind: Spin, Duration: 600 * time.Millisecond, Intensity: 1}
	case Wiggle:
		return Config{Kind: Wiggle, Duration: 500 * time.Millisecond, Intensity: 1}
	default:
		return Config{Kind: None, Duration: 500 * time.Millisecond, Intensity: 1}
	}
}

// Validate reports whether the config can be started.
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, c.Duration)
	}
	return nil
}

// Amplitude returns the bounce height in pixels for a glyph of the given
// size.
func (c Config) Amplitude(size int) float64 {
	return c.Intensity * float64(size) * BounceRatio
}

// Transform is the per-frame displacement of a glyph.
type Transform struct {
	// DY is the vertical offset in pixels; negative is up.
	DY float64
	// Scale multiplies the glyph size.
	Scale float64
	// Angle rotates the glyph about its centre, in radians.
	Angle float64
}

// Rest is the identity transform.
var Rest = Transform{Scale: 1}

// Apply returns p moved, scaled and rotated by t.
func (t Transform) Apply(p glyph.Placement) glyph.Placement {
	p.Y += pixbuf.Round(t.DY)
	p.Size = pixbuf.Round(float64(p.Size) * t.Scale)
	p.Angle += t.Angle
	return p
}

// Transform maps normalized progress t in [0, 1] to the transform of a
// glyph of the given size. Both ends of the run are the rest pose.
func (c Config) Transform(t float64, size int) Transform {
	if t <= 0 || t >= 1 {
		return Rest
	}
	tr := Rest
	switch c.Kind {
	case Bounce:
		tr.DY = -c.Amplitude(size) * math.Sin(math.Pi*t)
	case Pulse:
		tr.Scale = 1 + c.Intensity*math.Sin(math.Pi*t)
	case Spin:
		tr.Angle = 2 * math.Pi * t
	case Wiggle:
		tr.Angle = c.Intensity * wiggle(t)
	}
	return tr
}

// wiggle interpolates the keyframes 0, -peak (t=0.25), +peak (t=0.75), 0.
func wiggle(t float64) float64 {
	switch {
	case t <= 0.25:
		return -wiggleAngle * t / 0.25
	case t <= 0.75:
		return -wiggleAngle + 2*wiggleAngle*(t-0.25)/0.5
	default:
		return wiggleAngle * (1 - (t-0.75)/0.25)
	}
}

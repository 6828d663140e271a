// Package anim drives glyph animations from externally supplied time
// steps.
//
// A State is the bare progress machine: Start it with a duration, Advance
// it by whatever time elapsed since the last frame, and read T, the
// normalized progress in [0, 1]. It never sleeps or reads a clock.
//
// An Animation binds a State to a glyph placement and a Config. Each frame
// it maps T to a Transform (vertical offset, scale, rotation) and redraws
// the glyph through a glyph.Composer. Nothing is carried between frames
// except the State, so callers must clear the previous Footprint (or the
// whole canvas) before drawing the next frame. A Group does that for a
// set of animations sharing one canvas.
//
//	a, _ := anim.New(glyph.Default(), "smile", 32, 32, 32, anim.DefaultConfig(anim.Bounce))
//	a.Start()
//	for a.State().Active() {
//	    s.Clear()
//	    a.Draw(s)
//	    a.Advance(16 * time.Millisecond)
//	}
//
// Neither State nor Animation is safe for concurrent use.
package anim

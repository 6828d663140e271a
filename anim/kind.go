package anim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for an unrecognized name.
var ErrUnknownKind = errors.New("anim: unknown animation kind")

// Kind selects how progress maps to a transform.
type Kind uint8

const (
	// None leaves the glyph at rest.
	None Kind = iota
	// Bounce lifts the glyph up and back down.
	Bounce
	// Pulse grows the glyph and shrinks it back.
	Pulse
	// Spin turns the glyph one full revolution.
	Spin
	// Wiggle rocks the glyph left then right.
	Wiggle
)

var kindNames = [...]string{
	None:   "none",
	Bounce: "bounce",
	Pulse:  "pulse",
	Spin:   "spin",
	Wiggle: "wiggle",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the kind with the given name, ignoring case and
// surrounding space.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Kinds returns every kind that moves the glyph, in declaration order.
func Kinds() []Kind {
	return []Kind{Bounce, Pulse, Spin, Wiggle}
}

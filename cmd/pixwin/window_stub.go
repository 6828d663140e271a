//go:build !cgo

package main

import (
	"errors"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/anim"
)

func runWindow(_ *pixbuf.Surface, _ *anim.Group, _ int) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

// Package demo implements the wrap-around sprite simulation.
// A single rectangle moves with the arrow keys and reappears on the
// opposite edge when it leaves the viewport.
package demo

import (
	"github.com/vovakirdan/spritewrap/internal/core"
)

// Demo holds the simulation state. It is owned by the backend's loop
// and must not be shared across goroutines.
type Demo struct {
	player core.Rect
	config core.RuntimeConfig
	ticks  int
}

// New creates a demo with the player centered in the viewport.
func New(cfg core.RuntimeConfig) *Demo {
	d := &Demo{}
	d.Reset(cfg)
	return d
}

// Reset re-centers the player and clears the tick count.
func (d *Demo) Reset(cfg core.RuntimeConfig) {
	d.config = cfg
	d.player = cfg.Viewport.CenteredRect(cfg.PlayerW, cfg.PlayerH)
	d.ticks = 0
}

// Step advances the simulation by one tick and returns the new player rect.
func (d *Demo) Step(in core.InputFrame) core.Rect {
	d.ticks++
	d.player = Step(d.player, in, d.config.Speed, d.config.Viewport)
	return d.player
}

// Player returns the current player rect.
func (d *Demo) Player() core.Rect {
	return d.player
}

// Viewport returns the bounds the player wraps within.
func (d *Demo) Viewport() core.Viewport {
	return d.config.Viewport
}

// Ticks returns the number of steps since the last reset.
func (d *Demo) Ticks() int {
	return d.ticks
}

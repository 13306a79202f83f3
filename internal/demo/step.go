package demo

import "github.com/vovakirdan/spritewrap/internal/core"

// Velocity returns the per-tick displacement for the held keys.
// Vertical keys are applied first, then horizontal; each held key adds
// its own displacement, so opposing keys cancel on their axis.
func Velocity(in core.InputFrame, speed int) (dx, dy int) {
	if in.Has(core.ActionUp) {
		dy -= speed
	}
	if in.Has(core.ActionDown) {
		dy += speed
	}
	if in.Has(core.ActionLeft) {
		dx -= speed
	}
	if in.Has(core.ActionRight) {
		dx += speed
	}
	return dx, dy
}

// wrapAxis applies toroidal wrap-around to one coordinate.
func wrapAxis(pos, size, bound int) int {
	switch {
	case pos < -size:
		return pos + size + bound
	case pos > bound:
		return -size
	default:
		return pos
	}
}

// Wrap returns r with each axis wrapped independently: a rect fully past
// the low edge reappears past the high edge, and one past the high edge
// reappears just before the low edge.
func Wrap(r core.Rect, vp core.Viewport) core.Rect {
	r.X = wrapAxis(r.X, r.W, vp.W)
	r.Y = wrapAxis(r.Y, r.H, vp.H)
	return r
}

// Step moves r by the displacement of the held keys and wraps it into vp.
func Step(r core.Rect, in core.InputFrame, speed int, vp core.Viewport) core.Rect {
	dx, dy := Velocity(in, speed)
	return Wrap(r.Translate(dx, dy), vp)
}

// Package core provides fundamental types shared by the demo and its
// rendering backends. It has no external dependencies so the simulation
// stays pure and testable.
package core

// Rect represents an axis-aligned rectangle in viewport pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Viewport is the fixed drawable area the sprite moves in.
type Viewport struct {
	W, H int
}

// CenteredRect returns a w×h rectangle centered in the viewport.
func (v Viewport) CenteredRect(w, h int) Rect {
	return NewRect(v.W/2-w/2, v.H/2-h/2, w, h)
}

// Scale maps a viewport coordinate onto a target axis of n cells.
func Scale(val, from, n int) int {
	if from <= 0 {
		return 0
	}
	// Floor division so negative coordinates stay off-grid
	p := val * n
	if p < 0 && p%from != 0 {
		return p/from - 1
	}
	return p / from
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

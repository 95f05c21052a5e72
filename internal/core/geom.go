// Package core holds the small value types shared by the simulation and the
// terminal presenter: rectangles, input frames, the cell buffer and runtime
// settings. It does not import Bubble Tea.
package core

// Rect is an axis-aligned box in integer coordinates.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns X + W.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns Y + H.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Touches reports whether two rectangles overlap or share an edge.
// A rect ending at x=10 touches one starting at x=10.
func (r Rect) Touches(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

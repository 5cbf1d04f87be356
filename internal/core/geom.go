// Package core provides the host-independent building blocks shared by the
// game and the terminal platform: a colored cell buffer, geometry helpers and
// abstract input actions. It has no external dependencies so game logic can
// be tested without a terminal.
package core

import "math"

// Rect is an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Circle is a circle in continuous screen coordinates.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Contains reports whether the point lies within the circle, border included.
func (c Circle) Contains(px, py float64) bool {
	return Distance(px, py, c.X, c.Y) <= c.R
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
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

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

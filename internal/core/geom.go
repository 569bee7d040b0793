// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Box is an axis-aligned bounding box in world units, centered at (X, Y).
// The player and every obstacle carry one; collision detection runs on them.
type Box struct {
	X, Y float64 // Center position
	W, H float64 // Width and height
}

// NewBox creates a box centered at (x, y) with the given dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X - b.W/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y - b.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H/2
}

// Overlaps reports whether the two boxes overlap.
// All four half-plane tests use strict inequality, so boxes that merely
// touch at an edge do not count as overlapping.
func (b Box) Overlaps(other Box) bool {
	if b.Right() <= other.Left() || other.Right() <= b.Left() {
		return false
	}
	if b.Bottom() <= other.Top() || other.Bottom() <= b.Top() {
		return false
	}
	return true
}

// Rect represents a rectangle in screen cells, used for drawing.
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
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

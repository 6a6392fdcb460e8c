// Package core provides fundamental types and utilities for the game engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// X is the column and Y the row of the top-left corner.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the last column covered by the rectangle (inclusive).
func (r Rect) Right() int {
	return r.X + r.W - 1
}

// Bottom returns the last row covered by the rectangle (inclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H - 1
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Both axes are treated as closed intervals [start, end]; the boxes collide
// iff the row ranges and the column ranges both overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return overlaps(r.X, r.Right(), other.X, other.Right()) &&
		overlaps(r.Y, r.Bottom(), other.Y, other.Bottom())
}

func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart <= bEnd && bStart <= aEnd
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// BoundingBox is implemented by anything that takes part in collision checks:
// the ship, obstacles and projectiles.
type BoundingBox interface {
	Bounds() Rect
}

// Collide reports whether two bounding boxes overlap.
func Collide(a, b BoundingBox) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// Bounds lets a bare Rect act as a BoundingBox.
func (r Rect) Bounds() Rect {
	return r
}

// Clamp restricts a value to be within [min, max].
// When max < min the lower bound wins.
func Clamp(val, min, max int) int {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

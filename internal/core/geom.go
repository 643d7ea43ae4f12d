// Package core provides fundamental types and utilities for the handheld arcade.
// It has no external dependencies so game logic stays pure and testable.
package core

// Point is a pixel coordinate. Origin is the top-left corner of the panel.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect represents an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of pixels covered.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersect returns the overlapping area of two rectangles.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x0, y0 := Max(r.X, other.X), Max(r.Y, other.Y)
	x1, y1 := Min(r.Right(), other.Right()), Min(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both rectangles.
// An empty operand is ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0, y0 := Min(r.X, other.X), Min(r.Y, other.Y)
	x1, y1 := Max(r.Right(), other.Right()), Max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Subtract returns the parts of r not covered by other, as at most four
// non-overlapping rectangles (top and bottom bands, then left and right).
func (r Rect) Subtract(other Rect) []Rect {
	if r.Empty() {
		return nil
	}
	in := r.Intersect(other)
	if in.Empty() {
		return []Rect{r}
	}
	var out []Rect
	if in.Y > r.Y {
		out = append(out, Rect{X: r.X, Y: r.Y, W: r.W, H: in.Y - r.Y})
	}
	if in.Bottom() < r.Bottom() {
		out = append(out, Rect{X: r.X, Y: in.Bottom(), W: r.W, H: r.Bottom() - in.Bottom()})
	}
	if in.X > r.X {
		out = append(out, Rect{X: r.X, Y: in.Y, W: in.X - r.X, H: in.H})
	}
	if in.Right() < r.Right() {
		out = append(out, Rect{X: in.Right(), Y: in.Y, W: r.Right() - in.Right(), H: in.H})
	}
	return out
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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

// Mod returns x modulo m in the range [0, m). Used for wrap-around movement.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

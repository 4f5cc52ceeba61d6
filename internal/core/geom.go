// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used by overlays and boxes.
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

// Vec3 is a point or velocity in world space. Z is height.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Footprint is an axis-aligned rectangle on the horizontal (x, y) plane.
type Footprint struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether (x, y) lies inside the footprint, edges included.
func (f Footprint) Contains(x, y float64) bool {
	return x >= f.MinX && x <= f.MaxX && y >= f.MinY && y <= f.MaxY
}

// ClosestPoint clamps (x, y) onto the footprint.
func (f Footprint) ClosestPoint(x, y float64) (float64, float64) {
	return ClampF(x, f.MinX, f.MaxX), ClampF(y, f.MinY, f.MaxY)
}

// Dist2D returns the horizontal distance between two points.
func Dist2D(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// Normalize2D returns the unit vector of (dx, dy), or (0, 0) for a zero vector.
func Normalize2D(dx, dy float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return dx / l, dy / l
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

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Wrap01 folds v into [0, 1).
func Wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}

// Package core provides fundamental types and utilities shared by the tank
// battle engine and its presentation layer. It has no third-party dependencies
// so the simulation stays pure and testable.
package core

// Vec is a point or displacement in arena coordinates.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Box is an axis-aligned bounding box in arena coordinates.
// X, Y is the top-left corner; the box spans [X, X+W) x [Y, Y+H).
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt creates a box of the given size centered on c.
func BoxAt(c Vec, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// ContainedIn reports whether b lies fully inside bounds.
func (b Box) ContainedIn(bounds Box) bool {
	return b.X >= bounds.X && b.Y >= bounds.Y &&
		b.Right() <= bounds.Right() && b.Bottom() <= bounds.Bottom()
}

// ClampInside moves b the minimum distance needed to lie fully inside bounds.
// If b is larger than bounds on an axis it is aligned to the bounds' origin.
func (b Box) ClampInside(bounds Box) Box {
	b.X = ClampF(b.X, bounds.X, bounds.Right()-b.W)
	b.Y = ClampF(b.Y, bounds.Y, bounds.Bottom()-b.H)
	if b.W > bounds.W {
		b.X = bounds.X
	}
	if b.H > bounds.H {
		b.Y = bounds.Y
	}
	return b
}

// Rect is an integer rectangle in screen cells, used by the Screen buffer.
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

// Package core provides fundamental types and utilities for the game and its
// terminal shell. It contains no external dependencies (especially no Bubble
// Tea) to keep simulation logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
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

// Vec is a point or direction in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Box is an axis-aligned rectangle in world units (y grows upward).
// X, Y is the bottom-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y + b.H }

// Inset shrinks the box by the same margin on every side: frac of its
// shorter side, so long boxes lose no more than short ones.
// frac is clamped to [0, 0.5).
func (b Box) Inset(frac float64) Box {
	d := b.margin(frac)
	return Box{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
}

// margin returns the per-side amount Inset removes for frac.
func (b Box) margin(frac float64) float64 {
	return math.Min(b.W, b.H) * ClampF(frac, 0, 0.49)
}

// Overlaps reports whether two boxes share any interior area.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Top() && o.Y < b.Top()
}

// Corners returns the four corners counter-clockwise from bottom-left.
func (b Box) Corners() Polygon {
	return Polygon{
		{b.X, b.Y},
		{b.Right(), b.Y},
		{b.Right(), b.Top()},
		{b.X, b.Top()},
	}
}

// Polygon is a convex polygon given by its vertices in winding order.
type Polygon []Vec

// Translate returns the polygon moved by d.
func (p Polygon) Translate(d Vec) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// Rotate returns the polygon rotated by angle radians around the origin.
func (p Polygon) Rotate(angle float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Rotate(angle)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() Box {
	if len(p) == 0 {
		return Box{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, v := range p[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether pt lies inside the convex polygon.
// Works for either winding order.
func (p Polygon) Contains(pt Vec) bool {
	if len(p) < 3 {
		return false
	}
	sign := 0
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// Intersects reports whether two convex polygons overlap, using the
// separating axis theorem. Touching edges do not count as overlap.
func (p Polygon) Intersects(o Polygon) bool {
	if len(p) < 3 || len(o) < 3 {
		return false
	}
	return !hasSeparatingAxis(p, o) && !hasSeparatingAxis(o, p)
}

// IntersectsBox reports whether the polygon overlaps the box.
func (p Polygon) IntersectsBox(b Box) bool {
	if !p.Bounds().Overlaps(b) {
		return false
	}
	return p.Intersects(b.Corners())
}

// hasSeparatingAxis tests the edge normals of a against both polygons.
func hasSeparatingAxis(a, b Polygon) bool {
	for i := range a {
		edge := a[(i+1)%len(a)].Sub(a[i])
		axis := Vec{-edge.Y, edge.X}
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA <= minB || maxB <= minA {
			return true
		}
	}
	return false
}

func project(p Polygon, axis Vec) (lo, hi float64) {
	lo = p[0].Dot(axis)
	hi = lo
	for _, v := range p[1:] {
		d := v.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
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

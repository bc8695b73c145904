// Package geom holds the plain 2D value types shared by the grid core and the
// renderers, and the letterboxed affine transform between world and screen
// space.
package geom

import "math"

// Point is a position (or a displacement) in either world or screen space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both components by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Transposed swaps X and Y.
func (p Point) Transposed() Point { return Point{p.Y, p.X} }

// Len returns the euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Near reports whether p and q are within eps of each other on both axes.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Rect is an axis-aligned rectangle given by two opposite corners. The corners
// are not normalised: P1 may lie right of or below P2, which is how a flipped
// axis (world Y up, screen Y down) is expressed.
type Rect struct {
	P1, P2 Point
}

// R builds a Rect from corner coordinates.
func R(x1, y1, x2, y2 float64) Rect {
	return Rect{P1: Point{x1, y1}, P2: Point{x2, y2}}
}

// Width is the unsigned X extent.
func (r Rect) Width() float64 { return math.Abs(r.P1.X - r.P2.X) }

// Height is the unsigned Y extent.
func (r Rect) Height() float64 { return math.Abs(r.P1.Y - r.P2.Y) }

// Center returns the midpoint of the two corners.
func (r Rect) Center() Point { return r.P1.Lerp(r.P2, 0.5) }

// Min returns the corner with the smaller coordinates on both axes.
func (r Rect) Min() Point {
	return Point{math.Min(r.P1.X, r.P2.X), math.Min(r.P1.Y, r.P2.Y)}
}

// Max returns the corner with the larger coordinates on both axes.
func (r Rect) Max() Point {
	return Point{math.Max(r.P1.X, r.P2.X), math.Max(r.P1.Y, r.P2.Y)}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Transposed swaps the axes of both corners.
func (r Rect) Transposed() Rect {
	return Rect{P1: r.P1.Transposed(), P2: r.P2.Transposed()}
}

func (r Rect) finite() bool {
	for _, v := range [4]float64{r.P1.X, r.P1.Y, r.P2.X, r.P2.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

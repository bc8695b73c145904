package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateRect is returned when a transform is requested for a rectangle
// with a zero (or non-finite) extent. Such a transform could not be inverted.
var ErrDegenerateRect = errors.New("degenerate rectangle")

// Transform maps points with an independent scale and offset per axis:
//
//	screen = world*scale + offset
//
// A negative scale mirrors that axis.
type Transform struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// NewLetterboxed returns the transform that fits src inside dst, preserving
// the aspect ratio of src and centring it along the axis that has slack.
// Axis orientation is taken from the corner order, so a src with P1 above P2
// mapped onto a dst with P1 below P2 flips Y.
func NewLetterboxed(src, dst Rect) (Transform, error) {
	if err := checkRect("source", src); err != nil {
		return Transform{}, err
	}
	if err := checkRect("destination", dst); err != nil {
		return Transform{}, err
	}

	// Compare aspect ratios cross-multiplied.
	if src.Height()*dst.Width() > dst.Height()*src.Width() {
		return horizontalPadded(src, dst), nil
	}
	return horizontalPadded(src.Transposed(), dst.Transposed()).Transpose(), nil
}

func checkRect(name string, r Rect) error {
	if !r.finite() {
		return fmt.Errorf("%s %v: %w", name, r, ErrDegenerateRect)
	}
	if r.Width() == 0 || r.Height() == 0 {
		return fmt.Errorf("%s %gx%g: %w", name, r.Width(), r.Height(), ErrDegenerateRect)
	}
	return nil
}

// horizontalPadded fits src's full height into dst and centres it
// horizontally. The caller guarantees src is at least as tall (relative to its
// width) as dst.
func horizontalPadded(src, dst Rect) Transform {
	scaleY := (dst.P1.Y - dst.P2.Y) / (src.P1.Y - src.P2.Y)
	offsetY := dst.P1.Y - src.P1.Y*scaleY
	scaleX := math.Copysign(scaleY, (src.P2.X-src.P1.X)*(dst.P2.X-dst.P1.X))
	srcMid := (src.P1.X + src.P2.X) / 2
	dstMid := (dst.P1.X + dst.P2.X) / 2
	return Transform{
		ScaleX:  scaleX,
		ScaleY:  scaleY,
		OffsetX: dstMid - srcMid*scaleX,
		OffsetY: offsetY,
	}
}

// Transpose swaps the X and Y components. Transpose is its own inverse.
func (t Transform) Transpose() Transform {
	return Transform{
		ScaleX:  t.ScaleY,
		ScaleY:  t.ScaleX,
		OffsetX: t.OffsetY,
		OffsetY: t.OffsetX,
	}
}

// Invertible reports whether both scales are non-zero.
func (t Transform) Invertible() bool {
	return t.ScaleX != 0 && t.ScaleY != 0
}

// Inverse returns the transform undoing t. It panics if t is not invertible;
// transforms from NewLetterboxed always are.
func (t Transform) Inverse() Transform {
	if !t.Invertible() {
		panic(fmt.Sprintf("geom: inverse of non-invertible transform %+v", t))
	}
	return Transform{
		ScaleX:  1 / t.ScaleX,
		ScaleY:  1 / t.ScaleY,
		OffsetX: -t.OffsetX / t.ScaleX,
		OffsetY: -t.OffsetY / t.ScaleY,
	}
}

// MapPoint applies t to p.
func (t Transform) MapPoint(p Point) Point {
	return Point{
		X: p.X*t.ScaleX + t.OffsetX,
		Y: p.Y*t.ScaleY + t.OffsetY,
	}
}

// MapPoints maps every point of ps into a new slice.
func (t Transform) MapPoints(ps []Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = t.MapPoint(p)
	}
	return out
}

// MapRect maps both corners of r.
func (t Transform) MapRect(r Rect) Rect {
	return Rect{P1: t.MapPoint(r.P1), P2: t.MapPoint(r.P2)}
}

// MapDist scales a length by the magnitude of the X scale, keeping the sign of
// d. Translation is not applied.
func (t Transform) MapDist(d float64) float64 {
	if d == 0 {
		return 0
	}
	return math.Copysign(math.Abs(d*t.ScaleX), d)
}

// Package scene assembles one frame of the board as plain screen-space
// primitives: cell outlines, path curves, end markers and the pointer label.
// Renderers (the ebiten window, the SVG and PNG sinks) only draw what a Scene
// lists; nothing here draws.
package scene

import (
	"fmt"
	"math"

	"github.com/Garsondee/Grid-Game/internal/camera"
	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
	"github.com/Garsondee/Grid-Game/internal/pathwalk"
)

// DefaultGridRadius is the number of rings around the centre cell.
const DefaultGridRadius = 40

// framePadding is the visual margin, in world units, added around the board.
const framePadding = 2.0

// markerRadius is the world-space radius of an end-of-path marker.
const markerRadius = 0.25

// Fill says how a cell polygon is tinted.
type Fill uint8

const (
	FillNone   Fill = iota
	FillCentre      // the origin cell
	FillRim         // the outermost ring
	FillHover       // the cell under the pointer
)

// Polygon is a closed convex outline; the last point repeats the first.
type Polygon struct {
	Points []geom.Point
	Fill   Fill
	Cell   hexgrid.Coord
	Ring   int
}

// Curve is a quadratic Bézier from P0 to P2 pulled toward P1.
type Curve struct {
	P0, P1, P2 geom.Point
	Path       int
}

// Marker is a filled circle.
type Marker struct {
	Center geom.Point
	Radius float64
	Path   int
	Stuck  bool // the path ended early
}

// Scene is everything a renderer needs for one frame, in screen space.
type Scene struct {
	Viewport   geom.Rect
	Background geom.Rect
	PxPerUnit  float64
	Cells      []Polygon
	Curves     []Curve
	Markers    []Marker
	Hover      *Polygon
	Label      string // empty when the pointer is outside the window
}

// Input is the per-frame state a Scene is built from.
type Input struct {
	Radius   int
	Camera   camera.State
	Viewport geom.Rect // screen rectangle, P1 top-left
	Paths    []pathwalk.Path

	Pointer    geom.Point // screen space
	HasPointer bool
}

// Extent is the world-space size of a board of the given radius, padding
// included.
func Extent(radius int) geom.Point {
	n := float64(2*radius + 1)
	return geom.Point{
		X: hexgrid.Sqrt3*n + framePadding,
		Y: 1.5*n + 0.5 + framePadding,
	}
}

// WorldToScreen is the transform a frame with this input uses.
func (in Input) WorldToScreen() (geom.Transform, error) {
	return in.Camera.Transform(Extent(in.Radius), in.Viewport)
}

// Build lays out the frame. It fails only when the viewport or camera is
// degenerate (see geom.ErrDegenerateRect).
func Build(in Input) (*Scene, error) {
	tr, err := in.WorldToScreen()
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	ext := Extent(in.Radius)
	sc := &Scene{
		Viewport:   in.Viewport,
		Background: tr.MapRect(geom.R(-ext.X, -ext.Y, ext.X, ext.Y)),
		PxPerUnit:  tr.MapDist(1),
	}

	for r, c := range hexgrid.Spiral(hexgrid.Origin, in.Radius) {
		pts := cellPoints(c, tr)
		if !overlaps(pts, in.Viewport) {
			continue
		}
		fill := FillNone
		switch r {
		case 0:
			fill = FillCentre
		case in.Radius:
			fill = FillRim
		}
		sc.Cells = append(sc.Cells, Polygon{Points: pts, Fill: fill, Cell: c, Ring: r})
	}

	for i, p := range in.Paths {
		for _, s := range p.Segments {
			sc.Curves = append(sc.Curves, Curve{
				P0:   tr.MapPoint(s.Start()),
				P1:   tr.MapPoint(s.CellCenter),
				P2:   tr.MapPoint(s.Edge),
				Path: i,
			})
		}
		if p.HasEnd {
			sc.Markers = append(sc.Markers, Marker{
				Center: tr.MapPoint(p.End),
				Radius: tr.MapDist(markerRadius),
				Path:   i,
				Stuck:  p.Stuck,
			})
		}
	}

	if in.HasPointer && in.Viewport.Contains(in.Pointer) {
		world := tr.Inverse().MapPoint(in.Pointer)
		sc.Label = PointerLabel(world, hexgrid.Origin)
		c := hexgrid.FromPixel(world)
		if hexgrid.Distance(hexgrid.Origin, c) <= in.Radius {
			sc.Hover = &Polygon{Points: cellPoints(c, tr), Fill: FillHover, Cell: c}
		}
	}
	return sc, nil
}

// PointerLabel describes a world point and the cell under it.
//
//	(2.6, -1.5) Hexagon: (x=2, y=-1, z=-1, r=2)
func PointerLabel(world geom.Point, origin hexgrid.Coord) string {
	c := hexgrid.FromPixel(world)
	return fmt.Sprintf("(%.1f, %.1f) Hexagon: (x=%d, y=%d, z=%d, r=%d)",
		tenths(world.X), tenths(world.Y), c.X, c.Y, c.Z(), hexgrid.Distance(c, origin))
}

// tenths rounds v to one decimal, folding -0 into 0 so the label never
// flickers to "-0.0" at the origin.
func tenths(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0
	}
	return r
}

func cellPoints(c hexgrid.Coord, tr geom.Transform) []geom.Point {
	corners := hexgrid.Corners(c)
	return tr.MapPoints(corners[:])
}

// overlaps reports whether the bounding box of pts intersects r.
func overlaps(pts []geom.Point, r geom.Rect) bool {
	if len(pts) == 0 {
		return false
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	rlo, rhi := r.Min(), r.Max()
	return lo.X <= rhi.X && hi.X >= rlo.X && lo.Y <= rhi.Y && hi.Y >= rlo.Y
}

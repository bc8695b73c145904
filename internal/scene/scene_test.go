package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/Garsondee/Grid-Game/internal/camera"
	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
	"github.com/Garsondee/Grid-Game/internal/pathwalk"
)

func baseInput(radius int) Input {
	return Input{
		Radius:   radius,
		Camera:   camera.New(),
		Viewport: geom.R(0, 0, 600, 400),
	}
}

func TestBuild_AllCellsVisibleAtDefaultZoom(t *testing.T) {
	sc, err := Build(baseInput(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.Cells) != hexgrid.CellCount(2) {
		t.Fatalf("got %d cells, want %d", len(sc.Cells), hexgrid.CellCount(2))
	}
	for _, c := range sc.Cells {
		if len(c.Points) != 7 || c.Points[0] != c.Points[6] {
			t.Fatalf("cell %v outline not closed: %v", c.Cell, c.Points)
		}
		want := FillNone
		switch c.Ring {
		case 0:
			want = FillCentre
		case 2:
			want = FillRim
		}
		if c.Fill != want {
			t.Fatalf("cell %v ring %d fill %d, want %d", c.Cell, c.Ring, c.Fill, want)
		}
	}
	tr, _ := baseInput(2).WorldToScreen()
	if sc.PxPerUnit != tr.MapDist(1) || sc.PxPerUnit <= 0 {
		t.Fatalf("PxPerUnit = %v, want %v", sc.PxPerUnit, tr.MapDist(1))
	}
	centre := geom.Point{}
	for _, p := range sc.Cells[0].Points[:6] {
		centre = centre.Add(p.Scale(1.0 / 6))
	}
	if !centre.Near(geom.Pt(300, 200), 1e-6) {
		t.Fatalf("origin cell centred at %v, want viewport centre", centre)
	}
}

func TestBuild_CullsOffscreenCells(t *testing.T) {
	in := baseInput(DefaultGridRadius)
	in.Camera.Zoom = 10
	sc, err := Build(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.Cells) == 0 || len(sc.Cells) >= hexgrid.CellCount(DefaultGridRadius) {
		t.Fatalf("got %d cells at zoom 10, want a strict non-empty subset", len(sc.Cells))
	}
	for _, c := range sc.Cells {
		if !overlaps(c.Points, in.Viewport) {
			t.Fatalf("off-screen cell %v was kept", c.Cell)
		}
	}
}

func TestBuild_DegenerateViewport(t *testing.T) {
	in := baseInput(3)
	in.Viewport = geom.R(0, 0, 600, 0)
	if _, err := Build(in); !errors.Is(err, geom.ErrDegenerateRect) {
		t.Fatalf("err = %v, want ErrDegenerateRect", err)
	}
}

func TestBuild_PathsBecomeCurvesAndMarkers(t *testing.T) {
	b := pathwalk.NewBuilder(pathwalk.WithSeed(6), pathwalk.WithSteps(12), pathwalk.WithBounds(hexgrid.Origin, 5))
	in := baseInput(5)
	in.Paths = b.Build([]hexgrid.Coord{hexgrid.Origin, hexgrid.C(2, -2)})
	sc, err := Build(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	segs, ends := 0, 0
	for _, p := range in.Paths {
		segs += len(p.Segments)
		if p.HasEnd {
			ends++
		}
	}
	if len(sc.Curves) != segs || len(sc.Markers) != ends {
		t.Fatalf("got %d curves / %d markers, want %d / %d", len(sc.Curves), len(sc.Markers), segs, ends)
	}
	tr, _ := in.WorldToScreen()
	first := in.Paths[0].Segments[0]
	if got := sc.Curves[0].P1; !got.Near(tr.MapPoint(first.CellCenter), 1e-9) {
		t.Fatalf("first curve control point %v, want mapped centre", got)
	}
	if r := sc.Markers[0].Radius; math.Abs(r-tr.MapDist(markerRadius)) > 1e-9 || r <= 0 {
		t.Fatalf("marker radius %v", r)
	}
}

func TestBuild_PointerLabelAndHover(t *testing.T) {
	in := baseInput(4)
	in.Pointer = geom.Pt(300, 200)
	in.HasPointer = true
	sc, err := Build(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "(0.0, 0.0) Hexagon: (x=0, y=0, z=0, r=0)"; sc.Label != want {
		t.Fatalf("label %q, want %q", sc.Label, want)
	}
	if sc.Hover == nil || sc.Hover.Cell != hexgrid.Origin {
		t.Fatalf("hover = %+v, want origin cell", sc.Hover)
	}

	in.Pointer = geom.Pt(-10, 200)
	sc, _ = Build(in)
	if sc.Label != "" || sc.Hover != nil {
		t.Fatalf("pointer outside viewport: label %q hover %v", sc.Label, sc.Hover)
	}
}

func TestPointerLabel_Format(t *testing.T) {
	got := PointerLabel(hexgrid.ToPixel(hexgrid.C(2, -1)), hexgrid.Origin)
	want := "(2.6, -1.5) Hexagon: (x=2, y=-1, z=-1, r=2)"
	if got != want {
		t.Fatalf("PointerLabel = %q, want %q", got, want)
	}
}

func TestExtent(t *testing.T) {
	e := Extent(DefaultGridRadius)
	if math.Abs(e.X-(math.Sqrt(3)*81+2)) > 1e-9 || math.Abs(e.Y-(1.5*81+0.5+2)) > 1e-9 {
		t.Fatalf("Extent(40) = %v", e)
	}
}

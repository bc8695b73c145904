package hexgrid

import (
	"math"
	"slices"
	"testing"

	"github.com/Garsondee/Grid-Game/internal/geom"
)

const maxGridRadius = 40

func TestRing_RadiusZeroIsOrigin(t *testing.T) {
	got := slices.Collect(Ring(Origin, 0))
	if len(got) != 1 || got[0] != Origin {
		t.Fatalf("Ring(origin, 0) = %v, want [(0,0)]", got)
	}
	other := C(5, -2)
	got = slices.Collect(Ring(other, 0))
	if len(got) != 1 || got[0] != other {
		t.Fatalf("Ring(%v, 0) = %v, want [%v]", other, got, other)
	}
}

func TestRing_RadiusOne(t *testing.T) {
	got := slices.Collect(Ring(Origin, 1))
	if len(got) != 6 {
		t.Fatalf("expected 6 cells, got %d: %v", len(got), got)
	}
	for i, c := range got {
		if d := Distance(Origin, c); d != 1 {
			t.Fatalf("cell %v at distance %d, want 1", c, d)
		}
		next := got[(i+1)%len(got)]
		if !IsNeighbor(c, next) {
			t.Fatalf("consecutive cells %v and %v are not neighbours", c, next)
		}
	}
}

func TestRing_CardinalityAdjacencyAndUniqueness(t *testing.T) {
	for _, origin := range []Coord{Origin, C(3, -7), C(-12, 4)} {
		seen := make(map[Coord]int)
		for r := 0; r <= maxGridRadius; r++ {
			ring := slices.Collect(Ring(origin, r))
			if len(ring) != RingSize(r) {
				t.Fatalf("origin %v r=%d: %d cells, want %d", origin, r, len(ring), RingSize(r))
			}
			for i, c := range ring {
				if d := Distance(origin, c); d != r {
					t.Fatalf("origin %v r=%d: cell %v at distance %d", origin, r, c, d)
				}
				if prev, dup := seen[c]; dup {
					t.Fatalf("origin %v: cell %v in ring %d and ring %d", origin, c, prev, r)
				}
				seen[c] = r
				if r > 0 {
					next := ring[(i+1)%len(ring)]
					if !IsNeighbor(c, next) {
						t.Fatalf("origin %v r=%d: %v and %v not neighbours", origin, r, c, next)
					}
				}
			}
		}
		if len(seen) != CellCount(maxGridRadius) {
			t.Fatalf("origin %v: %d distinct cells, want %d", origin, len(seen), CellCount(maxGridRadius))
		}
	}
}

func TestRing_Clockwise(t *testing.T) {
	// In a Y-up world, clockwise means the signed area is negative.
	ring := slices.Collect(Ring(Origin, 3))
	area := 0.0
	for i, c := range ring {
		p := ToPixel(c)
		q := ToPixel(ring[(i+1)%len(ring)])
		area += p.X*q.Y - q.X*p.Y
	}
	if area >= 0 {
		t.Fatalf("signed area %v, want negative (clockwise)", area)
	}
}

func TestRing_Restartable(t *testing.T) {
	ring := Ring(C(1, 1), 4)
	first := slices.Collect(ring)
	second := slices.Collect(ring)
	if !slices.Equal(first, second) {
		t.Fatal("ranging twice over the same ring gave different sequences")
	}
	// Early break must not disturb later iterations.
	for range ring {
		break
	}
	if third := slices.Collect(ring); !slices.Equal(first, third) {
		t.Fatal("ring changed after an early break")
	}
}

func TestRing_NegativeRadiusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative radius")
		}
	}()
	Ring(Origin, -1)
}

func TestSpiral_CoversDisc(t *testing.T) {
	n := 0
	lastR := 0
	for r, c := range Spiral(Origin, 6) {
		if r < lastR {
			t.Fatalf("radius went backwards: %d after %d", r, lastR)
		}
		lastR = r
		if Distance(Origin, c) != r {
			t.Fatalf("cell %v yielded with radius %d", c, r)
		}
		n++
	}
	if n != CellCount(6) {
		t.Fatalf("spiral yielded %d cells, want %d", n, CellCount(6))
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b Coord
		want int
	}{
		{Origin, Origin, 0},
		{Origin, C(1, 0), 1},
		{Origin, C(2, -1), 2},
		{C(-3, 1), C(2, -4), 5},
		{C(1, -3), Origin, 3},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := Distance(tc.b, tc.a); got != tc.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestToPixel_NeighbourSpacing(t *testing.T) {
	c := C(2, -5)
	center := ToPixel(c)
	for _, d := range Directions {
		n := ToPixel(Neighbor(c, d))
		if dist := n.Sub(center).Len(); math.Abs(dist-Sqrt3) > 1e-9 {
			t.Fatalf("neighbour %v at %v from centre, want √3", d, dist)
		}
	}
	if got := ToPixel(Neighbor(c, East)).Sub(center); !got.Near(geom.Pt(Sqrt3, 0), 1e-9) {
		t.Fatalf("east neighbour offset %v, want (√3,0)", got)
	}
	if got := ToPixel(Neighbor(c, NorthEast)).Sub(center); !got.Near(geom.Pt(Sqrt3/2, 1.5), 1e-9) {
		t.Fatalf("north-east neighbour offset %v, want (√3/2,1.5)", got)
	}
}

func TestFromPixel_RoundTripsCentres(t *testing.T) {
	for _, c := range Spiral(Origin, 10) {
		if got := FromPixel(ToPixel(c)); got != c {
			t.Fatalf("FromPixel(ToPixel(%v)) = %v", c, got)
		}
	}
}

func TestFromPixel_NearestCell(t *testing.T) {
	c := C(-4, 7)
	center := ToPixel(c)
	// Points well inside the hexagon, toward each corner and each edge.
	for i := 0; i < 6; i++ {
		corner := center.Lerp(center.Add(HexagonCorners[i]), 0.95)
		if got := FromPixel(corner); got != c {
			t.Fatalf("point %v near corner %d resolved to %v, want %v", corner, i, got, c)
		}
	}
	for _, d := range Directions {
		edge := center.Lerp(EdgeMidpoint(c, d), 0.98)
		if got := FromPixel(edge); got != c {
			t.Fatalf("point near %v edge resolved to %v, want %v", d, got, c)
		}
		beyond := center.Lerp(EdgeMidpoint(c, d), 1.02)
		if got := FromPixel(beyond); got != Neighbor(c, d) {
			t.Fatalf("point past %v edge resolved to %v, want %v", d, got, Neighbor(c, d))
		}
	}
}

func TestDirection_EdgeTableAgreesWithCentres(t *testing.T) {
	c := C(3, 3)
	for _, d := range Directions {
		fromCorners := EdgeMidpoint(c, d)
		fromCentres := ToPixel(c).Lerp(ToPixel(Neighbor(c, d)), 0.5)
		if !fromCorners.Near(fromCentres, 1e-9) {
			t.Fatalf("%v: corner midpoint %v != centre midpoint %v", d, fromCorners, fromCentres)
		}
		if got := EdgeToward(c, d).Midpoint(); !got.Near(fromCorners, 1e-9) {
			t.Fatalf("%v: EdgeKey midpoint %v != %v", d, got, fromCorners)
		}
	}
}

func TestDirection_OppositeAndClockwise(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Fatalf("%v: Opposite is not an involution", d)
		}
		if d.Offset().Add(d.Opposite().Offset()) != Origin {
			t.Fatalf("%v and its opposite do not cancel", d)
		}
		if d.Clockwise(1).Clockwise(-1) != d {
			t.Fatalf("%v: Clockwise(1) then (-1) is not identity", d)
		}
	}
	if NorthWest.Clockwise(1) != NorthEast {
		t.Fatalf("NW rotated clockwise = %v, want NE", NorthWest.Clockwise(1))
	}
}

func TestEdgeBetween_Canonical(t *testing.T) {
	a := C(0, 0)
	for _, d := range Directions {
		b := Neighbor(a, d)
		k1, ok1 := EdgeBetween(a, b)
		k2, ok2 := EdgeBetween(b, a)
		if !ok1 || !ok2 {
			t.Fatalf("%v: neighbours not recognised", d)
		}
		if k1 != k2 {
			t.Fatalf("%v: EdgeBetween not symmetric: %v vs %v", d, k1, k2)
		}
		if !k1.A.Less(k1.B) {
			t.Fatalf("%v: key %v not in (min, max) order", d, k1)
		}
		if EdgeToward(b, d.Opposite()) != k1 {
			t.Fatalf("%v: EdgeToward from the other side differs", d)
		}
	}
	if _, ok := EdgeBetween(a, C(2, 0)); ok {
		t.Fatal("non-neighbours produced an edge key")
	}
	if _, ok := EdgeBetween(a, a); ok {
		t.Fatal("a cell produced an edge key with itself")
	}
}

func TestEdgeKey_DistinctAroundDisc(t *testing.T) {
	// Every unordered neighbour pair in a disc maps to its own key.
	keys := make(map[EdgeKey][2]Coord)
	for _, c := range Spiral(Origin, 5) {
		for _, d := range Directions {
			n := Neighbor(c, d)
			k := EdgeToward(c, d)
			pair := [2]Coord{c, n}
			if n.Less(c) {
				pair = [2]Coord{n, c}
			}
			if prev, ok := keys[k]; ok && prev != pair {
				t.Fatalf("key %v shared by %v and %v", k, prev, pair)
			}
			keys[k] = pair
		}
	}
}

func TestEdgeKey_Endpoints(t *testing.T) {
	k := EdgeToward(C(1, -3), SouthEast)
	p, q := k.Endpoints()
	if !p.Lerp(q, 0.5).Near(k.Midpoint(), 1e-9) {
		t.Fatalf("endpoints %v %v do not straddle midpoint %v", p, q, k.Midpoint())
	}
	if l := q.Sub(p).Len(); math.Abs(l-1) > 1e-9 {
		t.Fatalf("edge length %v, want 1", l)
	}
}

func TestCorners_Closed(t *testing.T) {
	cs := Corners(C(7, -2))
	if cs[0] != cs[6] {
		t.Fatalf("outline not closed: %v vs %v", cs[0], cs[6])
	}
	center := ToPixel(C(7, -2))
	for i, p := range cs {
		if r := p.Sub(center).Len(); math.Abs(r-1) > 1e-9 {
			t.Fatalf("corner %d at radius %v, want 1", i, r)
		}
	}
}

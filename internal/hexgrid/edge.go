package hexgrid

import (
	"fmt"

	"github.com/Garsondee/Grid-Game/internal/geom"
)

// EdgeKey identifies the boundary shared by two neighbouring cells. It is the
// unordered pair stored as (min, max), so both cells produce the same key.
type EdgeKey struct {
	A, B Coord
}

// EdgeBetween returns the key of the edge shared by a and b. The second
// result is false if the cells are not neighbours.
func EdgeBetween(a, b Coord) (EdgeKey, bool) {
	if !IsNeighbor(a, b) {
		return EdgeKey{}, false
	}
	if b.Less(a) {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}, true
}

// EdgeToward returns the key of the edge of c facing direction d.
func EdgeToward(c Coord, d Direction) EdgeKey {
	k, _ := EdgeBetween(c, Neighbor(c, d))
	return k
}

// Midpoint returns the world-space midpoint of the edge, halfway between the
// two cell centres.
func (k EdgeKey) Midpoint() geom.Point {
	return ToPixel(k.A).Lerp(ToPixel(k.B), 0.5)
}

// Endpoints returns the two corners of the edge in world space.
func (k EdgeKey) Endpoints() (geom.Point, geom.Point) {
	d, _ := DirectionTo(k.A, k.B)
	corners := Corners(k.A)
	i := d.EdgeIndex()
	return corners[i], corners[i+1]
}

func (k EdgeKey) String() string {
	return fmt.Sprintf("%v|%v", k.A, k.B)
}

package hexgrid

import "github.com/Garsondee/Grid-Game/internal/geom"

// Direction is one of the six unit steps on the lattice. The values run
// clockwise (in a Y-up world) starting at north-east, and each value is also
// the index of the hexagon edge that faces that neighbour.
type Direction uint8

const (
	NorthEast Direction = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest

	DirectionCount = 6
)

// Directions lists every direction in clockwise order.
var Directions = [DirectionCount]Direction{NorthEast, East, SouthEast, SouthWest, West, NorthWest}

var directionOffsets = [DirectionCount]Coord{
	NorthEast: {0, -1},
	East:      {1, -1},
	SouthEast: {1, 0},
	SouthWest: {0, 1},
	West:      {-1, 1},
	NorthWest: {-1, 0},
}

var directionNames = [DirectionCount]string{"NE", "E", "SE", "SW", "W", "NW"}

// Offset is the axial step taken by moving one cell in d.
func (d Direction) Offset() Coord { return directionOffsets[d] }

// EdgeIndex is the index i of the hexagon edge that joins HexagonCorners[i]
// and HexagonCorners[i+1] and faces the neighbour in direction d. Rendering
// and edge identity both go through this one table.
func (d Direction) EdgeIndex() int { return int(d) }

// Opposite is the direction pointing back.
func (d Direction) Opposite() Direction { return (d + 3) % DirectionCount }

// Clockwise rotates d by n sixths of a turn (negative n turns the other way).
func (d Direction) Clockwise(n int) Direction {
	return Direction(((int(d)+n)%DirectionCount + DirectionCount) % DirectionCount)
}

func (d Direction) String() string {
	if int(d) >= DirectionCount {
		return "?"
	}
	return directionNames[d]
}

// HexagonCorners are the corners of a cell centred at the origin, clockwise
// from the top, with the first corner repeated so the outline closes.
var HexagonCorners = [7]geom.Point{
	{X: 0, Y: 1},
	{X: Sqrt3 / 2, Y: 0.5},
	{X: Sqrt3 / 2, Y: -0.5},
	{X: 0, Y: -1},
	{X: -Sqrt3 / 2, Y: -0.5},
	{X: -Sqrt3 / 2, Y: 0.5},
	{X: 0, Y: 1},
}

// Neighbor returns the cell one step from c in direction d.
func Neighbor(c Coord, d Direction) Coord { return c.Add(d.Offset()) }

// Neighbors returns the six cells around c in clockwise order.
func Neighbors(c Coord) [DirectionCount]Coord {
	var out [DirectionCount]Coord
	for _, d := range Directions {
		out[d] = Neighbor(c, d)
	}
	return out
}

// DirectionTo returns the direction from a to b if they are neighbours.
func DirectionTo(a, b Coord) (Direction, bool) {
	delta := b.Sub(a)
	for _, d := range Directions {
		if directionOffsets[d] == delta {
			return d, true
		}
	}
	return 0, false
}

// IsNeighbor reports whether a and b share an edge.
func IsNeighbor(a, b Coord) bool {
	_, ok := DirectionTo(a, b)
	return ok
}

// Corners returns the closed outline of c in world space.
func Corners(c Coord) [7]geom.Point {
	center := ToPixel(c)
	var out [7]geom.Point
	for i, p := range HexagonCorners {
		out[i] = center.Add(p)
	}
	return out
}

// EdgeMidpoint returns the world-space midpoint of the edge of c that faces
// direction d.
func EdgeMidpoint(c Coord, d Direction) geom.Point {
	i := d.EdgeIndex()
	center := ToPixel(c)
	return center.Add(HexagonCorners[i].Lerp(HexagonCorners[i+1], 0.5))
}

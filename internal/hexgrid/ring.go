package hexgrid

import (
	"fmt"
	"iter"
)

// Ring yields the cells at exactly distance radius from origin, walking
// clockwise from the north-west corner of the ring. Radius 0 yields origin
// alone; radius r > 0 yields 6r cells, each a neighbour of the one before it
// and the last a neighbour of the first. The sequence can be ranged over any
// number of times. Ring panics if radius is negative.
func Ring(origin Coord, radius int) iter.Seq[Coord] {
	if radius < 0 {
		panic(fmt.Sprintf("hexgrid: negative ring radius %d", radius))
	}
	return func(yield func(Coord) bool) {
		if radius == 0 {
			yield(origin)
			return
		}
		c := origin.Add(NorthWest.Offset().Scale(radius))
		// From the NW corner, the sides run E, SE, SW, W, NW, NE.
		for side := 0; side < DirectionCount; side++ {
			step := East.Clockwise(side).Offset()
			for i := 0; i < radius; i++ {
				if !yield(c) {
					return
				}
				c = c.Add(step)
			}
		}
	}
}

// Spiral yields every cell within maxRadius of origin, ring by ring from the
// centre outwards, together with the ring radius it belongs to.
func Spiral(origin Coord, maxRadius int) iter.Seq2[int, Coord] {
	return func(yield func(int, Coord) bool) {
		for r := 0; r <= maxRadius; r++ {
			for c := range Ring(origin, r) {
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// RingSize is the number of cells in a ring of the given radius.
func RingSize(radius int) int {
	if radius == 0 {
		return 1
	}
	return 6 * radius
}

// CellCount is the number of cells within radius of a centre cell, the centre
// included.
func CellCount(radius int) int {
	return 3*radius*(radius+1) + 1
}

// Package hexgrid implements axial-coordinate arithmetic for a pointy-top
// hexagonal lattice: conversion to and from world space, neighbours, rings
// and the identity of the edge two neighbouring cells share.
//
// World space has Y pointing up. Cells have side length 1, so neighbouring
// centres are √3 apart.
package hexgrid

import (
	"cmp"
	"fmt"
	"math"

	"github.com/Garsondee/Grid-Game/internal/geom"
)

// Sqrt3 is √3, the distance between neighbouring cell centres.
var Sqrt3 = math.Sqrt(3)

// Coord is an axial coordinate. The third cube component Z is implied by
// X + Y + Z == 0.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{x, y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Origin is the centre cell of the board.
var Origin = Coord{}

// Z returns the implicit third cube component.
func (c Coord) Z() int { return -c.X - c.Y }

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord { return Coord{c.X * k, c.Y * k} }

// Compare orders coordinates lexicographically on (X, Y).
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// Less reports whether c sorts before o.
func (c Coord) Less(o Coord) bool { return c.Compare(o) < 0 }

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance is the number of steps between a and b on the lattice.
func Distance(a, b Coord) int {
	d := a.Sub(b)
	return max(abs(d.X), abs(d.Y), abs(d.Z()))
}

// ToPixel returns the world-space centre of c.
func ToPixel(c Coord) geom.Point {
	z := float64(c.Z())
	return geom.Point{
		X: Sqrt3 * (float64(c.X) + z/2),
		Y: 1.5 * z,
	}
}

// FromPixel returns the cell whose hexagon contains p. Points exactly on a
// boundary resolve to one of the adjoining cells.
func FromPixel(p geom.Point) Coord {
	z := p.Y / 1.5
	x := p.X/Sqrt3 - z/2
	y := -x - z
	return cubeRound(x, y, z)
}

// cubeRound rounds fractional cube coordinates to the nearest cell, fixing up
// the component with the largest rounding error so X + Y + Z stays 0.
func cubeRound(x, y, z float64) Coord {
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	}
	return Coord{X: int(rx), Y: int(ry)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

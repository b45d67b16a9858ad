/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

import "fmt"

// Point is an integer board coordinate. It is hashable and orderable and is
// used directly as a map key throughout the package.
type Point struct {
	X int16
	Y int16
}

// NewPoint creates a Point from x/y coordinates.
func NewPoint(x, y int16) Point {
	return Point{X: x, Y: y}
}

// ToTuple decomposes the point into its x/y components.
func (p Point) ToTuple() (int16, int16) {
	return p.X, p.Y
}

// Add returns a new point offset by (dx, dy).
func (p Point) Add(dx, dy int16) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Less provides a total order over points (by Y then X) so that points can
// be used in sorted contexts such as deterministic test output.
func (p Point) Less(other Point) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

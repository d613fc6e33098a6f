package geom

import "fmt"

// Point is an immutable location on the integer plane. Equality and
// hashing are by (X, Y); a Point has no identity beyond its coordinates,
// so two input points with equal coordinates are the same value.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

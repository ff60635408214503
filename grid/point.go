package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is an integer coordinate. X grows to the right and Y grows downward,
// matching the order in which text rows are read.
//
// Coordinates are signed so that arithmetic may produce transient negative
// values before a bounds check.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Mod reduces p component-wise modulo m. Unlike the % operator the result
// is never negative: each component lands in [0, m).
// m must have strictly positive components.
func (p Point) Mod(m Point) Point {
	return Point{X: euclidMod(p.X, m.X), Y: euclidMod(p.Y, m.Y)}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// Neighbors returns the four cardinal neighbours of p in Directions() order.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range Directions() {
		out[i] = d.Step(p)
	}
	return out
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func euclidMod[T constraints.Signed](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

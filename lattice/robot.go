package lattice

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Robot moves Vel cells per second across a torus, reappearing on the
// opposite edge whenever it leaves.
type Robot struct {
	Pos grid.Point
	Vel grid.Point
}

// After returns where r stands t seconds later on a torus of the given
// bounds. bounds must have positive sides.
func (r Robot) After(t int, bounds grid.Point) grid.Point {
	// reducing the velocity first keeps Scale small for long runs
	return r.Pos.Add(r.Vel.Mod(bounds).Scale(t)).Mod(bounds)
}

// Tally counts the robots standing on each cell t seconds from now.
func Tally(robots []Robot, bounds grid.Point, t int) (*grid.Grid[int], error) {
	if bounds.X <= 0 || bounds.Y <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadBounds, bounds)
	}
	g, err := grid.New(bounds.X, bounds.Y, 0)
	if err != nil {
		return nil, err
	}
	for _, r := range robots {
		p := r.After(t, bounds)
		g.Set(p, g.At(p)+1)
	}
	return g, nil
}

// Quadrants counts the robots in each quadrant t seconds from now, in the
// order top-left, top-right, bottom-left, bottom-right. Robots on the middle
// row or column belong to none.
func Quadrants(robots []Robot, bounds grid.Point, t int) ([4]int, error) {
	var q [4]int
	g, err := Tally(robots, bounds, t)
	if err != nil {
		return q, err
	}
	mid := grid.Pt(bounds.X/2, bounds.Y/2)
	for p, n := range g.All() {
		if n == 0 || p.X == mid.X || p.Y == mid.Y {
			continue
		}
		i := 0
		if p.X > mid.X {
			i++
		}
		if p.Y > mid.Y {
			i += 2
		}
		q[i] += n
	}
	return q, nil
}

// SafetyFactor is the product of the four quadrant counts.
func SafetyFactor(robots []Robot, bounds grid.Point, t int) (int, error) {
	q, err := Quadrants(robots, bounds, t)
	if err != nil {
		return 0, err
	}
	return q[0] * q[1] * q[2] * q[3], nil
}

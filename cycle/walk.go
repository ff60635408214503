package cycle

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/grid"
)

// Simulate walks from start until the walker leaves g or repeats a state.
// blocked reports which cell values the walker cannot enter; cells off the
// grid are never blocked.
func Simulate[T any](g *grid.Grid[T], blocked func(T) bool, start Walker) (Outcome, error) {
	if err := validate(g, blocked, start); err != nil {
		return Outcome{}, err
	}
	return simulate(g, blocked, start, true), nil
}

func validate[T any](g *grid.Grid[T], blocked func(T) bool, start Walker) error {
	if g == nil {
		return ErrNilGrid
	}
	v, ok := g.Get(start.Pos)
	if !ok {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if blocked(v) {
		return fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	return nil
}

// simulate is Simulate without validation. With record unset it skips
// building Outcome.Visited, which the obstruction trials never read.
func simulate[T any](g *grid.Grid[T], blocked func(T) bool, start Walker, record bool) Outcome {
	var (
		out   Outcome
		seen  = mapset.New[Walker]()
		cells = mapset.New[grid.Point]()
		w     = start
	)
	seen.Put(w)
	cells.Put(w.Pos)

	for {
		// 1) Turn right until the way ahead is clear; four turns means the
		// walker is boxed in
		turns := 0
		for {
			v, ok := g.Get(w.Facing.Step(w.Pos))
			if !ok || !blocked(v) {
				break
			}
			if turns++; turns == 4 {
				out.Loops = true
				return finish(out, cells, record)
			}
			w.Facing = w.Facing.TurnRight()
		}

		// 2) Step ahead; leaving the grid ends the walk
		w.Pos = w.Facing.Step(w.Pos)
		out.Steps++
		if !g.InBounds(w.Pos) {
			return finish(out, cells, record)
		}

		// 3) A repeated position and facing means the walk loops
		if seen.Has(w) {
			out.Loops = true
			return finish(out, cells, record)
		}
		seen.Put(w)
		if record {
			cells.Put(w.Pos)
		}
	}
}

func finish(out Outcome, cells mapset.Set[grid.Point], record bool) Outcome {
	if !record {
		return out
	}
	out.Visited = make([]grid.Point, 0, cells.Size())
	cells.Each(func(p grid.Point) {
		out.Visited = append(out.Visited, p)
	})
	slices.SortFunc(out.Visited, func(a, b grid.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

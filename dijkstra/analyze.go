package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Analysis holds the full forward and reverse cost tables of a maze, which
// is enough to decide for every cell whether some optimal route crosses it.
type Analysis struct {
	best int64
	end  grid.Point

	fwd *runner[bool] // costs from start
	rev *runner[bool] // costs to any end-position state
}

// Analyze solves the maze from start to end and keeps both cost tables.
//
// The forward pass settles every state reachable from start. The reverse pass
// walks edges backwards from all four end-position states at cost 0. A state
// s lies on an optimal route iff fwd(s) + rev(s) == Best().
//
// Errors match Search. MaxCost caps both passes.
//
// Complexity: two full Dijkstra runs, O(S log S) time, O(S) memory.
func Analyze[T any](g *grid.Grid[T], passable func(T) bool, start State, end grid.Point, opts ...Option) (*Analysis, error) {
	// 1) Build Options and validate the endpoints
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, passable, start.Pos, end); err != nil {
		return nil, err
	}

	// 2) Forward pass: cost from start to every reachable state
	open := grid.Map(g, passable)
	isOpen := func(v bool) bool { return v }

	fwd := newRunner(open, isOpen, cfg, false)
	fwd.seed(start)
	fwd.drain()

	best := int64(inf)
	for _, d := range grid.Directions() {
		best = min(best, fwd.cost(State{Pos: end, Facing: d}))
	}
	if best == inf {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, start, end)
	}

	// 3) Reverse pass from all four end states: cost from every state to end
	rev := newRunner(open, isOpen, cfg, true)
	for _, d := range grid.Directions() {
		rev.seed(State{Pos: end, Facing: d})
	}
	rev.drain()

	return &Analysis{best: best, end: end, fwd: fwd, rev: rev}, nil
}

// Best returns the minimum route cost.
func (a *Analysis) Best() int64 { return a.best }

// CostTo returns the minimum cost from the start to s, or false if s is
// unreachable.
func (a *Analysis) CostTo(s State) (int64, bool) {
	return a.lookup(a.fwd, s)
}

// CostFrom returns the minimum cost from s to the end position, or false if
// the end cannot be reached from s.
func (a *Analysis) CostFrom(s State) (int64, bool) {
	return a.lookup(a.rev, s)
}

func (a *Analysis) lookup(r *runner[bool], s State) (int64, bool) {
	if !r.cells.InBounds(s.Pos) || s.Facing > grid.Right {
		return 0, false
	}
	c := r.cost(s)
	return c, c != inf
}

// OnState reports whether state s lies on at least one optimal route.
func (a *Analysis) OnState(s State) bool {
	to, ok := a.CostTo(s)
	if !ok {
		return false
	}
	from, ok := a.CostFrom(s)
	if !ok {
		return false
	}
	// to and from are both ≤ best on any optimal state; compare without
	// risking overflow.
	return to <= a.best && from == a.best-to
}

// OnOptimalPath reports whether cell p is visited by at least one optimal
// route, in any facing. Out-of-bounds cells report false.
func (a *Analysis) OnOptimalPath(p grid.Point) bool {
	for _, d := range grid.Directions() {
		if a.OnState(State{Pos: p, Facing: d}) {
			return true
		}
	}
	return false
}

// OptimalCells lists every cell on some optimal route in row-major order.
// The start and end cells are always included.
func (a *Analysis) OptimalCells() []grid.Point {
	var out []grid.Point
	for p := range a.fwd.cells.Points() {
		if a.OnOptimalPath(p) {
			out = append(out, p)
		}
	}
	return out
}

// CountOptimalCells returns len(OptimalCells()) without allocating the list.
func (a *Analysis) CountOptimalCells() int {
	n := 0
	for p := range a.fwd.cells.Points() {
		if a.OnOptimalPath(p) {
			n++
		}
	}
	return n
}

// Path reconstructs one optimal route from the start to the end position,
// ending at the lowest-facing end state that achieves Best().
func (a *Analysis) Path() []State {
	for _, d := range grid.Directions() {
		s := State{Pos: a.end, Facing: d}
		if a.fwd.cost(s) == a.best {
			return a.fwd.path(s)
		}
	}
	return nil
}

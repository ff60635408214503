// Implementation notes:
//
//   - States are numbered densely as (y*W + x)*4 + facing, so cost,
//     predecessor and settled tables are flat slices instead of maps.
//   - Edges are generated on the fly from the grid; the state graph is never
//     materialized.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose state is already settled.

package dijkstra

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/gridwalk/grid"
)

// Search computes the minimum cost from start to any state standing on end.
//
// Behavior:
//  1. Validate the grid, both endpoints and their passability.
//  2. Settle states in increasing cost order, relaxing rotate and advance
//     edges from each.
//  3. When the first end-position state is settled at cost c, keep settling
//     while the next cost is ≤ c so that every tied end state is collected.
//
// Returns ErrNoPath when the end is unreachable (or only reachable above
// MaxCost). With WithReturnPath, Result.Path holds one optimal route.
//
// Complexity: O(S log S) time, O(S) memory, S = 4·W·H.
func Search[T any](g *grid.Grid[T], passable func(T) bool, start State, end grid.Point, opts ...Option) (*Result, error) {
	// 1) Build Options and validate the endpoints
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, passable, start.Pos, end); err != nil {
		return nil, err
	}

	// 2) Seed the heap with the start state at cost 0
	r := newRunner(g, passable, cfg, false)
	r.seed(start)

	// 3) Settle states until the next pop costs more than the first end state
	best := int64(inf)
	var ends []State
	for {
		it, ok := r.next()
		if !ok || it.cost > best {
			break
		}
		if it.s.Pos == end {
			best = it.cost
			ends = append(ends, it.s)
		}
	}
	if len(ends) == 0 {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, start, end)
	}

	// 4) Order tied end states by facing and optionally rebuild a path
	slices.SortFunc(ends, func(a, b State) int { return int(a.Facing) - int(b.Facing) })
	res := &Result{Cost: best, Ends: ends}
	if cfg.ReturnPath {
		res.Path = r.path(ends[0])
	}
	return res, nil
}

// validate checks the preconditions shared by Search and Analyze.
func validate[T any](g *grid.Grid[T], passable func(T) bool, start, end grid.Point) error {
	if g == nil {
		return ErrNilGrid
	}
	sv, ok := g.Get(start)
	if !ok {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	ev, ok := g.Get(end)
	if !ok {
		return fmt.Errorf("%w: %v", ErrEndOutOfBounds, end)
	}
	if !passable(sv) {
		return fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if !passable(ev) {
		return fmt.Errorf("%w: %v", ErrEndBlocked, end)
	}
	return nil
}

// item is a heap entry: a state and the cost it was pushed with.
type item struct {
	s    State
	cost int64
}

// lessItem orders by cost, then row, column and facing so that pops are
// fully deterministic.
func lessItem(a, b item) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.s.Pos.Y != b.s.Pos.Y {
		return a.s.Pos.Y < b.s.Pos.Y
	}
	if a.s.Pos.X != b.s.Pos.X {
		return a.s.Pos.X < b.s.Pos.X
	}
	return a.s.Facing < b.s.Facing
}

// runner holds the mutable state for a single Dijkstra execution.
// With reverse set it walks edges backwards, yielding the cost from each
// state to the seeds instead of from the seeds to each state.
type runner[T any] struct {
	cells    *grid.Grid[T]    // read-only maze
	passable func(T) bool     // cell predicate for advance edges
	opts     Options          // edge costs and cap
	reverse  bool             // follow edges backwards
	dist     []int64          // best known cost per state index
	prev     []int            // predecessor state index, -1 for none
	settled  []bool           // finalized states
	pq       *heap.Heap[item] // min-heap with lazy decrease-key
}

func newRunner[T any](g *grid.Grid[T], passable func(T) bool, opts Options, reverse bool) *runner[T] {
	n := g.Len() * 4
	r := &runner[T]{
		cells:    g,
		passable: passable,
		opts:     opts,
		reverse:  reverse,
		dist:     make([]int64, n),
		prev:     make([]int, n),
		settled:  make([]bool, n),
		pq:       heap.New[item](lessItem),
	}
	for i := range r.dist {
		r.dist[i] = inf
		r.prev[i] = -1
	}
	return r
}

func (r *runner[T]) index(s State) int {
	return (s.Pos.Y*r.cells.Width()+s.Pos.X)*4 + int(s.Facing)
}

func (r *runner[T]) state(i int) State {
	cell, w := i/4, r.cells.Width()
	return State{Pos: grid.Pt(cell%w, cell/w), Facing: grid.Direction(i % 4)}
}

// seed enqueues s at cost zero.
func (r *runner[T]) seed(s State) {
	i := r.index(s)
	if r.dist[i] == 0 {
		return
	}
	r.dist[i] = 0
	r.pq.Push(item{s: s, cost: 0})
}

// next settles and returns the cheapest unsettled state, relaxing its edges.
// It reports false once the heap is exhausted or the cap is exceeded.
func (r *runner[T]) next() (item, bool) {
	for {
		it, ok := r.pq.Pop()
		if !ok {
			return item{}, false
		}
		i := r.index(it.s)
		if r.settled[i] {
			continue // stale entry
		}
		if it.cost > r.opts.MaxCost {
			return item{}, false
		}
		r.settled[i] = true
		r.relax(it.s, it.cost)
		return it, true
	}
}

// drain settles every reachable state.
func (r *runner[T]) drain() {
	for {
		if _, ok := r.next(); !ok {
			return
		}
	}
}

// relax improves the tentative cost of every unsettled neighbour of s.
func (r *runner[T]) relax(s State, cost int64) {
	from := r.index(s)
	r.edges(s, func(n State, w int64) {
		// 1) Skip neighbours whose cost is already final
		j := r.index(n)
		if r.settled[j] {
			return
		}
		// 2) Respect the cap; w > MaxCost-cost also rules out int64 overflow
		if w > r.opts.MaxCost-cost {
			return
		}
		// 3) Keep only strict improvements
		nc := cost + w
		if nc >= r.dist[j] {
			return
		}
		// 4) Record the cheaper route and push a fresh heap entry
		r.dist[j] = nc
		r.prev[j] = from
		r.pq.Push(item{s: n, cost: nc})
	})
}

// edges yields the rotate edges and, when the cell is open, the advance edge
// of s. In reverse mode the advance edge comes from the cell behind.
func (r *runner[T]) edges(s State, fn func(State, int64)) {
	fn(State{Pos: s.Pos, Facing: s.Facing.TurnLeft()}, r.opts.TurnCost)
	fn(State{Pos: s.Pos, Facing: s.Facing.TurnRight()}, r.opts.TurnCost)

	ahead := s.Facing
	if r.reverse {
		ahead = ahead.Reverse()
	}
	p := ahead.Step(s.Pos)
	if v, ok := r.cells.Get(p); ok && r.passable(v) {
		fn(State{Pos: p, Facing: s.Facing}, r.opts.ForwardCost)
	}
}

// path walks predecessors back from s to a seed and returns them in order.
func (r *runner[T]) path(s State) []State {
	var out []State
	for i := r.index(s); i >= 0; i = r.prev[i] {
		out = append(out, r.state(i))
	}
	slices.Reverse(out)
	return out
}

// cost returns the settled cost of s, or inf.
func (r *runner[T]) cost(s State) int64 {
	return r.dist[r.index(s)]
}

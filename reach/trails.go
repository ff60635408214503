package reach

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/parallel"
)

// Graph is the directed graph implied by a grid and a step relation.
// Edges are generated lazily; the grid must not change while in use.
type Graph[T any] struct {
	cells *grid.Grid[T]
	step  StepFunc[T]
}

// NewGraph binds a grid to a step relation.
func NewGraph[T any](g *grid.Grid[T], step StepFunc[T]) (*Graph[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Graph[T]{cells: g, step: step}, nil
}

// Grid returns the underlying grid.
func (gr *Graph[T]) Grid() *grid.Grid[T] { return gr.cells }

// Successors lists the targets of p's outgoing edges in grid.Directions
// order. Off-grid p has none.
func (gr *Graph[T]) Successors(p grid.Point) []grid.Point {
	from, ok := gr.cells.Get(p)
	if !ok {
		return nil
	}
	out := make([]grid.Point, 0, 4)
	for _, q := range p.Neighbors() {
		if to, ok := gr.cells.Get(q); ok && gr.step(from, to) {
			out = append(out, q)
		}
	}
	return out
}

// Score counts the distinct terminal cells reachable from start.
// A start off the grid scores 0.
func (gr *Graph[T]) Score(start grid.Point, terminal func(T) bool) int {
	if !gr.cells.InBounds(start) {
		return 0
	}
	visited := mapset.New[grid.Point]()
	stack := []grid.Point{start}
	found := 0
	for len(stack) > 0 {
		// 1) Pop and skip cells already reached by another route
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(p) {
			continue
		}
		visited.Put(p)

		// 2) Count the cell once if it is terminal
		if terminal(gr.cells.At(p)) {
			found++
		}

		// 3) Push unvisited successors
		for _, q := range gr.Successors(p) {
			if !visited.Has(q) {
				stack = append(stack, q)
			}
		}
	}
	return found
}

// Rating counts the distinct paths from start that end on a terminal cell.
// Returns ErrCycle if a path grows longer than the grid has cells, which
// can only happen when the step relation is cyclic.
func (gr *Graph[T]) Rating(start grid.Point, terminal func(T) bool) (int, error) {
	if !gr.cells.InBounds(start) {
		return 0, nil
	}
	type frame struct {
		p     grid.Point
		depth int
	}
	limit := gr.cells.Len()
	stack := []frame{{p: start}}
	paths := 0
	for len(stack) > 0 {
		// 1) Pop; a path longer than the grid must revisit a cell
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth >= limit {
			return 0, fmt.Errorf("%w: path from %v exceeds %d steps", ErrCycle, start, limit)
		}

		// 2) Every arrival at a terminal is a distinct path
		if terminal(gr.cells.At(f.p)) {
			paths++
		}

		// 3) Extend the path to every successor, with no visited set
		for _, q := range gr.Successors(f.p) {
			stack = append(stack, frame{p: q, depth: f.depth + 1})
		}
	}
	return paths, nil
}

// Starts lists every cell satisfying isStart in row-major order.
func (gr *Graph[T]) Starts(isStart func(T) bool) []grid.Point {
	return gr.cells.FindAll(isStart)
}

// TotalScore sums Score over starts on a pool of workers.
// Each start is independent; the sum does not depend on scheduling.
func (gr *Graph[T]) TotalScore(ctx context.Context, starts []grid.Point, terminal func(T) bool, workers int) (int, error) {
	return parallel.Sum(ctx, starts, workers, func(_ context.Context, p grid.Point) (int, error) {
		return gr.Score(p, terminal), nil
	})
}

// TotalRating sums Rating over starts on a pool of workers.
func (gr *Graph[T]) TotalRating(ctx context.Context, starts []grid.Point, terminal func(T) bool, workers int) (int, error) {
	return parallel.Sum(ctx, starts, workers, func(_ context.Context, p grid.Point) (int, error) {
		return gr.Rating(p, terminal)
	})
}

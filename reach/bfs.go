package reach

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridwalk/grid"
)

const unseen = -1

// Distances returns the step count from start to every passable cell it can
// reach, start included at 0. A blocked or off-grid start reaches nothing.
func Distances[T any](g *grid.Grid[T], start grid.Point, passable func(T) bool) map[grid.Point]int {
	dist := make(map[grid.Point]int)
	if g == nil {
		return dist
	}
	d := bfs(g, start, passable, nil)
	for p, v := range d.All() {
		if v != unseen {
			dist[p] = v
		}
	}
	return dist
}

// Steps returns the length of a shortest 4-connected path from start to end
// through passable cells.
// Returns ErrNilGrid, ErrOutOfBounds for off-grid endpoints, or
// ErrUnreachable when no path exists.
func Steps[T any](g *grid.Grid[T], start, end grid.Point, passable func(T) bool) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	for _, p := range []grid.Point{start, end} {
		if !g.InBounds(p) {
			return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	d := bfs(g, start, passable, &end)
	if n := d.At(end); n != unseen {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %v from %v", ErrUnreachable, end, start)
}

// FirstBlocking drops obstacles onto an empty width×height grid in order and
// returns the index of the first drop after which end can no longer be
// reached from start.
//
// Reachability only shrinks as drops accumulate, so the answer is found by
// binary search over the prefix length rather than by replaying every drop.
// Returns ErrOutOfBounds for any off-grid drop or endpoint, ErrUnreachable
// if the route is cut before any drop, and ErrNeverBlocked if it survives all.
func FirstBlocking(width, height int, drops []grid.Point, start, end grid.Point) (int, error) {
	open, err := grid.New(width, height, true)
	if err != nil {
		return 0, err
	}
	for i, p := range drops {
		if !open.InBounds(p) {
			return 0, fmt.Errorf("%w: drop %d at %v", ErrOutOfBounds, i, p)
		}
	}
	for _, p := range []grid.Point{start, end} {
		if !open.InBounds(p) {
			return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}

	passable := func(v bool) bool { return v }
	blocked := func(k int) bool {
		open.Fill(true)
		for _, p := range drops[:k] {
			open.Set(p, false)
		}
		d := bfs(open, start, passable, &end)
		return d.At(end) == unseen
	}

	k := sort.Search(len(drops)+1, blocked)
	switch {
	case k > len(drops):
		return 0, ErrNeverBlocked
	case k == 0:
		return 0, fmt.Errorf("%w: %v from %v", ErrUnreachable, end, start)
	}
	return k - 1, nil
}

// bfs labels each cell with its distance from start, stopping early once
// stop (if non-nil) is reached.
func bfs[T any](g *grid.Grid[T], start grid.Point, passable func(T) bool, stop *grid.Point) *grid.Grid[int] {
	dist, _ := grid.New(g.Width(), g.Height(), unseen)
	if v, ok := g.Get(start); !ok || !passable(v) {
		return dist
	}
	frontier := queue.New[grid.Point]()
	dist.Set(start, 0)
	frontier.Enqueue(start)
	for !frontier.Empty() {
		u := frontier.Dequeue()
		if stop != nil && u == *stop {
			break
		}
		for _, v := range u.Neighbors() {
			cell, ok := g.Get(v)
			if !ok || !passable(cell) || dist.At(v) != unseen {
				continue
			}
			dist.Set(v, dist.At(u)+1)
			frontier.Enqueue(v)
		}
	}
	return dist
}

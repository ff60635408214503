package reach

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Cheat is a shortcut through one blocked cell: the walker leaves the track
// at From, passes through Wall and rejoins the track at To.
type Cheat struct {
	Wall  grid.Point
	From  grid.Point
	To    grid.Point
	Saves int // steps saved against Race.Baseline, always > 0
}

// Race is a track with every single-wall shortcut priced against the honest
// shortest route.
type Race struct {
	Baseline int
	Cheats   []Cheat // row-major by Wall, horizontal before vertical
}

// axes pairs the two sides of a wall that a shortcut may connect.
var axes = [2][2]grid.Direction{
	{grid.Left, grid.Right},
	{grid.Up, grid.Down},
}

// Cheats prices every shortcut from start to end that passes through exactly
// one blocked cell.
//
// A shortcut exists where a blocked cell has track on both of its sides along
// one axis. It costs the distance from start to its entry, two steps through
// the wall, and the distance from its exit to end; it is kept only when that
// beats the baseline. A wall open along both axes yields two cheats, and each
// is priced in whichever direction is cheaper.
//
// Returns ErrNilGrid, ErrOutOfBounds for off-grid endpoints, or
// ErrUnreachable when end cannot be reached from start.
//
// Complexity: two BFS passes and one scan, O(W×H).
func Cheats[T any](g *grid.Grid[T], start, end grid.Point, passable func(T) bool) (*Race, error) {
	// 1) Validate the grid and both endpoints
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, p := range []grid.Point{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}

	// 2) Label the track from both ends; the graph is undirected, so the
	// distances from end are the remaining steps to end
	fromStart := Distances(g, start, passable)
	baseline, ok := fromStart[end]
	if !ok {
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, end, start)
	}
	toEnd := Distances(g, end, passable)

	// 3) Scan blocked cells and price each axis that joins two track cells
	race := &Race{Baseline: baseline}
	for w, v := range g.All() {
		if passable(v) {
			continue
		}
		for _, axis := range axes {
			a, b := axis[0].Step(w), axis[1].Step(w)
			from, to, cost, ok := cheapest(fromStart, toEnd, a, b)
			if !ok || cost >= baseline {
				continue
			}
			race.Cheats = append(race.Cheats, Cheat{Wall: w, From: from, To: to, Saves: baseline - cost})
		}
	}
	return race, nil
}

// cheapest picks the cheaper direction of travel between track cells a and b.
// It reports false unless both lie on the track.
func cheapest(fromStart, toEnd map[grid.Point]int, a, b grid.Point) (from, to grid.Point, cost int, ok bool) {
	sa, okA := fromStart[a]
	sb, okB := fromStart[b]
	if !okA || !okB {
		return grid.Point{}, grid.Point{}, 0, false
	}
	jump := a.Manhattan(b)
	ab := sa + jump + toEnd[b]
	ba := sb + jump + toEnd[a]
	if ba < ab {
		return b, a, ba, true
	}
	return a, b, ab, true
}

// Over counts the cheats that save at least n steps.
func (r *Race) Over(n int) int {
	c := 0
	for _, ch := range r.Cheats {
		if ch.Saves >= n {
			c++
		}
	}
	return c
}

// Savings maps each number of steps saved to how many cheats save it.
func (r *Race) Savings() map[int]int {
	out := make(map[int]int)
	for _, ch := range r.Cheats {
		out[ch.Saves]++
	}
	return out
}

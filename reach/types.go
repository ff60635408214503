// Package reach implements unweighted reachability over grids.
//
// Two traversal policies run over the same directed graph, where an edge
// p→q exists iff q is a cardinal neighbour of p and step(value(p), value(q))
// holds:
//
//   - Score counts distinct terminal cells reachable from a start. It keeps a
//     per-start visited set so a terminal reached by several routes counts once.
//   - Rating counts distinct paths from a start to any terminal. It keeps no
//     visited set, so converging routes are counted separately. Rating ≥ Score.
//
// Both use an explicit stack rather than recursion.
//
// The package also provides breadth-first shortest paths over passable cells
// (Steps, Distances), FirstBlocking, which finds how many falling
// obstacles it takes to cut a route, and Cheats, which prices every shortcut
// through a single wall of a race track.
//
// Complexity:
//
//   - Score:    O(W×H) per start.
//   - Rating:   O(number of paths) per start.
//   - Steps:    O(W×H).
//   - FirstBlocking: O(W×H · log N) for N drops.
//   - Cheats:   O(W×H).
package reach

import "errors"

var (
	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("reach: grid is nil")
	// ErrOutOfBounds indicates a start, end or drop outside the grid.
	ErrOutOfBounds = errors.New("reach: point out of bounds")
	// ErrUnreachable indicates no path exists between the requested points.
	ErrUnreachable = errors.New("reach: end is unreachable")
	// ErrCycle indicates the step relation admits a cycle, so Rating would
	// never terminate.
	ErrCycle = errors.New("reach: step relation is cyclic")
	// ErrNeverBlocked indicates the route survives every drop.
	ErrNeverBlocked = errors.New("reach: route is never blocked")
)

// StepFunc reports whether a walker may move from a cell holding from to an
// adjacent cell holding to.
type StepFunc[T any] func(from, to T) bool

// Ascending permits a move only onto a cell exactly one higher.
func Ascending(from, to int) bool {
	return to == from+1
}

// Package dijkstra finds minimum-cost routes through a grid maze for a
// walker whose cost depends on the way it is facing.
//
// Overview:
//
//   - A node of the search graph is a State: a position plus a facing.
//   - Every state has two "rotate" edges (cost TurnCost, default 1000) to the
//     same position facing left or right, and one "advance" edge (cost
//     ForwardCost, default 1) to the next cell ahead when that cell is
//     passable. The facing on arrival at the end position does not matter.
//   - Search runs Dijkstra's algorithm from one start state until every
//     end-position state tied for the minimum cost has been settled.
//   - Analyze runs a forward search from the start and a reverse search from
//     all end states, which answers "is this cell on some optimal route?"
//     for every cell at once.
//
// Key features:
//
//   - Functional options for edge costs, a cost cap and path reconstruction.
//   - Lazy decrease-key: improved costs are pushed as new heap entries and
//     stale entries are skipped when popped, using the settled set.
//   - Deterministic: heap ties break on (cost, y, x, facing), so repeated runs
//     produce identical results and identical reconstructed paths.
//
// Performance and complexity (S = 4·W·H states, each with ≤ 3 edges):
//
//   - Time:  O(S log S)
//   - Space: O(S) for cost and predecessor tables plus the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          the grid argument is nil.
//   - ErrStartOutOfBounds: the start position is off the grid.
//   - ErrEndOutOfBounds:   the end position is off the grid.
//   - ErrStartBlocked:     the start cell is not passable.
//   - ErrEndBlocked:       the end cell is not passable.
//   - ErrNoPath:           no route exists (or none within MaxCost). This is
//     a normal outcome callers may branch on with errors.Is.
//   - ErrNegativeCost:     panic from WithTurnCost/WithForwardCost on c < 0.
//   - ErrBadMaxCost:       panic from WithMaxCost on a negative cap.
//
// Example usage:
//
//	res, err := dijkstra.Search(maze, open, dijkstra.State{Pos: s, Facing: grid.Right}, e)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unsolvable maze
//	}
//	fmt.Println(res.Cost)
package dijkstra

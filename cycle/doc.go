// Package cycle simulates a walker that moves straight ahead and turns right
// at obstacles, and detects whether it leaves the grid or loops forever.
//
// What:
//
//   - Simulate runs one walk. Each tick the walker turns right while the cell
//     ahead is blocked (at most four times), then steps forward. Stepping off
//     the grid ends the walk; revisiting a (position, facing) pair proves a
//     loop, since the rule is deterministic.
//   - Obstructions counts the cells where one extra obstacle makes the walk
//     loop. Each candidate is tried on its own copy of the grid, and the
//     trials run on a bounded worker pool (see package parallel).
//
// Why:
//
//   - The (position, facing) visited set bounds every walk: there are only
//     4·W·H states, so a walk takes at most 4·W·H+1 forward moves.
//   - A walker boxed in on all four sides can never move again; that is
//     reported as a loop rather than spinning.
//
// Complexity:
//
//   - Simulate:     O(W·H) time and memory.
//   - Obstructions: O(C·W·H) total work for C candidates, split over the pool.
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrStartBlocked: invalid input.
//   - ErrBadObstacle: the obstacle value would not block the walker.
//   - ctx.Err(): Obstructions was cancelled.
package cycle

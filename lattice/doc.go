// Package lattice answers puzzles that live on a bounded integer lattice
// rather than inside cell contents: where lines through pairs of points land,
// and where points moving at constant velocity end up on a torus.
//
// What:
//
//   - Antinodes: for every pair of same-valued cells a, b the points that
//     line up with them at spacing d = b - a. Without harmonics only the two
//     points a-d and b+d count; WithHarmonics extends both rays to the edge
//     and includes a and b themselves.
//   - Robot / Tally / Quadrants / SafetyFactor: constant-velocity motion
//     that wraps around the edges, and the occupancy it leaves after t
//     seconds.
//
// Why:
//
//   - Both reduce to grid.Point arithmetic (Sub, Scale, Mod) with a bounds
//     check; neither needs a search.
//
// Complexity:
//
//   - Antinodes: O(Σ k²·L) for k cells per value and rays of length L.
//   - Tally:     O(R + W×H) for R robots.
//
// Errors:
//
//   - ErrNilGrid if the antenna grid is nil.
//   - ErrBadBounds if a torus has a non-positive side.
package lattice

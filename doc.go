// Package gridwalk is a toolbox for puzzles played on rectangular grids:
// a generic grid type plus the handful of searches such puzzles keep asking
// for.
//
// 🚀 What is in gridwalk?
//
//	A small set of focused packages:
//		• grid:     Point, Direction and the generic Grid[T], with text parsing
//		• region:   flood-fill partition into same-valued regions, area,
//		            perimeter and side counts
//		• reach:    DFS score and rating over a directed step relation,
//		            BFS shortest steps, "which drop cuts the route" and
//		            race-track shortcuts through a single wall
//		• dijkstra: cheapest routes for a walker that pays to turn, and the
//		            set of cells on any cheapest route
//		• cycle:    walk-until-exit-or-loop simulation and the parallel
//		            search for loop-inducing obstacles
//		• lattice:  antinodes of paired points and robots wrapping a torus
//		• parallel: bounded worker pool with a commutative sum
//		• input:    loaders for the puzzle text formats
//
// ✨ Conventions
//
//   - Grids are 4-connected; off-grid lookups return (zero, false) and never
//     wrap into another row.
//   - Every package exposes sentinel errors for errors.Is and functional
//     options with DefaultOptions.
//   - Results are deterministic: ties break in row-major order, then by
//     Directions() order.
//
// The cmd/gridwalk command wires these packages to input files:
//
//	gridwalk -workers 8 patrol input.txt
//	visited: 41
//	obstructions: 6
//
// Installation:
//
//	go get github.com/katalvlaran/gridwalk
package gridwalk

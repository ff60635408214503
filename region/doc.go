// Package region partitions a grid into maximal connected regions of
// equal-valued cells and measures them.
//
// What:
//
//   - Find labels every cell of a grid.Grid[T] with a region id using a
//     worklist flood fill over 4-connected, equal-valued neighbours.
//   - Each Region records its value, its member points (row-major) and a
//     membership set for O(1) Contains.
//   - Area, Perimeter and Sides measure a region; FencePrice and BulkPrice
//     total area×perimeter and area×sides over a partition.
//
// Why:
//
//   - Garden plots, lakes, rooms: any "same value, touching" clustering.
//   - Fence costing where long straight walls are billed once (Sides).
//
// Determinism:
//
//	Cells are scanned row-major and region ids are assigned in scan order, so
//	ids are stable for a given grid. The worklist discipline (stack or queue)
//	only changes exploration order, never membership.
//
// Complexity:
//
//   - Find:      O(W×H) time, O(W×H) memory. Every cell is pushed once.
//   - Perimeter: O(A) for a region of area A.
//   - Sides:     O(A) expected (set lookups).
//
// Example:
//
//	AAAA
//	BBCD    →  5 regions; FencePrice 140, BulkPrice 80
//	BBCC
//	EEEC
package region

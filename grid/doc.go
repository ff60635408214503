// Package grid provides the coordinate, direction and dense-grid primitives
// that every search in gridwalk is built on.
//
// What:
//
//   - Point is a signed integer 2D coordinate with value semantics, so it can
//     be used directly as a map key or set member.
//   - Direction enumerates the four cardinal headings in a fixed order
//     (Up, Down, Left, Right) and knows how to rotate and step.
//   - Grid[T] is a rectangular, row-major array of cells addressed by Point.
//
// Accessors:
//
//   - Get is total: it reports false for any coordinate outside the grid,
//     including negative ones.
//   - At and Set require an in-bounds coordinate. A violation panics with an
//     error wrapping ErrOutOfBounds; the flat index is never allowed to alias
//     a cell on another row.
//
// Parsing:
//
//	g, err := grid.ParseRunes(strings.NewReader("AB\nCD\n"))
//	// g.Width() == 2, g.Height() == 2, g.At(grid.Pt(1, 1)) == 'D'
//
// Complexity:
//
//   - New, Clone, Fill: O(W×H) time and memory.
//   - Get, At, Set, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is zero or the input has no rows.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: unchecked access outside the grid (panics).
//   - ErrBadCell: a character could not be decoded into a cell value.
//   - ErrBadDirection: a rune is not one of ^ v < >.
package grid

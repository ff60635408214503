package grid

import (
	"fmt"
	"iter"
)

// Grid is a dense width×height array of cells addressed by Point.
// Storage is a single row-major slice; len(cells) == width*height always.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New allocates a width×height grid with every cell set to fill.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// FromRows builds a grid from a non-empty, rectangular 2D slice, copying
// every row so later changes to rows do not leak into the grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Size returns the dimensions as a Point{Width, Height}.
func (g *Grid[T]) Size() Point { return Point{X: g.width, Y: g.height} }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the cell at p and true, or the zero value and false when p
// is outside the grid.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(p)], true
}

// At returns the cell at p. The caller guarantees p is in bounds;
// otherwise At panics with an error wrapping ErrOutOfBounds.
func (g *Grid[T]) At(p Point) T {
	g.mustContain(p)
	return g.cells[g.index(p)]
}

// Set stores v at p. Like At, it panics when p is outside the grid.
func (g *Grid[T]) Set(p Point, v T) {
	g.mustContain(p)
	g.cells[g.index(p)] = v
}

// Fill overwrites every cell with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Points yields every coordinate in row-major order.
func (g *Grid[T]) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// All yields every coordinate with its cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.coordinate(i), v) {
				return
			}
		}
	}
}

// Find returns the first point in row-major order whose cell satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Point, bool) {
	for p, v := range g.All() {
		if pred(v) {
			return p, true
		}
	}
	return Point{}, false
}

// FindAll returns every point whose cell satisfies pred, row-major.
func (g *Grid[T]) FindAll(pred func(T) bool) []Point {
	var out []Point
	for p, v := range g.All() {
		if pred(v) {
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Map builds a grid of the same shape whose cells are fn applied to g's.
func Map[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = fn(v)
	}
	return &Grid[U]{width: g.width, height: g.height, cells: cells}
}

// index maps p to a row-major offset: y*width + x.
func (g *Grid[T]) index(p Point) int {
	return p.Y*g.width + p.X
}

// coordinate converts a row-major offset back to a Point.
func (g *Grid[T]) coordinate(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

func (g *Grid[T]) mustContain(p Point) {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.width, g.height))
	}
}

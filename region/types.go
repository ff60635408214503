package region

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/grid"
)

// ErrNilGrid indicates Find was called without a grid.
var ErrNilGrid = errors.New("region: grid is nil")

// Worklist selects the order in which a flood fill explores cells.
type Worklist int

const (
	// Stack explores depth-first (LIFO).
	Stack Worklist = iota
	// Queue explores breadth-first (FIFO).
	Queue
)

// Options tunes Find and the partition's pricing helpers.
type Options struct {
	// Worklist picks the flood-fill discipline. Membership is identical
	// either way.
	Worklist Worklist
	// Workers bounds the pool used by FencePrice and BulkPrice.
	// Zero means one worker per CPU.
	Workers int
}

// Option configures Find.
type Option func(*Options)

// DefaultOptions returns Stack exploration and a CPU-sized pricing pool.
func DefaultOptions() Options {
	return Options{Worklist: Stack, Workers: 0}
}

// WithWorklist selects the flood-fill discipline.
func WithWorklist(w Worklist) Option {
	return func(o *Options) {
		o.Worklist = w
	}
}

// WithWorkers bounds the pricing pool. Use 1 for strictly sequential work.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// Edge is one unit of region boundary: the member cell At and the side of
// it, Facing, whose neighbour lies outside the region.
type Edge struct {
	At     grid.Point
	Facing grid.Direction
}

// Region is a maximal connected set of cells holding the same value.
// Regions are created by Find and never mutated afterwards.
type Region[T comparable] struct {
	ID      int          // index in Partition.Regions
	Value   T            // shared cell value
	Members []grid.Point // member points in row-major order

	set mapset.Set[grid.Point]
}

// Partition is the result of Find: every grid cell belongs to exactly one
// region.
type Partition[T comparable] struct {
	Regions []*Region[T]

	labels *grid.Grid[int]
	opts   Options
}

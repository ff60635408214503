package cycle

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for Simulate and Obstructions.
var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("cycle: grid is nil")

	// ErrStartOutOfBounds indicates the walker starts off the grid.
	ErrStartOutOfBounds = errors.New("cycle: start out of bounds")

	// ErrStartBlocked indicates the walker starts on a blocked cell.
	ErrStartBlocked = errors.New("cycle: start cell is blocked")

	// ErrBadObstacle indicates the obstacle value passed to Obstructions
	// is not itself blocked.
	ErrBadObstacle = errors.New("cycle: obstacle value is not blocked")
)

// Walker is the full simulation state: position plus facing. Two equal
// walkers always produce the same future, which is what makes a repeated
// Walker proof of a loop.
type Walker struct {
	Pos    grid.Point
	Facing grid.Direction
}

// String formats w as "(x,y)^".
func (w Walker) String() string {
	return fmt.Sprintf("%v%v", w.Pos, w.Facing)
}

// Outcome summarizes one simulation.
type Outcome struct {
	// Loops is true when a Walker state repeated or the walker was boxed in
	// on all four sides.
	Loops bool
	// Steps counts forward moves, including the one that leaves the grid.
	Steps int
	// Visited lists the distinct in-bounds cells stood on, start included,
	// in row-major order.
	Visited []grid.Point
}

// Options configures Obstructions.
type Options struct {
	// Workers bounds the trial pool; ≤ 0 means one per CPU.
	Workers int
	// OnlyVisited restricts candidates to cells on the unobstructed route.
	// An obstacle anywhere else is never touched, so the count is unchanged.
	OnlyVisited bool
	// Logger receives debug-level progress. Never nil after DefaultOptions.
	Logger logrus.FieldLogger
}

// Option configures Obstructions.
type Option func(*Options)

// DefaultOptions returns a CPU-sized pool, every empty cell as a candidate
// and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Workers:     0,
		OnlyVisited: false,
		Logger:      discard(),
	}
}

// WithWorkers bounds the trial pool. Use 1 for a sequential search.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithCandidates chooses between trying every empty cell (false) and only
// the cells of the unobstructed route (true).
func WithCandidates(onlyVisited bool) Option {
	return func(o *Options) {
		o.OnlyVisited = onlyVisited
	}
}

// WithLogger routes progress messages to l. A nil l keeps the discarding
// default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

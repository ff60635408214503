package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors returned by Search and Analyze.
var (
	// ErrNilGrid indicates that a nil grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates the start position lies off the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start out of bounds")

	// ErrEndOutOfBounds indicates the end position lies off the grid.
	ErrEndOutOfBounds = errors.New("dijkstra: end out of bounds")

	// ErrStartBlocked indicates the start cell is not passable.
	ErrStartBlocked = errors.New("dijkstra: start cell is not passable")

	// ErrEndBlocked indicates the end cell is not passable.
	ErrEndBlocked = errors.New("dijkstra: end cell is not passable")

	// ErrNoPath indicates that no route connects start and end.
	ErrNoPath = errors.New("dijkstra: no path from start to end")

	// ErrNegativeCost indicates a negative edge cost in an option.
	ErrNegativeCost = errors.New("dijkstra: edge cost must be non-negative")

	// ErrBadMaxCost indicates a negative cost cap.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Default edge costs.
const (
	DefaultTurnCost    int64 = 1000
	DefaultForwardCost int64 = 1
)

// inf marks an unreached state.
const inf = math.MaxInt64

// State is a node of the search graph: where the walker stands and which
// way it faces.
type State struct {
	Pos    grid.Point
	Facing grid.Direction
}

// String formats s as "(x,y)>" with the facing arrow appended.
func (s State) String() string {
	return fmt.Sprintf("%v%v", s.Pos, s.Facing)
}

// Options configures the search.
//
// TurnCost    – cost of a quarter turn in place. Must be ≥ 0.
// ForwardCost – cost of one step ahead. Must be ≥ 0.
// MaxCost     – states costing more than this are never settled.
//
//	Default is math.MaxInt64 (no cap).
//
// ReturnPath  – if true, Search records predecessors and fills Result.Path.
type Options struct {
	TurnCost    int64
	ForwardCost int64
	MaxCost     int64
	ReturnPath  bool
}

// Option represents a functional option for configuring Search and Analyze.
type Option func(*Options)

// DefaultOptions returns TurnCost=1000, ForwardCost=1, no cost cap and no
// path reconstruction.
func DefaultOptions() Options {
	return Options{
		TurnCost:    DefaultTurnCost,
		ForwardCost: DefaultForwardCost,
		MaxCost:     inf,
		ReturnPath:  false,
	}
}

// WithTurnCost sets the cost of rotating a quarter turn.
// Panics with ErrNegativeCost if c < 0.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrNegativeCost.Error())
		}
		o.TurnCost = c
	}
}

// WithForwardCost sets the cost of one step ahead.
// Panics with ErrNegativeCost if c < 0.
func WithForwardCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrNegativeCost.Error())
		}
		o.ForwardCost = c
	}
}

// WithMaxCost caps exploration: states whose cost would exceed max are not
// expanded, and a route costing more than max is reported as ErrNoPath.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithReturnPath makes Search reconstruct one optimal route.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// Result is the outcome of Search.
type Result struct {
	// Cost is the minimum total cost from the start state to the end position.
	Cost int64
	// Ends lists every end-position state reached at exactly Cost,
	// ordered by facing.
	Ends []State
	// Path is one optimal route from start to Ends[0], inclusive.
	// Nil unless WithReturnPath was given.
	Path []State
}

package lattice

import (
	"errors"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("lattice: grid is nil")
	// ErrBadBounds indicates a torus with a side ≤ 0.
	ErrBadBounds = errors.New("lattice: bounds must be positive")
)

// Options configures Antinodes.
//
// Harmonics – extend each pair's line to the grid edge in both directions,
// counting the pair itself. Default false.
type Options struct {
	Harmonics bool
}

// Option is a functional option for Antinodes.
type Option func(*Options)

// DefaultOptions returns the two-point rule with no harmonics.
func DefaultOptions() Options {
	return Options{}
}

// WithHarmonics enables the full-line rule.
func WithHarmonics() Option {
	return func(o *Options) {
		o.Harmonics = true
	}
}

// Antinodes returns every in-bounds cell lined up with two cells holding the
// same antenna value, in row-major order. isAntenna picks the cells that
// transmit; cells of different values never pair.
func Antinodes[T comparable](g *grid.Grid[T], isAntenna func(T) bool, opts ...Option) ([]grid.Point, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	// 1) Group antennas by value, keeping row-major order within a group
	groups := make(map[T][]grid.Point)
	for p, v := range g.All() {
		if isAntenna(v) {
			groups[v] = append(groups[v], p)
		}
	}

	// 2) Walk outward from every pair along its spacing
	hits := mapset.New[grid.Point]()
	for _, ps := range groups {
		for i, a := range ps {
			for _, b := range ps[i+1:] {
				d := b.Sub(a)
				ray(g, b, d, cfg.Harmonics, hits)
				ray(g, a, d.Scale(-1), cfg.Harmonics, hits)
			}
		}
	}

	// 3) Report in row-major order
	out := make([]grid.Point, 0, hits.Size())
	hits.Each(func(p grid.Point) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b grid.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out, nil
}

// ray marks from+k·d for k = 1, or for every k ≥ 0 that stays on the grid
// when harmonics is set.
func ray[T any](g *grid.Grid[T], from, d grid.Point, harmonics bool, hits mapset.Set[grid.Point]) {
	if !harmonics {
		if p := from.Add(d); g.InBounds(p) {
			hits.Put(p)
		}
		return
	}
	for k := 0; ; k++ {
		p := from.Add(d.Scale(k))
		if !g.InBounds(p) {
			return
		}
		hits.Put(p)
	}
}

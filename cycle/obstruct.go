package cycle

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/parallel"
)

// Obstructions counts the cells where placing obstacle makes the walk from
// start loop. The start cell and cells that are already blocked are never
// candidates. Every trial runs on a private clone of g, so g is not modified.
//
// With WithCandidates(true) only cells of the unobstructed route are tried;
// if that route already loops, all empty cells are tried instead.
func Obstructions[T any](ctx context.Context, g *grid.Grid[T], blocked func(T) bool, obstacle T, start Walker, opts ...Option) (int, error) {
	// 1) Build Options and validate the walk and the obstacle value
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, blocked, start); err != nil {
		return 0, err
	}
	if !blocked(obstacle) {
		return 0, ErrBadObstacle
	}

	// 2) Pick the candidate cells
	candidates := candidateCells(g, blocked, start, cfg.OnlyVisited)
	log := cfg.Logger.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"workers":    parallel.Workers(cfg.Workers, len(candidates)),
		"start":      start.String(),
	})
	log.Debug("obstruction search started")
	began := time.Now()

	// 3) Try each candidate on its own clone across the pool
	n, err := parallel.Count(ctx, candidates, cfg.Workers, func(ctx context.Context, p grid.Point) (bool, error) {
		trial := g.Clone()
		trial.Set(p, obstacle)
		return simulate(trial, blocked, start, false).Loops, ctx.Err()
	})
	if err != nil {
		log.WithError(err).Debug("obstruction search aborted")
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"loops":   n,
		"elapsed": time.Since(began).String(),
	}).Debug("obstruction search finished")
	return n, nil
}

// candidateCells lists the empty non-start cells to try, in row-major order.
func candidateCells[T any](g *grid.Grid[T], blocked func(T) bool, start Walker, onlyVisited bool) []grid.Point {
	if onlyVisited {
		if base := simulate(g, blocked, start, true); !base.Loops {
			out := make([]grid.Point, 0, len(base.Visited))
			for _, p := range base.Visited {
				if p != start.Pos {
					out = append(out, p)
				}
			}
			return out
		}
	}

	var out []grid.Point
	for p, v := range g.All() {
		if p != start.Pos && !blocked(v) {
			out = append(out, p)
		}
	}
	return out
}

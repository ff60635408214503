package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/cycle"
	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/input"
	"github.com/katalvlaran/gridwalk/lattice"
	"github.com/katalvlaran/gridwalk/reach"
	"github.com/katalvlaran/gridwalk/region"
)

var errUnknownCommand = errors.New("gridwalk: unknown command")

type config struct {
	workers int
	size    int
	fallen  int
	save    int
	width   int
	height  int
	seconds int
	log     logrus.FieldLogger
}

type answer struct {
	label string
	value string
}

func count(label string, n int) answer {
	return answer{label: label, value: humanize.Comma(int64(n))}
}

type solver func(ctx context.Context, r io.Reader, cfg config) ([]answer, error)

var commands = map[string]solver{
	"regions":  solveRegions,
	"trails":   solveTrails,
	"maze":     solveMaze,
	"patrol":   solvePatrol,
	"bytes":    solveBytes,
	"race":     solveRace,
	"antennas": solveAntennas,
	"robots":   solveRobots,
}

func commandList() string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	slices.Sort(names)
	return strings.Join(names, "|")
}

// run dispatches to the named solver.
func run(ctx context.Context, name string, r io.Reader, cfg config) ([]answer, error) {
	solve, ok := commands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want %s)", errUnknownCommand, name, commandList())
	}
	if cfg.log == nil {
		cfg.log = logrus.StandardLogger()
	}
	return solve(ctx, r, cfg)
}

func solveRegions(_ context.Context, r io.Reader, cfg config) ([]answer, error) {
	g, err := input.Garden(r)
	if err != nil {
		return nil, err
	}
	p, err := region.Find(g, region.WithWorkers(cfg.workers))
	if err != nil {
		return nil, err
	}
	cfg.log.WithField("regions", p.Len()).Debug("garden partitioned")
	return []answer{
		count("regions", p.Len()),
		count("fence price", p.FencePrice()),
		count("bulk price", p.BulkPrice()),
	}, nil
}

func solveTrails(ctx context.Context, r io.Reader, cfg config) ([]answer, error) {
	g, err := input.Topography(r)
	if err != nil {
		return nil, err
	}
	gr, err := reach.NewGraph(g, reach.Ascending)
	if err != nil {
		return nil, err
	}
	peak := func(h int) bool { return h == 9 }
	heads := gr.Starts(func(h int) bool { return h == 0 })
	cfg.log.WithField("trailheads", len(heads)).Debug("topography loaded")

	score, err := gr.TotalScore(ctx, heads, peak, cfg.workers)
	if err != nil {
		return nil, err
	}
	rating, err := gr.TotalRating(ctx, heads, peak, cfg.workers)
	if err != nil {
		return nil, err
	}
	return []answer{count("score", score), count("rating", rating)}, nil
}

func solveMaze(_ context.Context, r io.Reader, cfg config) ([]answer, error) {
	m, err := input.ParseMaze(r)
	if err != nil {
		return nil, err
	}
	open := func(v bool) bool { return v }
	start := dijkstra.State{Pos: m.Start, Facing: grid.Right}
	an, err := dijkstra.Analyze(m.Open, open, start, m.End)
	if err != nil {
		return nil, err
	}
	cfg.log.WithFields(logrus.Fields{"start": m.Start, "end": m.End}).Debug("maze solved")
	return []answer{
		count("lowest score", int(an.Best())),
		count("best seats", an.CountOptimalCells()),
	}, nil
}

func solvePatrol(ctx context.Context, r io.Reader, cfg config) ([]answer, error) {
	l, err := input.ParseLab(r)
	if err != nil {
		return nil, err
	}
	blocked := func(v bool) bool { return v }
	start := cycle.Walker{Pos: l.Start, Facing: l.Facing}
	out, err := cycle.Simulate(l.Blocked, blocked, start)
	if err != nil {
		return nil, err
	}
	n, err := cycle.Obstructions(ctx, l.Blocked, blocked, true, start,
		cycle.WithWorkers(cfg.workers),
		cycle.WithCandidates(true),
		cycle.WithLogger(cfg.log))
	if err != nil {
		return nil, err
	}
	return []answer{count("visited", len(out.Visited)), count("obstructions", n)}, nil
}

func solveBytes(_ context.Context, r io.Reader, cfg config) ([]answer, error) {
	drops, err := input.Points(r)
	if err != nil {
		return nil, err
	}
	open, err := grid.New(cfg.size, cfg.size, true)
	if err != nil {
		return nil, err
	}
	fallen := min(cfg.fallen, len(drops))
	for _, p := range drops[:fallen] {
		if !open.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", reach.ErrOutOfBounds, p)
		}
		open.Set(p, false)
	}
	exit := grid.Pt(cfg.size-1, cfg.size-1)
	cfg.log.WithFields(logrus.Fields{"drops": len(drops), "fallen": fallen}).Debug("memory loaded")

	steps, err := reach.Steps(open, grid.Pt(0, 0), exit, func(v bool) bool { return v })
	if err != nil {
		return nil, err
	}
	i, err := reach.FirstBlocking(cfg.size, cfg.size, drops, grid.Pt(0, 0), exit)
	if err != nil {
		return nil, err
	}
	p := drops[i]
	return []answer{
		count("steps", steps),
		{label: "first blocker", value: fmt.Sprintf("%d,%d", p.X, p.Y)},
	}, nil
}

func solveRace(_ context.Context, r io.Reader, cfg config) ([]answer, error) {
	m, err := input.ParseMaze(r)
	if err != nil {
		return nil, err
	}
	race, err := reach.Cheats(m.Open, m.Start, m.End, func(v bool) bool { return v })
	if err != nil {
		return nil, err
	}
	cfg.log.WithFields(logrus.Fields{"shortcuts": len(race.Cheats), "save": cfg.save}).Debug("track priced")
	return []answer{count("baseline", race.Baseline), count("cheats", race.Over(cfg.save))}, nil
}

func solveAntennas(_ context.Context, r io.Reader, cfg config) ([]answer, error) {
	g, err := input.Antennas(r)
	if err != nil {
		return nil, err
	}
	isAntenna := func(c rune) bool { return c != '.' }
	pts, err := lattice.Antinodes(g, isAntenna)
	if err != nil {
		return nil, err
	}
	full, err := lattice.Antinodes(g, isAntenna, lattice.WithHarmonics())
	if err != nil {
		return nil, err
	}
	cfg.log.WithField("antennas", g.Count(isAntenna)).Debug("roof loaded")
	return []answer{count("antinodes", len(pts)), count("harmonics", len(full))}, nil
}

func solveRobots(_ context.Context, r io.Reader, cfg config) ([]answer, error) {
	robots, err := input.Robots(r)
	if err != nil {
		return nil, err
	}
	bounds := grid.Pt(cfg.width, cfg.height)
	n, err := lattice.SafetyFactor(robots, bounds, cfg.seconds)
	if err != nil {
		return nil, err
	}
	cfg.log.WithFields(logrus.Fields{"robots": len(robots), "bounds": bounds}).Debug("robots moved")
	return []answer{count("safety factor", n)}, nil
}

// Package input loads the puzzle text formats used by the gridwalk driver
// into grids and start markers. Every loader reads the whole reader; a
// malformed input is returned as an error wrapping one of the sentinels
// below or a grid parse error.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/lattice"
)

var (
	// ErrMissingMarker indicates a required marker cell (S, E or a guard) is absent.
	ErrMissingMarker = errors.New("input: missing marker")
	// ErrDuplicateMarker indicates a marker that must be unique appears twice.
	ErrDuplicateMarker = errors.New("input: duplicate marker")
	// ErrBadPoint indicates a coordinate line that is not "x,y".
	ErrBadPoint = errors.New("input: invalid point")
	// ErrBadRobot indicates a robot line that is not "p=x,y v=dx,dy".
	ErrBadRobot = errors.New("input: invalid robot")
)

// Garden reads a plot map: one plant letter per cell.
func Garden(r io.Reader) (*grid.Grid[rune], error) {
	return grid.ParseRunes(r)
}

// Topography reads a height map of digits. Cells holding anything else load
// as grid.NoDigit and take part in no trail.
func Topography(r io.Reader) (*grid.Grid[int], error) {
	return grid.ParseDigits(r)
}

// Antennas reads a roof map: '.' for empty cells, any other rune names the
// frequency of the antenna standing there.
func Antennas(r io.Reader) (*grid.Grid[rune], error) {
	return grid.ParseRunes(r)
}

// Maze is a reindeer maze: '#' walls, an 'S' start and an 'E' end.
type Maze struct {
	Open  *grid.Grid[bool] // true where the walker may stand
	Start grid.Point
	End   grid.Point
}

// ParseMaze reads a maze. S and E must each appear exactly once.
func ParseMaze(r io.Reader) (*Maze, error) {
	cells, err := grid.ParseRunes(r)
	if err != nil {
		return nil, err
	}
	start, err := marker(cells, 'S')
	if err != nil {
		return nil, err
	}
	end, err := marker(cells, 'E')
	if err != nil {
		return nil, err
	}
	return &Maze{
		Open:  grid.Map(cells, func(r rune) bool { return r != '#' }),
		Start: start,
		End:   end,
	}, nil
}

// Lab is a patrol map: '#' obstacles and exactly one guard drawn as
// ^ v < > showing its initial facing.
type Lab struct {
	Blocked *grid.Grid[bool]
	Start   grid.Point
	Facing  grid.Direction
}

// ParseLab reads a patrol map.
func ParseLab(r io.Reader) (*Lab, error) {
	cells, err := grid.ParseRunes(r)
	if err != nil {
		return nil, err
	}
	guards := cells.FindAll(func(r rune) bool {
		_, err := grid.ParseDirection(r)
		return err == nil
	})
	switch {
	case len(guards) == 0:
		return nil, fmt.Errorf("%w: guard", ErrMissingMarker)
	case len(guards) > 1:
		return nil, fmt.Errorf("%w: guard at %v and %v", ErrDuplicateMarker, guards[0], guards[1])
	}
	facing, _ := grid.ParseDirection(cells.At(guards[0]))
	return &Lab{
		Blocked: grid.Map(cells, func(r rune) bool { return r == '#' }),
		Start:   guards[0],
		Facing:  facing,
	}, nil
}

// Points reads one "x,y" coordinate per line. Blank lines are skipped.
// Errors carry the 1-based line number.
func Points(r io.Reader) ([]grid.Point, error) {
	var out []grid.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadPoint, line, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	return out, nil
}

// Robots reads one "p=x,y v=dx,dy" robot per line. Blank lines are skipped.
func Robots(r io.Reader) ([]lattice.Robot, error) {
	var out []lattice.Robot
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rb, err := parseRobot(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRobot, line, err)
		}
		out = append(out, rb)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	return out, nil
}

func parseRobot(s string) (lattice.Robot, error) {
	ps, vs, ok := strings.Cut(s, " ")
	if !ok {
		return lattice.Robot{}, fmt.Errorf("%q has no velocity", s)
	}
	pos, ok := strings.CutPrefix(ps, "p=")
	if !ok {
		return lattice.Robot{}, fmt.Errorf("%q has no p=", ps)
	}
	vel, ok := strings.CutPrefix(strings.TrimSpace(vs), "v=")
	if !ok {
		return lattice.Robot{}, fmt.Errorf("%q has no v=", vs)
	}
	p, err := parsePoint(pos)
	if err != nil {
		return lattice.Robot{}, err
	}
	v, err := parsePoint(vel)
	if err != nil {
		return lattice.Robot{}, err
	}
	return lattice.Robot{Pos: p, Vel: v}, nil
}

func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("%q has no comma", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, err
	}
	return grid.Pt(x, y), nil
}

// marker finds the single cell holding r.
func marker(cells *grid.Grid[rune], r rune) (grid.Point, error) {
	at := cells.FindAll(func(c rune) bool { return c == r })
	switch len(at) {
	case 0:
		return grid.Point{}, fmt.Errorf("%w: %q", ErrMissingMarker, r)
	case 1:
		return at[0], nil
	}
	return grid.Point{}, fmt.Errorf("%w: %q at %v and %v", ErrDuplicateMarker, r, at[0], at[1])
}

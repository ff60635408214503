package lattice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/lattice"
)

const roof = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............`

func antenna(r rune) bool { return r != '.' }

func TestAntinodes_Roof(t *testing.T) {
	g, err := grid.ParseRunes(strings.NewReader(roof))
	require.NoError(t, err)

	pts, err := lattice.Antinodes(g, antenna)
	require.NoError(t, err)
	assert.Len(t, pts, 14)

	full, err := lattice.Antinodes(g, antenna, lattice.WithHarmonics())
	require.NoError(t, err)
	assert.Len(t, full, 34)
	for _, p := range pts {
		assert.Contains(t, full, p)
	}
	// with harmonics every antenna that has a partner is itself an antinode
	for _, p := range g.FindAll(antenna) {
		assert.Contains(t, full, p)
	}
}

func TestAntinodes_Pair(t *testing.T) {
	g, err := grid.ParseRunes(strings.NewReader("..........\n...a......\n.....a....\n.........."))
	require.NoError(t, err)

	pts, err := lattice.Antinodes(g, antenna)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{grid.Pt(1, 0), grid.Pt(7, 3)}, pts)

	full, err := lattice.Antinodes(g, antenna, lattice.WithHarmonics())
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{grid.Pt(1, 0), grid.Pt(3, 1), grid.Pt(5, 2), grid.Pt(7, 3)}, full)
}

func TestAntinodes_Edges(t *testing.T) {
	// different values never pair, and a lone antenna has no line
	g, err := grid.ParseRunes(strings.NewReader("a...\n..b.\n...."))
	require.NoError(t, err)
	pts, err := lattice.Antinodes(g, antenna, lattice.WithHarmonics())
	require.NoError(t, err)
	assert.Empty(t, pts)

	_, err = lattice.Antinodes[rune](nil, antenna)
	assert.ErrorIs(t, err, lattice.ErrNilGrid)
}

var swarm = []lattice.Robot{
	{Pos: grid.Pt(0, 4), Vel: grid.Pt(3, -3)},
	{Pos: grid.Pt(6, 3), Vel: grid.Pt(-1, -3)},
	{Pos: grid.Pt(10, 3), Vel: grid.Pt(-1, 2)},
	{Pos: grid.Pt(2, 0), Vel: grid.Pt(2, -1)},
	{Pos: grid.Pt(0, 0), Vel: grid.Pt(1, 3)},
	{Pos: grid.Pt(3, 0), Vel: grid.Pt(-2, -2)},
	{Pos: grid.Pt(7, 6), Vel: grid.Pt(-1, -3)},
	{Pos: grid.Pt(3, 0), Vel: grid.Pt(-1, -2)},
	{Pos: grid.Pt(9, 3), Vel: grid.Pt(2, 3)},
	{Pos: grid.Pt(7, 3), Vel: grid.Pt(-1, 2)},
	{Pos: grid.Pt(2, 4), Vel: grid.Pt(2, -3)},
	{Pos: grid.Pt(9, 5), Vel: grid.Pt(-3, -3)},
}

var bathroom = grid.Pt(11, 7)

func TestRobot_After(t *testing.T) {
	r := lattice.Robot{Pos: grid.Pt(2, 4), Vel: grid.Pt(2, -3)}
	want := []grid.Point{
		grid.Pt(2, 4), grid.Pt(4, 1), grid.Pt(6, 5), grid.Pt(8, 2), grid.Pt(10, 6), grid.Pt(1, 3),
	}
	for sec, p := range want {
		assert.Equal(t, p, r.After(sec, bathroom), "after %ds", sec)
	}
	// the torus repeats every W·H seconds
	assert.Equal(t, r.After(5, bathroom), r.After(5+11*7*3, bathroom))
}

func TestSafetyFactor(t *testing.T) {
	q, err := lattice.Quadrants(swarm, bathroom, 100)
	require.NoError(t, err)
	assert.Equal(t, [4]int{1, 3, 4, 1}, q)

	n, err := lattice.SafetyFactor(swarm, bathroom, 100)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	g, err := lattice.Tally(swarm, bathroom, 100)
	require.NoError(t, err)
	total := 0
	for _, c := range g.All() {
		total += c
	}
	assert.Equal(t, len(swarm), total)
	assert.Equal(t, 2, g.At(grid.Pt(6, 0)))
}

func TestTally_BadBounds(t *testing.T) {
	for _, b := range []grid.Point{grid.Pt(0, 7), grid.Pt(11, -1)} {
		_, err := lattice.Tally(swarm, b, 1)
		assert.ErrorIs(t, err, lattice.ErrBadBounds)
		_, err = lattice.SafetyFactor(swarm, b, 1)
		assert.ErrorIs(t, err, lattice.ErrBadBounds)
	}
}

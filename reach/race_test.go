package reach_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/reach"
)

const track = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############`

func notWall(r rune) bool { return r != '#' }

func loadTrack(t *testing.T, text string) (*grid.Grid[rune], grid.Point, grid.Point) {
	t.Helper()
	g, err := grid.ParseRunes(strings.NewReader(text))
	require.NoError(t, err)
	s, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(t, ok)
	e, ok := g.Find(func(r rune) bool { return r == 'E' })
	require.True(t, ok)
	return g, s, e
}

func TestCheats_Track(t *testing.T) {
	g, s, e := loadTrack(t, track)
	race, err := reach.Cheats(g, s, e, notWall)
	require.NoError(t, err)
	assert.Equal(t, 84, race.Baseline)

	assert.Equal(t, 2, race.Over(39))
	assert.Equal(t, 5, race.Over(15))
	assert.Equal(t, 44, race.Over(1))
	assert.Zero(t, race.Over(65))

	assert.Equal(t, map[int]int{
		2: 14, 4: 14, 6: 2, 8: 4, 10: 2, 12: 3,
		20: 1, 36: 1, 38: 1, 40: 1, 64: 1,
	}, race.Savings())
}

// TestCheats_Geometry checks every cheat against the distances it was
// priced from.
func TestCheats_Geometry(t *testing.T) {
	g, s, e := loadTrack(t, track)
	race, err := reach.Cheats(g, s, e, notWall)
	require.NoError(t, err)

	fromStart := reach.Distances(g, s, notWall)
	toEnd := reach.Distances(g, e, notWall)
	for _, c := range race.Cheats {
		assert.Equal(t, '#', g.At(c.Wall), "cheat %v", c)
		assert.Equal(t, 1, c.Wall.Manhattan(c.From))
		assert.Equal(t, 1, c.Wall.Manhattan(c.To))
		assert.Equal(t, c.Wall.Sub(c.From), c.To.Sub(c.Wall), "entry and exit must be opposite")
		assert.Equal(t, race.Baseline-c.Saves, fromStart[c.From]+2+toEnd[c.To])
		assert.Positive(t, c.Saves)
	}
}

func TestCheats_Small(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		baseline int
		want     []reach.Cheat
	}{
		{"Straight", ".....\n.###.\n.#.#.\nS...E", 4, nil},
		{"OneWall", "S.#.E\n.#.#.\n.....", 8, []reach.Cheat{
			{Wall: grid.Pt(2, 0), From: grid.Pt(1, 0), To: grid.Pt(3, 0), Saves: 4},
		}},
		// (2,1) joins the track along both axes and counts twice
		{"BothAxes", "S..#.\n..#..\n.#...\n...#E", 9, []reach.Cheat{
			{Wall: grid.Pt(3, 0), From: grid.Pt(2, 0), To: grid.Pt(4, 0), Saves: 2},
			{Wall: grid.Pt(2, 1), From: grid.Pt(1, 1), To: grid.Pt(3, 1), Saves: 2},
			{Wall: grid.Pt(2, 1), From: grid.Pt(2, 0), To: grid.Pt(2, 2), Saves: 2},
			{Wall: grid.Pt(1, 2), From: grid.Pt(0, 2), To: grid.Pt(2, 2), Saves: 2},
			{Wall: grid.Pt(3, 3), From: grid.Pt(2, 3), To: grid.Pt(4, 3), Saves: 2},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, s, e := loadTrack(t, tc.text)
			race, err := reach.Cheats(g, s, e, notWall)
			require.NoError(t, err)
			assert.Equal(t, tc.baseline, race.Baseline)
			assert.Equal(t, tc.want, race.Cheats)
		})
	}
}

func TestCheats_Errors(t *testing.T) {
	_, err := reach.Cheats[rune](nil, grid.Pt(0, 0), grid.Pt(1, 1), notWall)
	assert.ErrorIs(t, err, reach.ErrNilGrid)

	g, s, e := loadTrack(t, "S#E")
	_, err = reach.Cheats(g, s, grid.Pt(3, 0), notWall)
	assert.ErrorIs(t, err, reach.ErrOutOfBounds)
	_, err = reach.Cheats(g, s, e, notWall)
	assert.ErrorIs(t, err, reach.ErrUnreachable)
}

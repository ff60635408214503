package main

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/input"
)

func quiet() config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return config{workers: 2, size: 71, fallen: 1024, save: 100, width: 101, height: 103, seconds: 100, log: l}
}

const raceTrack = `###############
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
###############
`

func TestRun(t *testing.T) {
	bytesCfg := quiet()
	bytesCfg.size, bytesCfg.fallen = 7, 12
	raceCfg := quiet()
	raceCfg.save = 39
	robotsCfg := quiet()
	robotsCfg.width, robotsCfg.height = 11, 7

	cases := []struct {
		name string
		cfg  config
		text string
		want []answer
	}{
		{
			name: "regions",
			cfg:  quiet(),
			text: "AAAA\nBBCD\nBBCC\nEEEC\n",
			want: []answer{{"regions", "5"}, {"fence price", "140"}, {"bulk price", "80"}},
		},
		{
			name: "trails",
			cfg:  quiet(),
			text: "89010123\n78121874\n87430965\n96549874\n45678903\n32019012\n01329801\n10456732\n",
			want: []answer{{"score", "36"}, {"rating", "81"}},
		},
		{
			name: "maze",
			cfg:  quiet(),
			text: `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`,
			want: []answer{{"lowest score", "7,036"}, {"best seats", "45"}},
		},
		{
			name: "patrol",
			cfg:  quiet(),
			text: `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`,
			want: []answer{{"visited", "41"}, {"obstructions", "6"}},
		},
		{
			name: "bytes",
			cfg:  bytesCfg,
			text: "5,4\n4,2\n4,5\n3,0\n2,1\n6,3\n2,4\n1,5\n0,6\n3,3\n2,6\n5,1\n1,2\n5,5\n2,5\n6,5\n1,4\n0,4\n6,4\n1,1\n6,1\n1,0\n0,5\n1,6\n2,0\n",
			want: []answer{{"steps", "22"}, {"first blocker", "6,1"}},
		},
		{
			name: "race",
			cfg:  raceCfg,
			text: raceTrack,
			want: []answer{{"baseline", "84"}, {"cheats", "2"}},
		},
		{
			name: "antennas",
			cfg:  quiet(),
			text: "............\n........0...\n.....0......\n.......0....\n....0.......\n......A.....\n............\n............\n........A...\n.........A..\n............\n............\n",
			want: []answer{{"antinodes", "14"}, {"harmonics", "34"}},
		},
		{
			name: "robots",
			cfg:  robotsCfg,
			text: "p=0,4 v=3,-3\np=6,3 v=-1,-3\np=10,3 v=-1,2\np=2,0 v=2,-1\np=0,0 v=1,3\np=3,0 v=-2,-2\np=7,6 v=-1,-3\np=3,0 v=-1,-2\np=9,3 v=2,3\np=7,3 v=-1,2\np=2,4 v=2,-3\np=9,5 v=-3,-3\n",
			want: []answer{{"safety factor", "12"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(context.Background(), tc.name, strings.NewReader(tc.text), tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := run(context.Background(), "nope", strings.NewReader(""), quiet())
	assert.ErrorIs(t, err, errUnknownCommand)

	_, err = run(context.Background(), "maze", strings.NewReader("#S.#"), quiet())
	assert.ErrorIs(t, err, input.ErrMissingMarker)

	cfg := quiet()
	cfg.size = 3
	_, err = run(context.Background(), "bytes", strings.NewReader("5,5\n"), cfg)
	assert.Error(t, err)
}

func TestCommandList(t *testing.T) {
	assert.Equal(t, "antennas|bytes|maze|patrol|race|regions|robots|trails", commandList())
}

// closeTracker records whether the solver input was closed.
type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

// TestSolveFile_ClosesInput checks the input is closed on both the success
// and the failure path, before main gets a chance to exit.
func TestSolveFile_ClosesInput(t *testing.T) {
	orig := openInput
	t.Cleanup(func() { openInput = orig })

	cases := []struct {
		name    string
		command string
		text    string
		wantErr error
	}{
		{"Solved", "regions", "AAAA\nBBCD\nBBCC\nEEEC\n", nil},
		{"SolveFailed", "maze", "#S.#", input.ErrMissingMarker},
		{"UnknownCommand", "nope", "", errUnknownCommand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rc := &closeTracker{Reader: strings.NewReader(tc.text)}
			openInput = func(string) (io.ReadCloser, error) { return rc, nil }

			_, err := solveFile(context.Background(), tc.command, "input.txt", quiet())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, rc.closed, "input left open")
		})
	}
}

func TestSolveFile_Missing(t *testing.T) {
	_, err := solveFile(context.Background(), "regions", filepath.Join(t.TempDir(), "absent.txt"), quiet())
	assert.ErrorIs(t, err, fs.ErrNotExist)

	path := filepath.Join(t.TempDir(), "garden.txt")
	require.NoError(t, os.WriteFile(path, []byte("AAAA\nBBCD\nBBCC\nEEEC\n"), 0o600))
	got, err := solveFile(context.Background(), "regions", path, quiet())
	require.NoError(t, err)
	assert.Equal(t, []answer{{"regions", "5"}, {"fence price", "140"}, {"bulk price", "80"}}, got)
}

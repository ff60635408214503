package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
)

// TestNew_Errors verifies that New and FromRows reject empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	_, err := grid.New(0, 3, 'x')
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New(3, -1, 'x')
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestGet_BoundsInvariant sweeps a margin around a 4×3 grid: Get must
// succeed exactly on 0<=x<4, 0<=y<3.
func TestGet_BoundsInvariant(t *testing.T) {
	g, err := grid.New(4, 3, 7)
	require.NoError(t, err)

	for y := -3; y < 6; y++ {
		for x := -3; x < 7; x++ {
			p := grid.Pt(x, y)
			v, ok := g.Get(p)
			want := x >= 0 && x < 4 && y >= 0 && y < 3
			assert.Equal(t, want, ok, "Get(%v)", p)
			assert.Equal(t, want, g.InBounds(p), "InBounds(%v)", p)
			if ok {
				assert.Equal(t, 7, v)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}

// TestSetAt_RoundTrip writes a distinct value to each cell of a non-square
// grid and reads it back, catching any stride mix-up between width and height.
func TestSetAt_RoundTrip(t *testing.T) {
	g, err := grid.New(5, 2, 0)
	require.NoError(t, err)
	for p := range g.Points() {
		g.Set(p, p.Y*100+p.X)
	}
	for p := range g.Points() {
		require.Equal(t, p.Y*100+p.X, g.At(p))
	}
	assert.Equal(t, 10, g.Len())
	assert.Equal(t, grid.Pt(5, 2), g.Size())
}

// TestAt_PanicsOutOfBounds checks that unchecked access never aliases
// another row: (5,0) on a 5-wide grid would be index 5 == (0,1).
func TestAt_PanicsOutOfBounds(t *testing.T) {
	g, err := grid.New(5, 2, 'a')
	require.NoError(t, err)

	for _, p := range []grid.Point{grid.Pt(5, 0), grid.Pt(-1, 1), grid.Pt(0, 2)} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "At(%v) did not panic", p)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, grid.ErrOutOfBounds)
			}()
			_ = g.At(p)
		}()
	}
	assert.Panics(t, func() { g.Set(grid.Pt(2, -1), 'b') })
}

func TestClone_Independent(t *testing.T) {
	g, err := grid.FromRows([][]rune{[]rune("ab"), []rune("cd")})
	require.NoError(t, err)
	c := g.Clone()
	c.Set(grid.Pt(0, 0), 'z')
	assert.Equal(t, 'a', g.At(grid.Pt(0, 0)))
	assert.Equal(t, 'z', c.At(grid.Pt(0, 0)))
}

func TestFindCountMap(t *testing.T) {
	g, err := grid.ParseRunes(strings.NewReader("#.#\n.S.\n#.#\n"))
	require.NoError(t, err)

	p, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(t, ok)
	assert.Equal(t, grid.Pt(1, 1), p)

	_, ok = g.Find(func(r rune) bool { return r == 'E' })
	assert.False(t, ok)

	walls := g.FindAll(func(r rune) bool { return r == '#' })
	assert.Equal(t, []grid.Point{grid.Pt(0, 0), grid.Pt(2, 0), grid.Pt(0, 2), grid.Pt(2, 2)}, walls)
	assert.Equal(t, 4, g.Count(func(r rune) bool { return r == '.' }))

	open := grid.Map(g, func(r rune) bool { return r != '#' })
	assert.True(t, open.At(grid.Pt(1, 0)))
	assert.False(t, open.At(grid.Pt(0, 0)))

	open.Fill(false)
	assert.Zero(t, open.Count(func(b bool) bool { return b }))
}

func TestPoints_RowMajorAndEarlyStop(t *testing.T) {
	g, err := grid.New(2, 2, 0)
	require.NoError(t, err)

	var seen []grid.Point
	for p := range g.Points() {
		seen = append(seen, p)
	}
	assert.Equal(t, []grid.Point{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(0, 1), grid.Pt(1, 1)}, seen)

	n := 0
	for range g.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.w, tc.h)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrEmptyGrid)
		})
	}
}

func TestFromRows_Errors(t *testing.T) {
	_, err := grid.FromRows([][]int{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.FromRows([][]int{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.FromRows([][]int{{0, 1}, {0}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{
		{0, 1, 0},
		{0, 0, 2},
	}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.True(t, g.IsBlocked(grid.Cell{X: 1, Y: 0}))
	assert.True(t, g.IsBlocked(grid.Cell{X: 2, Y: 1}), "any non-zero value is a wall")

	rows[0][0] = 1
	assert.False(t, g.IsBlocked(grid.Cell{X: 0, Y: 0}), "grid must not alias caller rows")
	assert.Equal(t, [][]int{{0, 1, 0}, {0, 0, 1}}, g.Rows())
}

func TestParse(t *testing.T) {
	g, err := grid.Parse(`
		..#
		#..
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 2, g.BlockedCount())
	assert.Equal(t, "..#\n#..\n", g.String())

	_, err = grid.Parse("..x")
	assert.ErrorIs(t, err, grid.ErrBadRune)
	_, err = grid.Parse("...\n..")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = grid.Parse("\n\n")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Queries and mutation
//----------------------------------------------------------------------------//

func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, c := range []grid.Cell{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []grid.Cell{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		assert.True(t, g.IsBlocked(c), "out-of-bounds %v counts as blocked", c)
		assert.False(t, g.Passable(c))
	}
}

func TestSetBlockedAndToggle(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	c := grid.Cell{X: 1, Y: 1}

	require.NoError(t, g.SetBlocked(c, true))
	assert.True(t, g.IsBlocked(c))

	state, err := g.Toggle(c)
	require.NoError(t, err)
	assert.False(t, state)
	assert.True(t, g.Passable(c))

	state, err = g.Toggle(c)
	require.NoError(t, err)
	assert.True(t, state)

	assert.ErrorIs(t, g.SetBlocked(grid.Cell{X: 2, Y: 0}, true), grid.ErrOutOfBounds)
	_, err = g.Toggle(grid.Cell{X: 0, Y: -1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	g.Clear()
	assert.Zero(t, g.BlockedCount())
}

func TestClone_IsIndependent(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetBlocked(grid.Cell{X: 1, Y: 1}, true))

	snap := g.Clone()
	require.NoError(t, g.SetBlocked(grid.Cell{X: 0, Y: 0}, true))

	assert.True(t, snap.IsBlocked(grid.Cell{X: 1, Y: 1}))
	assert.False(t, snap.IsBlocked(grid.Cell{X: 0, Y: 0}))
}

func TestNeighbors_OrderAndFiltering(t *testing.T) {
	g, err := grid.Parse(`
		...
		...
		...
	`)
	require.NoError(t, err)

	center := grid.Cell{X: 1, Y: 1}
	assert.Equal(t, []grid.Cell{{2, 1}, {0, 1}, {1, 2}, {1, 0}}, g.Neighbors(center),
		"east, west, south, north")

	assert.Equal(t, []grid.Cell{{1, 0}, {0, 1}}, g.Neighbors(grid.Cell{X: 0, Y: 0}),
		"corner drops out-of-bounds cells")

	require.NoError(t, g.SetBlocked(grid.Cell{X: 2, Y: 1}, true))
	require.NoError(t, g.SetBlocked(grid.Cell{X: 1, Y: 0}, true))
	assert.Equal(t, []grid.Cell{{0, 1}, {1, 2}}, g.Neighbors(center), "walls are skipped")
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, grid.Manhattan(grid.Cell{X: 2, Y: 2}, grid.Cell{X: 2, Y: 2}))
	assert.Equal(t, 8, grid.Manhattan(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4}))
	assert.Equal(t, 5, grid.Manhattan(grid.Cell{X: 3, Y: -1}, grid.Cell{X: 0, Y: 1}))
}

package board_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func TestNew_DefaultLayout(t *testing.T) {
	b, err := board.New(config.DefaultGrid())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, grid.Cell{X: 0, Y: 0}, b.Start())
	assert.Equal(t, grid.Cell{X: 10, Y: 8}, b.End())
	assert.True(t, b.IsWall(grid.Cell{X: 3, Y: 8}))
	assert.True(t, b.IsWall(grid.Cell{X: 10, Y: 4}))
	assert.Equal(t, 2, b.Snapshot().Grid.BlockedCount())
}

func TestNew_Rejects(t *testing.T) {
	cfg := config.DefaultGrid()
	cfg.Walls = append(cfg.Walls, cfg.End)
	_, err := board.New(cfg)
	assert.ErrorIs(t, err, board.ErrEndpointWall)

	cfg = config.DefaultGrid()
	cfg.End = grid.Cell{X: 20, Y: 0}
	_, err = board.New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestToggleAndSetWall(t *testing.T) {
	b, err := board.New(config.DefaultGrid())
	require.NoError(t, err)

	c := grid.Cell{X: 5, Y: 5}
	on, err := b.Toggle(c)
	require.NoError(t, err)
	assert.True(t, on)
	on, err = b.Toggle(c)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = b.Toggle(b.Start())
	assert.ErrorIs(t, err, board.ErrEndpointWall)
	assert.ErrorIs(t, b.SetWall(b.End(), true), board.ErrEndpointWall)
	assert.NoError(t, b.SetWall(b.End(), false), "clearing an endpoint is a no-op")

	_, err = b.Toggle(grid.Cell{X: -1, Y: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	b.Clear()
	assert.Zero(t, b.Snapshot().Grid.BlockedCount())
}

func TestSnapshot_IsolatedFromEdits(t *testing.T) {
	b, err := board.New(config.DefaultGrid())
	require.NoError(t, err)

	snap := b.Snapshot()
	_, err = b.Toggle(grid.Cell{X: 1, Y: 0})
	require.NoError(t, err)

	assert.False(t, snap.Grid.IsBlocked(grid.Cell{X: 1, Y: 0}))
	assert.True(t, b.IsWall(grid.Cell{X: 1, Y: 0}))
}

func TestSolve(t *testing.T) {
	b, err := board.New(config.DefaultGrid())
	require.NoError(t, err)

	for _, algo := range search.Algorithms() {
		res, err := b.Solve(context.Background(), algo)
		require.NoError(t, err)
		assert.Equal(t, 19, res.Path.Len(), string(algo))
		assert.Equal(t, b.Start(), res.Path[0])
		assert.Equal(t, b.End(), res.Path[len(res.Path)-1])
	}

	// wall the end in: west, east, south, north
	for _, c := range []grid.Cell{{X: 9, Y: 8}, {X: 11, Y: 8}, {X: 10, Y: 9}, {X: 10, Y: 7}} {
		require.NoError(t, b.SetWall(c, true))
	}
	res, err := b.Solve(context.Background(), search.AStar)
	require.NoError(t, err)
	assert.Empty(t, res.Path)

	_, err = b.Solve(context.Background(), "DFS")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestTrace_EndsWithPath(t *testing.T) {
	b, err := board.New(config.DefaultGrid())
	require.NoError(t, err)

	var last search.Event
	visits := 0
	for ev := range b.Trace(search.BFS) {
		if ev.Kind == search.EventVisit {
			visits++
		}
		last = ev
	}
	assert.Equal(t, search.EventPath, last.Kind)
	assert.Equal(t, 178, visits)
}

func TestJSON_RoundTrip(t *testing.T) {
	b, err := board.New(config.DefaultGrid())
	require.NoError(t, err)

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, b.ID().String(), doc["id"])
	assert.Equal(t, map[string]any{"x": 10.0, "y": 8.0}, doc["end"])

	var back board.Board
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, b.ID(), back.ID())
	assert.Equal(t, b.Snapshot().Grid.String(), back.Snapshot().Grid.String())

	err = json.Unmarshal([]byte(`{"rows":[[0,0]],"start":{"x":0,"y":0},"end":{"x":5,"y":0}}`), &back)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

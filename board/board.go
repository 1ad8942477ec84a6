// Package board owns the long-lived, mutable demo board: a grid plus its
// fixed start and end cells. UIs edit a Board; searches run on snapshots.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var (
	// ErrEndpointWall is returned when a wall would cover the start or end cell.
	ErrEndpointWall = errors.New("board: start and end cells cannot be walls")
	// ErrNotFound is returned by a Store for an unknown board ID.
	ErrNotFound = errors.New("board: not found")
)

// Board is a grid with fixed endpoints, safe for concurrent use.
// Edits take the write lock; Snapshot and Solve take the read lock only long
// enough to clone the grid, so a running search never sees a later edit.
type Board struct {
	mu    sync.RWMutex
	id    uuid.UUID
	grid  *grid.Grid
	start grid.Cell
	end   grid.Cell
}

// Snapshot is an immutable copy of a board's state.
type Snapshot struct {
	ID    uuid.UUID
	Grid  *grid.Grid
	Start grid.Cell
	End   grid.Cell
}

// New builds a board with a fresh ID from the configured layout.
func New(cfg config.Grid) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.Walls {
		if w == cfg.Start || w == cfg.End {
			return nil, fmt.Errorf("%w: %v", ErrEndpointWall, w)
		}
		if err := g.SetBlocked(w, true); err != nil {
			return nil, err
		}
	}

	return &Board{id: uuid.New(), grid: g, start: cfg.Start, end: cfg.End}, nil
}

// ID returns the board identifier.
func (b *Board) ID() uuid.UUID { return b.id }

// Start returns the fixed start cell.
func (b *Board) Start() grid.Cell { return b.start }

// End returns the fixed end cell.
func (b *Board) End() grid.Cell { return b.end }

// Toggle flips the wall at c and returns the new state.
func (b *Board) Toggle(c grid.Cell) (bool, error) {
	if c == b.start || c == b.end {
		return false, fmt.Errorf("%w: %v", ErrEndpointWall, c)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.grid.Toggle(c)
}

// SetWall places (true) or removes (false) the wall at c.
func (b *Board) SetWall(c grid.Cell, wall bool) error {
	if wall && (c == b.start || c == b.end) {
		return fmt.Errorf("%w: %v", ErrEndpointWall, c)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.grid.SetBlocked(c, wall)
}

// Clear removes every wall.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid.Clear()
}

// IsWall reports whether c is currently a wall.
func (b *Board) IsWall(c grid.Cell) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.grid.IsBlocked(c)
}

// Snapshot returns a copy of the board that later edits do not affect.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Snapshot{ID: b.id, Grid: b.grid.Clone(), Start: b.start, End: b.end}
}

// Solve runs algo from start to end on a snapshot of the board.
func (b *Board) Solve(ctx context.Context, algo search.Algorithm) (search.Result, error) {
	s := b.Snapshot()
	return search.Run(algo, s.Grid, s.Start, s.End, search.WithContext(ctx))
}

// Trace streams the events of running algo on a snapshot of the board.
func (b *Board) Trace(algo search.Algorithm) iter.Seq[search.Event] {
	s := b.Snapshot()
	return search.Trace(algo, s.Grid, s.Start, s.End)
}

// document is the JSON form of a board.
type document struct {
	ID     uuid.UUID `json:"id"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Rows   [][]int   `json:"rows"`
	Start  grid.Cell `json:"start"`
	End    grid.Cell `json:"end"`
}

// MarshalJSON encodes the board as {id, width, height, rows, start, end};
// rows[y][x] is 1 for a wall.
func (b *Board) MarshalJSON() ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return json.Marshal(document{
		ID:     b.id,
		Width:  b.grid.Width,
		Height: b.grid.Height,
		Rows:   b.grid.Rows(),
		Start:  b.start,
		End:    b.end,
	})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (b *Board) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	g, err := grid.FromRows(doc.Rows)
	if err != nil {
		return fmt.Errorf("board: decode %s: %w", doc.ID, err)
	}
	if err := g.Check(doc.Start); err != nil {
		return fmt.Errorf("board: decode %s start: %w", doc.ID, err)
	}
	if err := g.Check(doc.End); err != nil {
		return fmt.Errorf("board: decode %s end: %w", doc.ID, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.id, b.grid, b.start, b.end = doc.ID, g, doc.Start, doc.End
	return nil
}

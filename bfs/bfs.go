// Package bfs provides breadth-first search over a grid.Grid,
// returning the fewest-step path between two cells.
//
// BFS explores cells in non-decreasing hop distance from the start cell,
// with optional hooks, cancellation, and an expansion limit.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state for a single Search call.
type walker struct {
	grid     *grid.Grid
	opts     Options
	ctx      context.Context
	end      grid.Cell
	queue    []queueItem
	visited  map[grid.Cell]bool
	prev     map[grid.Cell]grid.Cell
	expanded int
}

// Search runs breadth-first search on g from start to end,
// applying any number of functional Options.
//
// Returns the shortest path in hop count, start and end inclusive, or an
// empty path when end is unreachable or either endpoint is a wall.
// Errors: ErrGridNil, grid.ErrOutOfBounds for endpoints outside g,
// ErrOptionViolation for bad options, ErrExpansionLimit, the context error
// on cancellation, or any hook error (wrapped).
func Search(g *grid.Grid, start, end grid.Cell, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate endpoints
	if err := g.Check(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}
	if err := g.Check(end); err != nil {
		return nil, fmt.Errorf("bfs: end: %w", err)
	}
	// A walled endpoint can never be reached
	if g.IsBlocked(start) || g.IsBlocked(end) {
		return grid.Path{}, nil
	}

	n := g.Width * g.Height
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		end:     end,
		queue:   make([]queueItem, 0, n),
		visited: make(map[grid.Cell]bool, n),
		prev:    make(map[grid.Cell]grid.Cell, n),
	}

	// Seed queue with start cell (no predecessor)
	if err := w.enqueue(start, 0); err != nil {
		return nil, err
	}

	return w.loop(start)
}

// enqueue marks c visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(c grid.Cell, d int) error {
	w.visited[c] = true
	if err := w.opts.OnEnqueue(c, d); err != nil {
		return fmt.Errorf("bfs: OnEnqueue error at %v: %w", c, err)
	}
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
	return nil
}

// loop processes the queue until end is dequeued, the queue empties,
// or an error or cancellation occurs.
func (w *walker) loop(start grid.Cell) (grid.Path, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return nil, err
		}
		if item.cell == w.end {
			return grid.Reconstruct(w.prev, start, w.end), nil
		}
		if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d cells expanded", ErrExpansionLimit, w.expanded)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}

	return grid.Path{}, nil
}

// dequeue pops the first item off the queue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit counts the expansion and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.expanded++
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}
	return nil
}

// enqueueNeighbors pushes every passable, unseen neighbor of item in the
// grid's fixed east, west, south, north order, recording item as predecessor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	for _, nbr := range w.grid.Neighbors(item.cell) {
		// first time seen?
		if w.visited[nbr] {
			continue
		}
		w.prev[nbr] = item.cell
		if err := w.enqueue(nbr, item.depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Package bfs provides breadth-first search over a grid.Grid,
// returning the fewest-step path between a start and an end cell.
//
// What
//
//   - Explore cells in non-decreasing hop distance from the start cell.
//   - Stop as soon as the end cell is dequeued and rebuild the route
//     with grid.Reconstruct.
//   - Return an empty grid.Path (and nil error) when the end is unreachable
//     or when either endpoint is a wall.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (cell discovered and pushed to the frontier)
//   - OnVisit   (cell dequeued for expansion; may abort with an error)
//
// Determinism
//
//	grid.Neighbors yields cells in the fixed order east, west, south, north,
//	and BFS enqueues them in that order, so among several equally short
//	routes the same one is always returned.
//
// Complexity (W×H cells)
//
//   - Time:   O(W×H)   (each cell enqueued at most once, at most 4 neighbors each)
//   - Memory: O(W×H)   (queue, visited set, predecessor map)
//
// Usage
//
//	path, err := bfs.Search(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4})
//	if err != nil {
//	    // ErrGridNil, grid.ErrOutOfBounds, ErrOptionViolation,
//	    // ErrExpansionLimit, context errors, or hook errors
//	}
//	if path.Empty() {
//	    // unreachable
//	}
//
//	path, err = bfs.Search(
//	    g, start, end,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxExpansions(1000),
//	    bfs.WithOnVisit(func(c grid.Cell, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - grid.ErrOutOfBounds if start or end lies outside the grid.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxExpansions).
//   - ErrExpansionLimit   if MaxExpansions cells were expanded without reaching end.
//   - Wrapped user-supplied hook errors and ctx.Err() on cancellation.
package bfs

// Package grid models a rectangular board of passable and blocked cells
// and the paths found across it.
//
// What:
//
//   - Cell is a comparable (x, y) coordinate, usable directly as a map key.
//   - Grid stores row-major blocked flags with fixed Width and Height.
//   - Neighbors enumerates the passable 4-neighbors of a cell in the fixed
//     order east, west, south, north.
//   - Path is an ordered Start→End cell sequence; Reconstruct builds one
//     from a predecessor map.
//
// Why:
//
//   - Search packages (bfs, astar) share one obstacle model and one
//     path reconstruction routine.
//   - The fixed neighbor order makes every search deterministic.
//
// Mutation:
//
//	SetBlocked and Toggle exist for the UI layer only. Searches treat a Grid
//	as read-only input; callers that edit a board while searching it must
//	hand the search a Clone.
//
// Complexity:
//
//   - InBounds, IsBlocked, SetBlocked: O(1).
//   - Neighbors: O(1) (at most four cells).
//   - Clone, Rows, String: O(W×H).
//   - Reconstruct: O(path length).
//
// Errors:
//
//   - ErrEmptyGrid: zero width or height.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: a cell outside the grid was addressed.
//   - ErrBadRune: Parse met a rune other than '#' or '.'.
package grid

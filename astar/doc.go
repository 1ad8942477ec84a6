// Package astar implements A* search on a grid.Grid with unit step cost
// and the Manhattan distance heuristic.
//
// A* expands cells in order of fScore = gScore + h, where gScore is the
// known cost from the start and h the Manhattan distance to the end. The
// heuristic is admissible and consistent on a 4-connected grid, so the first
// time the end cell is expanded its path is a minimum-cost path.
//
// Open set:
//
//   - An indexed binary min-heap ordered by (fScore, insertion sequence).
//   - A cell's insertion sequence is assigned when it joins the open set and
//     kept while it stays there; an improved fScore re-heapifies in place.
//   - Among equal fScores the cell that entered the open set first wins. This
//     matches a first-match linear scan over an insertion-ordered open list.
//
// Closed cells:
//
//	There is no closed set. A neighbor is relaxed whenever the tentative gScore
//	is strictly lower than its recorded one, even if it was expanded before;
//	such a cell re-enters the open set with a new insertion sequence.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H))
//   - Space: O(W×H) for the score maps, predecessor map and heap.
//
// Errors (sentinel):
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an Option is invalid.
//   - ErrExpansionLimit   if MaxExpansions cells were expanded without reaching end.
//   - grid.ErrOutOfBounds if start or end lies outside the grid.
//
// Example usage:
//
//	path, err := astar.Search(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 9, Y: 9})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path.Steps())
package astar

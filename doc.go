// Package gridpath is a playground for shortest-path search on a 2D grid of
// open cells and walls, with the same board driven from a browser page or
// from the terminal.
//
// What is in the box:
//
//	grid/    Cell, Grid and Path: walls, bounds, neighbors, path rebuilding
//	bfs/     breadth-first search, fewest-step paths
//	astar/   A* with the Manhattan heuristic
//	search/  pick an algorithm by name, run it, count work, stream events
//	board/   a shared, lockable board with memory and Redis stores
//	config/  .env and environment settings
//	api/     gin HTTP API plus the embedded canvas page
//	tui/     tcell terminal front end
//
// Binaries live under cmd/: gridpathd serves HTTP, gridpath runs in the
// terminal.
//
// Quick ASCII example, S to E around one wall:
//
//	S . . .
//	. # # .
//	. . . E
//
// Both algorithms find a 5-step route; A* expands fewer cells on the way.
package gridpath

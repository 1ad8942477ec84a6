package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleRun compares BFS and A* on the default 20×20 demo board:
// start (0,0), end (10,8), walls at (3,8) and (10,4).
func ExampleRun() {
	g, _ := grid.New(20, 20)
	_ = g.SetBlocked(grid.Cell{X: 3, Y: 8}, true)
	_ = g.SetBlocked(grid.Cell{X: 10, Y: 4}, true)

	for _, algo := range search.Algorithms() {
		res, err := search.Run(algo, g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 10, Y: 8})
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %d steps, %d cells expanded\n", algo, res.Path.Steps(), res.Visited)
	}
	// Output:
	// BFS: 18 steps, 178 cells expanded
	// A*: 18 steps, 97 cells expanded
}

// ExampleTrace streams search events instead of painting them.
func ExampleTrace() {
	g, _ := grid.Parse(`
		..
		#.
	`)
	for ev := range search.Trace(search.BFS, g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 1, Y: 1}) {
		fmt.Println(ev.Kind, ev.Cell)
	}
	// Output:
	// enqueue (0,0)
	// visit (0,0)
	// enqueue (1,0)
	// visit (1,0)
	// enqueue (1,1)
	// visit (1,1)
	// path (1,1)
}

package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSearch routes from the bottom-left to the top-right corner of a small
// maze and reports how many cells A* had to expand.
func ExampleSearch() {
	g, _ := grid.Parse(`
		......
		.####.
		......
		.#.##.
		.#....
	`)
	expanded := 0
	path, err := astar.Search(g, grid.Cell{X: 0, Y: 4}, grid.Cell{X: 5, Y: 0},
		astar.WithOnVisit(func(grid.Cell, int) error { expanded++; return nil }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	fmt.Println("expanded:", expanded)
	// Output:
	// (0,4) (0,3) (0,2) (1,2) (2,2) (3,2) (4,2) (5,2) (5,1) (5,0)
	// expanded: 16
}

package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGrid_Neighbors shows the fixed east, west, south, north order
// and how walls and edges prune it.
func ExampleGrid_Neighbors() {
	g, _ := grid.Parse(`
		.#.
		...
	`)
	fmt.Println(g.Neighbors(grid.Cell{X: 1, Y: 1}))
	fmt.Println(g.Neighbors(grid.Cell{X: 0, Y: 0}))
	// Output:
	// [(2,1) (0,1)]
	// [(0,1)]
}

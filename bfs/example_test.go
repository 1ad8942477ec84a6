package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSearch finds the fewest-step route around a wall on a 5×5 board.
// Ties between equally short routes follow the east, west, south, north order.
func ExampleSearch() {
	g, _ := grid.Parse(`
		.....
		..#..
		..#..
		..#..
		..#..
	`)
	path, err := bfs.Search(g, grid.Cell{X: 0, Y: 4}, grid.Cell{X: 4, Y: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path.Steps(), "steps")
	fmt.Println(path)
	// Output:
	// 12 steps
	// (0,4) (1,4) (1,3) (1,2) (1,1) (1,0) (2,0) (3,0) (4,0) (4,1) (4,2) (4,3) (4,4)
}

// ExampleSearch_hooks records the order in which cells are expanded.
func ExampleSearch_hooks() {
	g, _ := grid.New(3, 2)
	var order []grid.Cell
	_, _ = bfs.Search(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 1},
		bfs.WithOnVisit(func(c grid.Cell, _ int) error {
			order = append(order, c)
			return nil
		}),
	)
	fmt.Println(order)
	// Output:
	// [(0,0) (1,0) (0,1) (2,0) (1,1) (2,1)]
}

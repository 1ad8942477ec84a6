package grid

import "fmt"

// Cell is a grid coordinate: X is the column, Y the row, both 0-indexed.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// neighborOffsets lists 4-connected moves in search order: east, west, south, north.
// The order decides which of several equal-length paths a search returns.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rectangular occupancy map. Width and Height are fixed at construction;
// blocked[y*Width+x] reports whether cell (x,y) is a wall.
type Grid struct {
	Width, Height int
	blocked       []bool
}

package grid

import (
	"fmt"
	"strings"
)

// New returns an all-passable grid of the given dimensions.
// Returns ErrEmptyGrid if either dimension is less than one.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, width, height)
	}

	return &Grid{
		Width:   width,
		Height:  height,
		blocked: make([]bool, width*height),
	}, nil
}

// FromRows builds a grid from rows[y][x]; any non-zero value is a wall.
// The input is copied, later edits to rows do not affect the grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			g.blocked[g.index(x, y)] = v != 0
		}
	}

	return g, nil
}

// Parse reads the ASCII form produced by String: '#' is a wall, '.' is open,
// one row per line. Blank lines and surrounding spaces are ignored.
func Parse(text string) (*Grid, error) {
	var rows [][]int
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, r := range line {
			switch r {
			case '#':
				row = append(row, 1)
			case '.':
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("%w: %q in row %d", ErrBadRune, r, len(rows))
			}
		}
		rows = append(rows, row)
	}

	return FromRows(rows)
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsBlocked reports whether c is a wall. Cells outside the grid count as blocked.
func (g *Grid) IsBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c.X, c.Y)]
}

// Passable reports whether c is inside the grid and not a wall.
func (g *Grid) Passable(c Cell) bool {
	return !g.IsBlocked(c)
}

// Check returns ErrOutOfBounds, wrapped with the cell and grid size,
// if c lies outside the grid.
func (g *Grid) Check(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}
	return nil
}

// SetBlocked marks c as a wall (true) or open (false).
func (g *Grid) SetBlocked(c Cell, blocked bool) error {
	if err := g.Check(c); err != nil {
		return err
	}
	g.blocked[g.index(c.X, c.Y)] = blocked
	return nil
}

// Toggle flips the wall state of c and returns the new state.
func (g *Grid) Toggle(c Cell) (bool, error) {
	if err := g.Check(c); err != nil {
		return false, err
	}
	i := g.index(c.X, c.Y)
	g.blocked[i] = !g.blocked[i]
	return g.blocked[i], nil
}

// Clear opens every cell.
func (g *Grid) Clear() {
	for i := range g.blocked {
		g.blocked[i] = false
	}
}

// BlockedCount returns the number of walls.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	blocked := make([]bool, len(g.blocked))
	copy(blocked, g.blocked)

	return &Grid{Width: g.Width, Height: g.Height, blocked: blocked}
}

// Neighbors returns the passable orthogonal neighbors of c in the order
// east, west, south, north. Out-of-bounds and blocked cells are skipped.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.IsBlocked(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Rows returns the grid as rows[y][x] with 1 for walls and 0 for open cells.
// It is the inverse of FromRows.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = make([]int, g.Width)
		for x := 0; x < g.Width; x++ {
			if g.blocked[g.index(x, y)] {
				rows[y][x] = 1
			}
		}
	}
	return rows
}

// String renders the grid in the ASCII form accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.blocked[g.index(x, y)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

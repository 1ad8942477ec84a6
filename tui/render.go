package tui

import (
	"strings"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/grid"
)

// Render draws s as plain text, one row per line: 'S' start, 'E' end,
// '#' wall, '*' path, '.' open.
func Render(s board.Snapshot, p grid.Path) string {
	var sb strings.Builder
	sb.Grow((s.Grid.Width + 1) * s.Grid.Height)
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			switch {
			case c == s.Start:
				sb.WriteByte('S')
			case c == s.End:
				sb.WriteByte('E')
			case s.Grid.IsBlocked(c):
				sb.WriteByte('#')
			case p.Contains(c):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

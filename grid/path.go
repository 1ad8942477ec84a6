package grid

import "strings"

// Path is an ordered sequence of cells from start to end, both inclusive.
// An empty Path means no route exists.
type Path []Cell

// Len returns the number of cells in p.
func (p Path) Len() int { return len(p) }

// Empty reports whether p holds no cells.
func (p Path) Empty() bool { return len(p) == 0 }

// Steps returns the number of moves along p, zero for an empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c is on p.
func (p Path) Contains(c Cell) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Contiguous reports whether consecutive cells differ by exactly one unit
// along exactly one axis.
func (p Path) Contiguous() bool {
	for i := 1; i < len(p); i++ {
		if Manhattan(p[i-1], p[i]) != 1 {
			return false
		}
	}
	return true
}

// String renders the path as "(x,y) (x,y) ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Reconstruct walks prev backward from end until it reaches a cell with no
// predecessor (start), returning the cells in start→end order.
// end must have been reached by the search: present in prev or equal to start.
// Complexity: O(path length).
func Reconstruct(prev map[Cell]Cell, start, end Cell) Path {
	// build reversed path
	path := Path{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

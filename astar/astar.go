package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// inf stands in for an absent gScore or fScore.
const inf = math.MaxInt

// Heuristic is the Manhattan distance between a and b. It never overestimates
// the remaining cost on a 4-connected grid with unit step cost.
func Heuristic(a, b grid.Cell) int {
	return grid.Manhattan(a, b)
}

// Search computes a minimum-cost path from start to end on g, where each
// orthogonal step costs 1.
//
// Returns the path, start and end inclusive, or an empty path when end is
// unreachable or either endpoint is a wall.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and end must lie inside g (grid.ErrOutOfBounds).
//
// Ties between equal fScores go to the cell that entered the open set first.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H))
//   - Space: O(W×H)
func Search(g *grid.Grid, start, end grid.Cell, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := g.Check(start); err != nil {
		return nil, fmt.Errorf("astar: start: %w", err)
	}
	if err := g.Check(end); err != nil {
		return nil, fmt.Errorf("astar: end: %w", err)
	}
	if g.IsBlocked(start) || g.IsBlocked(end) {
		return grid.Path{}, nil
	}

	n := g.Width * g.Height
	r := &runner{
		g:      g,
		opts:   cfg,
		ctx:    cfg.Ctx,
		start:  start,
		end:    end,
		gScore: make(map[grid.Cell]int, n),
		fScore: make(map[grid.Cell]int, n),
		prev:   make(map[grid.Cell]grid.Cell, n),
		open:   make(map[grid.Cell]*openItem, n),
		pq:     make(openPQ, 0, n),
	}
	if err := r.init(); err != nil {
		return nil, err
	}

	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *grid.Grid
	opts     Options
	ctx      context.Context
	start    grid.Cell
	end      grid.Cell
	gScore   map[grid.Cell]int       // known cost from start; absent means +∞
	fScore   map[grid.Cell]int       // gScore + heuristic; absent means +∞
	prev     map[grid.Cell]grid.Cell // predecessor on the best known path
	open     map[grid.Cell]*openItem // cells currently in the open set
	pq       openPQ
	seq      int // insertion counter for tie-breaking
	expanded int
}

// score reads m[c], treating an absent entry as +∞.
func score(m map[grid.Cell]int, c grid.Cell) int {
	if v, ok := m[c]; ok {
		return v
	}
	return inf
}

// init seeds the open set with the start cell.
func (r *runner) init() error {
	r.gScore[r.start] = 0
	r.fScore[r.start] = Heuristic(r.start, r.end)
	heap.Init(&r.pq)

	return r.push(r.start)
}

// push adds c to the open set with a fresh insertion sequence number.
func (r *runner) push(c grid.Cell) error {
	item := &openItem{cell: c, f: r.fScore[c], seq: r.seq}
	r.seq++
	r.open[c] = item
	heap.Push(&r.pq, item)
	if err := r.opts.OnEnqueue(c, r.gScore[c]); err != nil {
		return fmt.Errorf("astar: OnEnqueue error at %v: %w", c, err)
	}
	return nil
}

// process repeatedly expands the open cell with the lowest fScore until the
// end cell is reached or the open set is exhausted.
func (r *runner) process() (grid.Path, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return nil, r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*openItem)
		cur := item.cell
		delete(r.open, cur)

		r.expanded++
		if err := r.opts.OnVisit(cur, r.gScore[cur]); err != nil {
			return nil, fmt.Errorf("astar: OnVisit error at %v: %w", cur, err)
		}
		if cur == r.end {
			return grid.Reconstruct(r.prev, r.start, r.end), nil
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d cells expanded", ErrExpansionLimit, r.expanded)
		}
		if err := r.relax(cur); err != nil {
			return nil, err
		}
	}

	return grid.Path{}, nil
}

// relax tries to improve every passable neighbor of cur. Closed cells are not
// skipped: any strictly cheaper route re-opens them.
func (r *runner) relax(cur grid.Cell) error {
	tentative := r.gScore[cur] + 1
	for _, nbr := range r.g.Neighbors(cur) {
		if tentative >= score(r.gScore, nbr) {
			continue
		}
		r.prev[nbr] = cur
		r.gScore[nbr] = tentative
		r.fScore[nbr] = tentative + Heuristic(nbr, r.end)

		if item, ok := r.open[nbr]; ok {
			// keep its place in line, only its priority changes
			item.f = r.fScore[nbr]
			heap.Fix(&r.pq, item.index)
			continue
		}
		if err := r.push(nbr); err != nil {
			return err
		}
	}
	return nil
}

// openItem is a cell in the open set. seq records when it joined the set and
// stays fixed while the cell remains open.
type openItem struct {
	cell  grid.Cell
	f     int
	seq   int
	index int // position in the heap, maintained by openPQ
}

// openPQ is a min-heap of *openItem ordered by f, then by seq.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openPQ) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

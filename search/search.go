// Package search is the single entry point UIs use to run a pathfinder:
// it selects BFS or A* by name and returns the route between two cells.
package search

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// FindPath runs algo on g from start to end and returns the route, or an
// empty path when end is unreachable. An unrecognized algo yields
// ErrUnknownAlgorithm; input errors from the algorithm are passed through.
func FindPath(algo Algorithm, g *grid.Grid, start, end grid.Cell, opts ...Option) (grid.Path, error) {
	res, err := Run(algo, g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Run is FindPath plus search effort counters.
func Run(algo Algorithm, g *grid.Grid, start, end grid.Cell, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	res := Result{Algorithm: algo}
	onEnqueue := func(c grid.Cell, d int) error {
		res.Enqueued++
		return o.OnEvent(Event{Kind: EventEnqueue, Cell: c, Depth: d})
	}
	onVisit := func(c grid.Cell, d int) error {
		res.Visited++
		return o.OnEvent(Event{Kind: EventVisit, Cell: c, Depth: d})
	}

	var (
		path grid.Path
		err  error
	)
	switch algo {
	case BFS:
		path, err = bfs.Search(g, start, end,
			bfs.WithContext(o.Ctx),
			bfs.WithMaxExpansions(o.MaxExpansions),
			bfs.WithOnEnqueue(onEnqueue),
			bfs.WithOnVisit(onVisit),
		)
	case AStar:
		path, err = astar.Search(g, start, end,
			astar.WithContext(o.Ctx),
			astar.WithMaxExpansions(o.MaxExpansions),
			astar.WithOnEnqueue(onEnqueue),
			astar.WithOnVisit(onVisit),
		)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}
	if err != nil {
		return Result{}, err
	}
	res.Path = path

	return res, nil
}

// errStopTrace aborts a traced search when the consumer stops ranging.
var errStopTrace = errors.New("search: trace stopped")

// Trace returns a lazy stream of the events produced by running algo.
// The stream ends with exactly one of EventPath, EventNoPath or EventError,
// unless the consumer breaks out early, which stops the search.
//
//	for ev := range search.Trace(search.AStar, g, start, end) {
//	    render(ev)
//	}
func Trace(algo Algorithm, g *grid.Grid, start, end grid.Cell, opts ...Option) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		hook := WithOnEvent(func(ev Event) error {
			if !yield(ev) {
				return errStopTrace
			}
			return nil
		})
		// the hook goes last so it wins over any caller-supplied OnEvent
		path, err := FindPath(algo, g, start, end, append(opts[:len(opts):len(opts)], hook)...)
		switch {
		case errors.Is(err, errStopTrace):
			return
		case err != nil:
			yield(Event{Kind: EventError, Err: err})
		case path.Empty():
			yield(Event{Kind: EventNoPath})
		default:
			yield(Event{Kind: EventPath, Cell: end, Depth: path.Steps(), Path: path})
		}
	}
}

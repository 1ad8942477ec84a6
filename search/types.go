// Package search defines the algorithm selector, options, events and
// results shared by the search facade.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for the search facade.
var (
	// ErrUnknownAlgorithm is returned for a selector outside Algorithms().
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm names a pathfinding strategy.
type Algorithm string

const (
	// BFS is unweighted breadth-first search.
	BFS Algorithm = "BFS"
	// AStar is A* with the Manhattan heuristic.
	AStar Algorithm = "A*"
)

// Algorithms lists the supported selectors in display order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, AStar}
}

// ParseAlgorithm resolves a user-supplied name, case-insensitively.
// Accepted: "bfs", "a*", "astar", "a-star".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "a*", "astar", "a-star":
		return AStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// EventKind classifies a search event.
type EventKind int

const (
	// EventEnqueue: a cell joined the frontier.
	EventEnqueue EventKind = iota
	// EventVisit: a cell was taken off the frontier and expanded.
	EventVisit
	// EventPath: the search finished with a route (Event.Path).
	EventPath
	// EventNoPath: the search finished and the end is unreachable.
	EventNoPath
	// EventError: the search failed (Event.Err).
	EventError
)

// String returns a short lowercase name for k.
func (k EventKind) String() string {
	switch k {
	case EventEnqueue:
		return "enqueue"
	case EventVisit:
		return "visit"
	case EventPath:
		return "path"
	case EventNoPath:
		return "no-path"
	case EventError:
		return "error"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one step of a search as seen by a renderer.
// Depth is the hop count (BFS) or gScore (A*) of Cell.
type Event struct {
	Kind  EventKind
	Cell  grid.Cell
	Depth int
	Path  grid.Path
	Err   error
}

// Result is the outcome of Run.
type Result struct {
	Algorithm Algorithm
	Path      grid.Path
	Visited   int // cells expanded
	Enqueued  int // cells pushed to the frontier
}

// Option configures Run, FindPath and Trace.
type Option func(*Options)

// Options holds facade-level settings forwarded to the selected algorithm.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search after that many expansions.
	MaxExpansions int

	// OnEvent receives enqueue and visit events; a non-nil error aborts.
	OnEvent func(Event) error

	err error
}

// DefaultOptions returns a background context, no limit and no event hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnEvent: func(Event) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded cells (0 = no limit).
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEvent registers a callback for enqueue and visit events.
func WithOnEvent(fn func(Event) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}

// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions cells were expanded
	// without reaching the end cell.
	ErrExpansionLimit = errors.New("bfs: expansion limit reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered and pushed to the frontier.
	// Receives the cell and its hop distance from start. A non-nil error aborts.
	OnEnqueue func(c grid.Cell, depth int) error

	// OnVisit is called when a cell is dequeued for expansion.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(c grid.Cell, depth int) error

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many
	// cells were dequeued. A value of 0 disables the limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion limit
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnEnqueue:     func(grid.Cell, int) error { return nil },
		OnVisit:       func(grid.Cell, int) error { return nil },
		MaxExpansions: 0,
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

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxExpansions bounds the number of dequeued cells.
//
//	n > 0: limit to n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

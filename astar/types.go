// Package astar defines error values and configuration options
// for A* search over a grid.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to Search.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates that MaxExpansions cells were expanded
	// without reaching the end cell.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Options configures the behavior of Search.
//
// OnEnqueue     – called when a cell joins the open set, with its gScore.
// OnVisit       – called when a cell is popped for expansion, with its gScore.
// MaxExpansions – abort after this many expansions (0 disables the limit).
type Options struct {
	Ctx           context.Context
	OnEnqueue     func(c grid.Cell, g int) error
	OnVisit       func(c grid.Cell, g int) error
	MaxExpansions int

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no-op hooks
// and no expansion limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Cell, int) error { return nil },
		OnVisit:   func(grid.Cell, int) error { return nil },
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

// WithOnEnqueue registers a callback run whenever a cell joins the open set.
func WithOnEnqueue(fn func(c grid.Cell, g int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run whenever a cell is expanded.
// Returning an error stops the search.
func WithOnVisit(fn func(c grid.Cell, g int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxExpansions bounds the number of expanded cells.
// Negative values are recorded and surfaced as ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

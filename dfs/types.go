// Package dfs defines types and options for depth-first path finding,
// including cancellation, a visit hook and an expansion budget.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.GridGraph is passed to FindPath.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStepBudget is returned when more cells would be expanded than
	// WithMaxSteps allows.
	ErrStepBudget = errors.New("dfs: step budget exhausted")

	// ErrNoPath marks the "no path" outcome; see Result.Err.
	ErrNoPath = errors.New("dfs: no path between start and end")
)

// Option configures optional behavior of DFS traversal.
// Use with FindPath(g, start, end, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a cell is first visited.
	// Returning an error aborts traversal with that error.
	OnVisit func(p gridgraph.Point) error

	// MaxSteps, if positive, caps the number of popped stack entries.
	// Zero disables the budget.
	MaxSteps int

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
//   - No step budget
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxSteps: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook.
func WithOnVisit(fn func(p gridgraph.Point) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxSteps returns an Option that limits how many stack entries are popped.
// A negative value is recorded and reported as ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result captures the outcome of a depth-first path search.
type Result struct {
	// Directions lists the moves from start to end. The path is valid but
	// not necessarily the shortest.
	Directions []gridgraph.Direction

	// Found reports whether end was reached.
	Found bool

	// Explored counts popped stack entries, including stale ones.
	Explored int
}

// Err returns ErrNoPath when no path was found, nil otherwise.
func (r *Result) Err() error {
	if !r.Found {
		return ErrNoPath
	}
	return nil
}

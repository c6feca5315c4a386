// Package bfs provides tunable options and error definitions
// for breadth-first path finding over a gridgraph.GridGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStepBudget is returned when the search expands more nodes than
	// allowed by WithMaxSteps.
	ErrStepBudget = errors.New("bfs: step budget exhausted")

	// ErrNoPath marks the "no path" outcome. FindPath never returns it
	// directly; Result.Err converts a negative outcome into it.
	ErrNoPath = errors.New("bfs: no path between start and end")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative step budget), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell and its distance from the start.
	OnEnqueue func(p gridgraph.Point, depth int)

	// OnDequeue is called immediately before a cell is expanded.
	OnDequeue func(p gridgraph.Point, depth int)

	// MaxSteps, if > 0, caps the number of dequeued cells.
	// A value of 0 explicitly disables the budget.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no step budget (MaxSteps == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Point, int) {},
		OnDequeue: func(gridgraph.Point, int) {},
		MaxSteps:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p gridgraph.Point, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p gridgraph.Point, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxSteps limits how many cells may be expanded.
//
//	n > 0: at most n dequeues, then ErrStepBudget
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxSteps = n
		}
	}
}

// Result holds the outcome of FindPath:
//   - Directions: moves from start to end, in travel order.
//   - Found: false when the end cell is unreachable.
//   - Explored: number of cells dequeued during the search.
type Result struct {
	Directions []gridgraph.Direction
	Found      bool
	Explored   int
}

// Err returns ErrNoPath when no path was found, nil otherwise.
func (r *Result) Err() error {
	if !r.Found {
		return ErrNoPath
	}
	return nil
}

// Len returns the number of moves on the path (0 when not found).
func (r *Result) Len() int {
	return len(r.Directions)
}

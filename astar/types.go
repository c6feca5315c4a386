// Package astar defines core types and configuration options
// for A* path finding on a maze grid.
//
// A* expands cells in order of f = g + h, where g is the number of moves
// taken from the start and h is the Manhattan distance to the end. On a
// 4-connected grid with unit moves the Manhattan distance never
// overestimates and is consistent, so the first time the end cell is
// expanded its g value is the shortest distance.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = Rows×Cols
//	   • Each cell is expanded at most once.
//	   • Each improvement pushes a heap entry (at most 4 per cell).
//	– Space: O(N)
//	   • g-scores, parent links, closed flags and the heap.
//
// Options:
//
//	– WithContext:  cancellation and deadlines.
//	– WithMaxSteps: cap on popped heap entries (0 = no cap).
//
// Errors (sentinel):
//
//	– ErrGridNil         if the provided grid pointer is nil.
//	– ErrOptionViolation if MaxSteps < 0.
//	– ErrStepBudget      if the cap is reached before the end cell.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGridNil indicates that a nil *gridgraph.GridGraph was passed.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrStepBudget indicates the MaxSteps cap was reached.
	ErrStepBudget = errors.New("astar: step budget exhausted")

	// ErrNoPath marks the "no path" outcome; see Result.Err.
	ErrNoPath = errors.New("astar: no path between start and end")
)

// Options configures the behavior of the A* search.
//
// Ctx      – cancellation; checked once per popped heap entry.
// MaxSteps – optional cap on popped heap entries. Must be ≥ 0; 0 means no cap.
type Options struct {
	Ctx      context.Context
	MaxSteps int
	err      error
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

// WithContext sets the context used for cancellation.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the number of popped heap entries.
// Negative values cause ErrOptionViolation when FindPath runs.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:      context.Background().
//   - MaxSteps: 0 (no cap).
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
	}
}

// Result is the outcome of an A* search.
type Result struct {
	Directions []gridgraph.Direction // moves from start to end
	Found      bool                  // false when end is unreachable
	Explored   int                   // popped heap entries, stale ones included
}

// Err returns ErrNoPath when no path was found, nil otherwise.
func (r *Result) Err() error {
	if !r.Found {
		return ErrNoPath
	}
	return nil
}

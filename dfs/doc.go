// Package dfs implements depth-first path finding on a gridgraph.GridGraph.
// It is the comparison baseline for the BFS path finder: it finds *a* path
// quickly on corridor-like mazes but gives no length guarantee.
//
// Key features:
//   - FindPath(g, start, end, opts...): iterative (no recursion depth limit)
//   - Deterministic neighbour order: Up, Right, Left, Down
//   - Hooks: OnVisit with error aborts
//   - Limits: MaxSteps expansion budget
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(R×C) pops of live entries plus O(4×R×C) stale entries at most.
//   - Memory: O(R×C) for the stack, visited flags and parent links.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation via context.Context.
//   - WithOnVisit(fn)    hook on first visit of a cell; error aborts traversal.
//   - WithMaxSteps(n)    stops after n pops (n > 0); 0 disables the limit.
//
// Errors:
//
//   - ErrGridNil                    if g is nil.
//   - gridgraph.ErrPointOutOfBounds if start or end is outside the grid.
//   - ErrOptionViolation            if an option value is invalid.
//   - ErrStepBudget                 if the budget is exhausted.
//   - context.Canceled              if ctx is done.
//   - any error returned by OnVisit.
package dfs

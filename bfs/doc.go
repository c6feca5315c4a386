// Package bfs provides the maze path finder: a breadth-first search over a
// gridgraph.GridGraph that returns the shortest sequence of moves between
// two cells.
//
// What
//
//   - Explore cells in non-decreasing distance (move count) from a start cell.
//   - Mark cells visited when they are enqueued, record (predecessor, move)
//     exactly once per cell, and rebuild the path by walking those links
//     back from the end cell.
//   - Return a Result containing:
//   - Directions: moves from start to end in travel order
//   - Found:      whether the end cell was reached
//   - Explored:   how many cells were expanded
//   - Supports hooks at two stages:
//   - OnEnqueue (when a cell is discovered)
//   - OnDequeue (immediately before expanding)
//   - Honors a step budget (WithMaxSteps) and context cancellation.
//
// Determinism
//
//	Neighbours are expanded in gridgraph.Directions order (Up, Right, Left,
//	Down). When several shortest paths exist, the one favoured by that order
//	at each expansion is returned, so repeated calls give identical output.
//
// Complexity (N = Rows×Cols)
//
//   - Time:   O(N)   (each cell enqueued at most once, four probes each)
//   - Memory: O(N)   (queue, visited flags, parent links)
//
// Usage
//
//	res, err := bfs.FindPath(g, start, end)
//	if err != nil {
//	    // ErrGridNil, gridgraph.ErrPointOutOfBounds, ErrOptionViolation,
//	    // ErrStepBudget or a context error
//	}
//	if !res.Found {
//	    // no path: expected outcome, not a fault
//	}
//
//	// With functional options:
//	res, err := bfs.FindPath(
//	    g, start, end,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxSteps(1_000_000),
//	    bfs.WithOnDequeue(func(p gridgraph.Point, depth int) { /* ... */ }),
//	)
//
// Distances(g, src) runs the same traversal to exhaustion and returns the
// full distance table, which is handy as an independent oracle.
//
// Errors
//
//   - ErrGridNil                    if the grid pointer is nil.
//   - gridgraph.ErrPointOutOfBounds if start or end lies outside the grid.
//   - ErrOptionViolation            if an Option is invalid (negative budget).
//   - ErrStepBudget                 if MaxSteps expansions did not finish.
//   - ctx.Err()                     on cancellation or deadline.
//   - ErrNoPath                     only via Result.Err, for callers that
//     prefer an error over checking Found.
package bfs

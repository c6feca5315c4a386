package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// frame is one pending stack entry: a cell and the move that led to it.
type frame struct {
	idx    int
	parent int // -1 for the start cell
	dir    gridgraph.Direction
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid     *gridgraph.GridGraph
	opts     DFSOptions
	stack    []frame
	visited  []bool
	prev     []int
	move     []gridgraph.Direction
	explored int
}

// FindPath performs an iterative depth-first search on g from start to end.
//
// Cells are marked visited when popped, and the parent link of a cell is
// fixed at that moment. Neighbours are pushed in reverse so that they are
// popped in gridgraph.Directions order (Up, Right, Left, Down), which keeps
// the output deterministic. The returned path is valid but usually longer
// than the BFS one.
//
// Returns ErrGridNil, gridgraph.ErrPointOutOfBounds or ErrOptionViolation
// for invalid input, ErrStepBudget, a context error, or an OnVisit error.
func FindPath(g *gridgraph.GridGraph, start, end gridgraph.Point, opts ...Option) (*Result, error) {
	// 1. Validate input grid and endpoints
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.CheckPoint(start); err != nil {
		return nil, err
	}
	if err := g.CheckPoint(end); err != nil {
		return nil, err
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Initialize walker
	n := g.Len()
	w := &dfsWalker{
		grid:    g,
		opts:    dopts,
		stack:   make([]frame, 0, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
		move:    make([]gridgraph.Direction, n),
	}

	// 4. Search
	target := g.Index(end)
	found, err := w.search(g.Index(start), target)
	if err != nil {
		return nil, err
	}
	res := &Result{Found: found, Explored: w.explored}
	if found {
		res.Directions = w.reconstruct(target)
	}

	return res, nil
}

// search pops frames until target is reached or the stack is empty.
func (w *dfsWalker) search(src, target int) (bool, error) {
	w.stack = append(w.stack, frame{idx: src, parent: -1})

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.explored >= w.opts.MaxSteps {
			return false, ErrStepBudget
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.explored++

		if w.visited[top.idx] {
			continue // stale entry pushed before the cell was reached another way
		}
		w.visited[top.idx] = true
		w.prev[top.idx] = top.parent
		w.move[top.idx] = top.dir

		p := w.grid.PointAt(top.idx)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(p); err != nil {
				return false, fmt.Errorf("dfs: OnVisit error at %s: %w", p, err)
			}
		}
		if top.idx == target {
			return true, nil
		}

		for i := len(gridgraph.Directions) - 1; i >= 0; i-- {
			d := gridgraph.Directions[i]
			next, ok := w.grid.Step(p, d)
			if !ok {
				continue
			}
			ni := w.grid.Index(next)
			if !w.visited[ni] {
				w.stack = append(w.stack, frame{idx: ni, parent: top.idx, dir: d})
			}
		}
	}

	return false, nil
}

// reconstruct follows parent links back from target and reverses them.
func (w *dfsWalker) reconstruct(target int) []gridgraph.Direction {
	path := make([]gridgraph.Direction, 0)
	for cur := target; w.prev[cur] >= 0; cur = w.prev[cur] {
		path = append(path, w.move[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

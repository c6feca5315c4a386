// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// returning the shortest move sequence between two cells.
//
// BFS explores cells in increasing distance from the start,
// with optional hooks, a step budget and cancellation.
package bfs

import (
	"context"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// noTarget makes the walker exhaust the reachable region.
const noTarget = -1

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	grid     *gridgraph.GridGraph
	opts     BFSOptions
	ctx      context.Context
	queue    []queueItem
	visited  []bool
	prev     []int                 // predecessor index, -1 for none
	move     []gridgraph.Direction // direction taken from prev to reach the cell
	depth    []int
	explored int
}

// FindPath runs breadth-first search on g from start towards end and
// reconstructs the move sequence of a shortest path.
//
// Neighbours are expanded in gridgraph.Directions order (Up, Right, Left,
// Down); cells are marked visited when enqueued, so each cell gets exactly
// one parent and the returned path has minimal length.
//
// Returns ErrGridNil, gridgraph.ErrPointOutOfBounds or ErrOptionViolation for
// invalid input (before any traversal), ErrStepBudget when the budget runs
// out, or the context error on cancellation. An unreachable end is reported
// through Result.Found, not as an error. start == end yields an empty path.
func FindPath(g *gridgraph.GridGraph, start, end gridgraph.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.CheckPoint(start); err != nil {
		return nil, err
	}
	if err := g.CheckPoint(end); err != nil {
		return nil, err
	}
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	target := g.Index(end)
	found, err := w.run(g.Index(start), target)
	if err != nil {
		return nil, err
	}
	res := &Result{Found: found, Explored: w.explored}
	if found {
		res.Directions = w.reconstruct(target)
	}

	return res, nil
}

// Distances runs a full BFS from src and returns the distance (in moves) to
// every cell, or -1 for cells that cannot be reached. Walls are -1 as well,
// except for src itself which is always 0.
func Distances(g *gridgraph.GridGraph, src gridgraph.Point, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.CheckPoint(src); err != nil {
		return nil, err
	}
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.run(g.Index(src), noTarget); err != nil {
		return nil, err
	}

	dist := make([][]int, g.Rows)
	for r := range dist {
		dist[r] = make([]int, g.Cols)
		for c := range dist[r] {
			idx := g.Index(gridgraph.Point{Row: r, Col: c})
			if w.visited[idx] {
				dist[r][c] = w.depth[idx]
			} else {
				dist[r][c] = -1
			}
		}
	}

	return dist, nil
}

// newWalker applies options and allocates per-search state.
func newWalker(g *gridgraph.GridGraph, opts []Option) (*walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
		move:    make([]gridgraph.Direction, n),
		depth:   make([]int, n),
	}
	for i := range w.prev {
		w.prev[i] = -1
	}

	return w, nil
}

// enqueue marks idx visited at depth d, records its parent link,
// calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int, dir gridgraph.Direction) {
	w.visited[idx] = true
	w.depth[idx] = d
	if parent >= 0 {
		w.prev[idx] = parent
		w.move[idx] = dir
	}
	w.opts.OnEnqueue(w.grid.PointAt(idx), d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// run processes the queue until the target is dequeued, the queue empties,
// the budget runs out, or the context is cancelled.
func (w *walker) run(src, target int) (bool, error) {
	w.enqueue(src, 0, -1, 0)

	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.explored >= w.opts.MaxSteps {
			return false, ErrStepBudget
		}

		item := w.dequeue()
		if item.idx == target {
			return true, nil
		}
		w.expand(item)
	}

	return false, nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.explored++
	w.opts.OnDequeue(w.grid.PointAt(item.idx), item.depth)
	return item
}

// expand enqueues every in-bounds, unvisited, traversable neighbour
// in the fixed direction order.
func (w *walker) expand(item queueItem) {
	p := w.grid.PointAt(item.idx)
	for _, d := range gridgraph.Directions {
		next, ok := w.grid.Step(p, d)
		if !ok {
			continue
		}
		ni := w.grid.Index(next)
		if !w.visited[ni] {
			w.enqueue(ni, item.depth+1, item.idx, d)
		}
	}
}

// reconstruct walks parent links back from target and returns the moves
// in start→target order. The start cell has no parent, which ends the walk.
func (w *walker) reconstruct(target int) []gridgraph.Direction {
	path := make([]gridgraph.Direction, 0, w.depth[target])
	for cur := target; w.prev[cur] >= 0; cur = w.prev[cur] {
		path = append(path, w.move[cur])
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Package astar implements A* path finding with a Manhattan heuristic on a
// gridgraph.GridGraph.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once a cell is closed.
//   - Heap ties are broken by smaller h, then by push sequence, so equal
//     inputs always give equal outputs.
//   - Neighbours are generated in gridgraph.Directions order.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// FindPath computes a shortest move sequence from start to end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. start and end must be in bounds (gridgraph.ErrPointOutOfBounds).
//  3. options must be valid (ErrOptionViolation).
//
// An unreachable end is reported through Result.Found.
func FindPath(g *gridgraph.GridGraph, start, end gridgraph.Point, opts ...Option) (*Result, error) {
	// 1) Validate grid and endpoints
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.CheckPoint(start); err != nil {
		return nil, err
	}
	if err := g.CheckPoint(end); err != nil {
		return nil, err
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Prepare per-search state
	n := g.Len()
	r := &runner{
		g:      g,
		opts:   cfg,
		end:    end,
		gScore: make([]int, n),
		prev:   make([]int, n),
		move:   make([]gridgraph.Direction, n),
		closed: make([]bool, n),
		pq:     make(nodePQ, 0, n),
	}
	r.init(start)

	// 4) Run main loop
	found, err := r.process(g.Index(end))
	if err != nil {
		return nil, err
	}
	res := &Result{Found: found, Explored: r.explored}
	if found {
		res.Directions = r.reconstruct(g.Index(end))
	}

	return res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *gridgraph.GridGraph
	opts     Options
	end      gridgraph.Point
	gScore   []int                 // best known move count from start
	prev     []int                 // predecessor index, -1 for none
	move     []gridgraph.Direction // move taken from prev
	closed   []bool                // expanded cells
	pq       nodePQ
	seq      int
	explored int
}

// init sets all g-scores to +∞ and pushes the start cell.
func (r *runner) init(start gridgraph.Point) {
	for i := range r.gScore {
		r.gScore[i] = math.MaxInt
		r.prev[i] = -1
	}
	heap.Init(&r.pq)
	si := r.g.Index(start)
	r.gScore[si] = 0
	r.push(si, 0, start)
}

// push records a heap entry with its heuristic and a fresh sequence number.
func (r *runner) push(idx, g int, p gridgraph.Point) {
	heap.Push(&r.pq, &nodeItem{idx: idx, g: g, h: p.Manhattan(r.end), seq: r.seq})
	r.seq++
}

// process pops cells by ascending f until target is closed or the heap empties.
func (r *runner) process(target int) (bool, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return false, r.opts.Ctx.Err()
		default:
		}
		if r.opts.MaxSteps > 0 && r.explored >= r.opts.MaxSteps {
			return false, ErrStepBudget
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		r.explored++
		if r.closed[item.idx] {
			continue // stale entry
		}
		r.closed[item.idx] = true
		if item.idx == target {
			return true, nil
		}
		r.relax(item)
	}

	return false, nil
}

// relax pushes every neighbour whose g-score improves.
func (r *runner) relax(item *nodeItem) {
	p := r.g.PointAt(item.idx)
	for _, d := range gridgraph.Directions {
		next, ok := r.g.Step(p, d)
		if !ok {
			continue
		}
		ni := r.g.Index(next)
		if r.closed[ni] {
			continue
		}
		ng := item.g + 1
		if ng >= r.gScore[ni] {
			continue
		}
		r.gScore[ni] = ng
		r.prev[ni] = item.idx
		r.move[ni] = d
		r.push(ni, ng, next)
	}
}

// reconstruct follows parent links back from target and reverses them.
func (r *runner) reconstruct(target int) []gridgraph.Direction {
	path := make([]gridgraph.Direction, 0, r.gScore[target])
	for cur := target; r.prev[cur] >= 0; cur = r.prev[cur] {
		path = append(path, r.move[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a heap entry: a cell with its g, h and push sequence.
type nodeItem struct {
	idx int
	g   int
	h   int
	seq int
}

// nodePQ is a min-heap of *nodeItem ordered by (g+h, h, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then by the heuristic, then by insertion.
func (pq nodePQ) Less(i, j int) bool {
	fi, fj := pq[i].g+pq[i].h, pq[j].g+pq[j].h
	if fi != fj {
		return fi < fj
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Package report runs several solvers on one maze and renders a side-by-side
// comparison: whether a path was found, its length, how many cells each
// solver explored, wall-clock time and heap allocation.
//
// Allocation is measured as the growth of runtime.MemStats.TotalAlloc across
// the call. It is an upper bound on the solver's live heap, not a true peak.
package report

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/solve"
)

// Stats is one solver's row in the report.
type Stats struct {
	Name       string // registry key, e.g. "astar"
	Found      bool
	PathLength int // 0 when not found
	Explored   int
	Elapsed    time.Duration
	AllocKB    float64
	Directions []gridgraph.Direction
}

// displayNames maps registry keys to report headings.
var displayNames = map[string]string{
	solve.BFS:   "BFS",
	solve.DFS:   "DFS",
	solve.AStar: "A*",
}

// DisplayName returns the heading used for a solver in Write.
func DisplayName(name string) string {
	if s, ok := displayNames[name]; ok {
		return s
	}
	return name
}

// Run executes each named solver in order; no names means all of solve.Names().
// The first solver error aborts the run.
func Run(ctx context.Context, g *gridgraph.GridGraph, start, end gridgraph.Point, maxSteps int, names ...string) ([]Stats, error) {
	if len(names) == 0 {
		names = solve.Names()
	}

	out := make([]Stats, 0, len(names))
	for _, name := range names {
		key, err := solve.Normalize(name)
		if err != nil {
			return nil, err
		}
		fn, err := solve.Lookup(key)
		if err != nil {
			return nil, err
		}

		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		began := time.Now()

		res, err := fn(ctx, g, start, end, maxSteps)

		elapsed := time.Since(began)
		runtime.ReadMemStats(&after)
		if err != nil {
			return nil, fmt.Errorf("report: %s: %w", key, err)
		}

		st := Stats{
			Name:       key,
			Found:      res.Found,
			Explored:   res.Explored,
			Elapsed:    elapsed,
			AllocKB:    float64(after.TotalAlloc-before.TotalAlloc) / 1024,
			Directions: res.Directions,
		}
		if res.Found {
			st.PathLength = len(res.Directions)
		}
		out = append(out, st)
	}

	return out, nil
}

// Write renders stats in the plain-text report layout, one block per solver
// followed by a blank line.
func Write(w io.Writer, stats []Stats) error {
	for _, st := range stats {
		path := "No path found."
		if st.Found {
			path = mazefile.FormatDirections(st.Directions)
		}
		_, err := fmt.Fprintf(w,
			"Solver: %s\n"+
				"  Found path: %t\n"+
				"  Path length: %d\n"+
				"  Nodes explored: %d\n"+
				"  Time taken: %.6f seconds\n"+
				"  Peak memory usage: %.2f KB\n"+
				"  Path taken: %s\n\n",
			DisplayName(st.Name), st.Found, st.PathLength, st.Explored,
			st.Elapsed.Seconds(), st.AllocKB, path)
		if err != nil {
			return fmt.Errorf("report: write: %w", err)
		}
	}

	return nil
}

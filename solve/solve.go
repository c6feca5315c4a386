// Package solve routes a solver name to one of the maze path finders.
//
// All solvers share one function type so the CLI, the benchmark report and
// the HTTP server can treat them uniformly:
//
//	fn, err := solve.Lookup("astar")
//	out, err := fn(ctx, g, start, end, 0)
//
// Names are matched case-insensitively; an empty name selects Default.
package solve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Solver names.
const (
	BFS   = "bfs"
	DFS   = "dfs"
	AStar = "astar"

	// Default is used when no name is given.
	Default = BFS
)

// ErrUnknownSolver is returned by Lookup for names outside Names().
var ErrUnknownSolver = errors.New("solve: unknown solver")

// Outcome is the solver-independent result of a search.
type Outcome struct {
	Directions []gridgraph.Direction
	Found      bool
	Explored   int
}

// Len returns the number of moves on the path (0 when not found).
func (o Outcome) Len() int {
	if !o.Found {
		return 0
	}
	return len(o.Directions)
}

// Func searches g from start to end. maxSteps ≤ 0 disables the step budget.
type Func func(ctx context.Context, g *gridgraph.GridGraph, start, end gridgraph.Point, maxSteps int) (Outcome, error)

// names keeps registration order for Names().
var names = []string{BFS, DFS, AStar}

var registry = map[string]Func{
	BFS:   runBFS,
	DFS:   runDFS,
	AStar: runAStar,
}

// Names returns the registered solver names in a stable order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)

	return out
}

// Lookup returns the solver registered under name.
func Lookup(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	fn, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSolver, name, strings.Join(names, ", "))
	}

	return fn, nil
}

// Normalize returns the canonical registry key for name, or ErrUnknownSolver.
func Normalize(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Default, nil
	}
	if _, ok := registry[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}

	return key, nil
}

// Run looks up name and executes it.
func Run(ctx context.Context, name string, g *gridgraph.GridGraph, start, end gridgraph.Point, maxSteps int) (Outcome, error) {
	fn, err := Lookup(name)
	if err != nil {
		return Outcome{}, err
	}

	return fn(ctx, g, start, end, maxSteps)
}

// IsStepBudget reports whether err stems from any solver's step budget.
func IsStepBudget(err error) bool {
	return errors.Is(err, bfs.ErrStepBudget) ||
		errors.Is(err, dfs.ErrStepBudget) ||
		errors.Is(err, astar.ErrStepBudget)
}

func runBFS(ctx context.Context, g *gridgraph.GridGraph, start, end gridgraph.Point, maxSteps int) (Outcome, error) {
	opts := []bfs.Option{bfs.WithContext(ctx)}
	if maxSteps > 0 {
		opts = append(opts, bfs.WithMaxSteps(maxSteps))
	}
	res, err := bfs.FindPath(g, start, end, opts...)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Directions: res.Directions, Found: res.Found, Explored: res.Explored}, nil
}

func runDFS(ctx context.Context, g *gridgraph.GridGraph, start, end gridgraph.Point, maxSteps int) (Outcome, error) {
	opts := []dfs.Option{dfs.WithContext(ctx)}
	if maxSteps > 0 {
		opts = append(opts, dfs.WithMaxSteps(maxSteps))
	}
	res, err := dfs.FindPath(g, start, end, opts...)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Directions: res.Directions, Found: res.Found, Explored: res.Explored}, nil
}

func runAStar(ctx context.Context, g *gridgraph.GridGraph, start, end gridgraph.Point, maxSteps int) (Outcome, error) {
	opts := []astar.Option{astar.WithContext(ctx)}
	if maxSteps > 0 {
		opts = append(opts, astar.WithMaxSteps(maxSteps))
	}
	res, err := astar.FindPath(g, start, end, opts...)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Directions: res.Directions, Found: res.Found, Explored: res.Explored}, nil
}

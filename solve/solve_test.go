package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/solve"
)

func pt(r, c int) gridgraph.Point { return gridgraph.Point{Row: r, Col: c} }

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"bfs", "dfs", "astar"}, solve.Names())

	// callers cannot mutate the registry order
	n := solve.Names()
	n[0] = "x"
	assert.Equal(t, "bfs", solve.Names()[0])
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"bfs", "DFS", " astar ", ""} {
		fn, err := solve.Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn, name)
	}

	_, err := solve.Lookup("dijkstra")
	require.ErrorIs(t, err, solve.ErrUnknownSolver)
	assert.Contains(t, err.Error(), "dijkstra")
}

func TestNormalize(t *testing.T) {
	got, err := solve.Normalize("  AStar")
	require.NoError(t, err)
	assert.Equal(t, solve.AStar, got)

	got, err = solve.Normalize("")
	require.NoError(t, err)
	assert.Equal(t, solve.Default, got)

	_, err = solve.Normalize("greedy")
	require.ErrorIs(t, err, solve.ErrUnknownSolver)
}

// TestRun_AllSolversAgreeOnReachability runs every solver on one maze.
func TestRun_AllSolversAgreeOnReachability(t *testing.T) {
	g, err := gridgraph.From2D([][]uint8{
		{0, 0, 1},
		{1, 0, 1},
		{1, 0, 0},
	})
	require.NoError(t, err)

	for _, name := range solve.Names() {
		out, err := solve.Run(context.Background(), name, g, pt(0, 0), pt(2, 2), 0)
		require.NoError(t, err, name)
		require.True(t, out.Found, name)
		end, err := g.Walk(pt(0, 0), out.Directions)
		require.NoError(t, err, name)
		assert.Equal(t, pt(2, 2), end, name)
		assert.Positive(t, out.Explored, name)
	}

	bfsOut, err := solve.Run(context.Background(), solve.BFS, g, pt(0, 0), pt(2, 2), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, bfsOut.Len())
	assert.Equal(t, []gridgraph.Direction{gridgraph.Right, gridgraph.Right, gridgraph.Down, gridgraph.Down}, bfsOut.Directions)
}

func TestRun_NoPath(t *testing.T) {
	g, err := gridgraph.From2D([][]uint8{{0, 9, 0}})
	require.NoError(t, err)

	for _, name := range solve.Names() {
		out, err := solve.Run(context.Background(), name, g, pt(0, 0), pt(0, 2), 0)
		require.NoError(t, err, name)
		assert.False(t, out.Found, name)
		assert.Equal(t, 0, out.Len(), name)
	}
}

func TestRun_StepBudget(t *testing.T) {
	g, err := gridgraph.From2D([][]uint8{make([]uint8, 20)})
	require.NoError(t, err)

	for _, name := range solve.Names() {
		_, err := solve.Run(context.Background(), name, g, pt(0, 0), pt(0, 19), 3)
		require.Error(t, err, name)
		assert.True(t, solve.IsStepBudget(err), name)
	}
	assert.False(t, solve.IsStepBudget(context.Canceled))
}

func TestRun_Errors(t *testing.T) {
	g, err := gridgraph.From2D([][]uint8{{0}})
	require.NoError(t, err)

	_, err = solve.Run(context.Background(), "nope", g, pt(0, 0), pt(0, 0), 0)
	require.ErrorIs(t, err, solve.ErrUnknownSolver)

	for _, name := range solve.Names() {
		_, err = solve.Run(context.Background(), name, g, pt(0, 0), pt(5, 5), 0)
		require.ErrorIs(t, err, gridgraph.ErrPointOutOfBounds, name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, name := range solve.Names() {
		_, err = solve.Run(ctx, name, g, pt(0, 0), pt(0, 0), 0)
		require.ErrorIs(t, err, context.Canceled, name)
	}
}

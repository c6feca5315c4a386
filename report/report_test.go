package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/report"
	"github.com/katalvlaran/mazepath/solve"
)

func pt(r, c int) gridgraph.Point { return gridgraph.Point{Row: r, Col: c} }

// maze is the classic seven-column example with one corridor back up.
//
//	0 9 9 9 9 9 0
//	1 1 1 1 1 9 1
//	1 9 9 9 1 9 1
//	1 9 9 1 1 9 1
//	1 1 1 1 1 1 1
func maze(t *testing.T) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.From2D([][]uint8{
		{0, 9, 9, 9, 9, 9, 0},
		{1, 1, 1, 1, 1, 9, 1},
		{1, 9, 9, 9, 1, 9, 1},
		{1, 9, 9, 1, 1, 9, 1},
		{1, 1, 1, 1, 1, 1, 1},
	})
	require.NoError(t, err)
	return g
}

func TestRun_AllSolvers(t *testing.T) {
	stats, err := report.Run(context.Background(), maze(t), pt(0, 0), pt(0, 6), 0)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	names := make([]string, len(stats))
	for i, st := range stats {
		names[i] = st.Name
		assert.True(t, st.Found, st.Name)
		assert.Equal(t, len(st.Directions), st.PathLength, st.Name)
		assert.Positive(t, st.Explored, st.Name)
		assert.GreaterOrEqual(t, st.AllocKB, 0.0, st.Name)
	}
	assert.Equal(t, solve.Names(), names)

	// BFS and A* are both optimal.
	assert.Equal(t, 14, stats[0].PathLength)
	assert.Equal(t, 14, stats[2].PathLength)
	assert.GreaterOrEqual(t, stats[1].PathLength, 14)
}

func TestRun_SelectedAndUnknown(t *testing.T) {
	stats, err := report.Run(context.Background(), maze(t), pt(0, 0), pt(0, 6), 0, "ASTAR")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, solve.AStar, stats[0].Name)

	_, err = report.Run(context.Background(), maze(t), pt(0, 0), pt(0, 6), 0, "bfs", "greedy")
	require.ErrorIs(t, err, solve.ErrUnknownSolver)
}

func TestRun_SolverError(t *testing.T) {
	_, err := report.Run(context.Background(), maze(t), pt(0, 0), pt(9, 9), 0)
	require.ErrorIs(t, err, gridgraph.ErrPointOutOfBounds)

	_, err = report.Run(context.Background(), maze(t), pt(0, 0), pt(0, 6), 2, "dfs")
	require.Error(t, err)
	assert.True(t, solve.IsStepBudget(err))
	assert.Contains(t, err.Error(), "report: dfs:")
}

func TestWrite(t *testing.T) {
	stats := []report.Stats{
		{
			Name:       solve.BFS,
			Found:      true,
			PathLength: 2,
			Explored:   4,
			Elapsed:    1500 * time.Microsecond,
			AllocKB:    1.234,
			Directions: []gridgraph.Direction{gridgraph.Down, gridgraph.Right},
		},
		{Name: solve.AStar, Explored: 3},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, stats))

	want := "Solver: BFS\n" +
		"  Found path: true\n" +
		"  Path length: 2\n" +
		"  Nodes explored: 4\n" +
		"  Time taken: 0.001500 seconds\n" +
		"  Peak memory usage: 1.23 KB\n" +
		"  Path taken: Down, Right\n" +
		"\n" +
		"Solver: A*\n" +
		"  Found path: false\n" +
		"  Path length: 0\n" +
		"  Nodes explored: 3\n" +
		"  Time taken: 0.000000 seconds\n" +
		"  Peak memory usage: 0.00 KB\n" +
		"  Path taken: No path found.\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "DFS", report.DisplayName(solve.DFS))
	assert.Equal(t, "custom", report.DisplayName("custom"))
}

func TestSummarize(t *testing.T) {
	g, err := gridgraph.From2D([][]uint8{
		{0, 1, 9, 0},
		{1, 9, 9, 1},
		{9, 0, 9, 0},
	})
	require.NoError(t, err)

	s, err := report.Summarize(g, pt(0, 0), pt(2, 3))
	require.NoError(t, err)
	assert.Equal(t, report.Summary{Rows: 3, Cols: 4, OpenCells: 7, Components: 3, Reachable: false}, s)

	s, err = report.Summarize(g, pt(0, 3), pt(2, 3))
	require.NoError(t, err)
	assert.True(t, s.Reachable)

	// a walled start steps out to its open neighbour (1,3)
	s, err = report.Summarize(g, pt(1, 2), pt(2, 3))
	require.NoError(t, err)
	assert.True(t, s.Reachable)
	s, err = report.Summarize(g, pt(1, 1), pt(2, 3))
	require.NoError(t, err)
	assert.False(t, s.Reachable)

	_, err = report.Summarize(g, pt(0, 0), pt(3, 0))
	require.ErrorIs(t, err, gridgraph.ErrPointOutOfBounds)

	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf, s))
	assert.True(t, strings.HasPrefix(buf.String(), "Maze: 3x4, 7 open cells, 3 components"))
}

package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/gridgraph"
)

const (
	U = gridgraph.Up
	R = gridgraph.Right
	L = gridgraph.Left
	D = gridgraph.Down
)

func pt(r, c int) gridgraph.Point { return gridgraph.Point{Row: r, Col: c} }

func mustGrid(t testing.TB, rows [][]uint8) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.From2D(rows)
	require.NoError(t, err)
	return g
}

// TestFindPath_Errors verifies that invalid inputs and options are rejected
// before any traversal happens.
func TestFindPath_Errors(t *testing.T) {
	g := mustGrid(t, [][]uint8{{0, 0}, {0, 0}})

	if _, err := bfs.FindPath(nil, pt(0, 0), pt(0, 0)); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	for _, p := range []gridgraph.Point{pt(-1, 0), pt(0, -1), pt(2, 0), pt(0, 2)} {
		if _, err := bfs.FindPath(g, p, pt(0, 0)); !errors.Is(err, gridgraph.ErrPointOutOfBounds) {
			t.Errorf("start %s: want ErrPointOutOfBounds, got %v", p, err)
		}
		if _, err := bfs.FindPath(g, pt(0, 0), p); !errors.Is(err, gridgraph.ErrPointOutOfBounds) {
			t.Errorf("end %s: want ErrPointOutOfBounds, got %v", p, err)
		}
	}
	if _, err := bfs.FindPath(g, pt(0, 0), pt(1, 1), bfs.WithMaxSteps(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative budget: want ErrOptionViolation, got %v", err)
	}
}

// TestFindPath_OpenGridTieBreak covers the 3×3 example grid. Every code is
// 0 or 1, so all cells are open and the Up/Right/Left/Down order picks the
// path along the top row first.
func TestFindPath_OpenGridTieBreak(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 0, 1},
		{1, 0, 1},
		{1, 0, 0},
	})
	res, err := bfs.FindPath(g, pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []gridgraph.Direction{R, R, D, D}, res.Directions)
	require.Equal(t, 4, res.Len())
	require.NoError(t, res.Err())
}

// TestFindPath_WindingMaze checks a walled maze with several length-14 routes;
// the tie-break order selects the one through the middle corridor.
//
//	0 9 9 9 9 9 0
//	1 1 1 1 1 9 1
//	1 9 9 9 1 9 1
//	1 9 9 1 1 9 1
//	1 1 1 1 1 1 1
func TestFindPath_WindingMaze(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 9, 9, 9, 9, 9, 0},
		{1, 1, 1, 1, 1, 9, 1},
		{1, 9, 9, 9, 1, 9, 1},
		{1, 9, 9, 1, 1, 9, 1},
		{1, 1, 1, 1, 1, 1, 1},
	})
	res, err := bfs.FindPath(g, pt(0, 0), pt(0, 6))
	require.NoError(t, err)
	require.True(t, res.Found)
	want := []gridgraph.Direction{D, R, R, R, R, D, D, D, R, R, U, U, U, U}
	require.Equal(t, want, res.Directions)
}

// TestFindPath_SameStartEnd returns an empty, found path even on a wall.
func TestFindPath_SameStartEnd(t *testing.T) {
	g := mustGrid(t, [][]uint8{{0, 9}, {0, 0}})
	for _, p := range []gridgraph.Point{pt(0, 0), pt(0, 1)} {
		res, err := bfs.FindPath(g, p, p)
		require.NoError(t, err)
		require.True(t, res.Found, "start==end at %s", p)
		require.NotNil(t, res.Directions)
		require.Empty(t, res.Directions)
		require.Equal(t, 1, res.Explored)
	}
}

// TestFindPath_NoPath reports the negative outcome without an error.
func TestFindPath_NoPath(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 0, 9},
		{0, 9, 0},
		{0, 0, 9},
	})
	res, err := bfs.FindPath(g, pt(0, 0), pt(1, 2))
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Nil(t, res.Directions)
	require.ErrorIs(t, res.Err(), bfs.ErrNoPath)
	require.Equal(t, 5, res.Explored, "the whole left region is explored")
}

// TestFindPath_EndIsWall treats code 2 as impassable even when adjacent.
func TestFindPath_EndIsWall(t *testing.T) {
	g := mustGrid(t, [][]uint8{{0, 0, 2}})
	res, err := bfs.FindPath(g, pt(0, 0), pt(0, 2))
	require.NoError(t, err)
	require.False(t, res.Found)
}

// TestFindPath_RoutesAroundWall routes around a code-2 cell.
//
//	0 2 0
//	0 0 0
func TestFindPath_RoutesAroundWall(t *testing.T) {
	g := mustGrid(t, [][]uint8{{0, 2, 0}, {0, 0, 0}})
	res, err := bfs.FindPath(g, pt(0, 0), pt(0, 2))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []gridgraph.Direction{D, R, R, U}, res.Directions)
}

// TestFindPath_NonTraversableStart still searches from the start cell.
func TestFindPath_NonTraversableStart(t *testing.T) {
	g := mustGrid(t, [][]uint8{{9, 0, 0}})
	res, err := bfs.FindPath(g, pt(0, 0), pt(0, 2))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []gridgraph.Direction{R, R}, res.Directions)
}

// TestFindPath_Deterministic repeats a search and expects identical output.
func TestFindPath_Deterministic(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	first, err := bfs.FindPath(g, pt(3, 3), pt(0, 0))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := bfs.FindPath(g, pt(3, 3), pt(0, 0))
		require.NoError(t, err)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: got %+v; want %+v", i, again, first)
		}
	}
	require.Equal(t, []gridgraph.Direction{U, U, U, L, L, L}, first.Directions)
}

// TestFindPath_RandomGridsAgainstOracle checks validity and optimality on
// many random grids against an independent relaxation-based distance table.
func TestFindPath_RandomGridsAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 300; iter++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		cells := make([][]uint8, rows)
		for r := range cells {
			cells[r] = make([]uint8, cols)
			for c := range cells[r] {
				cells[r][c] = uint8(rng.Intn(3))
			}
		}
		g := mustGrid(t, cells)
		start := pt(rng.Intn(rows), rng.Intn(cols))
		end := pt(rng.Intn(rows), rng.Intn(cols))

		res, err := bfs.FindPath(g, start, end)
		require.NoError(t, err)
		want := relaxDistances(g, start)[end.Row][end.Col]

		if want < 0 {
			require.False(t, res.Found, "iter %d: oracle says unreachable", iter)
			continue
		}
		require.True(t, res.Found, "iter %d: oracle distance %d", iter, want)
		require.Len(t, res.Directions, want, "iter %d", iter)
		got, err := g.Walk(start, res.Directions)
		require.NoError(t, err, "iter %d", iter)
		require.Equal(t, end, got, "iter %d", iter)

		table, err := bfs.Distances(g, start)
		require.NoError(t, err)
		require.Equal(t, want, table[end.Row][end.Col], "iter %d", iter)
	}
}

// relaxDistances computes move distances by repeated relaxation until a
// fixpoint, sharing no code with the BFS implementation.
func relaxDistances(g *gridgraph.GridGraph, src gridgraph.Point) [][]int {
	const inf = 1 << 30
	dist := make([][]int, g.Rows)
	for r := range dist {
		dist[r] = make([]int, g.Cols)
		for c := range dist[r] {
			dist[r][c] = inf
		}
	}
	dist[src.Row][src.Col] = 0
	deltas := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for changed := true; changed; {
		changed = false
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				if dist[r][c] == inf {
					continue
				}
				for _, dd := range deltas {
					nr, nc := r+dd[0], c+dd[1]
					if nr < 0 || nc < 0 || nr >= g.Rows || nc >= g.Cols {
						continue
					}
					code := g.CellValues[nr][nc]
					if code != 0 && code != 1 {
						continue
					}
					if dist[r][c]+1 < dist[nr][nc] {
						dist[nr][nc] = dist[r][c] + 1
						changed = true
					}
				}
			}
		}
	}
	for r := range dist {
		for c := range dist[r] {
			if dist[r][c] == inf {
				dist[r][c] = -1
			}
		}
	}
	return dist
}

// TestDistances covers the full table, walls and unreachable cells.
func TestDistances(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 0, 9},
		{9, 0, 9},
		{0, 9, 0},
	})
	dist, err := bfs.Distances(g, pt(0, 0))
	require.NoError(t, err)
	want := [][]int{
		{0, 1, -1},
		{-1, 2, -1},
		{-1, -1, -1},
	}
	require.Equal(t, want, dist)

	_, err = bfs.Distances(nil, pt(0, 0))
	require.ErrorIs(t, err, bfs.ErrGridNil)
	_, err = bfs.Distances(g, pt(3, 0))
	require.ErrorIs(t, err, gridgraph.ErrPointOutOfBounds)
}

// TestFindPath_Hooks asserts that hooks fire in the expected sequence.
func TestFindPath_Hooks(t *testing.T) {
	g := mustGrid(t, [][]uint8{{0, 0, 0}})
	var enq, deq []gridgraph.Point
	var depths []int

	res, err := bfs.FindPath(g, pt(0, 0), pt(0, 2),
		bfs.WithOnEnqueue(func(p gridgraph.Point, d int) { enq = append(enq, p); depths = append(depths, d) }),
		bfs.WithOnDequeue(func(p gridgraph.Point, _ int) { deq = append(deq, p) }),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []gridgraph.Point{pt(0, 0), pt(0, 1), pt(0, 2)}, enq)
	require.Equal(t, []int{0, 1, 2}, depths)
	require.Equal(t, enq, deq)
	require.Equal(t, 3, res.Explored)
}

// TestFindPath_StepBudget stops long searches with ErrStepBudget.
func TestFindPath_StepBudget(t *testing.T) {
	row := make([]uint8, 50)
	g := mustGrid(t, [][]uint8{row})

	_, err := bfs.FindPath(g, pt(0, 0), pt(0, 49), bfs.WithMaxSteps(10))
	require.ErrorIs(t, err, bfs.ErrStepBudget)

	res, err := bfs.FindPath(g, pt(0, 0), pt(0, 49), bfs.WithMaxSteps(50))
	require.NoError(t, err)
	require.True(t, res.Found)

	res, err = bfs.FindPath(g, pt(0, 0), pt(0, 49), bfs.WithMaxSteps(0))
	require.NoError(t, err)
	require.Len(t, res.Directions, 49)
}

// TestFindPath_Cancellation verifies that a cancelled context halts BFS promptly.
func TestFindPath_Cancellation(t *testing.T) {
	g := mustGrid(t, [][]uint8{make([]uint8, 100)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.FindPath(g, pt(0, 0), pt(0, 99), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestFindPath_ConcurrentSafety ensures concurrent searches on one grid do not interfere.
func TestFindPath_ConcurrentSafety(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 0, 0},
		{0, 9, 0},
		{0, 0, 0},
	})
	type out struct {
		res *bfs.Result
		err error
	}
	results := make(chan out, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := bfs.FindPath(g, pt(0, 0), pt(2, 2))
			results <- out{res, err}
		}()
	}
	for i := 0; i < 8; i++ {
		o := <-results
		require.NoError(t, o.err)
		require.Equal(t, []gridgraph.Direction{R, R, D, D}, o.res.Directions)
	}
}

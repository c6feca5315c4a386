// Package mazepath finds paths through grid mazes: rectangular grids of
// small integer cell codes where 0 and 1 are open and everything else is a
// wall. Moves are Up, Right, Left and Down, one cell at a time.
//
// What is inside:
//
//	gridgraph/   the grid: bounds, traversability, steps, components
//	bfs/         shortest path, ties broken Up, Right, Left, Down
//	dfs/         depth-first baseline, valid but not shortest
//	astar/       shortest path guided by Manhattan distance
//	solve/       one function type and a name registry over the three
//	mazefile/    text input ("(r,c)" lines + grid) and "Right, Down" output
//	report/      side-by-side solver comparison
//	cache/       solved-result cache in memory or Redis
//	server/      HTTP JSON API (gin)
//	config/      MAZEPATH_* settings and .env loading
//	cmd/mazepath  the CLI: solve, bench, serve
//
// Quick ASCII example:
//
//	S 0 9
//	9 0 9
//	9 0 E
//
// BFS from S to E returns [Right Down Down Right].
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath

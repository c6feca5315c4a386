// Package astar provides a best-first shortest-path finder for maze grids.
//
// Overview:
//
//   - FindPath(g, start, end, opts...) returns a move sequence of minimal
//     length, the same length BFS would return, while usually expanding far
//     fewer cells when the end lies in open space.
//   - The heuristic is the Manhattan distance to the end cell.
//   - The heap orders entries by f = g + h, then by smaller h (prefer cells
//     nearer the goal), then by push order. Two runs on the same input
//     always produce the same path.
//
// The path A* returns is shortest, but when several shortest paths exist it
// need not be the one BFS picks; use package bfs when the Up, Right, Left,
// Down preference has to hold across the whole route.
//
// Example:
//
//	g, _ := gridgraph.From2D([][]uint8{
//	    {0, 0, 0},
//	    {0, 9, 0},
//	    {0, 0, 0},
//	})
//	res, err := astar.FindPath(g, gridgraph.Point{}, gridgraph.Point{Row: 2, Col: 2})
//	// res.Directions == [Right Right Down Down]
package astar

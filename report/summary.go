package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Summary describes a maze independently of any solver.
type Summary struct {
	Rows       int
	Cols       int
	OpenCells  int
	Components int
	// Reachable is true when a solver would find a path from start to end.
	Reachable bool
}

// Summarize counts open cells and components of g.
func Summarize(g *gridgraph.GridGraph, start, end gridgraph.Point) (Summary, error) {
	if err := g.CheckPoint(start); err != nil {
		return Summary{}, err
	}
	if err := g.CheckPoint(end); err != nil {
		return Summary{}, err
	}

	comps := g.ConnectedComponents()
	s := Summary{
		Rows:       g.Rows,
		Cols:       g.Cols,
		Components: len(comps),
		Reachable:  reachable(g, start, end),
	}
	for _, c := range comps {
		s.OpenCells += len(c)
	}

	return s, nil
}

// WriteSummary renders s as a short header block.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"Maze: %dx%d, %d open cells, %d components, end reachable: %t\n\n",
		s.Rows, s.Cols, s.OpenCells, s.Components, s.Reachable)
	if err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

// reachable mirrors solver semantics: a walled start may still step out onto
// an open neighbour.
func reachable(g *gridgraph.GridGraph, start, end gridgraph.Point) bool {
	if start == end {
		return true
	}
	if g.Traversable(start) {
		return g.Connected(start, end)
	}
	for _, d := range gridgraph.Directions {
		if next, ok := g.Step(start, d); ok && g.Connected(next, end) {
			return true
		}
	}
	return false
}

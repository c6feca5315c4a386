package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs. Both wrap ErrInvalidGrid.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]uint8, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]uint8, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]uint8, cols)
		copy(cells[r], values[r])
	}
	pred := opts.Traversable
	if pred == nil {
		pred = IsTraversable
	}

	return &GridGraph{
		Rows:        rows,
		Cols:        cols,
		CellValues:  cells,
		traversable: pred,
	}, nil
}

// From2D is a shorthand for NewGridGraph with DefaultGridOptions.
func From2D(values [][]uint8) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < gg.Rows && p.Col >= 0 && p.Col < gg.Cols
}

// CheckPoint returns ErrPointOutOfBounds (with context) when p is outside the grid.
func (gg *GridGraph) CheckPoint(p Point) error {
	if !gg.InBounds(p) {
		return fmt.Errorf("%w: %s not within %dx%d grid", ErrPointOutOfBounds, p, gg.Rows, gg.Cols)
	}
	return nil
}

// Value returns the cell code at p. p must be in bounds.
func (gg *GridGraph) Value(p Point) uint8 {
	return gg.CellValues[p.Row][p.Col]
}

// Traversable reports whether p is in bounds and its code is passable.
func (gg *GridGraph) Traversable(p Point) bool {
	return gg.InBounds(p) && gg.traversable(gg.CellValues[p.Row][p.Col])
}

// Step moves one cell from p in direction d.
// ok is false when the target is out of bounds or not traversable.
// Complexity: O(1).
func (gg *GridGraph) Step(p Point, d Direction) (next Point, ok bool) {
	next = p.Move(d)
	return next, gg.Traversable(next)
}

// Len returns the number of cells (Rows×Cols).
func (gg *GridGraph) Len() int {
	return gg.Rows * gg.Cols
}

// Index maps p to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(p Point) int {
	return p.Row*gg.Cols + p.Col
}

// PointAt converts a row-major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph) PointAt(idx int) Point {
	return Point{Row: idx / gg.Cols, Col: idx % gg.Cols}
}

// Walk replays dirs from start and returns the final point.
// It fails on the first move that leaves the grid or enters a wall,
// which makes it the natural checker for a solver's output.
func (gg *GridGraph) Walk(start Point, dirs []Direction) (Point, error) {
	if err := gg.CheckPoint(start); err != nil {
		return start, err
	}
	cur := start
	for i, d := range dirs {
		if !d.Valid() {
			return cur, fmt.Errorf("%w: move %d is %s", ErrInvalidDirection, i, d)
		}
		next, ok := gg.Step(cur, d)
		if !ok {
			return cur, fmt.Errorf("gridgraph: move %d (%s) from %s is blocked", i, d, cur)
		}
		cur = next
	}
	return cur, nil
}

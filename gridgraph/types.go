package gridgraph

import (
	"fmt"
	"strings"
)

// Point is a zero-based (Row, Col) cell address.
type Point struct {
	Row, Col int
}

// String renders the point in the input-file form "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move returns the point one step away in direction d.
// The result may lie outside any grid; use GridGraph.Step for a checked move.
func (p Point) Move(d Direction) Point {
	off := d.Offset()
	return Point{Row: p.Row + off.Row, Col: p.Col + off.Col}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	// Up moves one row towards row 0.
	Up Direction = iota
	// Right moves one column towards the last column.
	Right
	// Left moves one column towards column 0.
	Left
	// Down moves one row towards the last row.
	Down
)

// Directions is the fixed expansion order used by every solver.
// It decides which of several equally short paths is returned.
var Directions = [4]Direction{Up, Right, Left, Down}

var (
	directionNames   = [4]string{"Up", "Right", "Left", "Down"}
	directionOffsets = [4]Point{{-1, 0}, {0, 1}, {0, -1}, {1, 0}}
)

// String returns "Up", "Right", "Left" or "Down".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Down
}

// Offset returns the unit (row, col) delta of d, or {0,0} when d is invalid.
func (d Direction) Offset() Point {
	if !d.Valid() {
		return Point{}
	}
	return directionOffsets[d]
}

// ParseDirection is the inverse of Direction.String (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("gridgraph: unknown direction %q", s)
}

// IsTraversable reports whether a cell code can be walked on.
// Only 0 and 1 are passable; every other code (e.g. 2 or 9) is a wall.
func IsTraversable(code uint8) bool {
	return code == 0 || code == 1
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Traversable decides which cell codes are passable.
	// A nil value falls back to IsTraversable.
	Traversable func(code uint8) bool
}

// DefaultGridOptions returns GridOptions with Traversable=IsTraversable.
func DefaultGridOptions() GridOptions {
	return GridOptions{Traversable: IsTraversable}
}

// GridGraph treats a 2D grid of cell codes as a graph. It is immutable once
// built and safe for concurrent readers.
// Rows and Cols define dimensions; CellValues[row][col] holds the input code.
type GridGraph struct {
	Rows, Cols  int
	CellValues  [][]uint8
	traversable func(code uint8) bool
}

// Package gridgraph treats a rectangular maze of cell codes as an implicit,
// 4-connected graph for the path finders in this module.
//
// What:
//
//   - GridGraph wraps a rectangular [][]uint8 grid together with a
//     traversability predicate (default IsTraversable: codes 0 and 1).
//   - Point addresses a cell by zero-based (Row, Col); it is comparable and
//     can be used directly as a map key.
//   - Direction enumerates the four cardinal moves. Directions lists them in
//     the fixed expansion order Up, Right, Left, Down, which every solver
//     uses to break ties between equally short paths.
//   - ConnectedComponents groups traversable cells into 4-connected regions.
//
// Why:
//
//   - Path finders only need bounds checks, traversability and neighbour
//     stepping; no adjacency lists are materialised.
//   - A single validation point (NewGridGraph) rejects empty and ragged
//     grids before any search runs.
//
// Complexity:
//
//   - NewGridGraph:        O(R×C) time and memory (deep copy).
//   - InBounds, Step:      O(1).
//   - ConnectedComponents: O(R×C×4) time, O(R×C) memory.
//
// Errors:
//
//   - ErrInvalidGrid:      parent of ErrEmptyGrid and ErrNonRectangular.
//   - ErrEmptyGrid:        input grid has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrPointOutOfBounds: a point lies outside the grid.
package gridgraph

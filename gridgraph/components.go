package gridgraph

// ConnectedComponents finds all 4-connected regions of traversable cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to a Point, use PointAt(idx).
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Len())
	var comps [][]int

	for i0 := 0; i0 < gg.Len(); i0++ {
		if seen[i0] || !gg.Traversable(gg.PointAt(i0)) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := gg.PointAt(queue[qi])
			for _, d := range Directions {
				v, ok := gg.Step(u, d)
				if !ok {
					continue
				}
				vi := gg.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentOf labels every cell with the index of its component in
// ConnectedComponents(), or -1 for walls. The table is row-major.
func (gg *GridGraph) ComponentOf() []int {
	labels := make([]int, gg.Len())
	for i := range labels {
		labels[i] = -1
	}
	for c, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = c
		}
	}
	return labels
}

// Connected reports whether a and b are traversable cells of the same component.
func (gg *GridGraph) Connected(a, b Point) bool {
	if !gg.Traversable(a) || !gg.Traversable(b) {
		return false
	}
	labels := gg.ComponentOf()
	return labels[gg.Index(a)] == labels[gg.Index(b)]
}

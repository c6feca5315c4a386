package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid with codes in [0,2].
// Complexity: O(R×C×4)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	grid := make([][]uint8, n)
	for r := 0; r < n; r++ {
		row := make([]uint8, n)
		for c := 0; c < n; c++ {
			row[c] = uint8(rng.Intn(3)) // 2 is a wall
		}
		grid[r] = row
	}
	gg, err := gridgraph.From2D(grid)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

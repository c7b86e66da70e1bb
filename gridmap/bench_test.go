package gridmap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linesegm/gridmap"
)

// BenchmarkNeighbors measures adjacency enumeration over a 1000×1000 page
// with a random ink scatter. Complexity per call: O(8).
func BenchmarkNeighbors(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	mask := make([][]byte, n)
	dist := make([][]byte, n)
	for y := 0; y < n; y++ {
		mask[y] = make([]byte, n)
		dist[y] = make([]byte, n)
		for x := 0; x < n; x++ {
			if rng.Intn(10) == 0 {
				mask[y][x] = gridmap.Ink
			} else {
				mask[y][x] = 1
			}
			dist[y][x] = gridmap.NoObstacle
		}
	}
	g, err := gridmap.NewGrid(mask, dist)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(gridmap.Node{Row: i % n, Col: (i * 7) % n}, 1)
	}
}

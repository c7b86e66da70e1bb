package astar_test

import (
	"testing"

	"github.com/katalvlaran/linesegm/gridmap"
	"github.com/stretchr/testify/require"
)

// newGrid builds a Grid from literal mask/dist matrices, failing the test
// on construction errors.
func newGrid(t testing.TB, mask, dist [][]byte) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.NewGrid(mask, dist)
	require.NoError(t, err, "test grid construction must succeed")
	return g
}

// blankGrid builds an h×w all-background grid with an empty distance map
// (every column reports the NoObstacle sentinel).
func blankGrid(t testing.TB, h, w int) *gridmap.Grid {
	t.Helper()
	mask := make([][]byte, h)
	dist := make([][]byte, h)
	for y := 0; y < h; y++ {
		mask[y] = make([]byte, w)
		dist[y] = make([]byte, w)
		for x := 0; x < w; x++ {
			mask[y][x] = 1
			dist[y][x] = gridmap.NoObstacle
		}
	}
	return newGrid(t, mask, dist)
}

// node is shorthand for a coordinate literal.
func node(row, col int) gridmap.Node {
	return gridmap.Node{Row: row, Col: col}
}

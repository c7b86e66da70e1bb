// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/linesegm/astar"
	"github.com/katalvlaran/linesegm/gridmap"
)

// ExampleSearch traces a boundary across a tiny two-row page with one ink
// blot on the bottom row. The boundary hops up to clear the blot and drops
// straight back, because vertical drift keeps pulling it toward the start
// row.
func ExampleSearch() {
	mask := [][]byte{
		{1, 1, 1, 1, 1},
		{1, 1, 0, 1, 1},
	}
	dist := [][]byte{
		{255, 255, 1, 255, 255},
		{255, 255, 0, 255, 255},
	}
	g, _ := gridmap.NewGrid(mask, dist)

	start := gridmap.Node{Row: 1, Col: 0}
	goal := gridmap.Node{Row: 1, Col: 4}
	res, _ := astar.Search(g, start, goal)
	path, _ := astar.ReconstructPath(start, goal, res.Parents)

	for _, n := range path {
		fmt.Printf("(%d,%d) ", n.Row, n.Col)
	}

	// Output:
	// (1,0) (1,1) (0,2) (1,3) (1,4)
}

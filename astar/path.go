package astar

import (
	"fmt"

	"github.com/katalvlaran/linesegm/gridmap"
)

// ReconstructPath walks the parent table backward from goal to start and
// returns the boundary as an ordered start→goal sequence, both endpoints
// inclusive. The parent table is the one a successful Search returned;
// callers must check Result.Found first. Invoking reconstruction for a
// goal the search never reached returns ErrDisconnectedPath.
// Complexity: O(path length).
func ReconstructPath(start, goal gridmap.Node, parents map[gridmap.Node]gridmap.Node) ([]gridmap.Node, error) {
	path := []gridmap.Node{goal}
	current := goal
	for current != start {
		parent, ok := parents[current]
		if !ok {
			return nil, fmt.Errorf("%w: broke at (%d,%d)", ErrDisconnectedPath, current.Row, current.Col)
		}
		current = parent
		path = append(path, current)
	}

	// Collected goal→start; reverse in place so it runs start→goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

package imaging

import "github.com/katalvlaran/linesegm/gridmap"

// DistanceTransform computes, for every pixel, the vertical distance to
// the nearest ink pixel within the same column, clamped at the
// gridmap.NoObstacle sentinel (255 = nothing within sensor range). A
// Euclidean distance transform restricted to a single-pixel column
// reduces to this two-pass 1-D scan.
// Complexity: O(W×H) time and memory.
func DistanceTransform(mask [][]byte) [][]byte {
	h := len(mask)
	if h == 0 {
		return nil
	}
	w := len(mask[0])

	const inf = int(gridmap.NoObstacle)
	dist := make([][]byte, h)
	for y := range dist {
		dist[y] = make([]byte, w)
	}

	col := make([]int, h)
	for x := 0; x < w; x++ {
		// Downward pass: distance to the nearest ink at or above.
		best := inf
		for y := 0; y < h; y++ {
			if mask[y][x] == gridmap.Ink {
				best = 0
			} else if best < inf {
				best++
			}
			col[y] = best
		}
		// Upward pass: fold in the nearest ink at or below.
		best = inf
		for y := h - 1; y >= 0; y-- {
			if mask[y][x] == gridmap.Ink {
				best = 0
			} else if best < inf {
				best++
			}
			if best < col[y] {
				col[y] = best
			}
			dist[y][x] = byte(col[y])
		}
	}

	return dist
}

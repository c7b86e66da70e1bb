package imaging

import "github.com/katalvlaran/linesegm/gridmap"

// DrawBoundary returns a copy of the mask with the boundary path burned in
// as ink, two pixels wide (the node and its right neighbor), so step-2
// boundaries render without column gaps. The input mask is left untouched.
func DrawBoundary(mask [][]byte, path []gridmap.Node) [][]byte {
	out := make([][]byte, len(mask))
	for y, row := range mask {
		out[y] = make([]byte, len(row))
		copy(out[y], row)
	}

	for _, n := range path {
		if n.Row < 0 || n.Row >= len(out) || n.Col < 0 || n.Col >= len(out[n.Row]) {
			continue
		}
		out[n.Row][n.Col] = gridmap.Ink
		if n.Col+1 < len(out[n.Row]) {
			out[n.Row][n.Col+1] = gridmap.Ink
		}
	}

	return out
}

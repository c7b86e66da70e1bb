package gridmap

// Grid is a read-only view over a binarized page and its per-column
// vertical distance map. It is immutable once built: the constructor deep
// copies both matrices, so a Grid may be shared by any number of
// concurrent searches.
type Grid struct {
	// Width and Height are the page dimensions in pixels.
	Width, Height int

	mask [][]byte // mask[row][col] == Ink marks an ink pixel
	dist [][]byte // dist[row][col] = vertical distance to nearest ink in column col
}

// NewGrid constructs a Grid from a binary ink mask and a distance map of
// identical dimensions. Both inputs are deep-copied.
// Returns ErrEmptyGrid if the mask has no rows or no columns,
// ErrNonRectangular if any row length differs within either matrix,
// ErrDimensionMismatch if the two matrices disagree on dimensions.
// Complexity: O(W×H) time and memory.
func NewGrid(mask, dist [][]byte) (*Grid, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(mask), len(mask[0])
	for _, row := range mask {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if len(dist) != h {
		return nil, ErrDimensionMismatch
	}
	for _, row := range dist {
		if len(row) != w {
			return nil, ErrDimensionMismatch
		}
	}
	// Deep copy to prevent external mutation for the Grid's lifetime.
	m := make([][]byte, h)
	d := make([][]byte, h)
	for y := 0; y < h; y++ {
		m[y] = make([]byte, w)
		copy(m[y], mask[y])
		d[y] = make([]byte, w)
		copy(d[y], dist[y])
	}

	return &Grid{Width: w, Height: h, mask: m, dist: d}, nil
}

// InBounds reports whether n lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (g *Grid) InBounds(n Node) bool {
	return n.Row >= 0 && n.Row < g.Height && n.Col >= 0 && n.Col < g.Width
}

// IsWall reports whether the mask at n is an ink pixel.
// Precondition: n must be in bounds; violating it panics.
// Complexity: O(1).
func (g *Grid) IsWall(n Node) bool {
	return g.mask[n.Row][n.Col] == Ink
}

// ObstacleDistance returns the vertical distance from n to the nearest ink
// pixel in its column, and whether such a distance is recorded. When the
// stored value equals NoObstacle the second result is false and callers
// should treat the distance as infinite.
// Precondition: n must be in bounds; violating it panics.
// Complexity: O(1).
func (g *Grid) ObstacleDistance(n Node) (int, bool) {
	d := g.dist[n.Row][n.Col]
	if d == NoObstacle {
		return 0, false
	}

	return int(d), true
}

// Neighbors returns the in-bounds nodes reachable from n by one move in
// each of the 8 grid-diagonal directions, with each offset scaled by step.
// No filtering on wall status happens here: crossing ink is a cost
// concern, not a connectivity one.
// Precondition: step ≥ 1 (the search core validates this before looping).
// Complexity: O(8).
func (g *Grid) Neighbors(n Node, step int) []Node {
	out := make([]Node, 0, len(directions))
	for _, d := range directions {
		nb := Node{Row: n.Row + step*d[0], Col: n.Col + step*d[1]}
		if g.InBounds(nb) {
			out = append(out, nb)
		}
	}

	return out
}

package segment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linesegm/astar"
	"github.com/katalvlaran/linesegm/gridmap"
	"github.com/katalvlaran/linesegm/imaging"
)

// Sentinel errors for segmentation.
var (
	// ErrNoBoundaries indicates Lines was invoked with zero boundaries.
	ErrNoBoundaries = errors.New("segment: at least one boundary is required")
	// ErrEmptyMask indicates a carve over an empty page.
	ErrEmptyMask = errors.New("segment: mask has no pixels")
)

// Boundaries traces one boundary per valley row, left edge to right edge,
// over a shared read-only Grid. Search options (step, heuristic factor,
// profile) apply to every boundary alike. The returned paths are ordered
// like rows.
func Boundaries(g *gridmap.Grid, rows []int, opts ...astar.Option) ([][]gridmap.Node, error) {
	if g == nil {
		return nil, astar.ErrNilGrid
	}

	boundaries := make([][]gridmap.Node, 0, len(rows))
	for _, row := range rows {
		start := gridmap.Node{Row: row, Col: 0}
		goal := gridmap.Node{Row: row, Col: g.Width - 1}

		res, err := astar.Search(g, start, goal, opts...)
		if err != nil {
			return nil, fmt.Errorf("segment: boundary at row %d: %w", row, err)
		}
		path, err := astar.ReconstructPath(start, goal, res.Parents)
		if err != nil {
			return nil, fmt.Errorf("segment: boundary at row %d: %w", row, err)
		}
		boundaries = append(boundaries, path)
	}

	return boundaries, nil
}

// Lines carves the page into line strips using n boundaries ordered top to
// bottom: the first strip is bounded below by the first boundary, interior
// strips by their surrounding pair, the last strip above by the final
// boundary. Strips are cropped to their bounding rows.
func Lines(mask [][]byte, boundaries [][]gridmap.Node) ([][][]byte, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyMask
	}
	if len(boundaries) == 0 {
		return nil, ErrNoBoundaries
	}

	lines := make([][][]byte, 0, len(boundaries)+1)

	first, err := CarveFirst(mask, boundaries[0])
	if err != nil {
		return nil, err
	}
	lines = append(lines, first)

	for i := 1; i < len(boundaries); i++ {
		strip, err := CarveBetween(mask, boundaries[i-1], boundaries[i])
		if err != nil {
			return nil, err
		}
		lines = append(lines, strip)
	}

	last, err := CarveLast(mask, boundaries[len(boundaries)-1])
	if err != nil {
		return nil, err
	}
	lines = append(lines, last)

	return lines, nil
}

// PageLines carves the same strips as Lines but keeps every strip at full
// page height, preserving pixel alignment for comparison against
// page-sized ground-truth line masks.
func PageLines(mask [][]byte, boundaries [][]gridmap.Node) ([][][]byte, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyMask
	}
	if len(boundaries) == 0 {
		return nil, ErrNoBoundaries
	}

	lines := make([][][]byte, 0, len(boundaries)+1)

	first := cloneMask(mask)
	blankBelow(first, boundaries[0])
	lines = append(lines, first)

	for i := 1; i < len(boundaries); i++ {
		strip := cloneMask(mask)
		blankAbove(strip, boundaries[i-1])
		blankBelow(strip, boundaries[i])
		lines = append(lines, strip)
	}

	last := cloneMask(mask)
	blankAbove(last, boundaries[len(boundaries)-1])
	lines = append(lines, last)

	return lines, nil
}

// CarveBetween extracts the line lying between an upper and a lower
// boundary: pixels above the upper path and below the lower path are
// blanked, then the strip is cropped to [highest(upper), lowest(lower)].
func CarveBetween(mask [][]byte, upper, lower []gridmap.Node) ([][]byte, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyMask
	}

	out := cloneMask(mask)
	blankAbove(out, upper)
	blankBelow(out, lower)

	return cropRows(out, highestRow(upper), lowestRow(lower)), nil
}

// CarveFirst extracts the topmost line, bounded below by the first
// boundary and above by the first ink row of the page.
func CarveFirst(mask [][]byte, lower []gridmap.Node) ([][]byte, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyMask
	}

	out := cloneMask(mask)
	blankBelow(out, lower)
	top := firstInkRow(mask)
	if top < 0 {
		top = 0
	}

	return cropRows(out, top, lowestRow(lower)), nil
}

// CarveLast extracts the bottom line, bounded above by the final boundary
// and below by the last ink row of the page.
func CarveLast(mask [][]byte, upper []gridmap.Node) ([][]byte, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyMask
	}

	out := cloneMask(mask)
	blankAbove(out, upper)
	bottom := lastInkRow(mask)
	if bottom < 0 {
		bottom = len(mask) - 1
	}

	return cropRows(out, highestRow(upper), bottom), nil
}

// cloneMask deep-copies a page.
func cloneMask(mask [][]byte) [][]byte {
	out := make([][]byte, len(mask))
	for y, row := range mask {
		out[y] = make([]byte, len(row))
		copy(out[y], row)
	}

	return out
}

// blankBelow erases everything from each boundary node downward, two
// columns wide, leaving the content above the boundary.
func blankBelow(mask [][]byte, boundary []gridmap.Node) {
	for _, n := range boundary {
		for y := n.Row; y >= 0 && y < len(mask); y++ {
			blankPixel(mask, y, n.Col)
		}
	}
}

// blankAbove erases everything from each boundary node upward.
func blankAbove(mask [][]byte, boundary []gridmap.Node) {
	for _, n := range boundary {
		for y := n.Row; y >= 0 && y < len(mask); y-- {
			blankPixel(mask, y, n.Col)
		}
	}
}

// blankPixel sets (y, col) and its right neighbor to background, covering
// the column gaps a step-2 boundary leaves.
func blankPixel(mask [][]byte, y, col int) {
	if col < 0 || col >= len(mask[y]) {
		return
	}
	mask[y][col] = imaging.Background
	if col+1 < len(mask[y]) {
		mask[y][col+1] = imaging.Background
	}
}

// highestRow is the minimum row a boundary touches.
func highestRow(boundary []gridmap.Node) int {
	best := 0
	for i, n := range boundary {
		if i == 0 || n.Row < best {
			best = n.Row
		}
	}

	return best
}

// lowestRow is the maximum row a boundary touches.
func lowestRow(boundary []gridmap.Node) int {
	best := 0
	for i, n := range boundary {
		if i == 0 || n.Row > best {
			best = n.Row
		}
	}

	return best
}

// firstInkRow returns the first row carrying ink, or -1 on a blank page.
func firstInkRow(mask [][]byte) int {
	for y, row := range mask {
		for _, v := range row {
			if v == gridmap.Ink {
				return y
			}
		}
	}

	return -1
}

// lastInkRow returns the last row carrying ink, or -1 on a blank page.
func lastInkRow(mask [][]byte) int {
	for y := len(mask) - 1; y >= 0; y-- {
		for _, v := range mask[y] {
			if v == gridmap.Ink {
				return y
			}
		}
	}

	return -1
}

// cropRows returns the strip spanning rows [top, bottom] inclusive.
func cropRows(mask [][]byte, top, bottom int) [][]byte {
	if top < 0 {
		top = 0
	}
	if bottom >= len(mask) {
		bottom = len(mask) - 1
	}
	if bottom < top {
		bottom = top
	}
	out := make([][]byte, 0, bottom-top+1)
	for y := top; y <= bottom; y++ {
		out = append(out, mask[y])
	}

	return out
}

package imaging

import "github.com/katalvlaran/linesegm/gridmap"

// LineRows locates the whitespace valleys between text bands via the
// vertical projection histogram: a row is blank when it carries no ink,
// and every maximal blank run of at least minGap rows strictly between two
// ink bands contributes its middle row. These rows are the start/goal rows
// for boundary searches. Margins above the first band and below the last
// are not valleys and are skipped.
// Returns ErrNoLines when the mask holds fewer than two text bands.
// Complexity: O(W×H).
func LineRows(mask [][]byte, minGap int) ([]int, error) {
	h := len(mask)
	if h == 0 {
		return nil, ErrEmptyImage
	}
	if minGap < 1 {
		minGap = 1
	}

	blank := make([]bool, h)
	for y, row := range mask {
		blank[y] = true
		for _, v := range row {
			if v == gridmap.Ink {
				blank[y] = false
				break
			}
		}
	}

	var rows []int
	runStart := -1
	seenInk := false
	for y := 0; y <= h; y++ {
		isBlank := y < h && blank[y]
		switch {
		case isBlank && runStart < 0:
			runStart = y
		case !isBlank && runStart >= 0:
			// A valley needs ink on both sides: above (seenInk) and below
			// (the ink row ending this run, y < h).
			if seenInk && y < h && y-runStart >= minGap {
				rows = append(rows, runStart+(y-runStart)/2)
			}
			runStart = -1
		}
		if y < h && !blank[y] {
			seenInk = true
		}
	}

	if len(rows) == 0 {
		return nil, ErrNoLines
	}

	return rows, nil
}

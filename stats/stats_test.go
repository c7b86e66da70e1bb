package stats_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/linesegm/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ink builds a 1×n strip with ink (0) at the marked positions.
func ink(width int, at ...int) [][]byte {
	row := make([]byte, width)
	for i := range row {
		row[i] = 1
	}
	for _, x := range at {
		row[x] = 0
	}
	return [][]byte{row}
}

// TestCompare_Identical scores a perfect match as all ones.
func TestCompare_Identical(t *testing.T) {
	line := ink(6, 0, 2, 4)

	score, err := stats.Compare(line, ink(6, 0, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score.HitRate)
	assert.Equal(t, 1.0, score.DetectionGT)
	assert.Equal(t, 1.0, score.DetectionR)
}

// TestCompare_Partial checks the three rates on a known overlap:
// detected {0,1,2}, ground {1,2,3} → shared 2, united 4.
func TestCompare_Partial(t *testing.T) {
	score, err := stats.Compare(ink(6, 0, 1, 2), ink(6, 1, 2, 3))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, score.HitRate, 1e-12, "2 shared of 4 united")
	assert.InDelta(t, 2.0/3.0, score.DetectionGT, 1e-12, "2 of 3 ground ink")
	assert.InDelta(t, 2.0/3.0, score.DetectionR, 1e-12, "2 of 3 detected ink")
}

// TestCompare_Disjoint and all-background inputs score zero, never NaN.
func TestCompare_Disjoint(t *testing.T) {
	score, err := stats.Compare(ink(4, 0), ink(4, 3))
	require.NoError(t, err)
	assert.Zero(t, score.HitRate)

	score, err = stats.Compare(ink(4), ink(4))
	require.NoError(t, err)
	assert.Zero(t, score.HitRate, "0/0 maps to 0")
	assert.Zero(t, score.DetectionGT)
	assert.Zero(t, score.DetectionR)
}

// TestCompare_DimensionMismatch rejects shape disagreements.
func TestCompare_DimensionMismatch(t *testing.T) {
	_, err := stats.Compare(ink(4, 0), ink(5, 0))
	assert.ErrorIs(t, err, stats.ErrDimensionMismatch)

	_, err = stats.Compare([][]byte{{1}, {1}}, [][]byte{{1}})
	assert.ErrorIs(t, err, stats.ErrDimensionMismatch)
}

// TestBestMatch picks the line with the highest hit rate.
func TestBestMatch(t *testing.T) {
	ground := ink(6, 1, 2, 3)
	detected := [][][]byte{
		ink(6, 5),       // disjoint
		ink(6, 1, 2),    // 2 shared of 3 united
		ink(6, 1, 2, 3), // perfect
	}

	idx, score, err := stats.BestMatch(ground, detected)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 1.0, score.HitRate)

	_, _, err = stats.BestMatch(ground, nil)
	assert.ErrorIs(t, err, stats.ErrNoLines)
}

// TestEvaluate aggregates a two-line page where one line is perfect and
// the other misses entirely.
func TestEvaluate(t *testing.T) {
	detected := [][][]byte{ink(6, 0, 1), ink(6, 4)}
	ground := [][][]byte{ink(6, 0, 1), ink(6, 2, 3)}

	rep, err := stats.Evaluate("page-1", detected, ground)
	require.NoError(t, err)
	assert.Equal(t, "page-1", rep.Name)
	assert.Equal(t, 2, rep.GroundTruthLines)
	assert.Equal(t, 1, rep.Correct, "only the perfect line clears the 0.9 floor")
	assert.InDelta(t, 0.5, rep.HitRate, 1e-12, "(1.0 + 0.0) / 2")

	_, err = stats.Evaluate("page-1", detected, nil)
	assert.ErrorIs(t, err, stats.ErrNoGroundTruth)
	_, err = stats.Evaluate("page-1", nil, ground)
	assert.ErrorIs(t, err, stats.ErrNoLines)
}

// TestWriteCSV pins the stats.csv column order.
func TestWriteCSV(t *testing.T) {
	reports := []stats.Report{
		{Name: "csg562-003", HitRate: 0.914, DetectionGT: 0.95, DetectionR: 0.887, Correct: 18, GroundTruthLines: 20},
	}

	var buf bytes.Buffer
	require.NoError(t, stats.WriteCSV(&buf, reports))
	assert.Equal(t, "csg562-003,91,95,89,18,20\n", buf.String())
}

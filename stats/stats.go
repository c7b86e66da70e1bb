package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/linesegm/gridmap"
)

// Sentinel errors for evaluation.
var (
	// ErrDimensionMismatch indicates compared masks of different dimensions.
	ErrDimensionMismatch = errors.New("stats: masks must share dimensions")
	// ErrNoGroundTruth indicates evaluation without any ground-truth line.
	ErrNoGroundTruth = errors.New("stats: no ground-truth lines")
	// ErrNoLines indicates evaluation without any detected line.
	ErrNoLines = errors.New("stats: no detected lines")
)

// correctThreshold is the rate both detection scores must reach for a
// line to count as correctly detected.
const correctThreshold = 0.9

// LineScore captures the agreement between one detected line and one
// ground-truth line, measured over ink pixels.
type LineScore struct {
	// HitRate is |detected ∩ ground| / |detected ∪ ground|.
	HitRate float64
	// DetectionGT is |detected ∩ ground| / |ground|: how much of the true
	// line was recovered.
	DetectionGT float64
	// DetectionR is |detected ∩ ground| / |detected|: how much of the
	// detected line is actually the true line.
	DetectionR float64
}

// Report aggregates a page's evaluation.
type Report struct {
	// Name identifies the page.
	Name string
	// HitRate, DetectionGT and DetectionR are averages over ground-truth
	// lines, each scored against its best-matching detected line.
	HitRate     float64
	DetectionGT float64
	DetectionR  float64
	// Correct counts ground-truth lines whose best match reached the 0.9
	// floor on both detection rates.
	Correct int
	// GroundTruthLines is the number of ground-truth lines evaluated.
	GroundTruthLines int
}

// Compare scores a detected line strip against a ground-truth strip of the
// same dimensions. Empty intersections score zero rather than NaN.
func Compare(detected, ground [][]byte) (LineScore, error) {
	if len(detected) != len(ground) {
		return LineScore{}, ErrDimensionMismatch
	}

	var both, either, inkDetected, inkGround int
	for y := range detected {
		if len(detected[y]) != len(ground[y]) {
			return LineScore{}, ErrDimensionMismatch
		}
		for x := range detected[y] {
			d := detected[y][x] == gridmap.Ink
			g := ground[y][x] == gridmap.Ink
			if d {
				inkDetected++
			}
			if g {
				inkGround++
			}
			if d && g {
				both++
			}
			if d || g {
				either++
			}
		}
	}

	return LineScore{
		HitRate:     ratio(both, either),
		DetectionGT: ratio(both, inkGround),
		DetectionR:  ratio(both, inkDetected),
	}, nil
}

// BestMatch scores ground against every detected line and returns the
// index and score of the best hit-rate assignment.
func BestMatch(ground [][]byte, detected [][][]byte) (int, LineScore, error) {
	if len(detected) == 0 {
		return -1, LineScore{}, ErrNoLines
	}

	bestIdx, best := -1, LineScore{HitRate: -1}
	for i, line := range detected {
		score, err := Compare(line, ground)
		if err != nil {
			return -1, LineScore{}, fmt.Errorf("stats: line %d: %w", i, err)
		}
		if score.HitRate > best.HitRate {
			bestIdx, best = i, score
		}
	}

	return bestIdx, best, nil
}

// Evaluate builds a page report: each ground-truth line is assigned its
// best-matching detected line, the three rates are averaged, and lines
// clearing the 0.9 floor on both detection rates count as correct.
func Evaluate(name string, detected, ground [][][]byte) (Report, error) {
	if len(ground) == 0 {
		return Report{}, ErrNoGroundTruth
	}
	if len(detected) == 0 {
		return Report{}, ErrNoLines
	}

	rep := Report{Name: name, GroundTruthLines: len(ground)}
	for i, gt := range ground {
		_, score, err := BestMatch(gt, detected)
		if err != nil {
			return Report{}, fmt.Errorf("stats: ground line %d: %w", i, err)
		}
		rep.HitRate += score.HitRate
		rep.DetectionGT += score.DetectionGT
		rep.DetectionR += score.DetectionR
		if score.DetectionGT >= correctThreshold && score.DetectionR >= correctThreshold {
			rep.Correct++
		}
	}

	n := float64(len(ground))
	rep.HitRate /= n
	rep.DetectionGT /= n
	rep.DetectionR /= n

	return rep, nil
}

// WriteCSV appends one row per report in the stats.csv layout:
// name, hit rate %, detection-GT %, detection-R %, correct, total.
func WriteCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	for _, rep := range reports {
		row := []string{
			rep.Name,
			strconv.Itoa(percent(rep.HitRate)),
			strconv.Itoa(percent(rep.DetectionGT)),
			strconv.Itoa(percent(rep.DetectionR)),
			strconv.Itoa(rep.Correct),
			strconv.Itoa(rep.GroundTruthLines),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("stats: writing report row for %s: %w", rep.Name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ratio divides, mapping 0/0 to 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

// percent rounds a [0,1] rate to an integer percentage.
func percent(rate float64) int {
	return int(math.Round(rate * 100))
}

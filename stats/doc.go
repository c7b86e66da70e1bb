// Package stats evaluates segmented lines against ground truth.
//
// What:
//
//   - Compare scores one detected line against one ground-truth line over
//     ink pixels: hit rate |A∩B|/|A∪B| plus the two detection rates
//     |A∩B|/|ground| and |A∩B|/|detected|.
//   - Evaluate assigns each ground-truth line its best-matching detected
//     line by hit rate, averages the three rates, and counts a line as
//     correctly detected when both detection rates reach 0.9.
//   - WriteCSV appends one report row per page in the stats.csv
//     column order: name, hit rate %, detection-GT %, detection-R %,
//     correctly detected, ground-truth lines.
//
// Errors:
//
//   - ErrDimensionMismatch: compared masks disagree on dimensions.
//   - ErrNoGroundTruth:     evaluation without ground-truth lines.
//   - ErrNoLines:           evaluation without detected lines.
package stats

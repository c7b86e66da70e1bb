// Package gridmap provides an immutable pixel-grid view over a binarized
// document page, used as the search space for boundary tracing.
//
// What:
//
//   - Node is an integer (Row, Col) coordinate; a plain value type that is
//     comparable and usable directly as a map key.
//   - Grid snapshots two equal-dimension byte matrices: a binary ink mask
//     (0 = ink, anything else = background) and a per-column vertical
//     distance map (distance to the nearest ink pixel in the same column,
//     with NoObstacle = 255 as the "no ink in range" sentinel).
//   - Queries: InBounds, IsWall, ObstacleDistance, Neighbors.
//
// Why:
//
//   - The search core needs fast, allocation-free, read-only answers about
//     the page; the Grid owns deep copies of its inputs so concurrent
//     searches over the same page can never observe mutation.
//   - Wall status is a cost concern, not a connectivity concern: Neighbors
//     filters on bounds only, so a boundary may cross ink when no cheaper
//     route exists.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory (deep copy).
//   - All queries: O(1); Neighbors is O(8).
//
// Errors:
//
//   - ErrEmptyGrid:         input has no rows or no columns.
//   - ErrNonRectangular:    rows have differing lengths.
//   - ErrDimensionMismatch: mask and distance map dimensions differ.
//
// Out-of-bounds access through IsWall or ObstacleDistance is a caller
// contract violation and panics via the runtime bounds check; always
// filter through InBounds or Neighbors first.
package gridmap

// Package imaging prepares document images for boundary search and renders
// search results back onto pages.
//
// What:
//
//   - Load / Decode: read a page as grayscale intensities.
//   - Binarize: threshold intensities into the 0 = ink / 1 = background
//     mask convention the search core expects.
//   - DistanceTransform: per-column vertical distance to the nearest ink
//     pixel, clamped at the gridmap.NoObstacle sentinel. Each column is
//     treated in isolation, so the transform reduces to a two-pass 1-D
//     scan.
//   - LineRows: projection-histogram line localization; the midpoints of
//     whitespace valleys between text bands become search start rows.
//   - DrawBoundary / Save: debug overlay of a traced boundary and PNG
//     output of masks.
//
// Errors:
//
//   - ErrEmptyImage: an input image decodes to zero pixels.
//   - ErrNoLines:    no whitespace valley separates two text bands.
//
// All functions operate on snapshots and return fresh matrices; none
// mutates its input.
package imaging

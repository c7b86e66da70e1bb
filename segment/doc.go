// Package segment turns boundary paths into text-line images.
//
// What:
//
//   - Boundaries runs one astar.Search per whitespace valley row over a
//     shared read-only Grid and reconstructs each boundary path.
//   - Lines carves the page into n+1 line strips from n boundaries,
//     ordered top to bottom: everything on the far side of a boundary is
//     blanked to background and the strip is cropped to its bounding rows.
//   - PageLines carves the same strips without cropping, keeping them
//     pixel-aligned with page-sized ground-truth masks for evaluation.
//   - CarveFirst / CarveBetween / CarveLast are the per-line primitives,
//     exposed for callers that manage boundaries themselves.
//
// The Grid is never mutated: every search owns its frontier and tables,
// and every carve works on a fresh copy of the mask.
//
// Errors:
//
//   - ErrNoBoundaries: Lines invoked with no boundaries.
//   - ErrEmptyMask:    carving an empty page.
//   - Search failures propagate wrapped with the valley row that failed.
package segment

// Package linesegm segments handwritten document images into text lines
// by tracing minimum-cost boundaries between adjacent lines with a
// cost-weighted A* search over the pixel grid.
//
// 🚀 What is linesegm?
//
//	A small, focused library that brings together:
//		• gridmap/  — immutable pixel-grid view over a binarized page plus a
//		              per-column vertical distance map
//		• astar/    — the search core: tunable cost model, min-heap frontier,
//		              A* loop and path reconstruction
//		• imaging/  — preprocessing: binarization, column distance transform,
//		              projection-based line localization, debug overlays
//		• segment/  — carving a page into line strips along found boundaries
//		• stats/    — hit-rate / line-detection evaluation against ground
//		              truth, with CSV reporting
//
// ✨ How it works
//
//   - The page is binarized: 0 = ink, anything else = background.
//   - For every whitespace valley between two text bands, an A* search runs
//     from the left edge to the right edge of the page. The edge cost pulls
//     the path away from ink strokes (wall penalty + obstacle proximity) and
//     keeps it roughly horizontal (vertical drift), so the boundary threads
//     the valley between the two lines.
//   - Crossing ink is penalized, never forbidden: when ascenders and
//     descenders touch, the path cuts through at the cheapest point.
//   - The heuristic is factor × Euclidean distance. Factor 1 keeps it
//     admissible; larger factors trade path quality for speed.
//
// Quick ASCII example:
//
//	ink:   ████ ███  ██ ████
//	path:  ────────────────── ← boundary threads the whitespace valley
//	ink:    ███ ████ ███  ██
//
// Dive into the per-package docs for the full contracts, error taxonomy
// and complexity notes.
//
//	go get github.com/katalvlaran/linesegm
package linesegm

// Package astar implements the cost-weighted A* search that traces a
// minimum-cost boundary between two adjacent text lines on a gridmap.Grid.
//
// Overview:
//
//   - Search expands nodes in order of f = g + h, where g is the
//     accumulated edge cost and h = factor × Euclidean distance to goal.
//   - The edge cost is a weighted sum of four domain terms (see cost.go):
//     vertical drift from the start row, axis/diagonal step cost (10/14),
//     a binary wall-crossing indicator, and an obstacle-proximity pair
//     d = 1/(1+dist), d² = 1/(1+dist²) derived from the per-column
//     distance map. The weights come from a named WeightProfile.
//   - The frontier is a min-heap with the lazy decrease-key strategy:
//     improving a node pushes a duplicate entry; stale entries are skipped
//     on pop once the node is settled.
//
// Key features:
//
//   - Functional options tune the search without changing the signature:
//     WithStep, WithHeuristicFactor, WithProfile, WithProfiles,
//     WithMaxExpansions.
//   - Factor 1 keeps the heuristic admissible and the result optimal;
//     factor > 1 deliberately trades optimality for goal-directed speed.
//   - WithMaxExpansions bounds worst-case latency on very large pages;
//     hitting the cap surfaces ErrSearchExhausted, distinct from a genuine
//     ErrGoalUnreachable.
//   - Weight profiles are injected configuration: the built-in "mls" and
//     "default" profiles can be extended via WithProfiles or LoadProfiles
//     (YAML) without touching the cost function.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the reachable grid, V = W×H/step².
//   - Space: O(V + E) for the score/parent tables and the lazy heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:            nil *gridmap.Grid.
//   - ErrOutOfBounds:        start or goal outside the grid.
//   - ErrBadStep:            step < 1.
//   - ErrBadHeuristicFactor: factor < 1.
//   - ErrUnknownProfile:     profile name absent from the profile set
//     (never a silent fallback).
//   - ErrGoalUnreachable:    frontier exhausted without popping goal.
//   - ErrSearchExhausted:    expansion cap hit before reaching goal.
//   - ErrDisconnectedPath:   ReconstructPath called for a goal the search
//     never reached (caller contract violation).
//
// Thread safety:
//
//   - A Grid is read-only and may be shared; every Search call owns its
//     frontier and score/parent tables, so independent searches over the
//     same Grid may run concurrently.
package astar

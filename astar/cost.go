package astar

import (
	"math"

	"github.com/katalvlaran/linesegm/gridmap"
)

// Integer step costs, scaled ×10 so the diagonal/axis ratio stays close to
// √2 without leaving integer territory.
const (
	// StepStraight is the cost of an axis-aligned move (same row or column).
	StepStraight = 10.0
	// StepDiagonal is the cost of a diagonal move (≈ √2 × StepStraight).
	StepDiagonal = 14.0
)

// Built-in weight profile names.
const (
	// DefaultProfileName is the general-purpose profile tuned on the
	// Saint Gall layout; Search never falls back to it on its own, the
	// caller must name it.
	DefaultProfileName = "default"
	// MLSProfileName is the profile tuned for the MLS dataset, whose pages
	// carry heavier noise and tighter interlines.
	MLSProfileName = "mls"
)

// WeightProfile combines the four cost terms into one edge cost. Each
// field weighs one term; a zero weight disables its term entirely.
//
// Different document collections have different layouts and noise, so the
// weights are data, not code: new collections plug in via WithProfiles or
// LoadProfiles without touching the cost functions.
type WeightProfile struct {
	// VerticalDrift weighs |row - startRow|, biasing the boundary to run
	// roughly horizontally.
	VerticalDrift float64 `yaml:"vertical_drift"`
	// Step weighs the 10/14 axis/diagonal move cost.
	Step float64 `yaml:"step"`
	// Wall weighs the binary ink-crossing indicator; large values strongly
	// discourage, but never forbid, cutting through a stroke.
	Wall float64 `yaml:"wall"`
	// Proximity weighs d = 1/(1+dist), pulling the boundary into the
	// whitespace valley between lines.
	Proximity float64 `yaml:"proximity"`
	// ProximitySq weighs d² = 1/(1+dist²), punishing closeness to ink more
	// sharply than Proximity.
	ProximitySq float64 `yaml:"proximity_sq"`
}

// BuiltinProfiles returns a fresh copy of the built-in profile registry.
// The weights are the hand-tuned values for the two supported collections.
func BuiltinProfiles() map[string]WeightProfile {
	return map[string]WeightProfile{
		MLSProfileName:     {VerticalDrift: 2.5, Step: 1, Wall: 50, Proximity: 130, ProximitySq: 0},
		DefaultProfileName: {VerticalDrift: 0.5, Step: 1, Wall: 50, Proximity: 150, ProximitySq: 50},
	}
}

// EdgeCost computes the cost of moving from current to neighbor for a
// search anchored at start. All four terms are pure functions of the nodes
// and the read-only grid.
func (w WeightProfile) EdgeCost(g *gridmap.Grid, current, neighbor, start gridmap.Node) float64 {
	v := verticalDrift(neighbor, start)
	n := stepCost(current, neighbor)
	m := wallPenalty(g, neighbor)
	d, d2 := obstacleProximity(g, neighbor)

	return w.VerticalDrift*v + w.Step*n + w.Wall*m + w.Proximity*d + w.ProximitySq*d2
}

// Heuristic estimates the remaining cost from n to goal as
// factor × Euclidean distance. Factor 1 never overestimates; any larger
// factor trades optimality for fewer expansions.
func Heuristic(n, goal gridmap.Node, factor int) float64 {
	dr := float64(n.Row - goal.Row)
	dc := float64(n.Col - goal.Col)

	return float64(factor) * math.Sqrt(dr*dr+dc*dc)
}

// verticalDrift penalizes departing from the starting row.
func verticalDrift(n, start gridmap.Node) float64 {
	return math.Abs(float64(n.Row - start.Row))
}

// stepCost is the axis/diagonal move cost: 10 when current and neighbor
// share a row or column, 14 otherwise.
func stepCost(current, neighbor gridmap.Node) float64 {
	if current.Row == neighbor.Row || current.Col == neighbor.Col {
		return StepStraight
	}

	return StepDiagonal
}

// wallPenalty is the binary ink-crossing indicator: 1 on ink, 0 otherwise.
func wallPenalty(g *gridmap.Grid, n gridmap.Node) float64 {
	if g.IsWall(n) {
		return 1
	}

	return 0
}

// obstacleProximity derives the decay pair (d, d²) from the per-column
// distance map. An absent distance counts as infinite, so both terms
// vanish far from ink.
func obstacleProximity(g *gridmap.Grid, n gridmap.Node) (float64, float64) {
	dist, ok := g.ObstacleDistance(n)
	if !ok {
		return 0, 0
	}
	fd := float64(dist)

	return 1 / (1 + fd), 1 / (1 + fd*fd)
}

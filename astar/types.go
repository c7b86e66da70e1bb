// Package astar defines options, weight profiles and sentinel errors for
// the boundary search core.
package astar

import (
	"errors"

	"github.com/katalvlaran/linesegm/gridmap"
)

// Sentinel errors returned by Search and ReconstructPath.
var (
	// ErrNilGrid indicates that a nil *gridmap.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: node out of grid bounds")

	// ErrBadStep indicates a non-positive exploration step.
	ErrBadStep = errors.New("astar: step must be a positive integer")

	// ErrBadHeuristicFactor indicates a heuristic multiplication factor < 1.
	ErrBadHeuristicFactor = errors.New("astar: heuristic factor must be a positive integer")

	// ErrUnknownProfile indicates the requested weight profile name is not
	// present in the profile set. Unknown names never fall back silently.
	ErrUnknownProfile = errors.New("astar: unknown weight profile")

	// ErrGoalUnreachable indicates the frontier exhausted without popping
	// the goal node.
	ErrGoalUnreachable = errors.New("astar: goal unreachable from start")

	// ErrSearchExhausted indicates the expansion cap was hit before the
	// goal was reached.
	ErrSearchExhausted = errors.New("astar: expansion budget exhausted before reaching goal")

	// ErrDisconnectedPath indicates ReconstructPath was invoked for a goal
	// absent from the parent table.
	ErrDisconnectedPath = errors.New("astar: goal has no recorded parent chain back to start")

	// ErrNoProfiles indicates a profile file parsed to an empty set.
	ErrNoProfiles = errors.New("astar: profile source defines no profiles")
)

// Options configures a single Search invocation.
//
// Step            – neighbor offset scale (1 = every pixel, 2 = coarser).
// HeuristicFactor – multiplier on the Euclidean heuristic; 1 is admissible,
// larger values are deliberately inadmissible for speed.
// Profile         – name of the weight profile to combine cost terms with.
// Profiles        – additional named profiles merged over the built-ins.
// MaxExpansions   – cap on settled nodes; 0 means unlimited.
type Options struct {
	Step            int
	HeuristicFactor int
	Profile         string
	Profiles        map[string]WeightProfile
	MaxExpansions   int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithStep sets the exploration granularity. Normal values are 1 or 2.
func WithStep(step int) Option {
	return func(o *Options) { o.Step = step }
}

// WithHeuristicFactor sets the heuristic multiplication factor.
// Factor 1 preserves admissibility; factors above 1 speed the search up at
// the price of path optimality.
func WithHeuristicFactor(factor int) Option {
	return func(o *Options) { o.HeuristicFactor = factor }
}

// WithProfile selects the named weight profile for the cost model.
func WithProfile(name string) Option {
	return func(o *Options) { o.Profile = name }
}

// WithProfiles merges additional named weight profiles over the built-in
// set for this search. Entries shadow built-ins of the same name.
func WithProfiles(profiles map[string]WeightProfile) Option {
	return func(o *Options) { o.Profiles = profiles }
}

// WithMaxExpansions bounds the number of nodes the search may settle.
// Hitting the bound surfaces ErrSearchExhausted. Zero means unlimited.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// DefaultOptions returns the Options every Search starts from:
// Step 1, HeuristicFactor 1 (admissible), the "default" profile and no
// expansion cap.
func DefaultOptions() Options {
	return Options{
		Step:            1,
		HeuristicFactor: 1,
		Profile:         DefaultProfileName,
		Profiles:        nil,
		MaxExpansions:   0,
	}
}

// Result carries the outcome of one Search.
//
// Parents maps every improved node to the node it was best reached from;
// it forms a tree of back-pointers rooted at start and feeds
// ReconstructPath. Scores maps every discovered node to its best known
// cumulative cost. Expanded counts settled nodes. Found reports whether
// the goal was popped.
type Result struct {
	Parents  map[gridmap.Node]gridmap.Node
	Scores   map[gridmap.Node]float64
	Expanded int
	Found    bool
}

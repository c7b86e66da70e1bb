package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/linesegm/gridmap"
)

// Search traces the minimum-cost boundary from start to goal over g.
// It accepts functional options to customize behavior (step, heuristic
// factor, weight profile, expansion cap).
//
// Returns:
//
//   - Result: parent and score tables, the number of settled nodes, and
//     Found=true when the goal was popped. On failure the tables still
//     describe everything discovered so far.
//   - err: a sentinel validation error, ErrGoalUnreachable when the
//     frontier exhausts, or ErrSearchExhausted when the cap is hit.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must be in bounds (ErrOutOfBounds).
//  3. Step ≥ 1 (ErrBadStep).
//  4. HeuristicFactor ≥ 1 (ErrBadHeuristicFactor).
//  5. The profile name must resolve against the built-ins merged with
//     WithProfiles entries (ErrUnknownProfile); no silent fallback.
//
// The loop maintains three logical sets: open (frontier entries not yet
// popped), settled (popped and finalized) and unseen (implicit). Together
// the parent and score tables always reflect the cheapest path found so
// far to every discovered node; with factor 1 that makes the returned
// boundary optimal.
//
// Complexity: O((V + E) log V) time, O(V + E) space, V = reachable nodes.
func Search(g *gridmap.Grid, start, goal gridmap.Node, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the configuration boundary before touching the grid.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, start.Row, start.Col)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal (%d,%d)", ErrOutOfBounds, goal.Row, goal.Col)
	}
	if cfg.Step < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadStep, cfg.Step)
	}
	if cfg.HeuristicFactor < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadHeuristicFactor, cfg.HeuristicFactor)
	}

	// 3) Resolve the weight profile: built-ins first, caller-supplied
	//    profiles shadow them by name.
	profiles := BuiltinProfiles()
	for name, p := range cfg.Profiles {
		profiles[name] = p
	}
	profile, ok := profiles[cfg.Profile]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownProfile, cfg.Profile)
	}

	// 4) Run the search with per-call state; the grid itself stays
	//    read-only, so concurrent Search calls may share it.
	r := &runner{
		grid:    g,
		start:   start,
		goal:    goal,
		cfg:     cfg,
		profile: profile,
		scores:  make(map[gridmap.Node]float64),
		parents: make(map[gridmap.Node]gridmap.Node),
		settled: make(map[gridmap.Node]bool),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	grid    *gridmap.Grid // read-only search space
	start   gridmap.Node
	goal    gridmap.Node
	cfg     Options
	profile WeightProfile

	scores  map[gridmap.Node]float64      // node → best known cumulative cost
	parents map[gridmap.Node]gridmap.Node // node → best known predecessor
	settled map[gridmap.Node]bool         // node → cost finalized
	pq      frontier                      // lazy min-heap of (f, node)
}

// init seeds the tables and pushes the start node at priority 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.scores[r.start] = 0
	heap.Push(&r.pq, &frontierItem{node: r.start, priority: 0})
}

// process runs the open/settled loop to completion or exhaustion.
func (r *runner) process() (Result, error) {
	expanded := 0
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-priority entry.
		current := heap.Pop(&r.pq).(*frontierItem).node

		// 2) Goal popped: the boundary is complete.
		if current == r.goal {
			return Result{Parents: r.parents, Scores: r.scores, Expanded: expanded, Found: true}, nil
		}

		// 3) Skip stale duplicates left behind by lazy decrease-key.
		if r.settled[current] {
			continue
		}
		r.settled[current] = true

		// 4) Enforce the optional latency bound.
		expanded++
		if r.cfg.MaxExpansions > 0 && expanded > r.cfg.MaxExpansions {
			return Result{Parents: r.parents, Scores: r.scores, Expanded: expanded},
				fmt.Errorf("%w: cap %d", ErrSearchExhausted, r.cfg.MaxExpansions)
		}

		// 5) Relax every non-settled neighbor at the configured step.
		r.relax(current)
	}

	// Frontier exhausted without popping goal: on a finite grid that means
	// no step-reachable route exists. Surface it, never an empty path.
	return Result{Parents: r.parents, Scores: r.scores, Expanded: expanded},
		fmt.Errorf("%w: start (%d,%d) goal (%d,%d) step %d",
			ErrGoalUnreachable, r.start.Row, r.start.Col, r.goal.Row, r.goal.Col, r.cfg.Step)
}

// relax attempts to improve every neighbor of current. A strictly better
// cumulative cost updates the score and parent tables and pushes a new
// frontier entry at f = g + heuristic; equal-cost rediscoveries are
// dropped to keep the heap lean.
func (r *runner) relax(current gridmap.Node) {
	for _, neighbor := range r.grid.Neighbors(current, r.cfg.Step) {
		if r.settled[neighbor] {
			continue
		}

		tentative := r.scores[current] + r.profile.EdgeCost(r.grid, current, neighbor, r.start)
		if best, seen := r.scores[neighbor]; seen && tentative >= best {
			continue
		}

		r.scores[neighbor] = tentative
		r.parents[neighbor] = current
		heap.Push(&r.pq, &frontierItem{
			node:     neighbor,
			priority: tentative + Heuristic(neighbor, r.goal, r.cfg.HeuristicFactor),
		})
	}
}

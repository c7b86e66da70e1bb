package astar

import "github.com/katalvlaran/linesegm/gridmap"

// frontierItem pairs a node with the f-score it was pushed at.
type frontierItem struct {
	node     gridmap.Node
	priority float64 // f = g + heuristic at push time
}

// frontier is a min-heap of *frontierItem ordered by priority ascending.
// It implements the "lazy decrease-key" pattern: improving a node pushes a
// duplicate entry, and outdated entries are skipped when popped once the
// node is settled. Entries are only ever removed by being popped.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller priority → popped first.
func (f frontier) Less(i, j int) bool { return f[i].priority < f[j].priority }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the last element after heap.Pop has sifted the
// minimum there.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

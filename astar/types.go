// File: types.go
// Role: Public value types of the engine: graph contract, arcs, nodes, status, outcomes.

package astar

// Status is the lifecycle state of a Search.
//
//	Searching → Completed (goal popped from the frontier)
//	Searching → Failed    (frontier exhausted or expansion cap reached)
type Status int

const (
	// Searching means further Step calls may make progress.
	Searching Status = iota
	// Completed means the goal was closed and Outcome.Path is a start→goal route.
	Completed
	// Failed means the goal is unreachable within the configured limits.
	Failed
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Searching:
		return "searching"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further progress is possible.
func (s Status) Terminal() bool { return s == Completed || s == Failed }

// Arc is one traversable edge out of a position.
type Arc[P comparable] struct {
	To   P
	Cost float64
}

// Graph is the capability the engine requires from a host representation.
// Implementations must be treated as read-only for the lifetime of a search.
type Graph[P comparable] interface {
	// Neighbors returns the arcs leaving p. The order must be deterministic.
	Neighbors(p P) []Arc[P]
	// Blocked reports whether p may not be entered (walls in grid hosts).
	Blocked(p P) bool
	// Contains reports whether p is a position of the host.
	Contains(p P) bool
	// Positions enumerates every position of the host.
	Positions() []P
	// Order returns the number of positions.
	Order() int
}

// Heuristic estimates the remaining cost from p to goal. It must be a pure
// function of its arguments and the static host. Negative or NaN estimates
// are clamped to zero by the engine.
type Heuristic[P comparable] func(p, goal P) float64

// NodeID indexes the node arena of a Search.
type NodeID int

// NoParent marks the root of the search tree.
const NoParent NodeID = -1

// Node is one discovered position. Parent always refers to an earlier arena
// slot, so parent chains are acyclic by construction.
type Node[P comparable] struct {
	Position P
	Parent   NodeID
	G        float64 // cost from start
	H        float64 // heuristic estimate to goal
	F        float64 // G + H
	Seq      uint64  // insertion sequence, used for stable tie-breaking
}

// Outcome reports what a single Step did.
type Outcome[P comparable] struct {
	Status Status
	// Path is the final route on Completed, the partial route start→Current
	// while Searching, and nil when Stale or Failed.
	Path []P
	// Cost is the G value of the last position in Path.
	Cost float64
	// Current is the position popped by this step.
	Current P
	// Stale marks a superseded frontier entry that was discarded.
	Stale bool
	// Step is the 1-based index of the step that produced this outcome.
	Step int
}

// Snapshot is a read-only view of the search state for renderers.
// Every slice is freshly allocated.
type Snapshot[P comparable] struct {
	Status     Status
	Start      P
	Goal       P
	Current    P
	HasCurrent bool
	Closed     []P // closing order
	Frontier   []P // priority order, live positions only
	Path       []P // best path known so far (last non-stale expansion)
	Cost       float64
	Steps      int
	Expansions int
	Limit      int
}

// Result is the summary returned by Run.
type Result[P comparable] struct {
	Path       []P
	Cost       float64
	Steps      int
	Expansions int
	Found      bool
}

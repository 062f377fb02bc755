// Package astar implements a stepwise A* search engine: a priority-driven
// traversal that advances exactly one expansion per call, so an external
// scheduler (a UI timer, a CLI loop, a test) can pause, resume and observe the
// search node by node.
//
// Overview:
//
//   - Search[P] owns all mutable bookkeeping: an arena of Nodes (parents are
//     arena indices, never pointers), a B-tree frontier ordered by F = G + H,
//     the closed set and the counters. Initialize rebuilds all of it, so a
//     stopped search can be restarted without residual state.
//   - Step performs one unit of work and returns an Outcome: the Status
//     (Searching, Completed, Failed) and the best path known so far. Popping a
//     superseded frontier entry is an observable no-op step (Outcome.Stale).
//   - Snapshot returns read-only copies of the closed set, the live frontier
//     and the current path for renderers.
//
// Graph hosts implement Graph[P]. The engine never mutates the host; grid
// hosts (gridgraph) yield unit-cost arcs, weighted hosts (converters) yield
// their edge weights.
//
// Termination policy:
//
//   - An empty frontier ends the search with Failed.
//   - Expansions are capped (WithMaxExpansions / WithExpansionRatio; default is
//     the graph order). Reaching the cap ends the search with Failed; it is a
//     give-up policy, not an error.
//
// Dedup policy:
//
//   - A neighbor is pushed only when no live frontier entry for the same
//     position has G ≤ the tentative G. The check is O(1) through a best-G map;
//     superseded entries stay in the tree and are discarded when popped.
//
// Errors:
//
//   - Initialize validates its input and returns a *ConfigError that matches
//     ErrInvalidConfig plus one of ErrNilGraph, ErrNilHeuristic,
//     ErrStartNotFound, ErrGoalNotFound, ErrStartIsGoal, ErrNegativeCost,
//     ErrOptionViolation.
//   - Run reports a Failed search as ErrSearchExhausted.
//
// Concurrency:
//
//   - Search is not safe for concurrent use. Step runs to completion on the
//     calling goroutine; drivers that render elsewhere must hand off Snapshot
//     copies (see package driver).
//
// Complexity:
//
//   - Step: O(d·log F) for d neighbors and F frontier entries.
//   - Snapshot: O(F + C) for C closed positions.
package astar

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// Weights are ignored, so BFS works on weighted graphs as well. Hop counts
// times the minimum edge weight are a lower bound on the weighted distance;
// package heuristic builds its "hops" policy on exactly that.
//
// Determinism
//
//	Neighbors are enqueued in core.NeighborIDs order (lexicographic), so the
//	visit sequence is reproducible.
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip hops for which fn(curr, neighbor) == false.
//   - WithOnEnqueue / WithOnDequeue / WithOnVisit: hooks; OnVisit may abort.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//   - ErrUnreached from Result.PathTo.
//   - Wrapped OnVisit errors and ctx errors.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs

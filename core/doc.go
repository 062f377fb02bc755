// Package core provides a thread-safe in-memory Graph with string vertex IDs
// and float64 edge weights. It is the weighted host behind converters.Traversable
// and the input of the bfs and dijkstra oracles.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//	RemoveVertex(id string) error              // O(E)
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) // O(1)
//	RemoveEdge(edgeID string) error            // O(1)
//	HasEdge(from, to string) bool              // O(1)
//	Neighbors(id string) ([]*Edge, error)      // O(d·log d), insertion order
//	NeighborIDs(id string) ([]string, error)   // O(d·log d), unique, sorted
//	Vertices() []string                        // O(V·log V)
//	Edges() []*Edge                            // O(E·log E)
//	MinWeight() (float64, bool)                // O(E)
//	Stats() *GraphStats                        // O(V+E)
//
// Views:
//
//	Reverse(g) *Graph  // directed edges flipped, used for goal-anchored distances
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph, or NaN/Inf
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core.Graph values with non-negative float64 weights.
//
// It serves two roles in stepstar: the exact single-source distances behind
// the "exact" heuristic policy (run over core.Reverse from the goal), and the
// reference costs that A* results are checked against in tests.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E), lazy decrease-key keeps up to E heap entries.
//
// Options:
//
//	– Source:           ID of the starting vertex (required).
//	– ReturnPath:       return the predecessor map for PathTo.
//	– MaxDistance:      stop once the nearest unsettled vertex is farther.
//	– InfEdgeThreshold: edges with weight >= this threshold are skipped.
//
// Errors (sentinel):
//
//	– ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound.
//	– ErrNegativeWeight (wrapped with the offending edge).
//	– ErrNoPath from PathTo.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path, err := dijkstra.PathTo(prev, "A", "D")
package dijkstra

// File: view.go
// Role: Non-mutating graph views (new graph instances with altered topology).
// Determinism:
//   - Preserves vertex/edge IDs. Reverse flips directed edges only.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// Reverse returns a new Graph where every directed edge u→v becomes v→u.
// Undirected edges are copied unchanged. Weights, IDs and vertices are kept.
//
// Distances computed from t over Reverse(g) equal distances to t in g, which
// is what goal-anchored heuristics need.
//
// Complexity: O(V + E).
func Reverse(g *Graph) *Graph {
	return project(g, func(e *Edge) *Edge {
		ne := *e
		if e.Directed {
			ne.From, ne.To = e.To, e.From
		}
		return &ne
	})
}

// project copies g's vertices and the mapped edges into a new graph.
func project(g *Graph, mapEdge func(*Edge) *Edge) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, e := range g.edges {
		ne := mapEdge(e)
		out.edges[ne.ID] = ne
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][ne.ID] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(out, ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][ne.ID] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	// Future AddEdge calls on the view must not collide with copied IDs.
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

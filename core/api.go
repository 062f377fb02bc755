// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over configuration flags and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after construction.

package core

// Weighted reports whether non-zero edge weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default directedness applied to new edges.
// It does not scan edges; see HasDirectedEdges.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats produces a snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Under muVert, snapshot flags and vertex count.
//   - Stage 2: Under muEdgeAdj, snapshot edge count and classify edges by Directed.
//
// The two locks are never held together.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// options rebuilds the construction options of g.
func (g *Graph) options() []GraphOption {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}

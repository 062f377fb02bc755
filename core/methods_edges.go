// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount/MinWeight.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge and returns its ID. Missing endpoints are added.
//
// Errors:
//   - ErrEmptyVertexID: from or to is empty.
//   - ErrBadWeight: weight is NaN/±Inf, or non-zero on an unweighted graph.
//   - ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && (len(g.adjacencyList[from][to]) > 0) {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e

	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][e.ID] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][e.ID] = struct{}{}
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists. Undirected edges
// are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether at least one edge is directed. O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// MinWeight returns the smallest edge weight, or ok == false on an edge-less
// graph. Unweighted graphs report 1, the hop cost used by traversal hosts.
// Complexity: O(E).
func (g *Graph) MinWeight() (w float64, ok bool) {
	g.muVert.RLock()
	weighted := g.weighted
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if len(g.edges) == 0 {
		return 0, false
	}
	if !weighted {
		return 1, true
	}
	w = math.Inf(1)
	for _, e := range g.edges {
		if e.Weight < w {
			w = e.Weight
		}
	}

	return w, true
}

// nextEdgeID returns a new unique textual edge ID.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

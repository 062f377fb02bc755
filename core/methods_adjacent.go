// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() returns edges in insertion order (numeric Edge.ID asc).
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks, in that order.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns the edges leaving id.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge; self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d) for d incident edges.
//
// The returned *Edge values are live catalog entries; treat them as read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable over one edge from id,
// sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// edgeIDLess orders generated IDs numerically: "e2" before "e10".
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// ensureAdjacency guarantees adjacencyList[from][to] is initialized.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from from→to and, for undirected non-loops, to→from.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested buckets after bulk removals. Top-level
// entries of live vertices are kept.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if _, live := g.vertices[u]; !live && len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/stepstar/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     prev[v] == "" for the source and for unreachable v.
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// Fail fast on negative weights before touching the heap.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo walks prev back from dest to source and returns the vertex sequence
// source..dest. It returns ErrNoPath when dest has no predecessor chain to source.
func PathTo(prev map[string]string, source, dest string) ([]string, error) {
	if dest == source {
		return []string{source}, nil
	}
	path := []string{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || p == "" || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     uint64 // insertion counter; equal distances pop in FIFO order
}

// init sets every distance to +Inf and pushes the source at 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// process repeatedly settles the nearest unsettled vertex until the heap is
// empty or the nearest distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of the settled vertex u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		// Undirected edges are stored once; Other picks the far endpoint.
		v := e.Other(u)
		w := e.Weight

		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

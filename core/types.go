// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards the vertex catalog and configuration flags.
//   - muEdgeAdj guards the edge catalog and adjacency. Lock order is muVert → muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a NaN/Inf weight.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is shared, not copied, by views.
	Metadata map[string]interface{}
}

// IsNil reports whether the receiver is a nil pointer.
func (v *Vertex) IsNil() bool { return v == nil }

// Edge represents a connection between two vertices.
//
// Directed overrides the Graph default only when mixed edges are enabled.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   float64
	Directed bool
}

// IsNil reports whether the receiver is a nil pointer.
func (e *Edge) IsNil() bool { return e == nil }

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the in-memory graph used as a search host and as the oracle
// input for dijkstra and bfs.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and flags
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool
	allowMixed bool

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// GraphStats is a point-in-time summary returned by Stats.
type GraphStats struct {
	DirectedDefault     bool
	Weighted            bool
	AllowsMulti         bool
	AllowsLoops         bool
	MixedMode           bool
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// NewGraph creates an empty Graph. By default it is undirected, unweighted,
// without loops or multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMixedGraph is NewGraph with WithMixedEdges applied first.
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

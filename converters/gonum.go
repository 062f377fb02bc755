package converters

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/stepstar/core"
)

// ErrNilGraph is returned when a nil *core.Graph is converted.
var ErrNilGraph = errors.New("converters: graph is nil")

// Gonum is a core.Graph exported to gonum, with the ID mapping in both directions.
type Gonum struct {
	Graph graph.Weighted
	IDs   map[string]int64
	Names map[int64]string
}

// Node returns the gonum node for vertex id, or nil if unknown.
func (gg *Gonum) Node(id string) graph.Node {
	n, ok := gg.IDs[id]
	if !ok {
		return nil
	}
	return simple.Node(n)
}

// ToGonum copies g into a gonum simple weighted graph. Vertex IDs are numbered
// in core.Graph.Vertices order. Directed and mixed graphs become a
// WeightedDirectedGraph, with undirected edges added in both directions.
// Parallel edges collapse to the cheapest one. Self-loops are dropped, as
// gonum simple graphs reject them and they never shorten a path.
func ToGonum(g *core.Graph) (*Gonum, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := &Gonum{
		IDs:   make(map[string]int64, g.VertexCount()),
		Names: make(map[int64]string, g.VertexCount()),
	}
	for i, v := range g.Vertices() {
		out.IDs[v] = int64(i)
		out.Names[int64(i)] = v
	}

	weight := func(e *core.Edge) float64 {
		if g.Weighted() {
			return e.Weight
		}
		return 1
	}

	if g.Directed() || g.HasDirectedEdges() {
		dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		addNodes(out, dg)
		for _, e := range g.Edges() {
			if e.From == e.To {
				continue
			}
			setMin(dg, out.IDs[e.From], out.IDs[e.To], weight(e))
			if !e.Directed {
				setMin(dg, out.IDs[e.To], out.IDs[e.From], weight(e))
			}
		}
		out.Graph = dg

		return out, nil
	}

	ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	addNodes(out, ug)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		setMin(ug, out.IDs[e.From], out.IDs[e.To], weight(e))
	}
	out.Graph = ug

	return out, nil
}

type weightedBuilder interface {
	graph.Weighted
	AddNode(graph.Node)
	SetWeightedEdge(graph.WeightedEdge)
	NewWeightedEdge(from, to graph.Node, w float64) graph.WeightedEdge
}

func addNodes(gg *Gonum, b weightedBuilder) {
	for id := int64(0); id < int64(len(gg.Names)); id++ {
		b.AddNode(simple.Node(id))
	}
}

// setMin keeps the cheapest of parallel edges.
func setMin(b weightedBuilder, from, to int64, w float64) {
	if cur, ok := b.Weight(from, to); ok && cur <= w {
		return
	}
	b.SetWeightedEdge(b.NewWeightedEdge(simple.Node(from), simple.Node(to), w))
}

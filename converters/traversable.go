package converters

import (
	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/core"
)

// traversable is the astar.Graph view over a *core.Graph.
type traversable struct {
	g        *core.Graph
	weighted bool
}

var _ astar.Graph[string] = traversable{}

// Traversable returns an astar.Graph[string] backed by g. Arcs follow
// core.Graph.Neighbors (edge-ID order); unweighted graphs cost 1 per hop.
// No vertex is blocked. The graph must not be mutated while a search uses it.
//
// Errors: ErrNilGraph if g is nil.
func Traversable(g *core.Graph) (astar.Graph[string], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return traversable{g: g, weighted: g.Weighted()}, nil
}

func (t traversable) Neighbors(p string) []astar.Arc[string] {
	edges, err := t.g.Neighbors(p)
	if err != nil {
		return nil
	}
	arcs := make([]astar.Arc[string], 0, len(edges))
	for _, e := range edges {
		cost := 1.0
		if t.weighted {
			cost = e.Weight
		}
		arcs = append(arcs, astar.Arc[string]{To: e.Other(p), Cost: cost})
	}

	return arcs
}

func (t traversable) Blocked(string) bool { return false }

func (t traversable) Contains(p string) bool { return t.g.HasVertex(p) }

func (t traversable) Positions() []string { return t.g.Vertices() }

func (t traversable) Order() int { return t.g.VertexCount() }

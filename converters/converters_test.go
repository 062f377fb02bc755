package converters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/converters"
	"github.com/katalvlaran/stepstar/core"
)

func TestTraversable_Unweighted(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0)
	_ = g.AddVertex("Z")

	tg, err := converters.Traversable(g)
	require.NoError(t, err)
	assert.Equal(t, 4, tg.Order())
	assert.Equal(t, []string{"A", "B", "C", "Z"}, tg.Positions())
	assert.True(t, tg.Contains("Z"))
	assert.False(t, tg.Contains("Q"))
	assert.False(t, tg.Blocked("A"))
	assert.Equal(t, []astar.Arc[string]{{To: "B", Cost: 1}, {To: "C", Cost: 1}}, tg.Neighbors("A"))
	assert.Empty(t, tg.Neighbors("Z"))
	assert.Nil(t, tg.Neighbors("Q"))
}

func TestTraversable_WeightedMixed(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2.5, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("B", "C", 1)

	tg, err := converters.Traversable(g)
	require.NoError(t, err)
	assert.Equal(t, []astar.Arc[string]{{To: "B", Cost: 2.5}}, tg.Neighbors("A"))
	assert.Equal(t, []astar.Arc[string]{{To: "C", Cost: 1}}, tg.Neighbors("B"))
	assert.Equal(t, []astar.Arc[string]{{To: "B", Cost: 1}}, tg.Neighbors("C"))
}

func TestTraversable_NilGraph(t *testing.T) {
	tg, err := converters.Traversable(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
	assert.Nil(t, tg)
}

func TestToGonum_Undirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "C", 7)

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gg.IDs["A"])
	assert.Equal(t, "C", gg.Names[2])
	assert.Nil(t, gg.Node("Q"))

	w, ok := gg.Graph.Weight(gg.IDs["B"], gg.IDs["A"])
	require.True(t, ok)
	assert.Equal(t, 1.0, w, "parallel edges keep the cheapest")

	sp := path.DijkstraFrom(gg.Node("A"), gg.Graph)
	assert.Equal(t, 3.0, sp.WeightTo(gg.IDs["C"]))
}

func TestToGonum_Mixed(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("B", "C", 1)

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)

	sp := path.DijkstraFrom(gg.Node("C"), gg.Graph)
	assert.True(t, math.IsInf(sp.WeightTo(gg.IDs["A"]), 1), "A→B is one-way")
	assert.Equal(t, 1.0, sp.WeightTo(gg.IDs["B"]))

	_, err = converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

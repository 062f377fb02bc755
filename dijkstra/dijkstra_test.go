package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/stepstar/core"
	"github.com/katalvlaran/stepstar/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	weighted := core.NewGraph(core.WithWeighted())
	cases := []struct {
		name string
		g    *core.Graph
		opts []dijkstra.Option
		want error
	}{
		{"EmptySource", weighted, nil, dijkstra.ErrEmptySource},
		{"NilGraphWithoutSource", nil, nil, dijkstra.ErrEmptySource},
		{"NilGraph", nil, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrNilGraph},
		{"Unweighted", core.NewGraph(), []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrUnweightedGraph},
		{"SourceNotFound", weighted, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrVertexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := dijkstra.Dijkstra(tc.g, tc.opts...); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", -5)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("err = %v; want ErrNegativeWeight", err)
	}
}

func TestOptions_Panics(t *testing.T) {
	mustPanic := func(name string, opt func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		opt()
	}
	var o dijkstra.Options
	mustPanic("MaxDistance<0", func() { dijkstra.WithMaxDistance(-1)(&o) })
	mustPanic("MaxDistance NaN", func() { dijkstra.WithMaxDistance(math.NaN())(&o) })
	mustPanic("InfEdgeThreshold=0", func() { dijkstra.WithInfEdgeThreshold(0)(&o) })
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// A-B(1), B-C(2), A-C(5): C is cheaper through B.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Error("prev must be nil without WithReturnPath")
	}
	want := map[string]float64{"A": 0, "B": 1, "C": 3}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
}

func TestDijkstra_UndirectedFromEitherEnd(t *testing.T) {
	// Edges stored as X→Y must be walkable from Y too.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "A", 2)
	_, _ = g.AddEdge("C", "B", 0.5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2.5 {
		t.Errorf("dist[C] = %g; want 2.5", dist["C"])
	}
	path, err := dijkstra.PathTo(prev, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["C"], 1) {
		t.Errorf("dist[C] = %g; want +Inf", dist["C"])
	}
	if _, err := dijkstra.PathTo(prev, "A", "C"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Errorf("PathTo(C) err = %v; want ErrNoPath", err)
	}
	if p, _ := dijkstra.PathTo(prev, "A", "A"); !reflect.DeepEqual(p, []string{"A"}) {
		t.Errorf("PathTo(A) = %v; want [A]", p)
	}
}

func TestDijkstra_MaxDistanceAndThreshold(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("A", "D", 100)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2 || !math.IsInf(dist["D"], 1) {
		t.Errorf("MaxDistance=2: dist = %v", dist)
	}

	_, _ = g.AddEdge("A", "C", 60)
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(50))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2 {
		t.Errorf("threshold must keep C on the cheap route: dist[C] = %g", dist["C"])
	}
	if dist["D"] != 3 {
		t.Errorf("dist[D] = %g; want 3", dist["D"])
	}
}

func TestDijkstra_ZeroWeightsAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("A", "A", 3)
	_, _ = g.AddEdge("A", "B", 0)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 || dist["B"] != 0 {
		t.Errorf("dist = %v; want A=0 B=0", dist)
	}
}

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/stepstar/bfs"
	"github.com/katalvlaran/stepstar/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_WeightedGraphIgnoresWeights checks hop counts on a weighted graph
// where the cheapest route is not the shortest in hops.
func TestBFS_WeightedGraphIgnoresWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 10)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h, ok := res.Hops("C"); !ok || h != 1 {
		t.Errorf("Hops(C) = %d,%v; want 1,true", h, ok)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []string{"A", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
}

// TestBFS_CycleOrder covers the 4-cycle A-B-C-D-A.
func TestBFS_CycleOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("D", "A", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["C"]; d != 2 {
		t.Errorf("Depth[C] = %d; want 2", d)
	}
}

func TestBFS_DirectedAndUnreached(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_ = g.AddVertex("Z")

	res, err := bfs.BFS(g, "B")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Hops("A"); ok {
		t.Error("A must not be reachable against edge direction")
	}
	if _, err := res.PathTo("Z"); !errors.Is(err, bfs.ErrUnreached) {
		t.Errorf("PathTo(Z) err = %v; want ErrUnreached", err)
	}
}

func TestBFS_OptionsAndHooks(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "X"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	var enq, deq []string
	res, err := bfs.BFS(g, "A",
		bfs.WithMaxDepth(2),
		bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "X" }),
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if !reflect.DeepEqual(enq, deq) {
		t.Errorf("enqueue %v and dequeue %v orders differ", enq, deq)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit error = %v; want wrapped stop", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx err = %v; want context.Canceled", err)
	}
}

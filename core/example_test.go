package core_test

import (
	"fmt"

	"github.com/katalvlaran/stepstar/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())

	// AddEdge auto-adds vertices.
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2.5)
	_, _ = g.AddEdge("C", "A", 4)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B: [A C]
	// Edge A→B exists? false
}

// ExampleReverse shows the goal-anchored view of a one-way street.
func ExampleReverse() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("home", "work", 0)

	r := core.Reverse(g)
	fmt.Println(r.HasEdge("work", "home"), r.HasEdge("home", "work"))

	// Output:
	// true false
}

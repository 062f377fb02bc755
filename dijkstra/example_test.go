package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/stepstar/core"
	"github.com/katalvlaran/stepstar/dijkstra"
)

// ExampleDijkstra_mediumGraph reconstructs a route on a directed graph.
func ExampleDijkstra_mediumGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1.5)
	_, _ = g.AddEdge("B", "D", 4)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(prev, "A", "D")
	fmt.Println(path, dist["D"])

	// Output:
	// [A B C D] 4.5
}

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stepstar/bfs"
	"github.com/katalvlaran/stepstar/core"
)

// ExampleBFS_shortestPathNetwork finds the fewest-hop path when two routes
// compete: A–B–C–D–K (4 hops) and A–E–F–K (3 hops).
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("D", "K", 0)
	_, _ = g.AddEdge("A", "E", 0)
	_, _ = g.AddEdge("E", "F", 0)
	_, _ = g.AddEdge("F", "K", 0)

	res, _ := bfs.BFS(g, "A")
	path, _ := res.PathTo("K")
	hops, _ := res.Hops("K")
	fmt.Println(path, hops)

	// Output:
	// [A E F K] 3
}

package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/gridgraph"
	"github.com/katalvlaran/stepstar/heuristic"
)

// ExampleSearch_Step advances a search one expansion at a time along a
// single corridor.
func ExampleSearch_Step() {
	gg, m, _ := gridgraph.Parse([]string{"S.G"}, gridgraph.DefaultGridOptions())
	h, _ := heuristic.ForGrid(heuristic.Manhattan, gg)

	s, _ := astar.New[gridgraph.Point](gg, m.Start, m.Goal, h)
	for !s.Status().Terminal() {
		out := s.Step()
		fmt.Println(out.Step, out.Status, out.Path, out.Cost)
	}

	// Output:
	// 1 searching [0,0] 0
	// 2 searching [0,0 0,1] 1
	// 3 completed [0,0 0,1 0,2] 2
}

// ExampleSearch_Run solves a small weighted graph where the direct edge is
// the expensive one.
func ExampleSearch_Run() {
	g := undirected(
		edge{"A", "B", 1},
		edge{"B", "C", 2},
		edge{"A", "C", 5},
	)

	s, _ := astar.New[string](g, "A", "C", zeroH[string])
	res, err := s.Run(context.Background())
	fmt.Println(res.Path, res.Cost, err)

	// Output:
	// [A B C] 3 <nil>
}

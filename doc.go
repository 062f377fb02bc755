// Package stepstar is a stepwise A* path-finding toolkit: a search engine that
// advances one expansion per call, plus the hosts, heuristics and drivers
// needed to watch it work.
//
// Layout:
//
//	astar/       the engine: Search[P], Step, Snapshot, Run, observers
//	core/        thread-safe Graph, Vertex and Edge primitives
//	gridgraph/   ASCII/int grids as astar hosts (4- and 8-connected)
//	converters/  core.Graph → astar host, core.Graph → gonum
//	heuristic/   named estimate policies for grids and graphs
//	bfs/         hop distances (the "hops" policy)
//	dijkstra/    exact distances (the "exact" policy, reference costs)
//	driver/      paced, pausable runner publishing frames
//	metrics/     Prometheus counters fed by astar observer events
//	scenario/    YAML scenario files
//	config/      CLI configuration
//	cmd/stepstar the command-line front end
//
// Quick example (3×3 open grid, corner to corner):
//
//	S . .
//	. . .
//	. . G
//
//	gg, m, _ := gridgraph.Parse(rows, gridgraph.DefaultGridOptions())
//	h, _ := heuristic.ForGrid(heuristic.Manhattan, gg)
//	s, _ := astar.New[gridgraph.Point](gg, m.Start, m.Goal, h)
//	for !s.Status().Terminal() {
//		out := s.Step()
//		render(s.Snapshot(), out)
//	}
package stepstar

// Package heuristic builds astar.Heuristic functions for the stepstar hosts.
//
// Policies:
//
//	zero               h = 0; A* degenerates to Dijkstra.
//	manhattan          |dr| + |dc|
//	euclidean          sqrt(dr² + dc²)
//	squared-euclidean  dr² + dc²; fast but overestimates, kept for comparison.
//	chebyshev          max(|dr|, |dc|)
//	octile             max − min + d·min with d = min(DiagonalCost, 2)
//	hops               BFS hop count to the goal × the cheapest edge weight
//	exact              true remaining cost (Dijkstra from the goal)
//
// The geometric policies apply to gridgraph hosts only (ForGrid). hops and
// exact work on any core.Graph (ForGraph) and on grids through
// GridGraph.ToCoreGraph. They run one backward search per goal and cache the
// table, so a heuristic lookup during a search is a map read.
//
// Policy.Admissible reports whether a policy never overestimates on a grid
// with the given connectivity and diagonal cost.
package heuristic

// Package converters adapts core.Graph to the other graph shapes used in
// stepstar:
//   - Traversable exposes a core.Graph as an astar.Graph[string] host.
//   - ToGonum exports a core.Graph to gonum/graph for its path algorithms.
//
// Unweighted graphs become unit-cost graphs in both directions of the
// conversion. Mixed graphs keep per-edge direction.
package converters

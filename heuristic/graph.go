package heuristic

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/bfs"
	"github.com/katalvlaran/stepstar/core"
	"github.com/katalvlaran/stepstar/dijkstra"
)

// ForGraph returns the heuristic for policy p on g. Only zero, hops and exact
// apply to general graphs.
func ForGraph(p Policy, g *core.Graph) (astar.Heuristic[string], error) {
	if g == nil {
		return nil, ErrNilHost
	}

	switch p {
	case Zero:
		return func(_, _ string) float64 { return 0 }, nil
	case Hops, Exact:
		tab, err := newTable(p, g)
		if err != nil {
			return nil, err
		}
		return tab.lookup, nil
	}

	return nil, fmt.Errorf("%w: %v on graph", ErrPolicyHost, p)
}

// table caches the goal-anchored distances of the most recent goal.
// Lookups for unreachable positions return +Inf.
type table struct {
	policy  Policy
	reverse *core.Graph
	unit    float64

	mu   sync.Mutex
	goal string
	dist map[string]float64
}

func newTable(p Policy, g *core.Graph) (*table, error) {
	unit, ok := g.MinWeight()
	if !ok {
		unit = 0
	}
	if unit < 0 {
		return nil, fmt.Errorf("heuristic: %v needs non-negative weights, min weight %g", p, unit)
	}

	return &table{policy: p, reverse: core.Reverse(g), unit: unit}, nil
}

func (t *table) lookup(p, goal string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dist == nil || t.goal != goal {
		dist, err := t.compute(goal)
		if err != nil {
			// Unknown goal: fall back to the trivially admissible estimate.
			return 0
		}
		t.goal, t.dist = goal, dist
	}

	d, ok := t.dist[p]
	if !ok {
		return math.Inf(1)
	}
	return d
}

func (t *table) compute(goal string) (map[string]float64, error) {
	if t.policy == Exact && t.reverse.Weighted() {
		dist, _, err := dijkstra.Dijkstra(t.reverse, dijkstra.Source(goal))
		if err != nil {
			return nil, err
		}
		return dist, nil
	}

	// Hop counts are exact on unweighted graphs, so exact falls through here.
	res, err := bfs.BFS(t.reverse, goal)
	if err != nil {
		return nil, err
	}
	dist := make(map[string]float64, len(res.Depth))
	for id, hops := range res.Depth {
		dist[id] = float64(hops) * t.unit
	}

	return dist, nil
}

package astar_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/converters"
	"github.com/katalvlaran/stepstar/core"
	"github.com/katalvlaran/stepstar/dijkstra"
	"github.com/katalvlaran/stepstar/gridgraph"
	"github.com/katalvlaran/stepstar/heuristic"
	"github.com/katalvlaran/stepstar/internal/fixture"
)

const costEps = 1e-9

// pathCost sums the cheapest arc between consecutive positions; it returns
// NaN if two consecutive positions are not adjacent.
func pathCost[P comparable](g astar.Graph[P], p []P) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		best := math.Inf(1)
		for _, a := range g.Neighbors(p[i-1]) {
			if a.To == p[i] && a.Cost < best {
				best = a.Cost
			}
		}
		if math.IsInf(best, 1) {
			return math.NaN()
		}
		total += best
	}
	return total
}

// solve runs A* to the end and maps an unreachable goal to +Inf.
func solve[P comparable](g astar.Graph[P], start, goal P, h astar.Heuristic[P]) (astar.Result[P], float64, bool) {
	s, err := astar.New(g, start, goal, h)
	if err != nil {
		return astar.Result[P]{}, 0, false
	}
	res, err := s.Run(context.Background())
	switch {
	case err == nil:
		return res, res.Cost, true
	case errors.Is(err, astar.ErrSearchExhausted):
		return res, math.Inf(1), true
	}
	return res, 0, false
}

func sameCost(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	return math.Abs(a-b) <= costEps
}

func randomGraph(seed int64, n int, directed bool) *core.Graph {
	g, err := fixture.BuildGraph(
		[]core.GraphOption{core.WithWeighted(), core.WithDirected(directed)},
		[]fixture.Option{fixture.WithSeed(seed), fixture.WithWeightFn(fixture.UniformWeights(1, 10))},
		fixture.RandomSparse(n, 0.35),
	)
	if err != nil {
		panic(err)
	}
	return g
}

// TestProperty_GraphCostsMatchDijkstra checks A* against two independent
// shortest-path implementations on random weighted graphs.
func TestProperty_GraphCostsMatchDijkstra(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	policies := []heuristic.Policy{heuristic.Zero, heuristic.Hops, heuristic.Exact}

	properties.Property("A* cost equals Dijkstra cost for admissible, consistent heuristics", prop.ForAll(
		func(seed int64, n int, directed bool) bool {
			g := randomGraph(seed, n, directed)
			start, goal := "0", strconv.Itoa(n-1)

			dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(start))
			if err != nil {
				return false
			}
			gn, err := converters.ToGonum(g)
			if err != nil {
				return false
			}
			gonumCost := path.DijkstraFrom(gn.Node(start), gn.Graph).WeightTo(gn.IDs[goal])
			if !sameCost(dist[goal], gonumCost) {
				return false
			}

			host, err := converters.Traversable(g)
			if err != nil {
				return false
			}
			for _, p := range policies {
				h, err := heuristic.ForGraph(p, g)
				if err != nil {
					return false
				}
				res, cost, ok := solve(host, start, goal, h)
				if !ok || !sameCost(cost, dist[goal]) {
					return false
				}
				if res.Found {
					if res.Path[0] != start || res.Path[len(res.Path)-1] != goal {
						return false
					}
					if !sameCost(pathCost(host, res.Path), res.Cost) {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(2, 12),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestProperty_GridCostsMatchDijkstra runs random mazes under every
// admissible geometric policy.
func TestProperty_GridCostsMatchDijkstra(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("grid A* cost equals Dijkstra over the open-cell graph", prop.ForAll(
		func(seed int64, rows, cols int, diagonal bool) bool {
			lines, err := fixture.RandomGrid(rand.New(rand.NewSource(seed)), rows, cols, 0.25, 1)
			if err != nil {
				return false
			}
			opts := gridgraph.DefaultGridOptions()
			if diagonal {
				opts.Conn = gridgraph.Conn8
			}
			gg, m, err := gridgraph.Parse(lines, opts)
			if err != nil {
				return false
			}

			dist, _, err := dijkstra.Dijkstra(gg.ToCoreGraph(), dijkstra.Source(m.Start.String()))
			if err != nil {
				return false
			}
			want := dist[m.Goal.String()]

			for _, p := range heuristic.Policies() {
				if !p.Admissible(gg.Conn, gg.DiagonalCost) {
					continue
				}
				h, err := heuristic.ForGrid(p, gg)
				if err != nil {
					return false
				}
				res, cost, ok := solve[gridgraph.Point](gg, m.Start, m.Goal, h)
				if !ok || !sameCost(cost, want) {
					return false
				}
				for _, c := range res.Path {
					if gg.Blocked(c) {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 7),
		gen.IntRange(2, 7),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestProperty_StepInvariants checks per-step bookkeeping on random graphs.
//
//   - Every expansion closes a new position: Expansions == len(Closed) after
//     each step, so no position is expanded twice.
//   - Every step pops exactly one entry except a final failing step, so
//     Steps == Expansions + stale pops (+1 when the search failed on an
//     empty frontier or the cap).
//   - Termination: Steps ≤ Limit + entries ever pushed.
//   - A terminal search is idempotent.
func TestProperty_StepInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("steps, expansions and the closed set stay consistent", prop.ForAll(
		func(seed int64, n int, directed bool) bool {
			g := randomGraph(seed, n, directed)
			h, err := heuristic.ForGraph(heuristic.Hops, g)
			if err != nil {
				return false
			}
			entries := 0
			obs := astar.ObserverFunc(func(ev astar.Event) {
				if ev.Kind == astar.EventInitialized {
					entries++ // the start
				}
				entries += ev.Pushed
			})
			host, err := converters.Traversable(g)
			if err != nil {
				return false
			}
			s, err := astar.New(host, "0", strconv.Itoa(n-1), h, astar.WithObserver(obs))
			if err != nil {
				return false
			}

			stale := 0
			var out astar.Outcome[string]
			for i := 1; !s.Status().Terminal(); i++ {
				out = s.Step()
				if out.Step != i || s.Steps() != i {
					return false
				}
				if out.Stale {
					if out.Path != nil || out.Status != astar.Searching {
						return false
					}
					stale++
				}
				if s.Expansions() != len(s.Snapshot().Closed) {
					return false
				}
			}

			extra := 0
			if out.Status == astar.Failed {
				extra = s.Steps() - s.Expansions() - stale
				if extra != 0 && extra != 1 {
					return false
				}
			}
			if s.Steps() != s.Expansions()+stale+extra {
				return false
			}
			if s.Steps() > s.Limit()+entries {
				return false
			}

			final := s.Step()
			return final.Status == s.Status() && final.Step == s.Steps()
		},
		gen.Int64(),
		gen.IntRange(2, 10),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

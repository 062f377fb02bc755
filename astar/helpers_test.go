package astar_test

import (
	"slices"

	"github.com/katalvlaran/stepstar/astar"
)

// arcs is a minimal in-memory host: position → outgoing arcs.
type arcs map[string][]astar.Arc[string]

func (a arcs) Neighbors(p string) []astar.Arc[string] { return a[p] }
func (a arcs) Blocked(string) bool                     { return false }
func (a arcs) Contains(p string) bool {
	if _, ok := a[p]; ok {
		return true
	}
	for _, out := range a {
		for _, arc := range out {
			if arc.To == p {
				return true
			}
		}
	}
	return false
}
func (a arcs) Positions() []string {
	seen := map[string]bool{}
	for p, out := range a {
		seen[p] = true
		for _, arc := range out {
			seen[arc.To] = true
		}
	}
	ps := make([]string, 0, len(seen))
	for p := range seen {
		ps = append(ps, p)
	}
	slices.Sort(ps)
	return ps
}
func (a arcs) Order() int { return len(a.Positions()) }

type edge struct {
	u, v string
	c    float64
}

// undirected builds symmetric arcs.
func undirected(edges ...edge) arcs {
	g := arcs{}
	for _, e := range edges {
		g[e.u] = append(g[e.u], astar.Arc[string]{To: e.v, Cost: e.c})
		g[e.v] = append(g[e.v], astar.Arc[string]{To: e.u, Cost: e.c})
	}
	return g
}

func zeroH[P comparable](_, _ P) float64 { return 0 }

// drain steps s until terminal and returns every outcome.
func drain[P comparable](s *astar.Search[P]) []astar.Outcome[P] {
	var outs []astar.Outcome[P]
	for !s.Status().Terminal() {
		outs = append(outs, s.Step())
	}
	return outs
}

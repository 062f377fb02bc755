package heuristic

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/gridgraph"
)

// ForGrid returns the heuristic for policy p on gg.
// hops and exact are computed over gg.ToCoreGraph(); walls get +Inf.
func ForGrid(p Policy, gg *gridgraph.GridGraph) (astar.Heuristic[gridgraph.Point], error) {
	if gg == nil {
		return nil, ErrNilHost
	}

	switch p {
	case Zero:
		return func(_, _ gridgraph.Point) float64 { return 0 }, nil
	case Manhattan:
		return lp(1), nil
	case Euclidean:
		return lp(2), nil
	case Chebyshev:
		return lp(math.Inf(1)), nil
	case SquaredEuclidean:
		return func(a, b gridgraph.Point) float64 {
			dr, dc := float64(a.Row-b.Row), float64(a.Col-b.Col)
			return dr*dr + dc*dc
		}, nil
	case Octile:
		d := math.Min(gg.DiagonalCost, 2)
		return func(a, b gridgraph.Point) float64 {
			dr, dc := absDiff(a.Row, b.Row), absDiff(a.Col, b.Col)
			lo, hi := min(dr, dc), max(dr, dc)
			return float64(hi-lo) + d*float64(lo)
		}, nil
	case Hops, Exact:
		tab, err := newTable(p, gg.ToCoreGraph())
		if err != nil {
			return nil, err
		}
		return func(a, b gridgraph.Point) float64 {
			return tab.lookup(a.String(), b.String())
		}, nil
	}

	return nil, fmt.Errorf("%w: %v on grid", ErrPolicyHost, p)
}

// lp is the Minkowski distance of order l between two cells.
func lp(l float64) astar.Heuristic[gridgraph.Point] {
	return func(a, b gridgraph.Point) float64 {
		return floats.Distance(coords(a), coords(b), l)
	}
}

func coords(p gridgraph.Point) []float64 {
	return []float64{float64(p.Row), float64(p.Col)}
}

func absDiff[T constraints.Integer | constraints.Float](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

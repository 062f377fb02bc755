package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/core"
)

var _ astar.Graph[Point] = (*GridGraph)(nil)

var (
	offsets4 = []Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = []Point{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed [row][col]. The input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadDiagonalCost.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.DiagonalCost < 0 || math.IsNaN(opts.DiagonalCost) || math.IsInf(opts.DiagonalCost, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadDiagonalCost, opts.DiagonalCost)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		OpenThreshold:   opts.OpenThreshold,
		DiagonalCost:    opts.DiagonalCost,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < gg.Height && p.Col >= 0 && p.Col < gg.Width
}

// Open reports whether p is in bounds and not a wall.
func (gg *GridGraph) Open(p Point) bool {
	return gg.InBounds(p) && gg.CellValues[p.Row][p.Col] >= gg.OpenThreshold
}

// Blocked reports whether p is a wall. Out-of-bounds points are blocked.
func (gg *GridGraph) Blocked(p Point) bool { return !gg.Open(p) }

// Contains reports whether p is a cell of the grid, wall or not.
func (gg *GridGraph) Contains(p Point) bool { return gg.InBounds(p) }

// Order returns Width×Height.
func (gg *GridGraph) Order() int { return gg.Width * gg.Height }

// Positions enumerates every cell in row-major order.
func (gg *GridGraph) Positions() []Point {
	out := make([]Point, 0, gg.Order())
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			out = append(out, Point{r, c})
		}
	}

	return out
}

// Neighbors returns the in-bounds neighbors of p in the fixed clockwise
// order starting north. Walls are included; the search filters them.
func (gg *GridGraph) Neighbors(p Point) []astar.Arc[Point] {
	out := make([]astar.Arc[Point], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		q := Point{p.Row + d.Row, p.Col + d.Col}
		if !gg.InBounds(q) {
			continue
		}
		out = append(out, astar.Arc[Point]{To: q, Cost: gg.stepCost(d)})
	}

	return out
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets.
func (gg *GridGraph) NeighborOffsets() []Point {
	return gg.neighborOffsets
}

func (gg *GridGraph) stepCost(d Point) float64 {
	if d.Row != 0 && d.Col != 0 {
		return gg.DiagonalCost
	}

	return 1
}

// ToCoreGraph converts the open cells into a weighted, undirected *core.Graph.
// Each open cell becomes a vertex "row,col" with metadata {row,col,value};
// neighboring open cells are joined by an edge of the move cost.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for _, p := range gg.Positions() {
		if !gg.Open(p) {
			continue
		}
		_ = g.AddVertex(p.String())
		if v, err := g.Vertex(p.String()); err == nil {
			v.Metadata["row"] = p.Row
			v.Metadata["col"] = p.Col
			v.Metadata["value"] = gg.CellValues[p.Row][p.Col]
		}
	}
	for _, p := range gg.Positions() {
		if !gg.Open(p) {
			continue
		}
		for _, a := range gg.Neighbors(p) {
			// Each undirected pair once.
			if !gg.Open(a.To) || Compare(a.To, p) < 0 {
				continue
			}
			_, _ = g.AddEdge(p.String(), a.To.String(), a.Cost)
		}
	}

	return g
}

// index maps p to a row-major index.
func (gg *GridGraph) index(p Point) int {
	return p.Row*gg.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Point {
	return Point{Row: idx / gg.Width, Col: idx % gg.Width}
}

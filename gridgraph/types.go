package gridgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrNoPath indicates no breach path exists between two points.
	ErrNoPath = errors.New("gridgraph: no path between specified points")
	// ErrBadCell indicates an unknown character in an ASCII map.
	ErrBadCell = errors.New("gridgraph: unknown map character")
	// ErrDuplicateMarker indicates more than one S or G in an ASCII map.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or goal marker")
	// ErrBadDiagonalCost indicates a negative, NaN or infinite diagonal cost.
	ErrBadDiagonalCost = errors.New("gridgraph: diagonal cost must be finite and non-negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Point is a grid coordinate. Row grows downwards, Col grows rightwards.
type Point struct {
	Row, Col int
}

// String formats p as "row,col", the vertex ID used by ToCoreGraph.
func (p Point) String() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

// Compare orders points row-major. It is the position order used for
// deterministic tie-breaking on grids.
func Compare(a, b Point) int {
	switch {
	case a.Row != b.Row:
		if a.Row < b.Row {
			return -1
		}
		return 1
	case a.Col != b.Col:
		if a.Col < b.Col {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// GridOptions contains tunable parameters for grid hosts.
type GridOptions struct {
	// OpenThreshold is the minimum cell value that can be entered.
	// Cells below it are walls.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// DiagonalCost is the cost of a diagonal move under Conn8.
	// Orthogonal moves always cost 1.
	DiagonalCost float64
}

// DefaultGridOptions returns OpenThreshold=1 (values ≥1 are open), Conn=Conn4,
// DiagonalCost=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
		DiagonalCost:  1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// CellValues[row][col] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	OpenThreshold int
	DiagonalCost  float64

	neighborOffsets []Point // (dRow, dCol)
}

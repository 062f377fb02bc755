package gridgraph

import (
	"fmt"
	"strings"
)

// Markers holds the optional S and G positions found by Parse.
type Markers struct {
	Start, Goal       Point
	HasStart, HasGoal bool
}

// Parse builds a grid from ASCII rows.
//
//	'#'        wall (value 0)
//	'.'        open (value 1)
//	'S', 'G'   open start / goal marker (value 1)
//	'0'..'9'   explicit cell value
//
// Leading and trailing blank rows are ignored; trailing spaces in a row are not.
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrBadCell, ErrDuplicateMarker.
func Parse(rows []string, opts GridOptions) (*GridGraph, Markers, error) {
	var m Markers
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	values := make([][]int, len(rows))
	for r, line := range rows {
		values[r] = make([]int, 0, len(line))
		for c, ch := range line {
			p := Point{r, c}
			switch {
			case ch == '#':
				values[r] = append(values[r], 0)
			case ch == '.':
				values[r] = append(values[r], 1)
			case ch == 'S':
				if m.HasStart {
					return nil, m, fmt.Errorf("%w: second S at %v", ErrDuplicateMarker, p)
				}
				m.Start, m.HasStart = p, true
				values[r] = append(values[r], 1)
			case ch == 'G':
				if m.HasGoal {
					return nil, m, fmt.Errorf("%w: second G at %v", ErrDuplicateMarker, p)
				}
				m.Goal, m.HasGoal = p, true
				values[r] = append(values[r], 1)
			case ch >= '0' && ch <= '9':
				values[r] = append(values[r], int(ch-'0'))
			default:
				return nil, m, fmt.Errorf("%w: %q at %v", ErrBadCell, ch, p)
			}
		}
	}

	gg, err := NewGridGraph(values, opts)
	if err != nil {
		return nil, m, err
	}

	return gg, m, nil
}

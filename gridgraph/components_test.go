package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/stepstar/gridgraph"
)

// TestConnectedComponents_Simple4 uses:
//
//	. # . #
//	. . # #
//	# # . .
//
// Expect 3 components of sizes 3, 1 and 2, in row-major discovery order.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, _, err := gridgraph.Parse([]string{
		".#.#",
		"..##",
		"##..",
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	comps := gg.ConnectedComponents()
	if len(comps) != 3 {
		t.Fatalf("got %d components; want 3", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	want := []int{3, 1, 2}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("component sizes = %v; want %v", sizes, want)
			break
		}
	}
}

// TestConnectedComponents_Diagonal8 catches corner-touching cells.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	rows := []string{
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	}
	opts := gridgraph.DefaultGridOptions()
	gg4, _, _ := gridgraph.Parse(rows, opts)
	if got := len(gg4.ConnectedComponents()); got != 9 {
		t.Errorf("Conn4 components = %d; want 9", got)
	}

	opts.Conn = gridgraph.Conn8
	gg8, _, _ := gridgraph.Parse(rows, opts)
	comps := gg8.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 9 {
		t.Errorf("Conn8 components = %v; want one of size 9", comps)
	}
}

func TestReachable(t *testing.T) {
	gg, m, err := gridgraph.Parse([]string{
		"S.#.",
		"..#G",
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if gg.Reachable(m.Start, m.Goal) {
		t.Error("S and G are separated by a wall column")
	}
	if !gg.Reachable(m.Start, gridgraph.Point{Row: 1, Col: 1}) {
		t.Error("S should reach (1,1)")
	}
	if gg.Reachable(m.Start, gridgraph.Point{Row: 0, Col: 2}) {
		t.Error("a wall is never reachable")
	}
	if !gg.Reachable(m.Goal, m.Goal) {
		t.Error("an open cell reaches itself")
	}
}

func TestBreach(t *testing.T) {
	gg, m, err := gridgraph.Parse([]string{
		"S.#..",
		"..#.G",
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	path, walls, err := gg.Breach(m.Start, m.Goal)
	if err != nil {
		t.Fatalf("Breach: %v", err)
	}
	if walls != 1 {
		t.Errorf("walls = %d; want 1", walls)
	}
	if path[0] != m.Start || path[len(path)-1] != m.Goal {
		t.Errorf("path endpoints = %v..%v", path[0], path[len(path)-1])
	}
	crossed := 0
	for i, p := range path {
		if gg.Blocked(p) {
			crossed++
		}
		if i > 0 {
			d := abs(p.Row-path[i-1].Row) + abs(p.Col-path[i-1].Col)
			if d != 1 {
				t.Errorf("non-adjacent step %v→%v", path[i-1], p)
			}
		}
	}
	if crossed != walls {
		t.Errorf("path crosses %d walls; reported %d", crossed, walls)
	}

	_, walls, err = gg.Breach(m.Start, gridgraph.Point{Row: 1, Col: 1})
	if err != nil || walls != 0 {
		t.Errorf("connected breach = %d, %v; want 0, nil", walls, err)
	}

	_, _, err = gg.Breach(m.Start, gridgraph.Point{Row: 5, Col: 5})
	if !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("err = %v; want ErrOutOfBounds", err)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

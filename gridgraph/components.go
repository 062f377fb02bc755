package gridgraph

// ConnectedComponents finds all contiguous regions of open cells according to
// gg.Conn. Components are discovered in row-major order of their first cell;
// each component lists its cells in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	seen := make([]bool, gg.Order())
	var comps [][]Point

	for _, p := range gg.Positions() {
		if !gg.Open(p) || seen[gg.index(p)] {
			continue
		}
		comps = append(comps, gg.flood(p, seen))
	}

	return comps
}

// Reachable reports whether b can be reached from a through open cells.
// Walls and out-of-bounds points are never reachable.
func (gg *GridGraph) Reachable(a, b Point) bool {
	if !gg.Open(a) || !gg.Open(b) {
		return false
	}
	if a == b {
		return true
	}
	for _, p := range gg.flood(a, make([]bool, gg.Order())) {
		if p == b {
			return true
		}
	}

	return false
}

// flood collects the open component of start, marking cells in seen.
func (gg *GridGraph) flood(start Point, seen []bool) []Point {
	queue := []Point{start}
	seen[gg.index(start)] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range gg.neighborOffsets {
			v := Point{u.Row + d.Row, u.Col + d.Col}
			if !gg.Open(v) || seen[gg.index(v)] {
				continue
			}
			seen[gg.index(v)] = true
			queue = append(queue, v)
		}
	}

	return queue
}

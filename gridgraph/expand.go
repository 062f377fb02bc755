package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds the route from a to b that crosses the fewest walls. It is the
// diagnostic behind a Failed grid search: a result of 0 walls means the points
// were connected after all, any other value names how many walls separate them.
//
// Returns the route (a and b included) and the number of walls on it.
//
// Behavior:
//  1. Validate that both endpoints are in bounds.
//  2. 0–1 BFS from a:
//     • moving into an open cell → cost 0
//     • moving into a wall       → cost 1
//  3. Stop when b is popped; reconstruct via predecessors.
//
// Errors: ErrOutOfBounds, ErrNoPath if b is never popped.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) Breach(a, b Point) (path []Point, walls int, err error) {
	if !gg.InBounds(a) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if !gg.InBounds(b) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, b)
	}

	n := gg.Order()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back.
	dq := list.New()
	src := gg.index(a)
	dist[src] = 0
	if gg.Blocked(a) {
		dist[src] = 1
	}
	dq.PushFront(src)

	target := gg.index(b)
	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			found = true
			break
		}
		up := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vp := Point{up.Row + d.Row, up.Col + d.Col}
			if !gg.InBounds(vp) {
				continue
			}
			v := gg.index(vp)
			step := 0
			if gg.Blocked(vp) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

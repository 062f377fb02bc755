package astar

import "slices"

// reconstruct walks parent links from id back to the root and returns the
// positions in start→id order. Parents always precede children in the arena,
// so the walk is bounded by len(nodes).
func reconstruct[P comparable](nodes []Node[P], id NodeID) []P {
	if id == NoParent {
		return nil
	}
	var path []P
	for cur := id; cur != NoParent; cur = nodes[cur].Parent {
		path = append(path, nodes[cur].Position)
	}
	slices.Reverse(path)

	return path
}

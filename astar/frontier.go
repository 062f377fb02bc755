// File: frontier.go
// Role: Ordered open set with lazy deletion and an O(1) best-g index.

package astar

import "github.com/tidwall/btree"

// entry is one frontier record. id points into the Search arena.
type entry[P comparable] struct {
	id  NodeID
	pos P
	f   float64
	g   float64
	seq uint64
}

// frontier orders entries by (f, [position], seq). Superseded entries are
// never removed eagerly; best tracks the lowest live g per position so the
// dedup check and the live filter stay O(1).
type frontier[P comparable] struct {
	tree *btree.BTreeG[entry[P]]
	best map[P]float64
}

func newFrontier[P comparable](cmp func(a, b P) int) *frontier[P] {
	less := func(a, b entry[P]) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		if cmp != nil {
			if c := cmp(a.pos, b.pos); c != 0 {
				return c < 0
			}
		}

		return a.seq < b.seq
	}

	return &frontier[P]{
		tree: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
		best: make(map[P]float64),
	}
}

// push inserts e and records it as the best live entry for its position.
// Callers must have checked dominated(e.pos, e.g) first.
func (fr *frontier[P]) push(e entry[P]) {
	fr.tree.Set(e)
	fr.best[e.pos] = e.g
}

// dominated reports whether a live entry for p already has g' ≤ g.
func (fr *frontier[P]) dominated(p P, g float64) bool {
	bg, ok := fr.best[p]
	return ok && bg <= g
}

// popMin removes the lowest entry. The best-g record is cleared only when the
// popped entry is the live one, so dominated leftovers do not resurrect it.
func (fr *frontier[P]) popMin() (entry[P], bool) {
	e, ok := fr.tree.PopMin()
	if !ok {
		return e, false
	}
	if bg, live := fr.best[e.pos]; live && e.g <= bg {
		delete(fr.best, e.pos)
	}

	return e, true
}

// Len counts every entry still in the tree, superseded ones included.
func (fr *frontier[P]) Len() int { return fr.tree.Len() }

// live returns the positions of live entries in pop order, skipping closed
// positions and superseded duplicates.
func (fr *frontier[P]) live(closed map[P]NodeID) []P {
	out := make([]P, 0, len(fr.best))
	seen := make(map[P]struct{}, len(fr.best))
	fr.tree.Scan(func(e entry[P]) bool {
		if _, done := closed[e.pos]; done {
			return true
		}
		if bg, ok := fr.best[e.pos]; !ok || e.g > bg {
			return true
		}
		if _, dup := seen[e.pos]; dup {
			return true
		}
		seen[e.pos] = struct{}{}
		out = append(out, e.pos)

		return true
	})

	return out
}

// reset drops every entry but keeps the comparator.
func (fr *frontier[P]) reset() {
	fr.tree.Clear()
	clear(fr.best)
}

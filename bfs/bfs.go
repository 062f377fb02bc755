// File: bfs.go
// Role: The BFS walker.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/stepstar/core"
)

// queueItem pairs a vertex ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state. head indexes the next item to pop,
// so the queue never reallocates on dequeue.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	head  int
	res   *Result
}

// BFS runs breadth-first search on g from startID. Edge weights are ignored:
// every traversable edge is one hop, which makes the result usable as a hop
// lower bound on weighted graphs too.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, ctx errors, and wrapped OnVisit errors.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue records depth and parent, calls OnEnqueue and appends to the queue.
// Depth doubles as the visited set.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[w.head]
		w.head++
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues unseen neighbors.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}

// File: types.go
// Role: Options, hooks, sentinel errors and the Result of a hop-count traversal.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrUnreached is returned by PathTo for a vertex the traversal never saw.
	ErrUnreached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued with its depth.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a vertex. A non-nil error aborts BFS.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor skips the hop curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns background context, no-op hooks, no depth limit
// and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: hop count from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Hops returns the hop count to id and whether id was reached.
func (r *Result) Hops(id string) (int, bool) {
	d, ok := r.Depth[id]
	return d, ok
}

// PathTo reconstructs the start→dest hop path.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreached, dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

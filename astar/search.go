// File: search.go
// Role: The stepwise engine: Initialize, Step, Snapshot, Run.
// Determinism:
//   - Neighbors are consumed in host order; equal-F entries pop by the
//     configured TieBreak, so identical inputs replay identical step sequences.

package astar

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Search is one restartable A* run over a Graph[P].
// The zero value is not usable; build one with NewSearch or New.
type Search[P comparable] struct {
	opts Options
	h    Heuristic[P]
	cmp  func(a, b P) int

	graph Graph[P]
	start P
	goal  P
	limit int

	nodes       []Node[P]
	open        *frontier[P]
	closed      map[P]NodeID
	closedOrder []P
	seq         uint64

	status     Status
	steps      int
	expansions int
	current    NodeID
	path       []P
	cost       float64
	last       Outcome[P]
	initErr    error
}

// NewSearch builds an uninitialized Search. Option errors are deferred to
// Initialize so construction never fails.
func NewSearch[P comparable](h Heuristic[P], opts ...Option) *Search[P] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Search[P]{
		opts:    o,
		h:       h,
		status:  Failed,
		current: NoParent,
		closed:  make(map[P]NodeID),
		last:    Outcome[P]{Status: Failed},
		initErr: configErr("search", ErrNotInitialized),
	}
	if cmp, ok := o.positionOrder.(func(a, b P) int); ok {
		s.cmp = cmp
	}

	return s
}

// New builds and initializes a Search in one call.
func New[P comparable](g Graph[P], start, goal P, h Heuristic[P], opts ...Option) (*Search[P], error) {
	s := NewSearch(h, opts...)
	if err := s.Initialize(g, start, goal); err != nil {
		return nil, err
	}

	return s, nil
}

// Initialize validates the run and resets all bookkeeping, then pushes start
// with g = 0. It may be called again at any time to restart; nothing from a
// previous run survives.
//
// Errors (all match ErrInvalidConfig):
//   - ErrOptionViolation, ErrNilGraph, ErrNilHeuristic,
//     ErrStartNotFound, ErrGoalNotFound, ErrStartIsGoal, ErrNegativeCost.
func (s *Search[P]) Initialize(g Graph[P], start, goal P) error {
	s.reset()
	s.graph, s.start, s.goal = g, start, goal

	if err := s.validate(); err != nil {
		s.initErr = err
		s.graph = nil
		s.last = Outcome[P]{Status: Failed}
		s.opts.Logger.Warn("astar: initialize rejected", slog.Any("error", err))
		return err
	}
	s.initErr = nil

	s.limit = s.opts.expansionLimit(g.Order())
	s.status = Searching
	root := s.newNode(start, NoParent, 0)
	s.open.push(s.entryOf(root))
	s.last = Outcome[P]{Status: Searching}

	s.opts.Logger.Debug("astar: initialized",
		slog.Any("start", start),
		slog.Any("goal", goal),
		slog.Int("limit", s.limit),
		slog.Int("order", g.Order()),
	)
	s.emit(EventInitialized, 0, 0)

	return nil
}

func (s *Search[P]) validate() error {
	if s.opts.err != nil {
		return configErr("options", s.opts.err)
	}
	if s.opts.positionOrder != nil && s.cmp == nil {
		return configErr("options", fmt.Errorf("%w: position order does not match %T", ErrOptionViolation, s.start))
	}
	if s.graph == nil {
		return configErr("graph", ErrNilGraph)
	}
	if s.h == nil {
		return configErr("heuristic", ErrNilHeuristic)
	}
	if !s.graph.Contains(s.start) {
		return configErr("start", fmt.Errorf("%w: %v", ErrStartNotFound, s.start))
	}
	if !s.graph.Contains(s.goal) {
		return configErr("goal", fmt.Errorf("%w: %v", ErrGoalNotFound, s.goal))
	}
	if s.start == s.goal {
		return configErr("goal", fmt.Errorf("%w: %v", ErrStartIsGoal, s.goal))
	}
	for _, p := range s.graph.Positions() {
		for _, a := range s.graph.Neighbors(p) {
			if a.Cost < 0 || math.IsNaN(a.Cost) {
				return configErr("graph", fmt.Errorf("%w: %v→%v has cost %v", ErrNegativeCost, p, a.To, a.Cost))
			}
		}
	}

	return nil
}

func (s *Search[P]) reset() {
	s.nodes = s.nodes[:0]
	if s.open == nil {
		s.open = newFrontier(s.cmp)
	} else {
		s.open.reset()
	}
	clear(s.closed)
	s.closedOrder = s.closedOrder[:0]
	s.seq = 0
	s.status = Failed
	s.steps, s.expansions, s.limit = 0, 0, 0
	s.current = NoParent
	s.path = nil
	s.cost = 0
}

// estimate applies the heuristic and clamps negative or NaN values to 0.
func (s *Search[P]) estimate(p P) float64 {
	h := s.h(p, s.goal)
	if !(h >= 0) {
		return 0
	}

	return h
}

func (s *Search[P]) newNode(p P, parent NodeID, g float64) NodeID {
	h := s.estimate(p)
	s.seq++
	s.nodes = append(s.nodes, Node[P]{Position: p, Parent: parent, G: g, H: h, F: g + h, Seq: s.seq})

	return NodeID(len(s.nodes) - 1)
}

func (s *Search[P]) entryOf(id NodeID) entry[P] {
	n := s.nodes[id]
	return entry[P]{id: id, pos: n.Position, f: n.F, g: n.G, seq: n.Seq}
}

// Step performs exactly one unit of work and reports it.
//
//   - A terminal search returns its terminal outcome again (idempotent).
//   - An empty frontier or a reached expansion cap ends the search Failed.
//   - A popped entry whose position is already closed with g ≤ its own is
//     discarded: Outcome.Stale is set, Path is nil and the status stays
//     Searching even if the frontier is now empty; the next call fails.
//   - Otherwise the popped node is closed; the goal completes the search,
//     any other node pushes its open successors. If nothing is left to pop
//     the search fails in the same step.
func (s *Search[P]) Step() Outcome[P] {
	if s.status.Terminal() {
		out := s.last
		out.Path = slices.Clone(out.Path)
		return out
	}
	s.steps++

	if s.open.Len() == 0 {
		return s.fail(EventExhausted, s.zero(), 0, 0)
	}
	if s.expansions >= s.limit {
		return s.fail(EventLimit, s.zero(), 0, 0)
	}

	e, _ := s.open.popMin()
	if id, done := s.closed[e.pos]; done && s.nodes[id].G <= e.g {
		s.opts.Logger.Debug("astar: stale entry", slog.Int("step", s.steps), slog.Any("position", e.pos))
		s.emit(EventStale, 0, 0)
		s.last = Outcome[P]{Status: Searching, Current: e.pos, Stale: true, Step: s.steps}
		return s.last
	}

	s.expansions++
	if _, reopened := s.closed[e.pos]; !reopened {
		s.closedOrder = append(s.closedOrder, e.pos)
	}
	s.closed[e.pos] = e.id
	s.current = e.id
	s.path = reconstruct(s.nodes, e.id)
	s.cost = e.g

	if e.pos == s.goal {
		s.status = Completed
		s.last = Outcome[P]{Status: Completed, Path: s.path, Cost: e.g, Current: e.pos, Step: s.steps}
		s.opts.Logger.Info("astar: goal reached",
			slog.Int("steps", s.steps),
			slog.Int("expansions", s.expansions),
			slog.Float64("cost", e.g),
			slog.Int("path_len", len(s.path)),
		)
		s.emit(EventGoal, 0, 0)
		return s.clone(s.last)
	}

	pushed, deduped := s.expand(e)
	if s.open.Len() == 0 {
		return s.fail(EventExhausted, e.pos, pushed, deduped)
	}

	s.opts.Logger.Debug("astar: expanded",
		slog.Int("step", s.steps),
		slog.Any("position", e.pos),
		slog.Float64("g", e.g),
		slog.Int("pushed", pushed),
		slog.Int("frontier", s.open.Len()),
	)
	s.emit(EventExpanded, pushed, deduped)
	s.last = Outcome[P]{Status: Searching, Path: s.path, Cost: e.g, Current: e.pos, Step: s.steps}

	return s.clone(s.last)
}

// expand pushes every open, unblocked successor of e that improves on the
// live frontier. A blocked position yields no successors.
func (s *Search[P]) expand(e entry[P]) (pushed, deduped int) {
	if s.graph.Blocked(e.pos) {
		return 0, 0
	}
	for _, a := range s.graph.Neighbors(e.pos) {
		if s.graph.Blocked(a.To) {
			continue
		}
		if _, done := s.closed[a.To]; done {
			continue
		}
		g := e.g + a.Cost
		if s.open.dominated(a.To, g) {
			deduped++
			continue
		}
		id := s.newNode(a.To, e.id, g)
		s.open.push(s.entryOf(id))
		pushed++
	}

	return pushed, deduped
}

func (s *Search[P]) fail(kind EventKind, at P, pushed, deduped int) Outcome[P] {
	s.status = Failed
	s.last = Outcome[P]{Status: Failed, Current: at, Step: s.steps}
	s.opts.Logger.Info("astar: search failed",
		slog.String("reason", kind.String()),
		slog.Int("steps", s.steps),
		slog.Int("expansions", s.expansions),
		slog.Int("limit", s.limit),
	)
	s.emit(kind, pushed, deduped)

	return s.last
}

func (s *Search[P]) emit(kind EventKind, pushed, deduped int) {
	if s.opts.Observer == nil {
		return
	}
	s.opts.Observer.Observe(Event{
		Kind:        kind,
		Status:      s.status,
		Step:        s.steps,
		Expansions:  s.expansions,
		FrontierLen: s.open.Len(),
		Pushed:      pushed,
		Deduped:     deduped,
		PathLen:     len(s.path),
		Cost:        s.cost,
	})
}

func (s *Search[P]) clone(o Outcome[P]) Outcome[P] {
	o.Path = slices.Clone(o.Path)
	return o
}

func (s *Search[P]) zero() P {
	var z P
	return z
}

// Snapshot returns copies of the observable state. Path is the route to the
// last expanded node, kept across stale and failing steps.
func (s *Search[P]) Snapshot() Snapshot[P] {
	snap := Snapshot[P]{
		Status:     s.status,
		Start:      s.start,
		Goal:       s.goal,
		Closed:     slices.Clone(s.closedOrder),
		Path:       slices.Clone(s.path),
		Cost:       s.cost,
		Steps:      s.steps,
		Expansions: s.expansions,
		Limit:      s.limit,
	}
	if s.open != nil {
		snap.Frontier = s.open.live(s.closed)
	}
	if s.current != NoParent {
		snap.Current = s.nodes[s.current].Position
		snap.HasCurrent = true
	}

	return snap
}

// Run steps until a terminal status or until ctx is done.
// A Failed search returns ErrSearchExhausted along with its partial Result.
func (s *Search[P]) Run(ctx context.Context) (Result[P], error) {
	if s.initErr != nil {
		return Result[P]{}, s.initErr
	}
	for !s.status.Terminal() {
		if err := ctx.Err(); err != nil {
			return s.result(), err
		}
		s.Step()
	}
	if s.status == Failed {
		return s.result(), ErrSearchExhausted
	}

	return s.result(), nil
}

func (s *Search[P]) result() Result[P] {
	return Result[P]{
		Path:       slices.Clone(s.path),
		Cost:       s.cost,
		Steps:      s.steps,
		Expansions: s.expansions,
		Found:      s.status == Completed,
	}
}

// Status returns the lifecycle state.
func (s *Search[P]) Status() Status { return s.status }

// Steps returns the number of Step calls that did work.
func (s *Search[P]) Steps() int { return s.steps }

// Expansions returns the number of closed (non-stale) pops.
func (s *Search[P]) Expansions() int { return s.expansions }

// Limit returns the resolved expansion cap.
func (s *Search[P]) Limit() int { return s.limit }

// Node returns the node that closed p, if any.
func (s *Search[P]) Node(p P) (Node[P], bool) {
	id, ok := s.closed[p]
	if !ok {
		return Node[P]{}, false
	}

	return s.nodes[id], true
}

// File: options.go
// Role: Functional options and the observer hook.
// Policy:
//   - Invalid option values are recorded and surfaced by Initialize as
//     ErrOptionViolation (no panics in option constructors).

package astar

import (
	"fmt"
	"log/slog"
	"math"
)

// DefaultExpansionRatio sizes the expansion cap as a fraction of Graph.Order().
// At 1.0 every position may be expanded once, so the cap never cuts off a
// search that could still succeed.
const DefaultExpansionRatio = 1.0

// TieBreak selects how frontier entries with equal F are ordered.
type TieBreak int

const (
	// TieInsertion pops equal-F entries in insertion order (stable FIFO).
	TieInsertion TieBreak = iota
	// TiePosition compares positions with a caller-supplied order first,
	// then falls back to insertion order.
	TiePosition
)

// EventKind classifies an Event.
type EventKind int

const (
	EventInitialized EventKind = iota
	EventExpanded
	EventStale
	EventGoal
	EventExhausted
	EventLimit
)

func (k EventKind) String() string {
	switch k {
	case EventInitialized:
		return "initialized"
	case EventExpanded:
		return "expanded"
	case EventStale:
		return "stale"
	case EventGoal:
		return "goal"
	case EventExhausted:
		return "exhausted"
	case EventLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// Event is emitted to the Observer once per Initialize and once per Step.
// A step that both expands and exhausts the frontier emits EventExhausted.
type Event struct {
	Kind        EventKind
	Status      Status
	Step        int
	Expansions  int
	FrontierLen int
	Pushed      int // successors pushed by this step
	Deduped     int // successors rejected by the dedup rule
	PathLen     int
	Cost        float64
}

// Observer receives engine events synchronously, on the stepping goroutine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) { f(ev) }

// Options configures a Search.
type Options struct {
	// MaxExpansions caps expansions; 0 derives the cap from ExpansionRatio.
	MaxExpansions int
	// ExpansionRatio is multiplied by Graph.Order() when MaxExpansions is 0.
	ExpansionRatio float64
	// TieBreak selects the equal-F ordering.
	TieBreak TieBreak
	// Logger receives Debug per step and Info on terminal transitions.
	Logger *slog.Logger
	// Observer receives one Event per step. Optional.
	Observer Observer

	positionOrder any // func(a, b P) int, checked against P by Initialize
	err           error
}

// Option configures a Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns the defaults: ratio-derived cap, insertion tie-break,
// discard logger, no observer.
func DefaultOptions() Options {
	return Options{
		ExpansionRatio: DefaultExpansionRatio,
		TieBreak:       TieInsertion,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// WithMaxExpansions caps the number of expansions at n (n > 0).
// The cap is inclusive: at most n positions are expanded, the goal's own
// expansion included, and the step after the n-th expansion fails unless
// that expansion reached the goal. n == 0 restores the ratio-derived
// default; n < 0 is an option violation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithExpansionRatio derives the cap as ceil(ratio × Graph.Order()).
// 0.5 caps a grid at half its cells. ratio must be in (0, +Inf).
func WithExpansionRatio(ratio float64) Option {
	return func(o *Options) {
		if !(ratio > 0) || math.IsInf(ratio, 1) {
			o.err = fmt.Errorf("%w: ExpansionRatio must be positive and finite (%v)", ErrOptionViolation, ratio)
			return
		}
		o.ExpansionRatio = ratio
	}
}

// WithLogger sets the structured logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithPositionOrder breaks F ties by cmp(a, b) (negative pops a first), then
// by insertion order, which makes equal-F pops independent of discovery
// order. A nil cmp is an option violation.
func WithPositionOrder[P comparable](cmp func(a, b P) int) Option {
	return func(o *Options) {
		if cmp == nil {
			o.err = fmt.Errorf("%w: position order is nil", ErrOptionViolation)
			return
		}
		o.TieBreak = TiePosition
		o.positionOrder = cmp
	}
}

// expansionLimit resolves the cap for a graph of the given order. The cap is
// at least 1 so the start can always be expanded.
func (o Options) expansionLimit(order int) int {
	if o.MaxExpansions > 0 {
		return o.MaxExpansions
	}
	limit := int(math.Ceil(o.ExpansionRatio * float64(order)))
	if limit < 1 {
		limit = 1
	}

	return limit
}

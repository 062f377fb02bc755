// Package driver paces an astar.Search on a timer so a consumer can watch it
// advance. A Runner steps once per tick, starts running or paused, and can be
// paused, resumed, restarted and stopped from any goroutine. Every step is
// published as a Frame on a one-slot channel that keeps only the newest frame,
// so a slow consumer never stalls the search.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepstar/astar"
)

// DefaultDelay is the pause between steps.
const DefaultDelay = time.Second

// Sentinel errors.
var (
	// ErrNilSearch indicates a nil *astar.Search.
	ErrNilSearch = errors.New("driver: search is nil")
	// ErrBadDelay indicates a negative delay.
	ErrBadDelay = errors.New("driver: delay must be non-negative")
	// ErrAlreadyRunning is returned by every Run call after the first.
	ErrAlreadyRunning = errors.New("driver: Run already called")
)

// Frame is one published step.
type Frame[P comparable] struct {
	RunID    uuid.UUID
	Outcome  astar.Outcome[P]
	Snapshot astar.Snapshot[P]
}

// Options configures a Runner.
type Options struct {
	Delay       time.Duration
	StartPaused bool
	Logger      *slog.Logger

	err error
}

// Option configures a Runner via functional arguments.
type Option func(*Options)

// DefaultOptions returns a running, one-second-paced, silent configuration.
func DefaultOptions() Options {
	return Options{
		Delay:  DefaultDelay,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDelay sets the pause between steps. 0 steps back to back.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadDelay, d)
			return
		}
		o.Delay = d
	}
}

// WithStartPaused makes Run wait for Resume before the first step.
func WithStartPaused() Option {
	return func(o *Options) { o.StartPaused = true }
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Runner drives one Search over a fixed graph, start and goal.
type Runner[P comparable] struct {
	opts   Options
	search *astar.Search[P]
	graph  astar.Graph[P]
	start  P
	goal   P

	frames chan Frame[P]
	wake   chan struct{}
	stop   chan struct{}

	mu       sync.Mutex
	runID    uuid.UUID
	paused   bool
	restart  bool
	running  bool
	stopOnce sync.Once
	latest   Frame[P]
	hasFrame bool
}

// New initializes s on (g, start, goal) and wraps it in a Runner. The first
// frame, the initialized state, is published immediately.
func New[P comparable](s *astar.Search[P], g astar.Graph[P], start, goal P, opts ...Option) (*Runner[P], error) {
	if s == nil {
		return nil, ErrNilSearch
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := s.Initialize(g, start, goal); err != nil {
		return nil, fmt.Errorf("driver: initialize: %w", err)
	}

	r := &Runner[P]{
		opts:   o,
		search: s,
		graph:  g,
		start:  start,
		goal:   goal,
		frames: make(chan Frame[P], 1),
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		runID:  uuid.New(),
		paused: o.StartPaused,
	}
	r.publish(astar.Outcome[P]{Status: astar.Searching})

	return r, nil
}

// Frames returns the frame channel. It is closed when Run returns.
func (r *Runner[P]) Frames() <-chan Frame[P] { return r.frames }

// RunID returns the id of the current attempt; Restart issues a new one.
func (r *Runner[P]) RunID() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runID
}

// Latest returns the most recently published frame.
func (r *Runner[P]) Latest() (Frame[P], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest, r.hasFrame
}

// Paused reports whether stepping is suspended.
func (r *Runner[P]) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

// Pause suspends stepping.
func (r *Runner[P]) Pause() { r.setPaused(true) }

// Resume continues stepping.
func (r *Runner[P]) Resume() { r.setPaused(false) }

// Toggle flips between paused and running.
func (r *Runner[P]) Toggle() {
	r.mu.Lock()
	p := !r.paused
	r.mu.Unlock()
	r.setPaused(p)
}

func (r *Runner[P]) setPaused(p bool) {
	r.mu.Lock()
	r.paused = p
	id := r.runID
	r.mu.Unlock()
	r.opts.Logger.Debug("driver pause state", "run", id, "paused", p)
	r.poke()
}

// Restart discards all progress and re-initializes the search, issuing a new
// run id. It takes effect inside Run and has no effect once Run has returned.
func (r *Runner[P]) Restart() {
	r.mu.Lock()
	r.restart = true
	r.mu.Unlock()
	r.poke()
}

// Stop ends Run. Safe to call more than once.
func (r *Runner[P]) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Runner[P]) poke() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Run steps the search until it completes or fails, ctx is done, or Stop is
// called. It returns ctx.Err() on cancellation and nil otherwise; the final
// status is in the last frame. Frames is closed on return.
func (r *Runner[P]) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.running = true
	id := r.runID
	r.mu.Unlock()
	defer close(r.frames)

	log := r.opts.Logger
	log.Info("driver started", "run", id, "delay", r.opts.Delay, "paused", r.Paused())

	var tick <-chan time.Time
	if r.opts.Delay > 0 {
		t := time.NewTicker(r.opts.Delay)
		defer t.Stop()
		tick = t.C
	} else {
		ready := make(chan time.Time)
		close(ready)
		tick = ready
	}

	for {
		if r.Paused() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.stop:
				log.Info("driver stopped", "run", r.RunID())
				return nil
			case <-r.wake:
				if err := r.maybeRestart(); err != nil {
					return err
				}
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.stop:
			log.Info("driver stopped", "run", r.RunID())
			return nil
		case <-r.wake:
			if err := r.maybeRestart(); err != nil {
				return err
			}
		case <-tick:
			if err := r.maybeRestart(); err != nil {
				return err
			}
			if r.Paused() {
				continue
			}
			out := r.search.Step()
			r.publish(out)
			if out.Status.Terminal() {
				log.Info("driver finished", "run", r.RunID(), "status", out.Status,
					"steps", out.Step, "cost", out.Cost)
				return nil
			}
		}
	}
}

func (r *Runner[P]) maybeRestart() error {
	r.mu.Lock()
	if !r.restart {
		r.mu.Unlock()
		return nil
	}
	r.restart = false
	r.runID = uuid.New()
	id := r.runID
	r.mu.Unlock()

	if err := r.search.Initialize(r.graph, r.start, r.goal); err != nil {
		return fmt.Errorf("driver: restart: %w", err)
	}
	r.opts.Logger.Info("driver restarted", "run", id)
	r.publish(astar.Outcome[P]{Status: astar.Searching})

	return nil
}

// publish stores f as latest and offers it on the channel, replacing an
// unconsumed older frame.
func (r *Runner[P]) publish(out astar.Outcome[P]) {
	r.mu.Lock()
	f := Frame[P]{RunID: r.runID, Outcome: out, Snapshot: r.search.Snapshot()}
	r.latest, r.hasFrame = f, true
	r.mu.Unlock()

	select {
	case r.frames <- f:
		return
	default:
	}
	select {
	case <-r.frames:
	default:
	}
	r.frames <- f
}

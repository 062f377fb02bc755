// SPDX-License-Identifier: MIT
// Package: stepstar/internal/fixture
//
// fixture.go - deterministic graph and grid fixtures for tests.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, fopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Never panic at build time; return sentinel errors from constructors.

package fixture

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/stepstar/core"
)

// Sentinel errors.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("fixture: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("fixture: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("fixture: rng is required")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("fixture: construction failed")
)

// Constructor applies a deterministic graph mutation using the resolved config.
type Constructor func(g *core.Graph, cfg config) error

type config struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
}

// Option configures fixture construction.
type Option func(*config)

// WithIDScheme sets the vertex naming function. Default: "0","1",...
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("fixture: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithSeed installs a seeded RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs r as the RNG.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWeightFn sets the edge weight generator used on weighted graphs.
// The RNG argument is nil when no RNG was configured. Default: constant 1.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("fixture: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// UniformWeights draws weights uniformly from [lo, hi).
func UniformWeights(lo, hi float64) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}
		return lo + r.Float64()*(hi-lo)
	}
}

// LetterID names vertices A..Z, then A1..Z1, and so on.
func LetterID(i int) string {
	s := string(rune('A' + i%26))
	if i >= 26 {
		s += strconv.Itoa(i / 26)
	}
	return s
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) float64 { return 1 },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuildGraph creates a core.Graph with gopts and applies cons in order.
func BuildGraph(gopts []core.GraphOption, fopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(fopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// weight returns the next edge weight honoring g's weighted flag.
func (c config) weight(g *core.Graph) float64 {
	if !g.Weighted() {
		return 0
	}
	return c.weightFn(c.rng)
}

func addVertices(method string, g *core.Graph, cfg config, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}

func addEdge(method string, g *core.Graph, cfg config, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weight(g)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	return nil
}

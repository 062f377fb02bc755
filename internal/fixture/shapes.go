// SPDX-License-Identifier: MIT
// Package: stepstar/internal/fixture
//
// shapes.go - Cycle, Path and RandomSparse constructors.
//
// Determinism:
//   - Vertices are added in index order 0..n-1.
//   - Edges are tried for i asc, then j asc (undirected: j > i).

package fixture

import (
	"fmt"

	"github.com/katalvlaran/stepstar/core"
)

// Cycle returns a Constructor for the n-cycle 0-1-...-(n-1)-0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "Cycle"
		if n < 3 {
			return fmt.Errorf("%s: n=%d < min=3: %w", method, n, ErrTooFewVertices)
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(method, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Path returns a Constructor for the path 0-1-...-(n-1). n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "Path"
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", method, n, ErrTooFewVertices)
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(method, g, cfg, i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor that includes each admissible edge
// independently with probability p. Directed graphs try ordered pairs and
// allow self-loops only when g.Looped(). Requires an RNG unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "RandomSparse"
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", method, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}

		include := func() bool {
			if cfg.rng == nil {
				return p == 1
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if !include() {
					continue
				}
				if err := addEdge(method, g, cfg, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

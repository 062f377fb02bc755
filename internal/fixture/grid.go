// SPDX-License-Identifier: MIT
// Package: stepstar/internal/fixture
//
// grid.go - ASCII maps for gridgraph.Parse.

package fixture

import (
	"fmt"
	"math/rand"
	"strings"
)

// RandomGrid returns rows×cols ASCII rows where each cell is a wall ('#')
// with probability wallProb, otherwise a cost digit drawn from 1..maxCost
// (maxCost ≤ 1 gives plain '.' cells). Cell (0,0) is 'S' and the last cell
// is 'G'; both are always open.
func RandomGrid(r *rand.Rand, rows, cols int, wallProb float64, maxCost int) ([]string, error) {
	const method = "RandomGrid"
	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%s: %dx%d: %w", method, rows, cols, ErrTooFewVertices)
	}
	if wallProb < 0 || wallProb > 1 {
		return nil, fmt.Errorf("%s: p=%.6f: %w", method, wallProb, ErrInvalidProbability)
	}
	maxCost = min(max(maxCost, 1), 9)

	out := make([]string, rows)
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.Reset()
		for j := 0; j < cols; j++ {
			switch {
			case i == 0 && j == 0:
				sb.WriteByte('S')
			case i == rows-1 && j == cols-1:
				sb.WriteByte('G')
			case r.Float64() < wallProb:
				sb.WriteByte('#')
			case maxCost == 1:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('1' + r.Intn(maxCost)))
			}
		}
		out[i] = sb.String()
	}

	return out, nil
}

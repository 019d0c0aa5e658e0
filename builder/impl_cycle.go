// SPDX-License-Identifier: MIT
// Package: multipath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.vertexIDs(n) in ascending index order (0..n-1).
//   • Emits edges in stable order i–(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra (iter vars only).
//
// Determinism:
//   • Deterministic IDs via cfg.vertexIDs(n).
//   • Deterministic weights given fixed cfg.rng/weightFn.
package builder

import (
	"fmt"

	"github.com/katalvlaran/multipath/core"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// With equal weights and even n, the vertex opposite 0 is reached by exactly
// two shortest paths, which makes Cycle a compact tie fixture.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		id := cfg.vertexIDs(n)
		if err := addVertices(methodCycle, g, n, id); err != nil {
			return err
		}
		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addWeightedEdge(methodCycle, g, cfg, id(i), id((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

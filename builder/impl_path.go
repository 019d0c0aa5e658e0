// SPDX-License-Identifier: MIT
// Package: multipath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.vertexIDs(n) in ascending index order (0..n-1).
//   - Emits edges (i-1)–i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/multipath/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		id := cfg.vertexIDs(n)
		if err := addVertices(methodPath, g, n, id); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addWeightedEdge(methodPath, g, cfg, id(i-1), id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

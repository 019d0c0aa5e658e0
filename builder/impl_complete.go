// SPDX-License-Identifier: MIT
// Package: multipath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.vertexIDs(n) in ascending index order.
//   • Emits one edge per unordered pair {i,j}, i<j, in (i asc, j asc) order.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/multipath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		id := cfg.vertexIDs(n)
		if err := addVertices(methodComplete, g, n, id); err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := addWeightedEdge(methodComplete, g, cfg, id(i), id(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

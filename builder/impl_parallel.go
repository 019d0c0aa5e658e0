// SPDX-License-Identifier: MIT
// Package: multipath/builder
//
// impl_parallel.go - implementation of Parallel(k) constructor.
//
// Contract:
//   - k ≥ 1 (else ErrInvalidMultiplicity). k == 1 is a no-op.
//   - Snapshots the edges present when the constructor runs (sorted by ID) and,
//     for each, adds k-1 further edges between the same endpoints with weights
//     drawn from cfg.weightFn.
//   - Must be composed after the constructors that shape the topology.
//
// Complexity:
//   - Time: O(k·E).
//   - Space: O(E) for the snapshot.
package builder

import (
	"fmt"

	"github.com/katalvlaran/multipath/core"
)

const (
	methodParallel  = "Parallel"
	minMultiplicity = 1
)

// Parallel returns a Constructor that turns every existing edge into a bundle
// of k parallel edges.
func Parallel(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minMultiplicity {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodParallel, k, minMultiplicity, ErrInvalidMultiplicity)
		}
		var (
			e *core.Edge
			c int
		)
		for _, e = range g.Edges() {
			for c = 1; c < k; c++ {
				if err := addWeightedEdge(methodParallel, g, cfg, e.From, e.To); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

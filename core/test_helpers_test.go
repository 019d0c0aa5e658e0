// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for multipath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Enforce concurrency-safe testing patterns (no require inside goroutines).

package core_test

import (
	"testing"

	"github.com/katalvlaran/multipath/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NLoops          = 50
)

// edgeIDs projects edges to their IDs, preserving order.
func edgeIDs(edges []*core.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.ID)
	}

	return out
}

// mustAddEdge adds an edge and fails the test on error.
func mustAddEdge(t *testing.T, g *core.Graph, from, to string, w int64, opts ...core.EdgeOption) string {
	t.Helper()
	id, err := g.AddEdge(from, to, w, opts...)
	require.NoError(t, err)

	return id
}

// diamond builds A-B(1), A-C(1), B-D(1), C-D(1) plus a parallel A-B(5).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustAddEdge(t, g, VertexA, VertexB, Weight1)
	mustAddEdge(t, g, VertexA, VertexC, Weight1)
	mustAddEdge(t, g, VertexB, VertexD, Weight1)
	mustAddEdge(t, g, VertexC, VertexD, Weight1)
	mustAddEdge(t, g, VertexA, VertexB, Weight5)

	return g
}

// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/multipath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexB))
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA), "AddVertex must be idempotent")

	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexC))
	assert.False(t, g.HasVertex(VertexEmpty))
	assert.Equal(t, []string{VertexA, VertexB}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
}

func TestAddEdge_AutoIDsAndEndpoints(t *testing.T) {
	g := core.NewGraph()

	id1 := mustAddEdge(t, g, VertexA, VertexB, Weight2)
	id2 := mustAddEdge(t, g, VertexB, VertexC, Weight3)
	assert.Equal(t, "e1", id1)
	assert.Equal(t, "e2", id2)

	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices())
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA), "edges are undirected")
	assert.False(t, g.HasEdge(VertexA, VertexC))

	e, err := g.GetEdge(id2)
	require.NoError(t, err)
	assert.Equal(t, int64(Weight3), e.Weight)
	assert.Equal(t, VertexC, e.Other(VertexB))
	assert.Equal(t, VertexB, e.Other(VertexC))
	assert.Equal(t, "", e.Other(VertexA))

	_, err = g.GetEdge("missing")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestAddEdge_Rejections(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(VertexEmpty, VertexB, Weight1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexA, Weight1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(VertexA, VertexB, Weight1, core.WithEdgeID(""))
	assert.ErrorIs(t, err, core.ErrEmptyEdgeID)

	mustAddEdge(t, g, VertexA, VertexB, Weight1, core.WithEdgeID("ab"))
	_, err = g.AddEdge(VertexB, VertexC, Weight1, core.WithEdgeID("ab"))
	assert.ErrorIs(t, err, core.ErrDuplicateEdgeID)

	assert.Equal(t, 1, g.EdgeCount(), "rejected edges must not be stored")
}

func TestAddEdge_GeneratedIDsSkipExplicit(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, VertexA, VertexB, Weight1, core.WithEdgeID("e1"))

	id := mustAddEdge(t, g, VertexB, VertexC, Weight1)
	assert.Equal(t, "e2", id)
}

func TestAddEdge_NegativeWeightStored(t *testing.T) {
	g := core.NewGraph()
	id := mustAddEdge(t, g, VertexA, VertexB, -4)

	e, err := g.GetEdge(id)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), e.Weight)
	assert.Equal(t, 1, g.Stats().NegativeEdges)
}

func TestNeighbors(t *testing.T) {
	g := diamond(t)

	nbs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2", "e5"}, edgeIDs(nbs), "parallel edges are distinct entries")

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, ids)

	_, err = g.Neighbors(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(VertexEmpty)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
}

func TestEdgesBetween(t *testing.T) {
	g := diamond(t)

	assert.Equal(t, []string{"e1", "e5"}, edgeIDs(g.EdgesBetween(VertexA, VertexB)))
	assert.Equal(t, []string{"e1", "e5"}, edgeIDs(g.EdgesBetween(VertexB, VertexA)))
	assert.Empty(t, g.EdgesBetween(VertexA, VertexD))
	assert.Empty(t, g.EdgesBetween(VertexA, VertexX))
}

func TestMinimumWeightEdges(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, VertexA, VertexB, Weight5, core.WithEdgeID("slow"))
	mustAddEdge(t, g, VertexA, VertexB, Weight3, core.WithEdgeID("fast2"))
	mustAddEdge(t, g, VertexB, VertexA, Weight3, core.WithEdgeID("fast1"))
	mustAddEdge(t, g, VertexB, VertexC, Weight0)

	edges, w := g.MinimumWeightEdges(VertexA, VertexB)
	assert.Equal(t, int64(Weight3), w)
	assert.Equal(t, []string{"fast1", "fast2"}, edgeIDs(edges))

	edges, w = g.MinimumWeightEdges(VertexC, VertexB)
	assert.Equal(t, int64(Weight0), w)
	assert.Len(t, edges, 1)

	edges, w = g.MinimumWeightEdges(VertexA, VertexC)
	assert.Empty(t, edges, "non-adjacent pair yields no edges")
	assert.Zero(t, w)
}

func TestStats(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex(VertexX))

	st := g.Stats()
	assert.Equal(t, 5, st.VertexCount)
	assert.Equal(t, 5, st.EdgeCount)
	assert.Equal(t, 1, st.ParallelPairs)
	assert.Equal(t, 1, st.IsolatedCount)
	assert.Equal(t, int64(Weight1), st.MinWeight)
	assert.Equal(t, int64(Weight5), st.MaxWeight)
	assert.Zero(t, st.NegativeEdges)

	empty := core.NewGraph().Stats()
	assert.Zero(t, empty.MinWeight)
	assert.Zero(t, empty.MaxWeight)
}

func TestClone(t *testing.T) {
	g := diamond(t)
	c := g.Clone()

	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, edgeIDs(g.Edges()), edgeIDs(c.Edges()))

	// The clone continues the ID sequence and stays independent of g.
	id := mustAddEdge(t, c, VertexC, VertexB, Weight2)
	assert.Equal(t, "e6", id)
	assert.Equal(t, 5, g.EdgeCount())
	assert.False(t, g.HasEdge(VertexC, VertexB))
}

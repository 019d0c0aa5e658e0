// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of catalog sizes and weight bounds.
type GraphStats struct {
	VertexCount int
	EdgeCount   int

	// ParallelPairs counts unordered vertex pairs joined by more than one edge.
	ParallelPairs int

	// IsolatedCount counts vertices with no incident edges.
	IsolatedCount int

	// MinWeight and MaxWeight are zero when the graph has no edges.
	MinWeight int64
	MaxWeight int64

	// NegativeEdges counts edges that a shortest-path run would reject.
	NegativeEdges int
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot vertex count.
//   - Stage 2: Acquire muEdgeAdj.RLock, scan edges and adjacency once.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats.EdgeCount = len(g.edges)
	first := true
	var e *Edge
	for _, e = range g.edges {
		if first || e.Weight < stats.MinWeight {
			stats.MinWeight = e.Weight
		}
		if first || e.Weight > stats.MaxWeight {
			stats.MaxWeight = e.Weight
		}
		first = false
		if e.Weight < 0 {
			stats.NegativeEdges++
		}
	}

	for u, row := range g.adjacency {
		deg := 0
		for v, edgeSet := range row {
			deg += len(edgeSet)
			// Each unordered pair is seen twice; count it from the smaller ID.
			if u < v && len(edgeSet) > 1 {
				stats.ParallelPairs++
			}
		}
		if deg == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}

// Clone returns a deep copy of the Graph: vertices, edges, and adjacency.
//
// Determinism & Identity:
//   - Carries over nextEdgeID to keep edge-ID textual sequence monotonic on the clone.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices), len(g.edges)))
	clone.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}
	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		ensureAdjacency(clone, e.To, e.From)
		clone.adjacency[e.To][e.From][eid] = struct{}{}
	}

	return clone
}

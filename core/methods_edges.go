// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount/
//       EdgesBetween/MinimumWeightEdges. Also: nextEdgeID().
// Determinism:
//   - Edges(), EdgesBetween() and MinimumWeightEdges() return edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for generated edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to and returns its ID.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Apply EdgeOptions (WithEdgeID); reject an explicitly empty ID.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj; reject a duplicate explicit ID or generate a free one.
//  5. Store in g.edges and link adjacency both ways.
//
// The weight is stored as given. Shortest-path code validates the sign of
// weights before it relies on them.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight}
	explicit := false
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
		explicit = true
	}
	if explicit && e.ID == "" {
		return "", ErrEmptyEdgeID
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if e.ID != "" {
		if _, taken := g.edges[e.ID]; taken {
			return "", ErrDuplicateEdgeID
		}
	} else {
		// Generated IDs skip anything claimed explicitly by the caller.
		for {
			e.ID = nextEdgeID(g)
			if _, taken := g.edges[e.ID]; !taken {
				break
			}
		}
	}

	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][e.ID] = struct{}{}
	ensureAdjacency(g, to, from)
	g.adjacency[to][from][e.ID] = struct{}{}

	return e.ID, nil
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// GetEdge returns a pointer to the Edge with the given edgeID if it exists,
// or ErrEdgeNotFound if no such edge is present.
//
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1) average time (hash map lookup).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EdgesBetween returns every edge joining u and v, sorted by Edge.ID asc.
// The result is empty when the vertices are not adjacent or do not exist.
//
// Complexity: O(k log k) for k parallel edges.
func (g *Graph) EdgesBetween(u, v string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgesBetweenLocked(u, v)
}

// MinimumWeightEdges returns the subset of edges joining u and v that attain
// the minimum weight among them, together with that weight.
//
// Usually a single edge is returned; parallel edges tied at the minimum are
// all returned, sorted by Edge.ID asc. When u and v are not adjacent the
// slice is empty and the weight is 0: callers must treat that as "no such
// edge", it is not an error.
//
// Complexity: O(k log k) for k parallel edges.
func (g *Graph) MinimumWeightEdges(u, v string) ([]*Edge, int64) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	between := g.edgesBetweenLocked(u, v)
	if len(between) == 0 {
		return nil, 0
	}

	minW := between[0].Weight
	out := make([]*Edge, 0, 1)
	for _, e := range between {
		switch {
		case e.Weight < minW:
			minW = e.Weight
			out = append(out[:0], e)
		case e.Weight == minW:
			out = append(out, e)
		}
	}

	return out, minW
}

// edgesBetweenLocked collects adjacency[u][v]; caller holds muEdgeAdj.
func (g *Graph) edgesBetweenLocked(u, v string) []*Edge {
	bucket := g.adjacency[u][v]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		if e := g.edges[eid]; !e.IsNil() {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// sortEdges orders edges by ID ascending.
func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
}

// nextEdgeID returns a new textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/multipath/core"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/stretchr/testify/require"
)

// wedge is a compact edge description for fixtures.
type wedge struct {
	id   string
	u, v string
	w    int64
}

// graphOf builds a graph from explicit edges, in order.
func graphOf(t *testing.T, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		var opts []core.EdgeOption
		if e.id != "" {
			opts = append(opts, core.WithEdgeID(e.id))
		}
		_, err := g.AddEdge(e.u, e.v, e.w, opts...)
		require.NoError(t, err)
	}

	return g
}

// scenarioUnique has the single shortest path s→A→E→C→F→t of weight 5.
func scenarioUnique(t *testing.T) *core.Graph {
	return graphOf(t,
		wedge{"sA", "s", "A", 1},
		wedge{"AE", "A", "E", 1},
		wedge{"EC", "E", "C", 1},
		wedge{"CF", "C", "F", 1},
		wedge{"Ft", "F", "t", 1},
		wedge{"sC", "s", "C", 4},
		wedge{"AF", "A", "F", 4},
		wedge{"Et", "E", "t", 4},
		wedge{"st", "s", "t", 10},
	)
}

// scenarioThreeWays has exactly three shortest s–t paths of weight 6:
// [s A C t], [s B D t], [s A B D t].
func scenarioThreeWays(t *testing.T) *core.Graph {
	return graphOf(t,
		wedge{"sA", "s", "A", 1},
		wedge{"AC", "A", "C", 2},
		wedge{"Ct", "C", "t", 3},
		wedge{"sB", "s", "B", 2},
		wedge{"BD", "B", "D", 2},
		wedge{"Dt", "D", "t", 2},
		wedge{"AB", "A", "B", 1},
	)
}

// bruteForceDistances returns the minimum simple-path weight from source to
// every vertex by exhaustive DFS, or Infinity when none exists.
func bruteForceDistances(g *core.Graph, source string) map[string]int64 {
	best := make(map[string]int64)
	for _, v := range g.Vertices() {
		best[v] = dijkstra.Infinity
	}
	visited := map[string]bool{source: true}

	var walk func(v string, d int64)
	walk = func(v string, d int64) {
		if d < best[v] {
			best[v] = d
		}
		nbs, _ := g.NeighborIDs(v)
		for _, u := range nbs {
			if visited[u] {
				continue
			}
			_, w := g.MinimumWeightEdges(v, u)
			visited[u] = true
			walk(u, d+w)
			visited[u] = false
		}
	}
	walk(source, 0)

	return best
}

// orderIndex maps each vertex to its position in the settle order.
func orderIndex(res *dijkstra.Result) map[string]int {
	idx := make(map[string]int, len(res.Order))
	for i, v := range res.Order {
		idx[v] = i
	}

	return idx
}

// requireLabelInvariants checks distance consistency, predecessor minimality,
// predecessor completeness and the DAG property for every label.
func requireLabelInvariants(t *testing.T, g *core.Graph, res *dijkstra.Result) {
	t.Helper()
	idx := orderIndex(res)
	require.Len(t, idx, g.VertexCount(), "every vertex settled exactly once")

	for _, u := range g.Vertices() {
		l, ok := res.Label(u)
		require.True(t, ok)
		require.True(t, l.Settled)

		if u == res.Source {
			require.Zero(t, l.Distance)
			require.Empty(t, l.Predecessors)
			continue
		}
		if !l.Reachable() {
			require.Empty(t, l.Predecessors, "unreachable %s has predecessors", u)
			continue
		}
		require.NotEmpty(t, l.Predecessors, "reachable %s lacks predecessors", u)

		recorded := make(map[dijkstra.Predecessor]bool)
		for _, p := range l.Predecessors {
			require.False(t, recorded[p], "duplicate predecessor %v of %s", p, u)
			recorded[p] = true

			e, err := g.GetEdge(p.Edge)
			require.NoError(t, err)
			require.Equal(t, p.Vertex, e.Other(u))
			require.Equal(t, l.Distance, res.Distance(p.Vertex)+e.Weight)
			require.Less(t, idx[p.Vertex], idx[u], "predecessor %s settled after %s", p.Vertex, u)
		}

		// Completeness: every minimum-weight edge from an earlier-settled
		// neighbor that attains the distance must be recorded.
		nbs, err := g.NeighborIDs(u)
		require.NoError(t, err)
		for _, p := range nbs {
			if idx[p] > idx[u] || !res.Reachable(p) {
				continue
			}
			edges, w := g.MinimumWeightEdges(u, p)
			if res.Distance(p)+w != l.Distance {
				continue
			}
			for _, e := range edges {
				require.True(t, recorded[dijkstra.Predecessor{Vertex: p, Edge: e.ID}],
					"missing predecessor (%s,%s) of %s", p, e.ID, u)
			}
		}
	}
}

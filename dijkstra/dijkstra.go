// Package dijkstra implements a tie-preserving variant of Dijkstra's
// shortest-path algorithm on undirected weighted multigraphs.
//
// Unlike the textbook formulation, every vertex keeps a *set* of predecessors:
// a candidate distance equal to the current best extends the set instead of
// being discarded, so every minimum-length path survives into the result.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with StrategyHeap, O(V² + E) with StrategyLinearScan.
//   - Space: O(V + E) including the predecessor sets.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights
//     and weight-sum overflow, and fail fast before touching any label.
//   - Parallel edges are collapsed per relaxation via core.MinimumWeightEdges;
//     each tied minimum-weight edge becomes its own predecessor entry.
//   - Ties between vertices of equal distance are broken by vertex ID ascending,
//     so both strategies settle vertices in exactly the same order.
//   - Vertices still at Infinity once the frontier is exhausted are settled in
//     ID order without relaxation.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/multipath/core"
	"github.com/sirupsen/logrus"
)

// ShortestPaths computes the shortest distance from source to every vertex of g
// together with the full predecessor set of each vertex.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//  5. The sum of all edge weights must stay below Infinity (ErrWeightOverflow).
//
// On error no partial result is returned. The graph is only read; concurrent
// calls over the same graph are safe.
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 3) Pre-scan all edges for negative weights and overflow.
	if err := checkWeights(g.Edges()); err != nil {
		return nil, err
	}

	// 4) Run
	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// checkWeights fails on the first negative weight (in edge ID order) and on
// a total weight that could push a simple path length to Infinity.
func checkWeights(edges []*core.Edge) error {
	var total int64
	var e *core.Edge
	for _, e = range edges {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s %s–%s weight=%d", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
		if total > Infinity-1-e.Weight {
			return fmt.Errorf("%w: at edge %s", ErrWeightOverflow, e.ID)
		}
		total += e.Weight
	}

	return nil
}

// runner holds the mutable state for a single engine execution.
// Vertices are addressed by their index in the sorted vertex list, so index
// order and ID order coincide.
type runner struct {
	g       *core.Graph     // The input graph; read-only here.
	options Options         // Configuration options.
	source  int             // Index of the source vertex.
	ids     []string        // Index → vertex ID (sorted).
	index   map[string]int  // Vertex ID → index.
	dist    []int64         // Current best distance per vertex.
	settled []bool          // Finalized flags.
	preds   [][]Predecessor // Predecessor sets.
	order   []int           // Settle order.
	front   frontier        // Selection strategy.
}

func newRunner(g *core.Graph, source string, cfg Options) *runner {
	ids := g.Vertices()
	n := len(ids)
	r := &runner{
		g:       g,
		options: cfg,
		ids:     ids,
		index:   make(map[string]int, n),
		dist:    make([]int64, n),
		settled: make([]bool, n),
		preds:   make([][]Predecessor, n),
		order:   make([]int, 0, n),
	}
	for i, id := range ids {
		r.index[id] = i
		r.dist[i] = Infinity
	}
	r.source = r.index[source]
	r.dist[r.source] = 0

	switch cfg.Strategy {
	case StrategyLinearScan:
		r.front = scanFrontier{}
	default:
		r.front = newHeapFrontier(n)
	}
	r.front.update(r.source, 0)

	return r
}

// process is the main loop: settle the closest unsettled vertex, relax its
// unsettled neighbors, repeat until the frontier is empty. Remaining vertices
// are unreachable and get settled with Infinity.
func (r *runner) process() error {
	for {
		v, ok := r.front.next(r.dist, r.settled)
		if !ok {
			break
		}
		r.settle(v)
		if err := r.relax(v); err != nil {
			return err
		}
	}

	for v := range r.ids {
		if !r.settled[v] {
			r.settle(v)
		}
	}

	return nil
}

// settle marks v final and reports it.
func (r *runner) settle(v int) {
	r.settled[v] = true
	r.order = append(r.order, v)
	if r.options.OnSettle != nil {
		r.options.OnSettle(r.ids[v], r.dist[v])
	}
}

// relax examines every unsettled neighbor u of the just-settled vertex v and
// compares d(v)+w_min(v,u) with d(u):
//
//	candidate >  d(u): skip
//	candidate <  d(u): replace d(u) and predecessors(u)
//	candidate == d(u): append to predecessors(u)
func (r *runner) relax(v int) error {
	vid := r.ids[v]
	neighbors, err := r.g.NeighborIDs(vid)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", vid, err)
	}

	var (
		uid       string
		u         int
		known     bool
		edges     []*core.Edge
		w         int64
		candidate int64
		current   int64
		decision  Decision
	)
	for _, uid = range neighbors {
		u, known = r.index[uid]
		if !known {
			// Vertex added after the run started; runs see a snapshot.
			continue
		}
		if r.settled[u] {
			continue
		}
		edges, w = r.g.MinimumWeightEdges(vid, uid)
		if len(edges) == 0 {
			continue
		}
		// Guarded by the pre-scan; reaching either branch means the graph changed mid-run.
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, vid, uid, w)
		}
		if r.dist[v] > math.MaxInt64-w {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrWeightOverflow, vid, uid, w)
		}

		candidate = r.dist[v] + w
		current = r.dist[u]
		switch {
		case candidate > current:
			decision = DecisionSkip
		case candidate < current:
			decision = DecisionImprove
			r.dist[u] = candidate
			r.preds[u] = appendPreds(nil, vid, edges)
			r.front.update(u, candidate)
		default:
			decision = DecisionTie
			r.preds[u] = appendPreds(r.preds[u], vid, edges)
		}
		r.trace(vid, uid, current, candidate, decision, edges)
	}

	return nil
}

// appendPreds adds one Predecessor per tied minimum-weight edge.
func appendPreds(dst []Predecessor, from string, edges []*core.Edge) []Predecessor {
	for _, e := range edges {
		dst = append(dst, Predecessor{Vertex: from, Edge: e.ID})
	}

	return dst
}

// trace forwards a relaxation decision to the logger and the OnRelax hook.
func (r *runner) trace(v, u string, current, candidate int64, d Decision, edges []*core.Edge) {
	if r.options.Logger == nil && r.options.OnRelax == nil {
		return
	}
	if r.options.Logger != nil {
		r.options.Logger.WithFields(logrus.Fields{
			"v":         v,
			"u":         u,
			"current":   formatDistance(current),
			"candidate": candidate,
		}).Debug(d.String())
	}
	if r.options.OnRelax != nil {
		ids := make([]string, len(edges))
		for i, e := range edges {
			ids[i] = e.ID
		}
		r.options.OnRelax(RelaxEvent{
			From:      v,
			To:        u,
			Current:   current,
			Candidate: candidate,
			Decision:  d,
			Edges:     ids,
		})
	}
}

// formatDistance renders Infinity as "inf" for log output.
func formatDistance(d int64) interface{} {
	if d == Infinity {
		return "inf"
	}

	return d
}

// result folds the runner state into an immutable Result.
func (r *runner) result() *Result {
	res := &Result{
		Source: r.ids[r.source],
		Labels: make(map[string]Label, len(r.ids)),
		Order:  make([]string, len(r.order)),
	}
	for i, v := range r.order {
		res.Order[i] = r.ids[v]
	}
	for v, id := range r.ids {
		res.Labels[id] = Label{
			Distance:     r.dist[v],
			Settled:      r.settled[v],
			Predecessors: r.preds[v],
		}
	}

	return res
}

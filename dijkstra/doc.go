// Package dijkstra provides a tie-preserving implementation of Dijkstra's
// shortest-path algorithm on undirected multigraphs with non-negative
// integer edge weights.
//
// Overview:
//
//   - ShortestPaths computes, for every vertex, the final distance from a
//     single source together with *every* (neighbor, edge) pair through which
//     that distance is attained.
//   - The predecessor sets form a DAG rooted at the source; package paths
//     walks it to enumerate all minimum-length paths.
//   - Unreachable vertices are a normal outcome: Distance == Infinity and an
//     empty predecessor set.
//
// Relaxation rule, applied when vertex v is settled, for each unsettled
// neighbor u, with w the minimum weight among the parallel edges v–u:
//
//	candidate := d(v) + w
//	candidate >  d(u)  → skip
//	candidate <  d(u)  → d(u) = candidate; preds(u) = {(v, e) : e minimum-weight v–u}
//	candidate == d(u)  → preds(u) ∪= {(v, e) : e minimum-weight v–u}
//
// Strategies:
//
//   - StrategyHeap (default): container/heap min-heap with lazy decrease-key.
//   - StrategyLinearScan:     the classic O(V²) selection.
//
// Both select by (distance, vertex ID) ascending and therefore produce the
// same labels, the same predecessor order, and the same settle order.
//
// Error handling (sentinel errors, matched with errors.Is):
//
//   - ErrInvalidInput:   ErrNilGraph, ErrEmptySource, ErrVertexNotFound.
//   - ErrPrecondition:   ErrNegativeWeight, ErrWeightOverflow.
//
// Validation happens once at entry; on error nothing is returned.
//
// Observability:
//
//   - WithLogger(l) emits one Debug entry per relaxation, message "skip",
//     "update" or "add", with fields v, u, current and candidate.
//   - WithOnSettle / WithOnRelax expose the same events as callbacks.
//
// Concurrency:
//
//   - Each call owns its labels exclusively. The graph is read-only, so any
//     number of calls may run concurrently over the same *core.Graph.
package dijkstra

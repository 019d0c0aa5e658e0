// Package paths enumerates every minimum-length path between a source and a
// target from the label mapping produced by package dijkstra.
//
// The predecessor sets recorded by the engine form a DAG rooted at the source.
// Enumerate walks it backward from the target with an explicit work stack,
// so deep graphs never hit recursion limits, and returns the union of all
// branches in a deterministic order. Count computes the size of that union by
// dynamic programming without materialising the paths.
//
// "No paths" (unreachable target) is an empty result, distinct from the single
// zero-hop path returned when target == source.
//
// Parallel edges tied at the minimum weight make the dedupe policy matter:
//
//	s ==(e1,e2)== A ---(e3)--- t
//
//	PolicyVertexSequence → [s A t] via e1,e3
//	PolicyEdgeVariants   → [s A t] via e1,e3 and [s A t] via e2,e3
package paths

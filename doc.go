// Package multipath computes single-source shortest paths over weighted
// undirected multigraphs without throwing ties away.
//
// A classic Dijkstra run keeps one predecessor per vertex and so reports one
// shortest route. multipath keeps every predecessor that reaches a vertex at
// its minimum distance and can then list every shortest route, including the
// variants that differ only in which parallel edge they take.
//
// Layout:
//
//	core/     - undirected weighted multigraph, thread-safe reads
//	dijkstra/ - label-setting engine (heap or linear scan), tie-preserving relaxation
//	paths/    - enumerate or count the shortest paths recorded in the labels
//	builder/  - deterministic graph fixtures (grid, cycle, complete, random, parallel)
//	loader/   - cytoscape JSON, YAML, HCL and adjacency-matrix files
//	cmd/multipath - CLI: distances, paths, batch, generate, serve
//
// Quick ASCII example:
//
//	        1       2       3
//	    s ───── A ───── C ───── t
//	    │       │1              │
//	    │2      │               │2
//	    └────── B ───── D ──────┘
//	                2
//
// Both s→A→C→t and s→B→D→t cost 6, as does s→A→B→D→t. All three are returned.
//
//	go install github.com/katalvlaran/multipath/cmd/multipath@latest
package multipath

// Package core provides a thread-safe in-memory undirected multigraph with
// integer edge weights and a minimal, read-mostly API surface.
//
// The Graph G = (V,E) has these properties:
//
//   - Every edge is undirected and carries an int64 weight.
//   - Parallel edges are first-class: two vertices may be joined by any number
//     of edges, each with its own ID and weight.
//   - Self-loops are rejected (ErrLoopNotAllowed); they never lie on a shortest path.
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v][edgeID] = struct{}{} (mirrored for v→u)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …), or explicit IDs
//     through WithEdgeID.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Deterministic iteration: Vertices(), Edges(), Neighbors(), NeighborIDs(),
// EdgesBetween() and MinimumWeightEdges() all return sorted results, so higher
// level algorithms produce reproducible output.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//	Vertices() []string                        // O(V log V)
//	Degree(id string) (int, error)             // O(deg)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) // O(1)†
//	GetEdge(edgeID string) (*Edge, error)      // O(1)
//	Edges() []*Edge                            // O(E log E)
//
//	// Adjacency
//	Neighbors(id string) ([]*Edge, error)      // O(d log d)
//	NeighborIDs(id string) ([]string, error)   // O(k log k)
//	EdgesBetween(u, v string) []*Edge          // O(k log k)
//	MinimumWeightEdges(u, v string) ([]*Edge, int64)
//
// † amortized over hash-map growth.
//
// A Graph is never mutated by the algorithms in this module; once built it may
// be shared freely between goroutines running shortest-path searches.
package core

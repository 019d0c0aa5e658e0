// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying
// undirected weighted multigraphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a built graph can be shared by any
// number of concurrent readers.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrEmptyEdgeID      - explicit edge ID is the empty string.
//	ErrLoopNotAllowed   - self-loop edges are never stored.
//	ErrDuplicateEdgeID  - explicit edge ID already taken.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyEdgeID indicates that WithEdgeID was given an empty string.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdgeID indicates an explicit edge ID collides with an existing edge.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")
)

// Vertex represents a node in the graph.
// ID uniquely identifies this Vertex within its Graph; it carries no other attributes.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents an undirected, weighted connection between two vertices.
//
// From and To only record the orientation the edge was inserted with; the
// graph treats both endpoints symmetrically. Several edges may join the same
// pair of vertices, each with its own ID and Weight.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as given to AddEdge.
	From string

	// To is the second endpoint as given to AddEdge.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint of e, the empty string is returned.
func (e *Edge) Other(v string) string {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// IsNil reports whether the receiver is a nil pointer.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and edge catalogs.
// Negative hints are treated as zero.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make(map[string]*Vertex, vertices)
			g.adjacency = make(map[string]map[string]map[string]struct{}, vertices)
		}
		if edges > 0 {
			g.edges = make(map[string]*Edge, edges)
		}
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeID assigns an explicit identifier to the new edge instead of the
// generated "e1", "e2", ... sequence.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// Graph is the core in-memory graph data structure.
//
// Edges are undirected and weighted; parallel edges are always permitted,
// self-loops never are.
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for generated Edge.ID values.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v][Edge.ID] = struct{}{}, mirrored as adjacency[v][u][Edge.ID].
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

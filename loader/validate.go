// SPDX-License-Identifier: MIT
// Package: multipath/loader
//
// validate.go - Document validation and conversion to core.Graph.
//
// Contract:
//   - Validate fails fast on the first offending entry, in declaration order
//     (vertices first, then edges).
//   - Build always validates first; a Document that passes Validate never
//     produces a core error.
//   - Edges keep their declared IDs so results can be mapped back to the file.

package loader

import (
	"fmt"

	"github.com/katalvlaran/multipath/core"
)

const (
	methodValidate = "Validate"
	methodBuild    = "Build"
)

// Validate checks IDs, endpoints and weights.
func (d *Document) Validate() error {
	vertices := make(map[string]struct{}, len(d.Vertices))
	for i, v := range d.Vertices {
		if v.ID == "" {
			return fmt.Errorf("%s: vertices[%d]: %w", methodValidate, i, ErrEmptyID)
		}
		if _, dup := vertices[v.ID]; dup {
			return fmt.Errorf("%s: vertex %q: %w", methodValidate, v.ID, ErrDuplicateID)
		}
		vertices[v.ID] = struct{}{}
	}

	edges := make(map[string]struct{}, len(d.Edges))
	for i, e := range d.Edges {
		if e.ID == "" {
			return fmt.Errorf("%s: edges[%d]: %w", methodValidate, i, ErrEmptyID)
		}
		if _, dup := edges[e.ID]; dup {
			return fmt.Errorf("%s: edge %q: %w", methodValidate, e.ID, ErrDuplicateID)
		}
		edges[e.ID] = struct{}{}

		if _, ok := vertices[e.From]; !ok {
			return fmt.Errorf("%s: edge %q source %q: %w", methodValidate, e.ID, e.From, ErrUnknownEndpoint)
		}
		if _, ok := vertices[e.To]; !ok {
			return fmt.Errorf("%s: edge %q target %q: %w", methodValidate, e.ID, e.To, ErrUnknownEndpoint)
		}
		if e.From == e.To {
			return fmt.Errorf("%s: edge %q on %q: %w", methodValidate, e.ID, e.From, ErrSelfLoop)
		}
		if e.Weight == nil {
			return fmt.Errorf("%s: edge %q: %w", methodValidate, e.ID, ErrMissingWeight)
		}
		if *e.Weight < 0 {
			return fmt.Errorf("%s: edge %q weight=%d: %w", methodValidate, e.ID, *e.Weight, ErrNegativeWeight)
		}
	}

	return nil
}

// Build validates d and constructs the graph it describes.
func (d *Document) Build() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithCapacity(len(d.Vertices), len(d.Edges)))
	for _, v := range d.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%q): %w", methodBuild, v.ID, err)
		}
	}
	for _, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, *e.Weight, core.WithEdgeID(e.ID)); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%q): %w", methodBuild, e.ID, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a Document, vertices and edges sorted by ID.
func FromGraph(g *core.Graph) *Document {
	ids := g.Vertices()
	edges := g.Edges()
	d := &Document{
		Vertices: make([]VertexSpec, len(ids)),
		Edges:    make([]EdgeSpec, len(edges)),
	}
	for i, id := range ids {
		d.Vertices[i] = VertexSpec{ID: id}
	}
	for i, e := range edges {
		d.Edges[i] = EdgeSpec{ID: e.ID, From: e.From, To: e.To, Weight: Int64(e.Weight)}
	}

	return d
}

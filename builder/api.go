// SPDX-License-Identifier: MIT
// Package: multipath/builder
//
// api.go - public entry point composing Constructors over a fresh core.Graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/multipath/core"
)

// Constructor mutates g according to a single topology recipe.
// Implementations must be deterministic for a fixed cfg and must return
// wrapped sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new graph with gopts, resolves bopts once, and applies
// each constructor in order.
//
// Errors:
//   - ErrConstructFailed if a constructor is nil.
//   - Any constructor error, prefixed with "BuildGraph: ".
//
// Complexity: sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts idFn(0..n-1) in ascending index order.
func addVertices(method string, g *core.Graph, n int, idFn IDFn) error {
	var id string
	for i := 0; i < n; i++ {
		id = idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addWeightedEdge draws a weight from cfg and adds u–v.
func addWeightedEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

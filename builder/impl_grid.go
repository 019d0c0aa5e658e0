// SPDX-License-Identifier: MIT
// Package: multipath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex IDs use a fixed, documented scheme "r,c" (row-major order).
//     This is a deliberate exception to cfg.idFn to keep coordinates explicit.
//     WithEndpointIDs still renames "0,0" to SourceID and the last cell to TargetID.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they exist.
//
// With unit weights, the number of shortest paths from "0,0" to "r,c" is the
// binomial coefficient C(r+c, r), which makes grids a strong tie fixture.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.
package builder

import (
	"fmt"

	"github.com/katalvlaran/multipath/core"
)

// File-local constants: method tag, minima, and ID format (no magic literals).
const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c" - fixed, documented coordinate ID scheme
)

// GridVertexID returns the ID Grid assigns to cell (r, c).
func GridVertexID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cell := func(r, c int) string {
			if cfg.endpoints {
				switch {
				case r == 0 && c == 0:
					return SourceID
				case r == rows-1 && c == cols-1:
					return TargetID
				}
			}
			return GridVertexID(r, c)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := cell(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cell(r, c)
				if c+1 < cols {
					if err := addWeightedEdge(methodGrid, g, cfg, u, cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addWeightedEdge(methodGrid, g, cfg, u, cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

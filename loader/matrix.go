// SPDX-License-Identifier: MIT
// Package: multipath/loader
//
// matrix.go - adjacency matrix import and export.
//
// Contract:
//   - Vertices are numbered from 1: row i is vertex "i+1".
//   - Only the upper triangle is read; entry [i][j] (j > i) becomes edge
//     "i+1_j+1" with that weight. Zero means "no edge", so zero-weight edges
//     cannot be expressed in this form.
//   - The diagonal is ignored.
//
// Complexity: O(n²).

package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/multipath/core"
)

const methodFromMatrix = "FromAdjacencyMatrix"

// FromAdjacencyMatrix converts a square matrix into a Document.
// Negative entries are carried over and rejected later by Validate.
func FromAdjacencyMatrix(m [][]int64) (*Document, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", methodFromMatrix, i, len(row), n, ErrNotSquare)
		}
	}

	d := &Document{Vertices: make([]VertexSpec, n)}
	for i := 0; i < n; i++ {
		d.Vertices[i] = VertexSpec{ID: strconv.Itoa(i + 1)}
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m[i][j] == 0 {
				continue
			}
			from, to := strconv.Itoa(i+1), strconv.Itoa(j+1)
			d.Edges = append(d.Edges, EdgeSpec{
				ID:     from + "_" + to,
				From:   from,
				To:     to,
				Weight: Int64(m[i][j]),
			})
		}
	}

	return d, nil
}

// ToAdjacencyMatrix returns the vertex order (sorted IDs) and a symmetric
// matrix holding the minimum weight between each adjacent pair.
// Parallel edges collapse to their minimum; that is the only weight a
// shortest-path run can observe.
func ToAdjacencyMatrix(g *core.Graph) ([]string, [][]int64) {
	ids := g.Vertices()
	data := make([][]int64, len(ids))
	for i := range data {
		data[i] = make([]int64, len(ids))
	}
	var i, j int
	for i = 0; i < len(ids); i++ {
		for j = i + 1; j < len(ids); j++ {
			if _, w := g.MinimumWeightEdges(ids[i], ids[j]); w != 0 {
				data[i][j], data[j][i] = w, w
			}
		}
	}

	return ids, data
}

func decodeMatrix(r io.Reader) (*Document, error) {
	var m [][]int64
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("loader: decode matrix: %w", err)
	}

	return FromAdjacencyMatrix(m)
}

// encodeMatrix writes one row per line.
func encodeMatrix(w io.Writer, m [][]int64) error {
	if len(m) == 0 {
		_, err := io.WriteString(w, "[]\n")
		return err
	}
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, row := range m {
		b, err := json.Marshal(row)
		if err != nil {
			return err
		}
		sep := ",\n"
		if i == len(m)-1 {
			sep = "\n"
		}
		if _, err = fmt.Fprintf(w, "  %s%s", b, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")

	return err
}

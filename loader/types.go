// SPDX-License-Identifier: MIT
// Package: multipath/loader
//
// types.go - Document model, formats and sentinel errors.
//
// A Document is the format-neutral description of a graph file. Every decoder
// produces one; Validate checks it against the engine's preconditions; Build
// turns it into a *core.Graph.
//
// Errors (sentinel):
//   - ErrUnsupportedFormat  unknown format name or file extension.
//   - ErrEmptyID            vertex or edge without an ID.
//   - ErrDuplicateID        vertex or edge ID declared twice.
//   - ErrUnknownEndpoint    edge endpoint is not a declared vertex.
//   - ErrMissingWeight      edge without a weight.
//   - ErrNegativeWeight     edge with weight < 0.
//   - ErrNonIntegerWeight   JSON weight with a fractional part or out of int64 range.
//   - ErrInvalidID          JSON id that is neither a string nor an integer.
//   - ErrSelfLoop           edge whose endpoints coincide.
//   - ErrNotSquare          adjacency matrix is not n×n.

package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for decoding and validation.
var (
	ErrUnsupportedFormat = errors.New("loader: unsupported format")
	ErrEmptyID           = errors.New("loader: empty id")
	ErrDuplicateID       = errors.New("loader: duplicate id")
	ErrUnknownEndpoint   = errors.New("loader: edge endpoint is not a declared vertex")
	ErrMissingWeight     = errors.New("loader: edge weight is missing")
	ErrNegativeWeight    = errors.New("loader: edge weight is negative")
	ErrNonIntegerWeight  = errors.New("loader: edge weight is not an integer")
	ErrInvalidID         = errors.New("loader: id must be a string or an integer")
	ErrSelfLoop          = errors.New("loader: self-loop edge")
	ErrNotSquare         = errors.New("loader: adjacency matrix is not square")
)

// Format identifies an on-disk encoding.
type Format string

const (
	// FormatJSON is the cytoscape element format (array or {nodes, edges} object).
	FormatJSON Format = "json"

	// FormatYAML is the Document layout in YAML.
	FormatYAML Format = "yaml"

	// FormatHCL uses vertex "id" {} and edge "id" { from, to, weight } blocks.
	FormatHCL Format = "hcl"

	// FormatMatrix is a JSON array of rows of a symmetric adjacency matrix.
	FormatMatrix Format = "matrix"
)

// ParseFormat normalises a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "cytoscape":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	case "matrix", "adjacency":
		return FormatMatrix, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
// Files ending in ".matrix.json" are read as adjacency matrices.
func FormatFromPath(path string) (Format, error) {
	base := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(base, ".matrix.json") {
		return FormatMatrix, nil
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}

	return ParseFormat(ext)
}

// Document is a decoded graph file.
type Document struct {
	Vertices []VertexSpec `yaml:"vertices" json:"vertices"`
	Edges    []EdgeSpec   `yaml:"edges" json:"edges"`
}

// VertexSpec declares one vertex.
type VertexSpec struct {
	ID string `yaml:"id" json:"id"`
}

// EdgeSpec declares one undirected edge. Weight is a pointer so that a
// missing weight is distinguishable from an explicit zero.
type EdgeSpec struct {
	ID     string `yaml:"id" json:"id"`
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight *int64 `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Int64 returns a pointer to w, for building EdgeSpec literals.
func Int64(w int64) *int64 { return &w }

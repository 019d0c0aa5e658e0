// SPDX-License-Identifier: MIT
// Package: multipath/loader
//
// load.go - format dispatch for reading and writing graph files.

package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/multipath/core"
	"gopkg.in/yaml.v3"
)

// Decode reads a Document in the given format. The result is not validated.
func Decode(r io.Reader, format Format) (*Document, error) {
	return decode(r, format, "<input>")
}

func decode(r io.Reader, format Format, name string) (*Document, error) {
	switch format {
	case FormatJSON:
		return decodeCytoscape(r)
	case FormatYAML:
		var d Document
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return &d, nil
			}
			return nil, fmt.Errorf("loader: decode yaml %s: %w", name, err)
		}
		return &d, nil
	case FormatHCL:
		return decodeHCL(r, name)
	case FormatMatrix:
		return decodeMatrix(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Load opens path and decodes it by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return decode(f, format, path)
}

// LoadGraph is Load followed by Build.
func LoadGraph(path string) (*core.Graph, error) {
	d, err := Load(path)
	if err != nil {
		return nil, err
	}
	g, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return g, nil
}

// Encode writes g in the given format. FormatMatrix is written as a JSON
// array of rows in sorted-ID order.
func Encode(w io.Writer, g *core.Graph, format Format) error {
	d := FromGraph(g)
	switch format {
	case FormatJSON:
		return encodeCytoscape(w, d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("loader: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatHCL:
		return encodeHCL(w, d)
	case FormatMatrix:
		_, m := ToAdjacencyMatrix(g)
		return encodeMatrix(w, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

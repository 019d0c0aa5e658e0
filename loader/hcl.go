// SPDX-License-Identifier: MIT
// Package: multipath/loader
//
// hcl.go - HCL codec.
//
//	vertex "s" {}
//	vertex "A" {}
//
//	edge "sA" {
//	  from   = "s"
//	  to     = "A"
//	  weight = 1
//	}

package loader

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// hclGraphFile is the top-level structure of a graph file for decoding.
type hclGraphFile struct {
	Vertices []hclVertex `hcl:"vertex,block"`
	Edges    []hclEdge   `hcl:"edge,block"`
}

type hclVertex struct {
	ID string `hcl:"id,label"`
}

type hclEdge struct {
	ID     string `hcl:"id,label"`
	From   string `hcl:"from"`
	To     string `hcl:"to"`
	Weight *int64 `hcl:"weight,optional"`
}

// decodeHCL parses src; filename is used only in diagnostics.
func decodeHCL(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read hcl: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loader: failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclGraphFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("loader: failed to decode HCL file %s: %w", filename, diags)
	}

	d := &Document{
		Vertices: make([]VertexSpec, 0, len(parsed.Vertices)),
		Edges:    make([]EdgeSpec, 0, len(parsed.Edges)),
	}
	for _, v := range parsed.Vertices {
		d.Vertices = append(d.Vertices, VertexSpec{ID: v.ID})
	}
	for _, e := range parsed.Edges {
		d.Edges = append(d.Edges, EdgeSpec{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
	}

	return d, nil
}

func encodeHCL(w io.Writer, d *Document) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, v := range d.Vertices {
		body.AppendNewBlock("vertex", []string{v.ID})
	}
	if len(d.Vertices) > 0 && len(d.Edges) > 0 {
		body.AppendNewline()
	}
	for i, e := range d.Edges {
		if i > 0 {
			body.AppendNewline()
		}
		eb := body.AppendNewBlock("edge", []string{e.ID}).Body()
		eb.SetAttributeValue("from", cty.StringVal(e.From))
		eb.SetAttributeValue("to", cty.StringVal(e.To))
		if e.Weight != nil {
			eb.SetAttributeValue("weight", cty.NumberIntVal(*e.Weight))
		}
	}

	_, err := f.WriteTo(w)

	return err
}

// SPDX-License-Identifier: MIT
// Package: multipath/loader
//
// cytoscape.go - JSON element codec.
//
// Accepted layouts:
//
//	[ {"group":"nodes","data":{"id":"s"}},
//	  {"group":"edges","data":{"id":"sA","source":"s","target":"A","weight":1}} ]
//
//	{ "nodes": [ {"data":{"id":"s"}} ],
//	  "edges": [ {"data":{"id":"sA","source":"s","target":"A","weight":1}} ] }
//
// In the array layout an element without "group" is an edge when its data
// carries both "source" and "target", otherwise a node.
//
// Vertex and edge IDs may be strings or integers; integers are read as their
// decimal text. Weights must be integral: 2 and 2.0 are accepted, 2.5 is
// ErrNonIntegerWeight.

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

const (
	groupNodes = "nodes"
	groupEdges = "edges"
)

type element struct {
	Group string      `json:"group,omitempty"`
	Data  elementData `json:"data"`
}

type elementData struct {
	ID     elementID    `json:"id"`
	Source elementID    `json:"source,omitempty"`
	Target elementID    `json:"target,omitempty"`
	Weight *json.Number `json:"weight,omitempty"`
}

// elementID is a string that also decodes from a JSON integer.
type elementID string

func (id *elementID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = elementID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, b)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("%w: %s is not an integer", ErrInvalidID, b)
	}
	*id = elementID(strconv.FormatInt(v, 10))

	return nil
}

// weightOf converts a decoded weight; nil stays nil for Validate to report.
func weightOf(edgeID string, n *json.Number) (*int64, error) {
	if n == nil {
		return nil, nil
	}
	if v, err := n.Int64(); err == nil {
		return &v, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("loader: edge %q weight %s: %w", edgeID, n.String(), ErrNonIntegerWeight)
	}

	return Int64(int64(f)), nil
}

func numberOf(w *int64) *json.Number {
	if w == nil {
		return nil
	}
	n := json.Number(strconv.FormatInt(*w, 10))

	return &n
}

type elementObject struct {
	Nodes []element `json:"nodes"`
	Edges []element `json:"edges"`
}

func (e element) isEdge() bool {
	switch e.Group {
	case groupEdges:
		return true
	case groupNodes:
		return false
	default:
		return e.Data.Source != "" && e.Data.Target != ""
	}
}

func decodeCytoscape(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read json: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return &Document{}, nil
	}

	var elems []element
	if raw[0] == '{' {
		var obj elementObject
		if err = json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("loader: decode json object: %w", err)
		}
		for i := range obj.Nodes {
			obj.Nodes[i].Group = groupNodes
		}
		for i := range obj.Edges {
			obj.Edges[i].Group = groupEdges
		}
		elems = append(obj.Nodes, obj.Edges...)
	} else if err = json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("loader: decode json elements: %w", err)
	}

	d := &Document{}
	for _, e := range elems {
		id := string(e.Data.ID)
		if !e.isEdge() {
			d.Vertices = append(d.Vertices, VertexSpec{ID: id})
			continue
		}
		w, err := weightOf(id, e.Data.Weight)
		if err != nil {
			return nil, err
		}
		d.Edges = append(d.Edges, EdgeSpec{ID: id, From: string(e.Data.Source), To: string(e.Data.Target), Weight: w})
	}

	return d, nil
}

// encodeCytoscape writes the array layout: nodes first, then edges.
func encodeCytoscape(w io.Writer, d *Document) error {
	elems := make([]element, 0, len(d.Vertices)+len(d.Edges))
	for _, v := range d.Vertices {
		elems = append(elems, element{Group: groupNodes, Data: elementData{ID: elementID(v.ID)}})
	}
	for _, e := range d.Edges {
		elems = append(elems, element{Group: groupEdges, Data: elementData{
			ID: elementID(e.ID), Source: elementID(e.From), Target: elementID(e.To), Weight: numberOf(e.Weight),
		}})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(elems)
}

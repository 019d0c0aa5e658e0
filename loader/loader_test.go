package loader_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/loader"
	"github.com/katalvlaran/multipath/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeWays() *loader.Document {
	d := &loader.Document{}
	for _, id := range []string{"s", "A", "B", "C", "D", "t"} {
		d.Vertices = append(d.Vertices, loader.VertexSpec{ID: id})
	}
	for _, e := range []struct {
		id, from, to string
		w            int64
	}{
		{"sA", "s", "A", 1}, {"AC", "A", "C", 2}, {"Ct", "C", "t", 3},
		{"sB", "s", "B", 2}, {"BD", "B", "D", 2}, {"Dt", "D", "t", 2},
		{"AB", "A", "B", 1},
	} {
		d.Edges = append(d.Edges, loader.EdgeSpec{ID: e.id, From: e.from, To: e.to, Weight: loader.Int64(e.w)})
	}

	return d
}

func TestLoad_AllFormatsAgree(t *testing.T) {
	want := threeWays()
	for _, name := range []string{"threeways.json", "threeways_object.json", "threeways.yaml", "threeways.hcl"} {
		t.Run(name, func(t *testing.T) {
			got, err := loader.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Load(%s) mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestLoadGraph_FeedsEngine(t *testing.T) {
	g, err := loader.LoadGraph(filepath.Join("testdata", "threeways.hcl"))
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(g, "s")
	require.NoError(t, err)
	n, err := paths.Count(res.Labels, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)
	assert.Equal(t, int64(6), res.Distance("t"))
}

func TestLoad_Matrix(t *testing.T) {
	d, err := loader.Load(filepath.Join("testdata", "square.matrix.json"))
	require.NoError(t, err)

	want := &loader.Document{
		Vertices: []loader.VertexSpec{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}},
		Edges: []loader.EdgeSpec{
			{ID: "1_2", From: "1", To: "2", Weight: loader.Int64(1)},
			{ID: "1_4", From: "1", To: "4", Weight: loader.Int64(2)},
			{ID: "2_3", From: "2", To: "3", Weight: loader.Int64(1)},
			{ID: "3_4", From: "3", To: "4", Weight: loader.Int64(1)},
		},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}

	g, err := d.Build()
	require.NoError(t, err)
	ids, m := loader.ToAdjacencyMatrix(g)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
	assert.Equal(t, [][]int64{{0, 1, 0, 2}, {1, 0, 1, 0}, {0, 1, 0, 1}, {2, 0, 1, 0}}, m)

	_, err = loader.FromAdjacencyMatrix([][]int64{{0, 1}, {1}})
	assert.ErrorIs(t, err, loader.ErrNotSquare)
}

func TestValidate(t *testing.T) {
	vs := []loader.VertexSpec{{ID: "a"}, {ID: "b"}}
	cases := []struct {
		name string
		doc  loader.Document
		want error
	}{
		{"EmptyVertexID", loader.Document{Vertices: []loader.VertexSpec{{ID: ""}}}, loader.ErrEmptyID},
		{"DuplicateVertex", loader.Document{Vertices: []loader.VertexSpec{{ID: "a"}, {ID: "a"}}}, loader.ErrDuplicateID},
		{"EmptyEdgeID", loader.Document{Vertices: vs, Edges: []loader.EdgeSpec{
			{From: "a", To: "b", Weight: loader.Int64(1)}}}, loader.ErrEmptyID},
		{"DuplicateEdge", loader.Document{Vertices: vs, Edges: []loader.EdgeSpec{
			{ID: "x", From: "a", To: "b", Weight: loader.Int64(1)},
			{ID: "x", From: "b", To: "a", Weight: loader.Int64(2)}}}, loader.ErrDuplicateID},
		{"UnknownEndpoint", loader.Document{Vertices: vs, Edges: []loader.EdgeSpec{
			{ID: "x", From: "a", To: "z", Weight: loader.Int64(1)}}}, loader.ErrUnknownEndpoint},
		{"SelfLoop", loader.Document{Vertices: vs, Edges: []loader.EdgeSpec{
			{ID: "x", From: "a", To: "a", Weight: loader.Int64(1)}}}, loader.ErrSelfLoop},
		{"MissingWeight", loader.Document{Vertices: vs, Edges: []loader.EdgeSpec{
			{ID: "x", From: "a", To: "b"}}}, loader.ErrMissingWeight},
		{"NegativeWeight", loader.Document{Vertices: vs, Edges: []loader.EdgeSpec{
			{ID: "x", From: "a", To: "b", Weight: loader.Int64(-3)}}}, loader.ErrNegativeWeight},
		{"ZeroWeightOK", loader.Document{Vertices: vs, Edges: []loader.EdgeSpec{
			{ID: "x", From: "a", To: "b", Weight: loader.Int64(0)}}}, nil},
		{"Empty", loader.Document{}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.doc.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			_, err = tc.doc.Build()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := loader.Decode(strings.NewReader("[{"), loader.FormatJSON)
	assert.Error(t, err)

	_, err = loader.Decode(strings.NewReader(`edge "x" { from = "a" }`), loader.FormatHCL)
	assert.Error(t, err, "required attribute 'to' is missing")

	_, err = loader.Decode(strings.NewReader(""), "toml")
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)

	_, err = loader.Load("graph.txt")
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)

	d, err := loader.Decode(strings.NewReader(`edge "x" {
  from = "a"
  to   = "b"
}`), loader.FormatHCL)
	require.NoError(t, err)
	assert.Nil(t, d.Edges[0].Weight)
}

func TestDecode_ElementClassification(t *testing.T) {
	src := `[
	  {"data": {"id": "a"}},
	  {"data": {"id": "b"}},
	  {"group": "nodes", "data": {"id": "c", "source": "a", "target": "b"}},
	  {"data": {"id": "ab", "source": "a", "target": "b", "weight": 0}}
	]`
	d, err := loader.Decode(strings.NewReader(src), loader.FormatJSON)
	require.NoError(t, err)
	assert.Len(t, d.Vertices, 3, "explicit group wins over source/target")
	require.Len(t, d.Edges, 1)
	require.NotNil(t, d.Edges[0].Weight)
	assert.Zero(t, *d.Edges[0].Weight)
}

func TestDecode_NumericIDsAndWeights(t *testing.T) {
	src := `[
	  {"data": {"id": 1}},
	  {"data": {"id": "2"}},
	  {"data": {"id": 12, "source": 1, "target": 2, "weight": 3.0}}
	]`
	d, err := loader.Decode(strings.NewReader(src), loader.FormatJSON)
	require.NoError(t, err)
	want := &loader.Document{
		Vertices: []loader.VertexSpec{{ID: "1"}, {ID: "2"}},
		Edges:    []loader.EdgeSpec{{ID: "12", From: "1", To: "2", Weight: loader.Int64(3)}},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("numeric decode mismatch (-want +got):\n%s", diff)
	}

	cases := []struct {
		name string
		src  string
		want error
	}{
		{"FractionalWeight", `[{"data": {"id": "e", "source": "a", "target": "b", "weight": 2.5}}]`, loader.ErrNonIntegerWeight},
		{"HugeWeight", `[{"data": {"id": "e", "source": "a", "target": "b", "weight": 1e30}}]`, loader.ErrNonIntegerWeight},
		{"FractionalID", `[{"data": {"id": 1.5}}]`, loader.ErrInvalidID},
		{"BoolID", `{"nodes": [{"data": {"id": true}}]}`, loader.ErrInvalidID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(tc.src), loader.FormatJSON)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncode_ReadsBack(t *testing.T) {
	g, err := threeWays().Build()
	require.NoError(t, err)
	want := loader.FromGraph(g)

	for _, f := range []loader.Format{loader.FormatJSON, loader.FormatYAML, loader.FormatHCL} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, loader.Encode(&buf, g, f))
			got, err := loader.Decode(&buf, f)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Encode/Decode %s mismatch (-want +got):\n%s", f, diff)
			}
		})
	}

	var buf bytes.Buffer
	require.NoError(t, loader.Encode(&buf, g, loader.FormatMatrix))
	assert.True(t, strings.HasPrefix(buf.String(), "[\n  [0,1,2,0,1,0],\n"), buf.String())

	assert.ErrorIs(t, loader.Encode(&buf, g, "dot"), loader.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]loader.Format{
		"json": loader.FormatJSON, "YML": loader.FormatYAML, "hcl": loader.FormatHCL, "matrix": loader.FormatMatrix,
	}
	for in, want := range cases {
		got, err := loader.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	f, err := loader.FormatFromPath("data/g.Matrix.JSON")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatMatrix, f)
}

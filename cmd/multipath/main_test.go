package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threeWaysFile = filepath.Join("testdata", "batch", "threeways.json")

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(io.Discard)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestDistances_Table(t *testing.T) {
	out, err := execute(t, "distances", threeWaysFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+6)
	assert.Equal(t, "VERTEX  DISTANCE  PREDECESSORS", lines[0])
	assert.Equal(t, "s       0         -", lines[2])
	assert.Equal(t, "t       6         C(Ct) D(Dt)", lines[7])
}

func TestDistances_JSONAndLinear(t *testing.T) {
	out, err := execute(t, "distances", threeWaysFile, "-o", "json", "--strategy", "linear", "--source", "A")
	require.NoError(t, err)

	var body struct {
		Source   string `json:"source"`
		Vertices []struct {
			Vertex   string `json:"vertex"`
			Distance *int64 `json:"distance"`
		} `json:"vertices"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "A", body.Source)
	assert.Equal(t, "A", body.Vertices[0].Vertex)
	assert.Equal(t, int64(0), *body.Vertices[0].Distance)
}

func TestPaths(t *testing.T) {
	out, err := execute(t, "paths", threeWaysFile, "-o", "json")
	require.NoError(t, err)
	var body struct {
		Total uint64 `json:"total"`
		Paths []struct {
			Vertices []string `json:"vertices"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, uint64(3), body.Total)
	require.Len(t, body.Paths, 3)
	assert.Equal(t, []string{"s", "A", "B", "D", "t"}, body.Paths[2].Vertices)

	out, err = execute(t, "paths", threeWaysFile, "--count")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = execute(t, "paths", threeWaysFile, "--max-paths", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "s → A → C → t")
	assert.Contains(t, out, "(1 of 3 paths shown)")
}

func TestPaths_Errors(t *testing.T) {
	_, err := execute(t, "paths", threeWaysFile, "--source", "nowhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dijkstra.ErrVertexNotFound), err)
	assert.True(t, strings.HasPrefix(err.Error(), "paths: "), err)

	_, err = execute(t, "paths", threeWaysFile, "--policy", "all")
	assert.Error(t, err)

	_, err = execute(t, "paths", filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)

	_, err = execute(t, "paths", threeWaysFile, "--strategy", "astar")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	out, err := execute(t, "batch", filepath.Join("testdata", "batch"), "-o", "json", "--workers", "2")
	require.Error(t, err, "negative.yaml must fail")
	assert.Contains(t, err.Error(), "1 of 3 files failed")

	var body struct {
		RunID   string        `json:"run_id"`
		Results []batchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.NotEmpty(t, body.RunID)
	require.Len(t, body.Results, 3)

	byFile := map[string]batchResult{}
	for _, r := range body.Results {
		byFile[filepath.Base(r.File)] = r
	}
	assert.Contains(t, byFile["negative.yaml"].Error, "negative")
	for _, name := range []string{"threeways.json", "threeways_hcl.hcl"} {
		r := byFile[name]
		assert.Empty(t, r.Error, name)
		require.NotNil(t, r.Distance, name)
		assert.Equal(t, int64(6), *r.Distance, name)
		assert.Equal(t, uint64(3), r.Total, name)
	}

	out, err = execute(t, "batch", threeWaysFile)
	require.NoError(t, err)
	assert.Contains(t, out, "threeways.json  6         3      s → A → C → t")
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "--kind", "grid", "--rows", "2", "--cols", "3", "--format", "yaml", "--parallel", "2")
	require.NoError(t, err)

	doc, err := loader.Decode(strings.NewReader(out), loader.FormatYAML)
	require.NoError(t, err)
	assert.Len(t, doc.Vertices, 6)
	assert.Len(t, doc.Edges, 14)
	require.NoError(t, doc.Validate())

	path := filepath.Join(t.TempDir(), "g.json")
	_, err = execute(t, "generate", "--kind", "random", "-n", "8", "--ids", "symbol", "--min-weight", "1", "--max-weight", "5", "--out", path)
	require.NoError(t, err)
	g, err := loader.LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasVertex("s"))
	assert.False(t, g.HasVertex("A"))

	_, err = execute(t, "generate", "--kind", "path", "--endpoints=false", "--out", path)
	require.NoError(t, err)
	g, err = loader.LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, g.Vertices())

	_, err = execute(t, "generate", "--kind", "hypercube")
	assert.Error(t, err)
	_, err = execute(t, "generate", "--min-weight", "3", "--max-weight", "1")
	assert.Error(t, err)
}

// TestGenerate_ThenPaths pipes a generated grid into paths with the default
// source and target.
func TestGenerate_ThenPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	_, err := execute(t, "generate", "--kind", "grid", "--rows", "2", "--cols", "3", "--out", path)
	require.NoError(t, err)

	out, err := execute(t, "paths", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+3, out)
	assert.Contains(t, lines[2], "s → ")

	out, err = execute(t, "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "grid.json")
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	formatTable(&buf, []string{"A", "LONGER"}, [][]string{{"x → y", "1"}, {"zz", "22"}})
	assert.Equal(t, "A      LONGER\n-----  ------\nx → y  1\nzz     22\n", buf.String())
}

func TestGraphName(t *testing.T) {
	assert.Equal(t, "grid", graphName("data/grid.matrix.json"))
	assert.Equal(t, "a", graphName("a.yaml"))
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/internal/config"
	"github.com/katalvlaran/multipath/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "multipath.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	s, err := cfg.EngineStrategy()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyHeap, s)
	p, err := cfg.PathPolicy()
	require.NoError(t, err)
	assert.Equal(t, paths.PolicyVertexSequence, p)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
log_level: debug
strategy: linear
policy: edges
max_paths: 50
workers: 2
cors_origins: [https://viz.example.com]
`)
	t.Setenv("MULTIPATH_WORKERS", "8")
	t.Setenv("MULTIPATH_OUTPUT", "json")
	t.Setenv("MULTIPATH_CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.LogLevel = "debug"
	want.Strategy = "linear"
	want.Policy = "edges"
	want.MaxPaths = 50
	want.Workers = 8
	want.Output = "json"
	want.CORSOrigins = []string{"http://a.test", "http://b.test"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"level":    "log_level: loud",
		"format":   "log_format: xml",
		"output":   "output: csv",
		"strategy": "strategy: bidirectional",
		"policy":   "policy: all",
		"maxpaths": "max_paths: -1",
		"workers":  "workers: 0",
		"addr":     "listen_addr: nope",
		"cors":     "cors_origins: ['*']",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_BadInputs(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "workers: [1, 2"))
	assert.Error(t, err)

	t.Setenv("MULTIPATH_MAX_PATHS", "many")
	_, err = config.Load("")
	assert.Error(t, err)
}

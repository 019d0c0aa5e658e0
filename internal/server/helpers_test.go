package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/multipath/core"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/internal/logging"
	"github.com/katalvlaran/multipath/internal/server"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func threeWaysGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		id, u, v string
		w        int64
	}{
		{"sA", "s", "A", 1}, {"AC", "A", "C", 2}, {"Ct", "C", "t", 3},
		{"sB", "s", "B", 2}, {"BD", "B", "D", 2}, {"Dt", "D", "t", 2},
		{"AB", "A", "B", 1},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w, core.WithEdgeID(e.id))
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("Z"))

	return g
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	neg := core.NewGraph()
	_, err := neg.AddEdge("s", "x", -1)
	require.NoError(t, err)

	return server.New(server.Deps{
		Log:         logging.Discard(),
		Graphs:      map[string]*core.Graph{"threeways": threeWaysGraph(t), "negative": neg},
		Strategy:    dijkstra.StrategyHeap,
		CORSOrigins: []string{"http://localhost:3000"},
	})
}

// doRequest performs an HTTP request against the test router and returns the recorder.
func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

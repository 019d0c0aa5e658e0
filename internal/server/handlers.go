package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/multipath/core"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/internal/metrics"
	"github.com/katalvlaran/multipath/loader"
	"github.com/katalvlaran/multipath/paths"
)

type graphSummary struct {
	Name          string `json:"name"`
	Vertices      int    `json:"vertices"`
	Edges         int    `json:"edges"`
	ParallelPairs int    `json:"parallel_pairs"`
	Isolated      int    `json:"isolated"`
	MinWeight     int64  `json:"min_weight"`
	MaxWeight     int64  `json:"max_weight"`
}

// labelView renders a label for JSON: an unreachable distance is null.
type labelView struct {
	Distance     *int64                 `json:"distance"`
	Reachable    bool                   `json:"reachable"`
	Degree       int                    `json:"degree"`
	Predecessors []dijkstra.Predecessor `json:"predecessors"`
}

type distancesResponse struct {
	Source string               `json:"source"`
	Order  []string             `json:"order"`
	Labels map[string]labelView `json:"labels"`
}

type pathsResponse struct {
	Source   string       `json:"source"`
	Target   string       `json:"target"`
	Distance *int64       `json:"distance"`
	Policy   string       `json:"policy"`
	Count    int          `json:"count"`
	Total    uint64       `json:"total"`
	Paths    []paths.Path `json:"paths"`
}

type inlineRequest struct {
	Graph    loader.Document `json:"graph"`
	Source   string          `json:"source" binding:"required"`
	Target   string          `json:"target"`
	Policy   string          `json:"policy"`
	Strategy string          `json:"strategy"`
	MaxPaths int             `json:"max_paths"`
}

type inlineResponse struct {
	Distances distancesResponse `json:"distances"`
	Paths     *pathsResponse    `json:"paths,omitempty"`
}

func (s *Server) listGraphs(c *gin.Context) {
	out := make([]graphSummary, 0, len(s.names))
	for _, name := range s.names {
		st := s.graphs[name].Stats()
		out = append(out, graphSummary{
			Name:          name,
			Vertices:      st.VertexCount,
			Edges:         st.EdgeCount,
			ParallelPairs: st.ParallelPairs,
			Isolated:      st.IsolatedCount,
			MinWeight:     st.MinWeight,
			MaxWeight:     st.MaxWeight,
		})
	}
	c.JSON(http.StatusOK, gin.H{"graphs": out})
}

// lookup resolves :name, the source query and the optional strategy override.
func (s *Server) lookup(c *gin.Context) (string, *core.Graph, string, dijkstra.Strategy, bool) {
	name := c.Param("name")
	g, ok := s.graphs[name]
	if !ok {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "graph not found")
		return "", nil, "", 0, false
	}
	source := c.Query("source")
	if source == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "source is required")
		return "", nil, "", 0, false
	}
	strategy := s.strategy
	if raw := c.Query("strategy"); raw != "" {
		var err error
		if strategy, err = dijkstra.ParseStrategy(raw); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
			return "", nil, "", 0, false
		}
	}

	return name, g, source, strategy, true
}

func (s *Server) distances(c *gin.Context) {
	name, g, source, strategy, ok := s.lookup(c)
	if !ok {
		return
	}
	res, err := s.cache.get(name, g, source, strategy)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewDistances(g, res))
}

func (s *Server) listPaths(c *gin.Context) {
	name, g, source, strategy, ok := s.lookup(c)
	if !ok {
		return
	}
	target := c.Query("target")
	if target == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "target is required")
		return
	}
	maxPaths := s.maxPaths
	if raw := c.Query("max_paths"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "max_paths must be a positive integer")
			return
		}
		maxPaths = min(n, s.maxPaths)
	}
	policy, err := paths.ParsePolicy(c.Query("policy"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}

	res, err := s.cache.get(name, g, source, strategy)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	resp, err := viewPaths(res, target, policy, maxPaths)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// inline runs on a graph supplied in the request body. Nothing is cached.
func (s *Server) inline(c *gin.Context) {
	var req inlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}
	g, err := req.Graph.Build()
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		return
	}
	strategy, err := dijkstra.ParseStrategy(req.Strategy)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	if req.Strategy == "" {
		strategy = s.strategy
	}
	policy, err := paths.ParsePolicy(req.Policy)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}

	res, err := run(g, req.Source, strategy)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	out := inlineResponse{Distances: viewDistances(g, res)}
	if req.Target != "" {
		maxPaths := s.maxPaths
		if req.MaxPaths > 0 {
			maxPaths = min(req.MaxPaths, s.maxPaths)
		}
		pr, err := viewPaths(res, req.Target, policy, maxPaths)
		if err != nil {
			respondEngineError(c, err)
			return
		}
		out.Paths = pr
	}
	c.JSON(http.StatusOK, out)
}

func viewDistances(g *core.Graph, res *dijkstra.Result) distancesResponse {
	out := distancesResponse{
		Source: res.Source,
		Order:  res.Order,
		Labels: make(map[string]labelView, len(res.Labels)),
	}
	for v, l := range res.Labels {
		preds := l.Predecessors
		if preds == nil {
			preds = []dijkstra.Predecessor{}
		}
		// every label key is a vertex of g, so Degree cannot fail here
		deg, _ := g.Degree(v)
		out.Labels[v] = labelView{Distance: finite(l.Distance), Reachable: l.Reachable(), Degree: deg, Predecessors: preds}
	}

	return out
}

func viewPaths(res *dijkstra.Result, target string, policy paths.Policy, maxPaths int) (*pathsResponse, error) {
	ps, err := paths.FromResult(res, target, paths.WithPolicy(policy), paths.WithMaxPaths(maxPaths))
	if err != nil {
		return nil, err
	}
	total, err := paths.Count(res.Labels, res.Source, target, paths.WithPolicy(policy))
	if errors.Is(err, paths.ErrTooManyPaths) {
		total, err = math.MaxUint64, nil
	}
	if err != nil {
		return nil, err
	}
	metrics.PathsTotal.WithLabelValues(policy.String()).Add(float64(len(ps)))

	return &pathsResponse{
		Source:   res.Source,
		Target:   target,
		Distance: finite(res.Distance(target)),
		Policy:   policy.String(),
		Count:    len(ps),
		Total:    total,
		Paths:    ps,
	}, nil
}

func finite(d int64) *int64 {
	if d == dijkstra.Infinity {
		return nil
	}

	return &d
}

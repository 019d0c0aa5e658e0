// Package server exposes shortest-path labels and enumerated paths over HTTP
// for visualisers and other consumers.
package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/multipath/core"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Router-level limits.
const (
	maxBodySize = 4 << 20 // 4 MB of inline graph
	maxPathsCap = 10000   // hard ceiling on paths per response
)

// Deps holds everything the router needs. New clones Graphs, so callers may
// keep mutating their own copies.
type Deps struct {
	Log         *logrus.Logger
	Graphs      map[string]*core.Graph
	Strategy    dijkstra.Strategy
	MaxPaths    int
	CORSOrigins []string
}

// Server bundles handlers with the result cache.
type Server struct {
	log      *logrus.Logger
	graphs   map[string]*core.Graph
	names    []string
	strategy dijkstra.Strategy
	maxPaths int
	cache    *resultCache
}

// New creates and configures the Gin engine with all middleware and routes.
func New(deps Deps) *gin.Engine {
	s := &Server{
		log:      deps.Log,
		graphs:   make(map[string]*core.Graph, len(deps.Graphs)),
		strategy: deps.Strategy,
		maxPaths: deps.MaxPaths,
		cache:    newResultCache(),
	}
	if s.log == nil {
		s.log = logrus.New()
	}
	if s.maxPaths <= 0 || s.maxPaths > maxPathsCap {
		s.maxPaths = maxPathsCap
	}
	for name, g := range deps.Graphs {
		s.graphs[name] = g.Clone()
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	metrics.GraphsLoaded.Set(float64(len(s.names)))

	r := gin.New()
	s.setupMiddleware(r, deps.CORSOrigins)
	s.registerRoutes(r)

	return r
}

func (s *Server) setupMiddleware(r *gin.Engine, origins []string) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(requestID(s.log))
	r.Use(ginLogger(s.log))
	r.Use(gin.Recovery())
	r.Use(maxBody(maxBodySize))
	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			MaxAge:           1 * time.Hour,
			AllowCredentials: false,
		}))
	}
	r.Use(prometheusMiddleware())
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.GET("/graphs", s.listGraphs)
	api.GET("/graphs/:name/distances", s.distances)
	api.GET("/graphs/:name/paths", s.listPaths)
	api.POST("/shortest-paths", s.inline)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "graphs": len(s.names)})
}

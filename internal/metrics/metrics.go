// Package metrics defines Prometheus metrics for multipath runs and the HTTP API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "multipath_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multipath_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multipath_errors_total",
			Help: "Total errors by code",
		},
		[]string{"code"},
	)

	RunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "multipath_run_duration_seconds",
			Help:    "Shortest-path run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"strategy"},
	)

	SettledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "multipath_settled_vertices_total",
			Help: "Vertices settled across all runs",
		},
	)

	RelaxTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multipath_relaxations_total",
			Help: "Relaxation decisions by outcome",
		},
		[]string{"decision"},
	)

	PathsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multipath_paths_enumerated_total",
			Help: "Paths returned by enumeration, by policy",
		},
		[]string{"policy"},
	)

	CacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multipath_result_cache_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	GraphsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "multipath_graphs_loaded",
			Help: "Graphs currently served",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		RunDuration, SettledTotal, RelaxTotal,
		PathsTotal, CacheTotal, GraphsLoaded,
	)
}

// ObserveRun records one completed engine run.
func ObserveRun(strategy string, elapsed time.Duration, settled int) {
	RunDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	SettledTotal.Add(float64(settled))
}

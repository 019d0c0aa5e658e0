package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/multipath/core"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// resultCache memoises engine runs per (graph, source, strategy). Served
// graphs are immutable, so entries never expire; concurrent misses for the
// same key share one run.
type resultCache struct {
	entries sync.Map // key → *dijkstra.Result
	group   singleflight.Group
}

func newResultCache() *resultCache {
	return &resultCache{}
}

func cacheKey(graph, source string, s dijkstra.Strategy) string {
	return fmt.Sprintf("%s\x00%s\x00%s", graph, source, s)
}

func (rc *resultCache) get(graph string, g *core.Graph, source string, s dijkstra.Strategy) (*dijkstra.Result, error) {
	key := cacheKey(graph, source, s)
	if cached, ok := rc.entries.Load(key); ok {
		metrics.CacheTotal.WithLabelValues("hit").Inc()
		return cached.(*dijkstra.Result), nil
	}

	val, err, shared := rc.group.Do(key, func() (any, error) {
		// Double-check after winning the singleflight race.
		if cached, ok := rc.entries.Load(key); ok {
			return cached, nil
		}
		res, err := run(g, source, s)
		if err != nil {
			return nil, err
		}
		rc.entries.Store(key, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		metrics.CacheTotal.WithLabelValues("shared").Inc()
	} else {
		metrics.CacheTotal.WithLabelValues("miss").Inc()
	}

	res, ok := val.(*dijkstra.Result)
	if !ok {
		return nil, fmt.Errorf("server: unexpected singleflight result type %T", val)
	}

	return res, nil
}

// run executes one instrumented engine run.
func run(g *core.Graph, source string, s dijkstra.Strategy) (*dijkstra.Result, error) {
	start := time.Now()
	res, err := dijkstra.ShortestPaths(g, source,
		dijkstra.WithStrategy(s),
		dijkstra.WithOnRelax(func(ev dijkstra.RelaxEvent) {
			metrics.RelaxTotal.WithLabelValues(ev.Decision.String()).Inc()
		}),
	)
	if err != nil {
		return nil, err
	}
	metrics.ObserveRun(s.String(), time.Since(start), len(res.Order))

	return res, nil
}

package dijkstra

import "sort"

// Result is the complete, immutable output of one ShortestPaths run.
type Result struct {
	// Source is the vertex the run started from.
	Source string

	// Labels maps every vertex of the graph to its final label.
	Labels map[string]Label

	// Order lists vertices in the order they were settled.
	Order []string
}

// Label returns the label of v and whether v belongs to the result.
func (r *Result) Label(v string) (Label, bool) {
	l, ok := r.Labels[v]

	return l, ok
}

// Distance returns the shortest distance to v, or Infinity when v is
// unreachable or unknown.
func (r *Result) Distance(v string) int64 {
	l, ok := r.Labels[v]
	if !ok {
		return Infinity
	}

	return l.Distance
}

// Reachable reports whether v is a known vertex with a finite distance.
func (r *Result) Reachable(v string) bool {
	l, ok := r.Labels[v]

	return ok && l.Reachable()
}

// Vertices returns all labelled vertex IDs sorted by (distance, ID) ascending,
// unreachable vertices last.
func (r *Result) Vertices() []string {
	ids := make([]string, 0, len(r.Labels))
	for id := range r.Labels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		di, dj := r.Labels[ids[i]].Distance, r.Labels[ids[j]].Distance
		if di != dj {
			return di < dj
		}

		return ids[i] < ids[j]
	})

	return ids
}

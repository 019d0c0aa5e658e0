package paths

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/multipath/dijkstra"
)

// visit states for the counting DFS.
const (
	unvisited = iota
	onStack
	done
)

// Count returns how many paths Enumerate would emit without a cap, in
// O(V + P) time for P predecessor entries, by dynamic programming over the
// predecessor DAG. MaxPaths is ignored.
//
// Errors are the same as Enumerate's, plus ErrTooManyPaths on uint64 overflow.
func Count(labels map[string]dijkstra.Label, source, target string, opts ...Option) (uint64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, ok := labels[source]; !ok {
		return 0, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if _, ok := labels[target]; !ok {
		return 0, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	if target == source {
		return 1, nil
	}
	if len(labels[target].Predecessors) == 0 {
		return 0, nil
	}

	c := counter{labels: labels, source: source, policy: cfg.Policy,
		state: make(map[string]int, len(labels)), memo: make(map[string]uint64, len(labels))}

	return c.count(target)
}

// counter memoises per-vertex path counts over the predecessor DAG.
type counter struct {
	labels map[string]dijkstra.Label
	source string
	policy Policy
	state  map[string]int
	memo   map[string]uint64
}

// count walks iteratively so deep chains do not grow the goroutine stack.
func (c *counter) count(target string) (uint64, error) {
	stack := []string{target}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		switch c.state[v] {
		case done:
			stack = stack[:len(stack)-1]
			continue
		case unvisited:
			if v == c.source {
				c.memo[v] = 1
				c.state[v] = done
				stack = stack[:len(stack)-1]
				continue
			}
			l, known := c.labels[v]
			if !known {
				return 0, fmt.Errorf("%w: unknown predecessor %q", ErrMalformedLabels, v)
			}
			if len(l.Predecessors) == 0 {
				return 0, fmt.Errorf("%w: %q has no predecessors", ErrMalformedLabels, v)
			}
			c.state[v] = onStack
			for _, p := range selectBranches(l.Predecessors, c.policy) {
				switch c.state[p.Vertex] {
				case onStack:
					return 0, fmt.Errorf("%w: cycle through %q", ErrMalformedLabels, p.Vertex)
				case unvisited:
					stack = append(stack, p.Vertex)
				}
			}
		case onStack:
			// All predecessors are done; fold their counts.
			var total uint64
			for _, p := range selectBranches(c.labels[v].Predecessors, c.policy) {
				sum, carry := bits.Add64(total, c.memo[p.Vertex], 0)
				if carry != 0 {
					return 0, ErrTooManyPaths
				}
				total = sum
			}
			c.memo[v] = total
			c.state[v] = done
			stack = stack[:len(stack)-1]
		}
	}

	return c.memo[target], nil
}

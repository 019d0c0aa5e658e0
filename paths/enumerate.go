package paths

import (
	"fmt"

	"github.com/katalvlaran/multipath/dijkstra"
)

// frame is one partial path on the work stack, built backward from target.
// rev[0] is the target; rev[len-1] is the vertex still to be expanded.
type frame struct {
	rev   []string
	edges []string
}

// Enumerate returns every minimum-length path from source to target recorded
// in labels, in a deterministic order: predecessors are expanded in the order
// the engine recorded them, first predecessor first.
//
// Behavior:
//   - target == source → exactly one path [source].
//   - target unreachable (no predecessors, not the source) → empty slice, nil error.
//   - Only predecessors the engine recorded are followed. A zero-weight edge
//     into a vertex already settled at the same distance adds no predecessor,
//     so with s-A/1, s-B/1, A-B/0 the paths to A are [s,A] only, not [s,B,A].
//
// Errors:
//   - ErrVertexNotFound if source or target is not a key of labels.
//   - ErrMalformedLabels if a predecessor chain is longer than the number of
//     labels or names an unknown vertex. Engine output never triggers this.
//
// Complexity: O(P·L) for P emitted paths of length L; output size may be
// exponential in V (use WithMaxPaths or Count first on dense tie graphs).
func Enumerate(labels map[string]dijkstra.Label, source, target string, opts ...Option) ([]Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, ok := labels[source]; !ok {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	tl, ok := labels[target]
	if !ok {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	out := make([]Path, 0, 1)
	if target == source {
		return append(out, Path{Vertices: []string{source}, Edges: []string{}, Distance: 0}), nil
	}
	if len(tl.Predecessors) == 0 {
		return out, nil
	}

	maxLen := len(labels)
	stack := []frame{{rev: []string{target}, edges: nil}}
	for len(stack) > 0 {
		// Pop
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := f.rev[len(f.rev)-1]
		if v == source {
			out = append(out, f.build(tl.Distance))
			if cfg.MaxPaths > 0 && len(out) >= cfg.MaxPaths {
				break
			}
			continue
		}
		if len(f.rev) > maxLen {
			return nil, fmt.Errorf("%w: chain from %q exceeds %d vertices", ErrMalformedLabels, target, maxLen)
		}

		l, known := labels[v]
		if !known {
			return nil, fmt.Errorf("%w: unknown predecessor %q", ErrMalformedLabels, v)
		}
		if len(l.Predecessors) == 0 {
			// A dead end that is not the source cannot lie on a recorded shortest path.
			return nil, fmt.Errorf("%w: %q has no predecessors", ErrMalformedLabels, v)
		}

		branches := selectBranches(l.Predecessors, cfg.Policy)
		// Push in reverse so the first recorded predecessor is expanded first.
		for i := len(branches) - 1; i >= 0; i-- {
			stack = append(stack, f.extend(branches[i]))
		}
	}

	return out, nil
}

// FromResult enumerates paths from res.Source to target.
func FromResult(res *dijkstra.Result, target string, opts ...Option) ([]Path, error) {
	if res == nil {
		return nil, fmt.Errorf("paths: nil result: %w", dijkstra.ErrInvalidInput)
	}

	return Enumerate(res.Labels, res.Source, target, opts...)
}

// selectBranches applies the policy to one predecessor set.
// Under PolicyVertexSequence only the first entry per predecessor vertex is kept.
func selectBranches(preds []dijkstra.Predecessor, policy Policy) []dijkstra.Predecessor {
	if policy == PolicyEdgeVariants || len(preds) < 2 {
		return preds
	}
	out := make([]dijkstra.Predecessor, 0, len(preds))
	seen := make(map[string]struct{}, len(preds))
	for _, p := range preds {
		if _, dup := seen[p.Vertex]; dup {
			continue
		}
		seen[p.Vertex] = struct{}{}
		out = append(out, p)
	}

	return out
}

// extend copies f and appends one backward hop.
func (f frame) extend(p dijkstra.Predecessor) frame {
	rev := make([]string, len(f.rev), len(f.rev)+1)
	copy(rev, f.rev)
	edges := make([]string, len(f.edges), len(f.edges)+1)
	copy(edges, f.edges)

	return frame{rev: append(rev, p.Vertex), edges: append(edges, p.Edge)}
}

// build reverses the backward frame into a source→target Path.
func (f frame) build(dist int64) Path {
	n := len(f.rev)
	p := Path{
		Vertices: make([]string, n),
		Edges:    make([]string, len(f.edges)),
		Distance: dist,
	}
	for i, v := range f.rev {
		p.Vertices[n-1-i] = v
	}
	m := len(f.edges)
	for i, e := range f.edges {
		p.Edges[m-1-i] = e
	}

	return p
}

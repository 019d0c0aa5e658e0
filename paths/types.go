// File: types.go
// Role: types and options for enumerating every minimum-length path
// recorded in a dijkstra label mapping.
//
// Policies:
//
//	– PolicyVertexSequence (default): one Path per distinct vertex sequence.
//	  Parallel minimum-weight edges between the same pair collapse to the
//	  first recorded edge (the lowest edge ID).
//	– PolicyEdgeVariants: one Path per distinct edge combination.
//
// Errors (sentinel):
//
//	– ErrVertexNotFound   source or target is not labelled (wraps dijkstra.ErrInvalidInput).
//	– ErrMalformedLabels  the predecessor relation is not a DAG rooted at source.
//	– ErrTooManyPaths     Count overflowed uint64.

package paths

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/multipath/dijkstra"
)

// Sentinel errors for path enumeration.
var (
	// ErrVertexNotFound indicates that source or target is missing from the labels.
	ErrVertexNotFound = fmt.Errorf("paths: vertex not found in labels: %w", dijkstra.ErrInvalidInput)

	// ErrMalformedLabels indicates a predecessor chain that never reaches the
	// source: a cycle or a dangling predecessor in hand-built labels.
	ErrMalformedLabels = errors.New("paths: malformed predecessor labels")

	// ErrTooManyPaths indicates that the number of paths does not fit in uint64.
	ErrTooManyPaths = errors.New("paths: path count overflows uint64")

	// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
	ErrUnknownPolicy = errors.New("paths: unknown policy")
)

// Policy decides how parallel minimum-weight edges multiply paths.
type Policy int

const (
	// PolicyVertexSequence emits one path per distinct vertex sequence.
	PolicyVertexSequence Policy = iota

	// PolicyEdgeVariants emits one path per distinct edge sequence.
	PolicyEdgeVariants
)

// String returns the canonical policy name.
func (p Policy) String() string {
	switch p {
	case PolicyVertexSequence:
		return "vertices"
	case PolicyEdgeVariants:
		return "edges"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "vertices" or "edges" (and a few aliases) to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "vertices", "vertex", "vertex-sequence":
		return PolicyVertexSequence, nil
	case "edges", "edge", "edge-variants":
		return PolicyEdgeVariants, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Path is one minimum-length route from source to target.
type Path struct {
	// Vertices runs from source to target inclusive.
	Vertices []string `json:"vertices"`

	// Edges holds the edge used for each hop; len(Edges) == len(Vertices)-1.
	Edges []string `json:"edges"`

	// Distance is the total weight, equal to the target's label distance.
	Distance int64 `json:"distance"`
}

// Hops returns the number of edges on the path.
func (p Path) Hops() int { return len(p.Edges) }

// String renders the vertex sequence as "s → A → t".
func (p Path) String() string { return strings.Join(p.Vertices, " → ") }

// Options configures Enumerate and Count.
type Options struct {
	Policy   Policy // Dedupe policy
	MaxPaths int    // Stop after this many paths; ≤ 0 means unlimited
}

// Option represents a functional option for path enumeration.
type Option func(*Options)

// WithPolicy selects the dedupe policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithMaxPaths caps the number of emitted paths. Values ≤ 0 disable the cap.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// DefaultOptions returns PolicyVertexSequence with no cap.
func DefaultOptions() Options {
	return Options{Policy: PolicyVertexSequence}
}

// Package dijkstra defines core types and configuration options
// for the tie-preserving Dijkstra shortest-path engine.
//
// Options:
//
//	– Strategy:  how the next vertex to settle is selected (heap or linear scan).
//	– Logger:    optional logrus.FieldLogger receiving a Debug trace of every
//	             relaxation decision.
//	– OnSettle:  callback invoked exactly once per vertex when it is settled.
//	– OnRelax:   callback invoked for every relaxation decision.
//
// Errors (sentinel):
//
//	– ErrInvalidInput    category: the caller passed something unusable.
//	   • ErrNilGraph        graph pointer is nil.
//	   • ErrEmptySource     source ID is empty.
//	   • ErrVertexNotFound  source vertex does not exist in the graph.
//	– ErrPrecondition    category: the graph violates the algorithm's preconditions.
//	   • ErrNegativeWeight  an edge weight is negative.
//	   • ErrWeightOverflow  the sum of all weights does not fit below Infinity.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// Infinity is the distance of a vertex that has not been reached from the source.
const Infinity int64 = math.MaxInt64

// Category errors. Every sentinel below wraps exactly one of them so callers
// can branch on errors.Is(err, ErrInvalidInput) or errors.Is(err, ErrPrecondition).
var (
	// ErrInvalidInput groups errors caused by bad arguments.
	ErrInvalidInput = errors.New("dijkstra: invalid input")

	// ErrPrecondition groups errors caused by a graph the algorithm cannot handle.
	ErrPrecondition = errors.New("dijkstra: precondition violated")
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidInput)

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = fmt.Errorf("%w: source vertex ID is empty", ErrInvalidInput)

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found in graph", ErrInvalidInput)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrPrecondition)

	// ErrWeightOverflow indicates that path lengths could exceed the int64 range.
	ErrWeightOverflow = fmt.Errorf("%w: total edge weight overflows int64", ErrPrecondition)

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the engine finds the next unsettled vertex of minimum distance.
// Both strategies produce identical labels and settle order.
type Strategy int

const (
	// StrategyHeap uses a binary min-heap with lazy decrease-key: O((V+E) log V).
	StrategyHeap Strategy = iota

	// StrategyLinearScan scans all unsettled vertices each round: O(V²).
	StrategyLinearScan
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinearScan:
		return "linear"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name ("heap", "linear"/"scan") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "heap":
		return StrategyHeap, nil
	case "linear", "scan", "linear-scan":
		return StrategyLinearScan, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Decision is the outcome of comparing a candidate distance with the current one.
type Decision int

const (
	// DecisionSkip means the candidate was longer; nothing changed.
	DecisionSkip Decision = iota

	// DecisionImprove means the candidate was shorter; predecessors were replaced.
	DecisionImprove

	// DecisionTie means the candidate was equal; predecessors were extended.
	DecisionTie
)

// String returns the short verb used in trace output.
func (d Decision) String() string {
	switch d {
	case DecisionSkip:
		return "skip"
	case DecisionImprove:
		return "update"
	case DecisionTie:
		return "add"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// RelaxEvent describes a single relaxation step: the settled vertex From
// offered Candidate to its unsettled neighbor To, whose distance was Current.
type RelaxEvent struct {
	From      string
	To        string
	Current   int64
	Candidate int64
	Decision  Decision

	// Edges lists the minimum-weight edges From–To, sorted by ID.
	Edges []string
}

// Options configures the behavior of the engine.
type Options struct {
	Strategy Strategy          // How the next vertex is selected
	Logger   logrus.FieldLogger // Debug trace sink; nil disables tracing
	OnSettle func(v string, dist int64)
	OnRelax  func(ev RelaxEvent)
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithStrategy selects the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger enables a Debug-level trace of every relaxation decision.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnSettle registers fn to be called once for every vertex, in settle order.
func WithOnSettle(fn func(v string, dist int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithOnRelax registers fn to be called for every relaxation decision.
func WithOnRelax(fn func(ev RelaxEvent)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Strategy: StrategyHeap.
//   - Logger, OnSettle, OnRelax: nil (disabled).
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyHeap,
	}
}

// Predecessor records one way a vertex attains its best distance:
// through neighbor Vertex along edge Edge.
type Predecessor struct {
	Vertex string `json:"vertex"`
	Edge   string `json:"edge"`
}

// Label is the final per-vertex state of one engine run.
type Label struct {
	// Distance is the shortest distance from the source, or Infinity.
	Distance int64

	// Settled is true for every vertex in a returned result.
	Settled bool

	// Predecessors holds every (neighbor, edge) pair through which Distance is
	// attained. Empty for the source and for unreachable vertices.
	Predecessors []Predecessor
}

// Reachable reports whether the label has a finite distance.
func (l Label) Reachable() bool { return l.Distance != Infinity }

// PredecessorVertices returns the distinct predecessor vertices in first-seen order.
func (l Label) PredecessorVertices() []string {
	out := make([]string, 0, len(l.Predecessors))
	seen := make(map[string]struct{}, len(l.Predecessors))
	for _, p := range l.Predecessors {
		if _, dup := seen[p.Vertex]; dup {
			continue
		}
		seen[p.Vertex] = struct{}{}
		out = append(out, p.Vertex)
	}

	return out
}

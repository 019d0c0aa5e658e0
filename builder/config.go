package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig holds resolved options for one BuildGraph call.
type builderConfig struct {
	// idFn maps a zero-based vertex index to its ID.
	idFn IDFn

	// rng drives stochastic constructors and weight functions; nil means none.
	rng *rand.Rand

	// weightFn produces the weight of every emitted edge.
	weightFn WeightFn

	// endpoints renames the first and last vertex to SourceID and TargetID.
	endpoints bool
}

// newBuilderConfig applies opts over the defaults:
//   - idFn:     DefaultIDFn ("0","1",…).
//   - rng:      nil.
//   - weightFn: DefaultWeightFn (constant DefaultEdgeWeight).
//   - endpoints: false.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

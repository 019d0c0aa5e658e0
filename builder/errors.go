package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was run without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidMultiplicity indicates a parallel-edge multiplicity below 1.
var ErrInvalidMultiplicity = errors.New("builder: multiplicity must be ≥ 1")

// ErrConstructFailed indicates a nil constructor or an unexpected core failure.
var ErrConstructFailed = errors.New("builder: construction failed")

// Package builder provides reusable "functional-options"-style constructors
// for deterministic weighted multigraph fixtures. It is used by tests to
// generate property-test inputs and by the CLI `generate` command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme and weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//     – EndpointIDFn:      first vertex "s", last vertex "t" (WithEndpointIDs).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   integer uniform ∼U[min,max].
//   - Constructors:
//     – Path, Cycle, Complete, Grid, RandomSparse, Parallel.
//
// Guarantees:
//
//   - Deterministic output for equal inputs and equal seeds.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Runtime parameter errors wrap sentinel errors (ErrTooFewVertices, …)
//     with a "<Method>: " context prefix for errors.Is matching.
package builder

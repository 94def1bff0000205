// Package builder provides reusable “functional‐options”‐style graph
// constructors for tests, benchmarks and the mst command. Every constructor
// emits into one shared vertex index space, and BuildGraph turns the result
// into an immutable *core.Graph.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG and weight function.
//   - Topologies (Constructor implementations):
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – RandomSparse:      G(n, p), possibly disconnected.
//     – RandomConnected:   random spanning tree plus extra random edges.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform over the integers in [min,max].
//   - Validation helpers:
//     – validateMin, validatePartition, validateProbability.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order yield identical graphs.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with constructor context.
//
// See individual function documentation for vertex layouts and complexity.
package builder

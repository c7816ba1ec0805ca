// Package builder generates deterministic edge lists for common graph
// shapes — path, cycle, star, complete, grid — already sorted by source id
// and therefore ready for the CSR loader.
//
// Every generator takes a WeightFunc producing the edge value from the
// endpoint indexes (nil yields zero values), validates its size parameter
// against a sentinel error, and emits edges in a stable order: ascending
// source, then the shape's natural target order.
//
// Intended for tests, benchmarks, and examples; production graphs come
// from real providers.
package builder

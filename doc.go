// Package graphv2 is a static, cache-friendly graph container library with
// lazy, cancellable traversal views.
//
// 🚀 What is graph-v2?
//
//	An index-based library that brings together:
//		• Core contract: small capability interfaces any container satisfies
//		• CSR container: compressed sparse row adjacency, O(1) neighbor lookup
//		• Dynamic container: adjacency-list variant for incremental builds
//		• Views: vertexlist, depth-first and breadth-first vertex/edge iterators
//		• Builders: deterministic fixture generators (path, cycle, star, …)
//
// ✨ Why choose graph-v2?
//
//   - Cache-friendly – vertices and edges are dense integer ids over
//     contiguous arrays; no pointer chasing, no per-node allocation
//   - Streaming loads – edge providers are single-pass; optional length and
//     tail capabilities unlock pre-reservation without requiring them
//   - Lazy traversal – iterators yield one discovery at a time, report their
//     depth, and can be cancelled mid-walk (whole search or a single branch)
//   - Pure Go – no cgo, testify is the only test dependency
//
// Everything is organized under small subpackages:
//
//	core/       — graph contract, copyable records, edge/vertex providers
//	csr/        — compressed sparse row container (immutable after load)
//	adjlist/    — dynamic adjacency-list container (same contract)
//	vertexlist/ — paired (id, vertex) enumeration
//	dfs/        — depth-first vertex & edge iterators
//	bfs/        — breadth-first vertex & edge iterators
//	builder/    — edge-list generators for tests and benchmarks
//
// Begin with csr.FromEdges or csr.New + LoadEdges, then walk the result with
// dfs.Vertices / dfs.Edges.
package graphv2

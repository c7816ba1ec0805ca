// Package csr implements the compressed sparse row adjacency container:
// a static, cache-friendly graph store with O(1) neighbor lookup.
//
// What:
//
//	A Graph[EV, VV, GV, VId, EIdx] holds two parallel arrays — row offsets
//	(length |V|+1, ending in a terminating sentinel equal to |E|) and
//	column targets (length |E|) — plus optional parallel value arrays for
//	edges and vertices and an optional graph-wide value. The out-edges of
//	vertex u occupy colTargets[rowOffsets[u] : rowOffsets[u+1]], in the
//	exact order the input stream delivered them.
//
// Lifecycle:
//
//	A graph is created empty, optionally reserved, loaded in one or two
//	phases (LoadEdges then LoadVertices, or Load for both), and thereafter
//	treated as read-only. Queries and traversals allocate nothing; const
//	access is safe to share across goroutines. There is no incremental
//	insertion after a load and no resizing of a loaded graph.
//
// Loading:
//
//	LoadEdges consumes a single-pass edge stream whose records are sorted
//	non-decreasing by source id; targets may be unordered within a source.
//	When the stream exposes its length (core.Sized) both arrays are
//	reserved up front; when it exposes its final record (core.Tailed) the
//	last record's max(source, target)+1 seeds the vertex-count lower
//	bound. Sources with no edges get empty rows; ids referenced only as
//	targets extend the row array so every id below |V| resolves.
//
//	LoadVertices consumes (id, value) records in any order, growing the
//	vertex-value array to max(|V|, hint, stream length) first. It may run
//	before or after LoadEdges and is idempotent for a fixed input.
//
// Errors:
//
//   - ErrNotEmpty      LoadEdges on a non-empty graph
//   - ErrOutOfOrder    source id regression in the edge stream (the graph
//     is cleared before returning, so the value stays reusable)
//   - ErrIDOutOfRange  vertex record beyond the grown value array (the
//     pre-call values are restored)
//   - ErrBadCapacity   negative reservation
//
// Complexity:
//
//   - LoadEdges / LoadVertices: O(|V| + |E|) time, amortized O(1) appends.
//   - Degree, EdgeAt, TargetID, FindVertex, value lookups: O(1).
//   - Targets(u): O(1) to obtain (a zero-copy subslice), O(deg u) to walk.
package csr

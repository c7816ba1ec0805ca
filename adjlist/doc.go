// Package adjlist provides the dynamic adjacency-list graph container.
//
// Unlike the CSR store, an adjlist.Graph grows incrementally: vertices and
// edges are added one at a time, endpoints are auto-created on demand, and
// no finalization step exists. It satisfies the same core.Graph contract,
// so every view (vertexlist, dfs, bfs) runs over it unchanged — edge
// ordering within a source is insertion order, exactly as CSR preserves
// load order.
//
// Storage is index-based: a flat edge log (targets and values addressed by
// edge handle) plus a per-vertex slice of handles. Vertices and edges are
// identified by dense unsigned integers; there are no node objects.
//
// Complexity:
//
//   - AddVertex, AddEdge: amortized O(1).
//   - Degree, EdgeAt, TargetID, value lookups: O(1).
//
// The container is not safe for concurrent mutation; share it across
// goroutines only once mutation has stopped.
package adjlist

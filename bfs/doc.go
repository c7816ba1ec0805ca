// Package bfs implements lazy breadth-first traversal views: the
// level-order counterparts of the dfs iterators, with the same events,
// depth reporting, and cancellation policies.
//
// What:
//
//   - Vertices(g, seed) / VerticesWith(g, seed, vvf): yield each vertex
//     reachable from seed exactly once, nearest levels first. The seed
//     itself is not yielded.
//   - Edges(g, seed) / EdgesWith(g, seed, evf): yield the tree edge of
//     each discovery.
//   - Depth(): the level of the most recently yielded element (seed at 1).
//   - Cancel(CancelAll | CancelBranch): CancelAll ends the walk;
//     CancelBranch skips the expansion of the element just yielded, so its
//     out-edges enqueue nothing, while the rest of the frontier proceeds.
//     Its children are still discovered if another vertex reaches them.
//
// How:
//
//	A FIFO queue of discoveries and a visited bitmap. Expansion of a
//	yielded vertex is deferred until the next advance, which is what gives
//	CancelBranch its window to prune.
//
// Errors:
//
//   - ErrGraphNil          nil graph at construction
//   - ErrSeedOutOfRange    seed ≥ |V| at construction
//
// Complexity: O(V + E) time across a full walk, O(V) memory.
package bfs

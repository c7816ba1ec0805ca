// Package dfs implements lazy depth-first traversal views over any graph
// satisfying the core contract: a vertex iterator and an edge iterator,
// both depth-aware and cancellable mid-walk.
//
// What:
//
//   - Vertices(g, seed) / VerticesWith(g, seed, vvf): yield each vertex
//     reachable from seed exactly once, in discovery order; vvf projects a
//     per-vertex value into the event. The seed itself is not yielded.
//   - Edges(g, seed) / EdgesWith(g, seed, evf): yield the tree edge of each
//     discovery — source, target, and edge handle — optionally with a
//     projected edge value.
//   - Depth(): the traversal depth of the most recently yielded element
//     (the seed sits at depth 1, its neighbors at 2).
//   - Cancel(CancelAll | CancelBranch): level-triggered cancellation,
//     consumed by the next advance. CancelAll ends the walk; CancelBranch
//     prunes the subtree rooted at the element just yielded and resumes
//     with its siblings.
//
// How:
//
//	Both iterators share one engine: a visited bitmap sized |V| and an
//	explicit stack of (vertex, edge cursor) frames. Each advance pre-steps
//	the cursor of the top frame before descending, so backtracking resumes
//	at the next sibling without re-examination. Children are visited in
//	the order edges(g, v) persists them — for CSR, input order.
//
// Guarantees:
//
//   - Deterministic for a fixed graph: discovery order is a pure function
//     of the stored edge ordering.
//   - Single pass: iteration consumes the view; construct a new one to
//     walk again.
//   - All allocation happens at construction (bitmap and stack); advancing
//     allocates nothing.
//
// Errors:
//
//   - ErrGraphNil          nil graph at construction
//   - ErrSeedOutOfRange    seed ≥ |V| at construction
//
// Iteration itself never fails; exhaustion is Next() == false.
//
// Complexity: O(V + E) time across a full walk, O(V) memory.
package dfs

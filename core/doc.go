// Package core defines the graph contract shared by every container in
// graph-v2: the copyable edge/vertex records, the capability interfaces a
// container satisfies, and the provider streams that feed bulk loads.
//
// What:
//
//   - Unsigned / Void: the type slots. Vertex ids and edge indexes are
//     unsigned integers chosen wide enough for the graph; Void marks an
//     absent edge/vertex/graph value slot at zero storage cost.
//   - Edge / Vertex: the copyable input records a loader consumes.
//   - Graph: the read contract — vertex count, edge count, per-vertex
//     out-degree, O(1) random access to out-edge handles, and target
//     resolution. Vertex handles are the dense ids themselves, so
//     vertices(g) is the implicit range [0, Order()) and find_vertex is a
//     bounds check on the container.
//   - EdgeValues / VertexValues / GraphValues: optional value capabilities.
//     A container whose value slot is Void simply does not advertise the
//     capability.
//   - EdgeInput / VertexInput: single-pass record streams consumed by
//     loaders, with the optional Sized (known length) and Tailed (cheap
//     last-record access) capabilities, plus slice, projection, and
//     function adapters.
//
// Why:
//   - Algorithms and views stay generic over any conforming container
//     (CSR, adjacency list, or a caller's own type).
//   - Providers keep ingestion streaming: a loader never needs more than
//     one pass, but exploits length/tail capabilities when present.
//
// Complexity:
//
//   - All contract operations are O(1); provider adapters add no overhead
//     beyond the projection call.
package core

// File: csr.go
// Role: The Graph container type, constructors, and read-only queries.
// Invariants (hold after every successful load):
//   - rowOffsets is non-decreasing; rowOffsets[0] == 0;
//     rowOffsets[Order()] == len(colTargets).
//   - every colTargets entry is < Order().
//   - len(edgeValues) == len(colTargets); len(vertexValues) is 0 or at
//     least Order() (a LoadVertices count hint may make it larger).
// Concurrency: read access is safe to share; loads require exclusive access.

package csr

import (
	"github.com/pradkrish/graph-v2/core"
)

// Graph is a compressed sparse row adjacency store.
//
// The five type slots mirror the contract: EV/VV/GV are the edge, vertex,
// and graph value types (use core.Void for slots the graph does not carry),
// VId is the vertex id representation, and EIdx the edge index
// representation; both must be wide enough for the loaded counts.
type Graph[EV, VV, GV any, VId, EIdx core.Unsigned] struct {
	rowOffsets   []EIdx // starting index into colTargets per vertex; +1 terminating row
	colTargets   []VId  // colTargets[e] is the target id of edge e
	edgeValues   []EV   // parallel to colTargets; zero element storage for Void
	vertexValues []VV   // indexed by vertex id; empty until LoadVertices
	graphValue   GV
}

// Contract conformance.
var (
	_ core.Graph[uint32, uint32]        = (*Graph[core.Void, core.Void, core.Void, uint32, uint32])(nil)
	_ core.EdgeValues[float64, uint32]  = (*Graph[float64, string, core.Void, uint32, uint32])(nil)
	_ core.VertexValues[string, uint32] = (*Graph[float64, string, core.Void, uint32, uint32])(nil)
	_ core.GraphValues[string]          = (*Graph[float64, string, string, uint32, uint32])(nil)
)

// New creates an empty graph, applying any reservation options.
func New[EV, VV, GV any, VId, EIdx core.Unsigned](opts ...Option) *Graph[EV, VV, GV, VId, EIdx] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g := &Graph[EV, VV, GV, VId, EIdx]{}
	if o.vertexCap > 0 {
		g.ReserveVertices(o.vertexCap)
	}
	if o.edgeCap > 0 {
		g.ReserveEdges(o.edgeCap)
	}

	return g
}

// NewWithValue creates an empty graph carrying the graph-wide value gv.
func NewWithValue[EV, VV, GV any, VId, EIdx core.Unsigned](gv GV, opts ...Option) *Graph[EV, VV, GV, VId, EIdx] {
	g := New[EV, VV, GV, VId, EIdx](opts...)
	g.graphValue = gv

	return g
}

// FromEdges builds a graph directly from a literal edge list, sorted
// non-decreasing by source id. The vertex and graph value slots are Void.
func FromEdges[EV any, VId, EIdx core.Unsigned](records []core.Edge[VId, EV], opts ...Option) (*Graph[EV, core.Void, core.Void, VId, EIdx], error) {
	g := New[EV, core.Void, core.Void, VId, EIdx](opts...)
	if err := g.LoadEdges(core.EdgeSlice(records)); err != nil {
		return nil, err
	}

	return g, nil
}

// Order returns the number of vertices.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) Order() int {
	if len(g.rowOffsets) == 0 {
		return 0
	}

	return len(g.rowOffsets) - 1
}

// Size returns the number of edges.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) Size() int { return len(g.colTargets) }

// Degree returns the out-degree of uid. uid must be < Order().
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) Degree(uid VId) int {
	return int(g.rowOffsets[uid+1] - g.rowOffsets[uid])
}

// EdgeAt returns the handle of the i-th out-edge of uid,
// 0 <= i < Degree(uid).
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) EdgeAt(uid VId, i int) EIdx {
	return g.rowOffsets[uid] + EIdx(i)
}

// Edges returns the half-open handle range [first, last) of the out-edges
// of uid.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) Edges(uid VId) (first, last EIdx) {
	return g.rowOffsets[uid], g.rowOffsets[uid+1]
}

// Targets returns the target ids of uid's out-edges as a zero-copy
// subslice of the column array. Callers must not mutate it.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) Targets(uid VId) []VId {
	return g.colTargets[g.rowOffsets[uid]:g.rowOffsets[uid+1]]
}

// TargetID returns the vertex id at the far end of edge e.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) TargetID(e EIdx) VId { return g.colTargets[e] }

// EdgeValue returns the value stored for edge e.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) EdgeValue(e EIdx) EV { return g.edgeValues[e] }

// VertexValue returns the value stored for vertex uid. The vertex-value
// array must have been populated by LoadVertices.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) VertexValue(uid VId) VV { return g.vertexValues[uid] }

// GraphValue returns the graph-wide value.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) GraphValue() GV { return g.graphValue }

// FindVertex returns uid as a vertex handle and whether it denotes a
// vertex of the graph.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) FindVertex(uid VId) (VId, bool) {
	return uid, int(uid) < g.Order()
}

// HasVertexValues reports whether LoadVertices has populated the
// vertex-value array.
// Complexity: O(1)
func (g *Graph[EV, VV, GV, VId, EIdx]) HasVertexValues() bool { return len(g.vertexValues) > 0 }

// reset discards all loaded state, returning the graph to empty.
func (g *Graph[EV, VV, GV, VId, EIdx]) reset() {
	g.rowOffsets = g.rowOffsets[:0]
	g.colTargets = g.colTargets[:0]
	g.edgeValues = g.edgeValues[:0]
	g.vertexValues = g.vertexValues[:0]
}

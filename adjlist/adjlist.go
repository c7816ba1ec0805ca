// File: adjlist.go
// Role: Mutable adjacency-list container conforming to core.Graph.

package adjlist

import (
	"github.com/pradkrish/graph-v2/core"
)

// Graph is a dynamic adjacency-list store. The zero value is empty and
// ready to use; New exists for symmetry with the CSR constructor.
type Graph[EV, VV any, VId, EIdx core.Unsigned] struct {
	adj          [][]EIdx // per-vertex out-edge handles, insertion order
	targets      []VId    // edge handle → target id
	edgeValues   []EV     // parallel to targets
	vertexValues []VV     // indexed by vertex id
}

// Contract conformance.
var (
	_ core.Graph[uint32, uint32]        = (*Graph[core.Void, core.Void, uint32, uint32])(nil)
	_ core.EdgeValues[float64, uint32]  = (*Graph[float64, string, uint32, uint32])(nil)
	_ core.VertexValues[string, uint32] = (*Graph[float64, string, uint32, uint32])(nil)
)

// New creates an empty dynamic graph.
func New[EV, VV any, VId, EIdx core.Unsigned]() *Graph[EV, VV, VId, EIdx] {
	return &Graph[EV, VV, VId, EIdx]{}
}

// FromEdges builds a dynamic graph from records in any order, auto-adding
// endpoints. Edge ordering within a source follows record order.
func FromEdges[EV any, VId, EIdx core.Unsigned](records []core.Edge[VId, EV]) *Graph[EV, core.Void, VId, EIdx] {
	g := New[EV, core.Void, VId, EIdx]()
	for _, rec := range records {
		g.AddEdge(rec.Source, rec.Target, rec.Value)
	}

	return g
}

// AddVertex appends a new vertex carrying value and returns its id.
// Complexity: amortized O(1)
func (g *Graph[EV, VV, VId, EIdx]) AddVertex(value VV) VId {
	uid := VId(len(g.adj))
	g.adj = append(g.adj, nil)
	g.vertexValues = append(g.vertexValues, value)

	return uid
}

// EnsureVertex grows the graph so that uid denotes a vertex, creating any
// missing ids below it with zero values. Existing vertices are untouched.
// Complexity: amortized O(1) per created vertex.
func (g *Graph[EV, VV, VId, EIdx]) EnsureVertex(uid VId) {
	for len(g.adj) <= int(uid) {
		g.adj = append(g.adj, nil)
		g.vertexValues = append(g.vertexValues, *new(VV))
	}
}

// AddEdge appends a directed edge u→v carrying value and returns its
// handle. Missing endpoints are auto-added.
// Complexity: amortized O(1)
func (g *Graph[EV, VV, VId, EIdx]) AddEdge(u, v VId, value EV) EIdx {
	g.EnsureVertex(max(u, v))
	e := EIdx(len(g.targets))
	g.targets = append(g.targets, v)
	g.edgeValues = append(g.edgeValues, value)
	g.adj[u] = append(g.adj[u], e)

	return e
}

// SetVertexValue stores value for uid, growing the graph if needed.
// Complexity: amortized O(1)
func (g *Graph[EV, VV, VId, EIdx]) SetVertexValue(uid VId, value VV) {
	g.EnsureVertex(uid)
	g.vertexValues[uid] = value
}

// Order returns the number of vertices.
func (g *Graph[EV, VV, VId, EIdx]) Order() int { return len(g.adj) }

// Size returns the number of edges.
func (g *Graph[EV, VV, VId, EIdx]) Size() int { return len(g.targets) }

// Degree returns the out-degree of uid.
func (g *Graph[EV, VV, VId, EIdx]) Degree(uid VId) int { return len(g.adj[uid]) }

// EdgeAt returns the handle of the i-th out-edge of uid.
func (g *Graph[EV, VV, VId, EIdx]) EdgeAt(uid VId, i int) EIdx { return g.adj[uid][i] }

// TargetID returns the vertex id at the far end of edge e.
func (g *Graph[EV, VV, VId, EIdx]) TargetID(e EIdx) VId { return g.targets[e] }

// EdgeValue returns the value stored for edge e.
func (g *Graph[EV, VV, VId, EIdx]) EdgeValue(e EIdx) EV { return g.edgeValues[e] }

// VertexValue returns the value stored for vertex uid.
func (g *Graph[EV, VV, VId, EIdx]) VertexValue(uid VId) VV { return g.vertexValues[uid] }

// FindVertex returns uid as a vertex handle and whether it denotes a
// vertex of the graph.
func (g *Graph[EV, VV, VId, EIdx]) FindVertex(uid VId) (VId, bool) {
	return uid, int(uid) < len(g.adj)
}

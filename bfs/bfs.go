// File: bfs.go
// Role: Public vertex and edge iterators over the shared walker.

package bfs

import (
	"github.com/pradkrish/graph-v2/core"
)

// VertexIterator yields each vertex reachable from the seed exactly once,
// nearest levels first. T is the projected value type; views built
// without a value function carry core.Void there.
type VertexIterator[T any, VId, EIdx core.Unsigned] struct {
	w   walker[VId, EIdx]
	vvf func(VId) T
}

// Vertices returns a breadth-first vertex view seeded at seed. The seed is
// not yielded; only discovered neighbors are.
func Vertices[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId) (*VertexIterator[core.Void, VId, EIdx], error) {
	return VerticesWith[core.Void](g, seed, nil)
}

// VerticesWith returns a breadth-first vertex view whose events carry
// vvf(vertex id) alongside each discovery.
func VerticesWith[T any, VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId, vvf func(VId) T) (*VertexIterator[T, VId, EIdx], error) {
	w, err := newWalker(g, seed)
	if err != nil {
		return nil, err
	}

	return &VertexIterator[T, VId, EIdx]{w: w, vvf: vvf}, nil
}

// Next advances to the next discovery; false means the walk is exhausted.
func (it *VertexIterator[T, VId, EIdx]) Next() bool { return it.w.advance() }

// Vertex materializes the event for the most recent discovery. Valid only
// after Next reported true.
func (it *VertexIterator[T, VId, EIdx]) Vertex() VertexEvent[T, VId] {
	ev := VertexEvent[T, VId]{ID: it.w.cur.target}
	if it.vvf != nil {
		ev.Value = it.vvf(it.w.cur.target)
	}

	return ev
}

// Depth reports the level of the most recently yielded element; the seed
// sits at level 1.
func (it *VertexIterator[T, VId, EIdx]) Depth() int { return it.w.depth() }

// Cancel registers policy to be applied by the next advance.
func (it *VertexIterator[T, VId, EIdx]) Cancel(policy CancelPolicy) { it.w.cancel = policy }

// EdgeIterator yields the tree edge of each discovery in level order.
type EdgeIterator[T any, VId, EIdx core.Unsigned] struct {
	w   walker[VId, EIdx]
	evf func(EIdx) T
}

// Edges returns a breadth-first edge view seeded at seed.
func Edges[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId) (*EdgeIterator[core.Void, VId, EIdx], error) {
	return EdgesWith[core.Void](g, seed, nil)
}

// EdgesWith returns a breadth-first edge view whose events carry
// evf(edge handle) alongside each discovery.
func EdgesWith[T any, VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId, evf func(EIdx) T) (*EdgeIterator[T, VId, EIdx], error) {
	w, err := newWalker(g, seed)
	if err != nil {
		return nil, err
	}

	return &EdgeIterator[T, VId, EIdx]{w: w, evf: evf}, nil
}

// Next advances to the next discovery; false means the walk is exhausted.
func (it *EdgeIterator[T, VId, EIdx]) Next() bool { return it.w.advance() }

// Edge materializes the event for the most recent discovery. Valid only
// after Next reported true.
func (it *EdgeIterator[T, VId, EIdx]) Edge() EdgeEvent[T, VId, EIdx] {
	ev := EdgeEvent[T, VId, EIdx]{Source: it.w.cur.source, Target: it.w.cur.target, Edge: it.w.cur.edge}
	if it.evf != nil {
		ev.Value = it.evf(it.w.cur.edge)
	}

	return ev
}

// Depth reports the level of the most recently yielded element.
func (it *EdgeIterator[T, VId, EIdx]) Depth() int { return it.w.depth() }

// Cancel registers policy to be applied by the next advance.
func (it *EdgeIterator[T, VId, EIdx]) Cancel(policy CancelPolicy) { it.w.cancel = policy }

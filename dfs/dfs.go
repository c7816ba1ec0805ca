// File: dfs.go
// Role: Public vertex and edge iterators over the shared walker.

package dfs

import (
	"github.com/pradkrish/graph-v2/core"
)

// VertexIterator yields each vertex reachable from the seed exactly once,
// in depth-first discovery order. T is the projected value type; views
// built without a value function carry core.Void there.
type VertexIterator[T any, VId, EIdx core.Unsigned] struct {
	w   walker[VId, EIdx]
	vvf func(VId) T
}

// Vertices returns a depth-first vertex view seeded at seed. The seed is
// not yielded; only discovered neighbors are.
func Vertices[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId) (*VertexIterator[core.Void, VId, EIdx], error) {
	return VerticesWith[core.Void](g, seed, nil)
}

// VerticesWith returns a depth-first vertex view whose events carry
// vvf(vertex id) alongside each discovery.
func VerticesWith[T any, VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId, vvf func(VId) T) (*VertexIterator[T, VId, EIdx], error) {
	w, err := newWalker(g, seed)
	if err != nil {
		return nil, err
	}

	return &VertexIterator[T, VId, EIdx]{w: w, vvf: vvf}, nil
}

// Next advances to the next discovery; false means the walk is exhausted.
// Advancing consumes the view: copies of an iterator share its state only
// through the original.
func (it *VertexIterator[T, VId, EIdx]) Next() bool { return it.w.advance() }

// Vertex materializes the event for the most recent discovery. Valid only
// after Next reported true.
func (it *VertexIterator[T, VId, EIdx]) Vertex() VertexEvent[T, VId] {
	ev := VertexEvent[T, VId]{ID: it.w.target}
	if it.vvf != nil {
		ev.Value = it.vvf(it.w.target)
	}

	return ev
}

// Depth reports the traversal depth of the most recently yielded element;
// the seed sits at depth 1.
func (it *VertexIterator[T, VId, EIdx]) Depth() int { return it.w.depth() }

// Cancel registers policy to be applied by the next advance.
func (it *VertexIterator[T, VId, EIdx]) Cancel(policy CancelPolicy) { it.w.cancel = policy }

// EdgeIterator yields the tree edge of each discovery in depth-first
// order. T is the projected value type; views built without a value
// function carry core.Void there.
type EdgeIterator[T any, VId, EIdx core.Unsigned] struct {
	w   walker[VId, EIdx]
	evf func(EIdx) T
}

// Edges returns a depth-first edge view seeded at seed. Each event's
// Target is the newly discovered vertex.
func Edges[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId) (*EdgeIterator[core.Void, VId, EIdx], error) {
	return EdgesWith[core.Void](g, seed, nil)
}

// EdgesWith returns a depth-first edge view whose events carry
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
	ev := EdgeEvent[T, VId, EIdx]{Source: it.w.source, Target: it.w.target, Edge: it.w.edge}
	if it.evf != nil {
		ev.Value = it.evf(it.w.edge)
	}

	return ev
}

// Depth reports the traversal depth of the most recently yielded element.
func (it *EdgeIterator[T, VId, EIdx]) Depth() int { return it.w.depth() }

// Cancel registers policy to be applied by the next advance.
func (it *EdgeIterator[T, VId, EIdx]) Cancel(policy CancelPolicy) { it.w.cancel = policy }

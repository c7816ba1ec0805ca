// File: vertexlist.go
// Role: Scanner-style enumeration of (identifier, vertex handle) pairs.

package vertexlist

import (
	"github.com/pradkrish/graph-v2/core"
)

// Item is the materialized pair: the enumeration identifier and the vertex
// handle it currently denotes. The two coincide unless the caller
// overrode the starting identifier with RangeFrom.
type Item[VId core.Unsigned] struct {
	ID     VId
	Vertex VId
}

// Iterator enumerates pairs in ascending order. Use All, Range, or
// RangeFrom to construct one, then drive it with Next/Item.
type Iterator[VId core.Unsigned] struct {
	cursor  VId // vertex handle to yield next (current after Next)
	end     VId // one past the last handle
	id      VId // identifier advanced in lockstep with cursor
	started bool
}

// All enumerates every vertex of g from identifier zero.
func All[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx]) *Iterator[VId] {
	return &Iterator[VId]{cursor: 0, end: VId(g.Order()), id: 0}
}

// Range enumerates the sub-range [first, last); the starting identifier is
// derived from first. last is clamped to the vertex count of g.
func Range[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], first, last VId) *Iterator[VId] {
	if int(last) > g.Order() {
		last = VId(g.Order())
	}

	return &Iterator[VId]{cursor: first, end: last, id: first}
}

// RangeFrom enumerates [first, last) with the identifier sequence starting
// at startAt instead of first. Keeping the identifier meaningful is the
// caller's responsibility.
func RangeFrom[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], first, last, startAt VId) *Iterator[VId] {
	it := Range[VId, EIdx](g, first, last)
	it.id = startAt

	return it
}

// Next advances to the next pair, returning false when the range is
// exhausted. The pair itself is not materialized until Item.
func (it *Iterator[VId]) Next() bool {
	if !it.started {
		it.started = true
	} else if it.cursor < it.end {
		it.cursor++
		it.id++
	}

	return it.cursor < it.end
}

// Item returns the current pair. Valid only after Next reported true.
func (it *Iterator[VId]) Item() Item[VId] {
	return Item[VId]{ID: it.id, Vertex: it.cursor}
}

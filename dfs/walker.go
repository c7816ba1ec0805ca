// File: walker.go
// Role: The traversal engine shared by the vertex and edge iterators.
// Invariants:
//   - every vertex is marked visited at most once, at discovery;
//   - the top frame's cursor always points at the next sibling to examine,
//     so popping a frame resumes the parent exactly where it left off.

package dfs

import (
	"fmt"

	"github.com/pradkrish/graph-v2/core"
)

// frame records one level of the walk: the vertex being explored and the
// cursor into its out-edges.
type frame[VId core.Unsigned] struct {
	vertex VId
	cursor int // ordinal of the next out-edge candidate
	degree int
}

// walker holds the shared traversal state: the visited bitmap, the frame
// stack, a pending cancellation, and the most recent discovery.
type walker[VId, EIdx core.Unsigned] struct {
	g       core.Graph[VId, EIdx]
	visited []bool
	stack   []frame[VId]
	cancel  CancelPolicy

	// most recent discovery
	source VId
	target VId
	edge   EIdx
}

// newWalker validates the seed, pre-allocates the bitmap and stack, marks
// the seed visited, and pushes its frame.
func newWalker[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId) (walker[VId, EIdx], error) {
	if g == nil {
		return walker[VId, EIdx]{}, ErrGraphNil
	}
	if int(seed) >= g.Order() {
		return walker[VId, EIdx]{}, fmt.Errorf("%w: seed %d with %d vertices",
			ErrSeedOutOfRange, seed, g.Order())
	}

	w := walker[VId, EIdx]{
		g:       g,
		visited: make([]bool, g.Order()),
		stack:   make([]frame[VId], 0, g.Order()),
	}
	w.visited[seed] = true
	w.stack = append(w.stack, frame[VId]{vertex: seed, degree: g.Degree(seed)})

	return w, nil
}

// advance produces the next discovery, returning false on exhaustion.
func (w *walker[VId, EIdx]) advance() bool {
	// 1. Apply a pending cancellation before touching the walk.
	switch w.cancel {
	case CancelAll:
		w.stack = w.stack[:0]

		return false
	case CancelBranch:
		if n := len(w.stack); n > 0 {
			w.stack = w.stack[:n-1] // unwind the frame pushed by the last yield
		}
		w.cancel = cancelNone
	}

	// 2. Walk until the next discovery or an empty stack.
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// Row exhausted: backtrack to the parent frame.
		if top.cursor == top.degree {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		e := w.g.EdgeAt(top.vertex, top.cursor)
		top.cursor++ // resume at the next sibling after this subtree
		v := w.g.TargetID(e)
		if w.visited[v] {
			continue
		}

		// 3. Discovery: mark, record, descend.
		w.visited[v] = true
		w.source = top.vertex
		w.target = v
		w.edge = e
		w.stack = append(w.stack, frame[VId]{vertex: v, degree: w.g.Degree(v)})

		return true
	}

	return false
}

// depth is the stack size: 1 at the seed, incremented per descent,
// decremented only on backtrack.
func (w *walker[VId, EIdx]) depth() int { return len(w.stack) }

// File: walker.go
// Role: The level-order engine shared by the vertex and edge iterators.
// Invariant: a yielded vertex is expanded at most once, on the advance
// after its yield — the window CancelBranch uses to prune its children
// (a pending CancelBranch or CancelAll skips the expansion).

package bfs

import (
	"fmt"

	"github.com/pradkrish/graph-v2/core"
)

// item is one queued discovery.
type item[VId, EIdx core.Unsigned] struct {
	source VId
	target VId
	edge   EIdx
	depth  int
}

// walker holds the shared traversal state: the visited bitmap, the FIFO
// frontier, the deferred expansion, and the most recent discovery.
type walker[VId, EIdx core.Unsigned] struct {
	g       core.Graph[VId, EIdx]
	visited []bool
	queue   []item[VId, EIdx]
	head    int
	cancel  CancelPolicy

	expandFrom  VId
	expandDepth int
	expandOK    bool

	cur      item[VId, EIdx]
	curDepth int
}

// newWalker validates the seed, pre-allocates the bitmap and queue, and
// schedules the seed for expansion at depth 1.
func newWalker[VId, EIdx core.Unsigned](g core.Graph[VId, EIdx], seed VId) (walker[VId, EIdx], error) {
	if g == nil {
		return walker[VId, EIdx]{}, ErrGraphNil
	}
	if int(seed) >= g.Order() {
		return walker[VId, EIdx]{}, fmt.Errorf("%w: seed %d with %d vertices",
			ErrSeedOutOfRange, seed, g.Order())
	}

	w := walker[VId, EIdx]{
		g:           g,
		visited:     make([]bool, g.Order()),
		queue:       make([]item[VId, EIdx], 0, g.Order()),
		expandFrom:  seed,
		expandDepth: 1,
		expandOK:    true,
		curDepth:    1,
	}
	w.visited[seed] = true

	return w, nil
}

// advance produces the next discovery, returning false on exhaustion.
func (w *walker[VId, EIdx]) advance() bool {
	// 1. Apply a pending cancellation.
	switch w.cancel {
	case CancelAll:
		w.head = len(w.queue)
		w.expandOK = false

		return false
	case CancelBranch:
		w.expandOK = false // the last yield's children never enqueue
		w.cancel = cancelNone
	}

	// 2. Deferred expansion of the most recently yielded vertex.
	if w.expandOK {
		u, d := w.expandFrom, w.expandDepth
		for i := 0; i < w.g.Degree(u); i++ {
			e := w.g.EdgeAt(u, i)
			v := w.g.TargetID(e)
			if w.visited[v] {
				continue
			}
			w.visited[v] = true
			w.queue = append(w.queue, item[VId, EIdx]{source: u, target: v, edge: e, depth: d + 1})
		}
		w.expandOK = false
	}

	// 3. Pop the next discovery and schedule its expansion.
	if w.head == len(w.queue) {
		return false
	}
	w.cur = w.queue[w.head]
	w.head++
	w.curDepth = w.cur.depth
	w.expandFrom = w.cur.target
	w.expandDepth = w.cur.depth
	w.expandOK = true

	return true
}

// depth is the level of the most recently yielded element; the seed sits
// at level 1.
func (w *walker[VId, EIdx]) depth() int { return w.curDepth }

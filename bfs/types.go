// Package bfs declares cancellation policies, discovery events, and
// sentinel errors for the breadth-first views.
package bfs

import (
	"errors"

	"github.com/pradkrish/graph-v2/core"
)

// Sentinel errors for view construction.
var (
	// ErrGraphNil is returned when a nil graph is passed to a constructor.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSeedOutOfRange is returned when the traversal seed is not a
	// vertex of the graph.
	ErrSeedOutOfRange = errors.New("bfs: seed vertex out of range")
)

// CancelPolicy directs the traversal to prune or terminate. Cancellation
// is level-triggered and consumed by the next advance.
type CancelPolicy uint8

const (
	// cancelNone is the idle state; no cancellation is pending.
	cancelNone CancelPolicy = iota

	// CancelAll makes the next advance report exhaustion.
	CancelAll

	// CancelBranch keeps the children of the most recently yielded vertex
	// from enqueueing; the remaining frontier is walked normally.
	CancelBranch
)

// VertexEvent is the discovery of a vertex; Value carries the projection
// when the view was built with a vertex value function, core.Void
// otherwise.
type VertexEvent[T any, VId core.Unsigned] struct {
	ID    VId
	Value T
}

// EdgeEvent is the discovery of a tree edge: source, newly discovered
// target, the edge handle, and the projected value when present.
type EdgeEvent[T any, VId, EIdx core.Unsigned] struct {
	Source VId
	Target VId
	Edge   EIdx
	Value  T
}

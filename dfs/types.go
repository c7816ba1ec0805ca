// Package dfs declares cancellation policies, discovery events, and
// sentinel errors for the depth-first views.
package dfs

import (
	"errors"

	"github.com/pradkrish/graph-v2/core"
)

// Sentinel errors for view construction.
var (
	// ErrGraphNil is returned when a nil graph is passed to a constructor.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrSeedOutOfRange is returned when the traversal seed is not a
	// vertex of the graph.
	ErrSeedOutOfRange = errors.New("dfs: seed vertex out of range")
)

// CancelPolicy directs the traversal to prune or terminate. Cancellation
// is level-triggered: calling Cancel between yields takes effect on the
// next advance, which consumes the flag.
type CancelPolicy uint8

const (
	// cancelNone is the idle state; no cancellation is pending.
	cancelNone CancelPolicy = iota

	// CancelAll makes the next advance report exhaustion; no further
	// elements are yielded.
	CancelAll

	// CancelBranch pops the frame pushed by the most recent yield before
	// the next advance, skipping the subtree rooted at that element while
	// continuing with its siblings. Invoked right after the first yield it
	// leaves only the seed's frame, so the walk ends only when the seed has
	// no further out-edges to examine.
	CancelBranch
)

// VertexEvent is the discovery of a vertex: its id and, when the view was
// built with a vertex value function, the projected value (core.Void
// otherwise).
type VertexEvent[T any, VId core.Unsigned] struct {
	ID    VId
	Value T
}

// EdgeEvent is the discovery of a tree edge: the source vertex it was
// followed from, the newly discovered target, the edge handle, and the
// projected value when the view was built with an edge value function.
type EdgeEvent[T any, VId, EIdx core.Unsigned] struct {
	Source VId
	Target VId
	Edge   EIdx
	Value  T
}

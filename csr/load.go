// File: load.go
// Role: Reservation and the two-phase load (edges, then or before vertices).
// Policy: loads succeed fully or fail fast on the first violation; the
// graph is left empty (ErrOutOfOrder) or restored (ErrIDOutOfRange).

package csr

import (
	"fmt"
	"slices"

	"github.com/pradkrish/graph-v2/core"
)

// ReserveVertices ensures capacity for count vertices plus the terminating
// row. It never shrinks and never changes the loaded contents.
// Complexity: O(count) worst case (one reallocation).
func (g *Graph[EV, VV, GV, VId, EIdx]) ReserveVertices(count int) {
	if n := count + 1 - len(g.rowOffsets); n > 0 {
		g.rowOffsets = slices.Grow(g.rowOffsets, n)
	}
	if n := count - len(g.vertexValues); n > 0 {
		g.vertexValues = slices.Grow(g.vertexValues, n)
	}
}

// ReserveEdges ensures capacity for count edges.
// Complexity: O(count) worst case (one reallocation).
func (g *Graph[EV, VV, GV, VId, EIdx]) ReserveEdges(count int) {
	if n := count - len(g.colTargets); n > 0 {
		g.colTargets = slices.Grow(g.colTargets, n)
	}
	if n := count - len(g.edgeValues); n > 0 {
		g.edgeValues = slices.Grow(g.edgeValues, n)
	}
}

// LoadEdges ingests a finite edge stream sorted non-decreasing by source
// id and finalizes the sparsity structure.
//
// The graph must be empty (ErrNotEmpty). A source-id regression fails with
// ErrOutOfOrder naming the offending record, and clears the graph. An
// empty stream leaves the graph empty — no sentinel row is added.
//
// When src exposes core.Tailed, the last record's max(source, target)+1
// seeds the vertex-count lower bound; when it exposes core.Sized, its
// length reserves the edge arrays. Neither capability is required.
//
// Complexity: O(|V| + |E|) time, amortized O(1) per record.
func (g *Graph[EV, VV, GV, VId, EIdx]) LoadEdges(src core.EdgeInput[VId, EV]) error {
	// 1. Precondition: only an empty graph may receive edges.
	if len(g.rowOffsets) != 0 || len(g.colTargets) != 0 || len(g.edgeValues) != 0 {
		return ErrNotEmpty
	}

	// 2. Pre-scan the tail for a vertex-count lower bound, if cheap.
	vertexHint := 0
	if tailed, ok := src.(core.Tailed[VId, EV]); ok {
		if tail, ok := tailed.Last(); ok {
			vertexHint = int(max(tail.Source, tail.Target)) + 1
			g.ReserveVertices(vertexHint)
		}
	}

	// 3. Reserve the edge arrays when the stream knows its length.
	if sized, ok := src.(core.Sized); ok {
		g.ReserveEdges(sized.Len())
	}

	// 4. Single pass: open rows as sources appear, append targets/values.
	var (
		prevSource VId
		maxTarget  VId
		started    bool
	)
	for rec, ok := src.Next(); ok; rec, ok = src.Next() {
		if started && rec.Source < prevSource {
			g.reset()

			return fmt.Errorf("%w: edge (%d,%d) after source %d",
				ErrOutOfOrder, rec.Source, rec.Target, prevSource)
		}
		// Opening the row for rec.Source gives every skipped source an
		// empty edge range.
		for len(g.rowOffsets) <= int(rec.Source) {
			g.rowOffsets = append(g.rowOffsets, EIdx(len(g.colTargets)))
		}
		g.colTargets = append(g.colTargets, rec.Target)
		g.edgeValues = append(g.edgeValues, rec.Value)
		maxTarget = max(maxTarget, rec.Target)
		prevSource = rec.Source
		started = true
	}

	// 5. Empty input: leave the graph empty.
	if !started {
		return nil
	}

	// 6. Final vertex count: sources seen, targets referenced, tail hint.
	vertexCount := max(len(g.rowOffsets), int(maxTarget)+1, vertexHint)

	// 7. Fill the remaining rows and the terminating sentinel.
	for len(g.rowOffsets) < vertexCount+1 {
		g.rowOffsets = append(g.rowOffsets, EIdx(len(g.colTargets)))
	}

	// 8. If LoadVertices ran first with fewer values, pad to the count.
	if len(g.vertexValues) > 0 && len(g.vertexValues) < vertexCount {
		g.vertexValues = append(g.vertexValues, make([]VV, vertexCount-len(g.vertexValues))...)
	}

	return nil
}

// LoadVertices assigns vertex values from (id, value) records in any
// order. The value array first grows to max(Order(), count, stream
// length); a record id beyond that capacity fails with ErrIDOutOfRange and
// restores the pre-call values. May be called before or after LoadEdges;
// applying the same records twice yields the same mapping.
//
// Complexity: O(|V| + records) time.
func (g *Graph[EV, VV, GV, VId, EIdx]) LoadVertices(src core.VertexInput[VId, VV], count int) error {
	// 1. Snapshot for all-or-nothing semantics.
	prev := slices.Clone(g.vertexValues)

	// 2. Grow the value array to the best-known vertex count.
	size := max(g.Order(), count)
	if sized, ok := src.(core.Sized); ok {
		size = max(size, sized.Len())
	}
	if size > len(g.vertexValues) {
		g.vertexValues = append(g.vertexValues, make([]VV, size-len(g.vertexValues))...)
	}

	// 3. Assign values; ids must land inside the grown array.
	for rec, ok := src.Next(); ok; rec, ok = src.Next() {
		if int(rec.ID) >= len(g.vertexValues) {
			g.vertexValues = prev

			return fmt.Errorf("%w: vertex id %d with %d value slots",
				ErrIDOutOfRange, rec.ID, size)
		}
		g.vertexValues[rec.ID] = rec.Value
	}

	return nil
}

// Load ingests edges and then vertices; see LoadEdges and LoadVertices.
func (g *Graph[EV, VV, GV, VId, EIdx]) Load(edges core.EdgeInput[VId, EV], vertices core.VertexInput[VId, VV], count int) error {
	if err := g.LoadEdges(edges); err != nil {
		return err
	}

	return g.LoadVertices(vertices, count)
}

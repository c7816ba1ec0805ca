// File: builder.go
// Role: Shape generators emitting source-sorted copyable edge records.
//
// Contract (all generators):
//   - Validate the size parameter first; return only sentinel errors.
//   - Emit edges ordered by ascending source id, so the result feeds
//     csr.LoadEdges without re-sorting.
//   - Weights come from the caller's WeightFunc; nil means zero values.
//
// Determinism: output is a pure function of the parameters.

package builder

import (
	"fmt"

	"github.com/pradkrish/graph-v2/core"
)

// Shape minima.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 2
)

// WeightFunc produces the value of edge u→v from its endpoint indexes.
type WeightFunc[EV any] func(u, v int) EV

// weightOrZero applies fn, or returns the zero value when fn is nil.
func weightOrZero[EV any](fn WeightFunc[EV], u, v int) EV {
	if fn == nil {
		return *new(EV)
	}

	return fn(u, v)
}

// Path emits the simple path 0→1→…→n-1.
func Path[VId core.Unsigned, EV any](n int, weight WeightFunc[EV]) ([]core.Edge[VId, EV], error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	edges := make([]core.Edge[VId, EV], 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge[VId, EV]{
			Source: VId(i - 1),
			Target: VId(i),
			Value:  weightOrZero(weight, i-1, i),
		})
	}

	return edges, nil
}

// Cycle emits the directed cycle 0→1→…→n-1→0.
func Cycle[VId core.Unsigned, EV any](n int, weight WeightFunc[EV]) ([]core.Edge[VId, EV], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	edges := make([]core.Edge[VId, EV], 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge[VId, EV]{
			Source: VId(i),
			Target: VId((i + 1) % n),
			Value:  weightOrZero(weight, i, (i+1)%n),
		})
	}

	return edges, nil
}

// Star emits edges from hub 0 to each of the n-1 leaves.
func Star[VId core.Unsigned, EV any](n int, weight WeightFunc[EV]) ([]core.Edge[VId, EV], error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}

	edges := make([]core.Edge[VId, EV], 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge[VId, EV]{
			Source: 0,
			Target: VId(i),
			Value:  weightOrZero(weight, 0, i),
		})
	}

	return edges, nil
}

// Complete emits every ordered pair u→v, u != v, over n vertices.
func Complete[VId core.Unsigned, EV any](n int, weight WeightFunc[EV]) ([]core.Edge[VId, EV], error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	edges := make([]core.Edge[VId, EV], 0, n*(n-1))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			edges = append(edges, core.Edge[VId, EV]{
				Source: VId(u),
				Target: VId(v),
				Value:  weightOrZero(weight, u, v),
			})
		}
	}

	return edges, nil
}

// Grid emits the rows×cols lattice with right and down neighbors, vertex
// (r, c) numbered r*cols+c.
func Grid[VId core.Unsigned, EV any](rows, cols int, weight WeightFunc[EV]) ([]core.Edge[VId, EV], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrBadDimensions)
	}

	edges := make([]core.Edge[VId, EV], 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				edges = append(edges, core.Edge[VId, EV]{
					Source: VId(u), Target: VId(u + 1), Value: weightOrZero(weight, u, u+1),
				})
			}
			if r+1 < rows {
				edges = append(edges, core.Edge[VId, EV]{
					Source: VId(u), Target: VId(u + cols), Value: weightOrZero(weight, u, u+cols),
				})
			}
		}
	}

	return edges, nil
}

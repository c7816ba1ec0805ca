package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradkrish/graph-v2/builder"
	"github.com/pradkrish/graph-v2/core"
	"github.com/pradkrish/graph-v2/csr"
)

// sortedBySource asserts the CSR loader precondition.
func sortedBySource[EV any](t *testing.T, edges []core.Edge[uint32, EV]) {
	t.Helper()
	for i := 1; i < len(edges); i++ {
		require.LessOrEqual(t, edges[i-1].Source, edges[i].Source,
			"edges must be sorted by source at %d", i)
	}
}

func TestPath_ShapeAndWeights(t *testing.T) {
	edges, err := builder.Path[uint32](4, func(u, v int) float64 { return float64(u + v) })
	require.NoError(t, err)

	require.Len(t, edges, 3)
	sortedBySource(t, edges)
	assert.Equal(t, core.Edge[uint32, float64]{Source: 0, Target: 1, Value: 1}, edges[0])
	assert.Equal(t, core.Edge[uint32, float64]{Source: 2, Target: 3, Value: 5}, edges[2])
}

func TestPath_TooFew(t *testing.T) {
	_, err := builder.Path[uint32, core.Void](1, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle_WrapsAround(t *testing.T) {
	edges, err := builder.Cycle[uint32, core.Void](3, nil)
	require.NoError(t, err)

	require.Len(t, edges, 3)
	sortedBySource(t, edges)
	assert.Equal(t, uint32(0), edges[2].Target, "last edge closes the cycle")
}

func TestStar_HubFanOut(t *testing.T) {
	edges, err := builder.Star[uint32, core.Void](5, nil)
	require.NoError(t, err)

	require.Len(t, edges, 4)
	for _, e := range edges {
		assert.Equal(t, uint32(0), e.Source)
	}
}

func TestComplete_AllOrderedPairs(t *testing.T) {
	edges, err := builder.Complete[uint32, core.Void](4, nil)
	require.NoError(t, err)

	require.Len(t, edges, 12)
	sortedBySource(t, edges)
	for _, e := range edges {
		assert.NotEqual(t, e.Source, e.Target, "no self-loops")
	}
}

func TestGrid_LatticeDegrees(t *testing.T) {
	edges, err := builder.Grid[uint32, core.Void](2, 3, nil)
	require.NoError(t, err)

	// 2x3 lattice: 4 right edges + 3 down edges.
	require.Len(t, edges, 7)
	sortedBySource(t, edges)

	g, err := csr.FromEdges[core.Void, uint32, uint32](edges)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 2, g.Degree(0), "corner has right and down neighbors")
	assert.Equal(t, 0, g.Degree(5), "last cell has no outgoing edges")
}

func TestGrid_BadDimensions(t *testing.T) {
	_, err := builder.Grid[uint32, core.Void](0, 3, nil)
	assert.ErrorIs(t, err, builder.ErrBadDimensions)
}

func TestGenerators_FeedCSRDirectly(t *testing.T) {
	for name, gen := range map[string]func() ([]core.Edge[uint32, core.Void], error){
		"path":     func() ([]core.Edge[uint32, core.Void], error) { return builder.Path[uint32, core.Void](6, nil) },
		"cycle":    func() ([]core.Edge[uint32, core.Void], error) { return builder.Cycle[uint32, core.Void](6, nil) },
		"star":     func() ([]core.Edge[uint32, core.Void], error) { return builder.Star[uint32, core.Void](6, nil) },
		"complete": func() ([]core.Edge[uint32, core.Void], error) { return builder.Complete[uint32, core.Void](6, nil) },
	} {
		t.Run(name, func(t *testing.T) {
			edges, err := gen()
			require.NoError(t, err)
			g, err := csr.FromEdges[core.Void, uint32, uint32](edges)
			require.NoError(t, err)
			assert.Equal(t, 6, g.Order())
			assert.Equal(t, len(edges), g.Size())
		})
	}
}

package adjlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradkrish/graph-v2/adjlist"
	"github.com/pradkrish/graph-v2/core"
)

func TestAddVertex_AssignsDenseIDs(t *testing.T) {
	g := adjlist.New[core.Void, string, uint32, uint32]()

	assert.Equal(t, uint32(0), g.AddVertex("a"))
	assert.Equal(t, uint32(1), g.AddVertex("b"))
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, "b", g.VertexValue(1))
}

func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := adjlist.New[float64, core.Void, uint32, uint32]()
	e := g.AddEdge(0, 4, 217)

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, uint32(4), g.TargetID(e))
	assert.Equal(t, 217.0, g.EdgeValue(e))
	assert.Equal(t, 0, g.Degree(3))
}

func TestAddEdge_PreservesInsertionOrder(t *testing.T) {
	g := adjlist.New[core.Void, core.Void, uint32, uint32]()
	g.AddEdge(0, 2, core.Void{})
	g.AddEdge(1, 0, core.Void{})
	g.AddEdge(0, 1, core.Void{})

	require.Equal(t, 2, g.Degree(0))
	assert.Equal(t, uint32(2), g.TargetID(g.EdgeAt(0, 0)))
	assert.Equal(t, uint32(1), g.TargetID(g.EdgeAt(0, 1)))
}

func TestFromEdges_AnyOrder(t *testing.T) {
	g := adjlist.FromEdges[float64, uint32, uint32]([]core.Edge[uint32, float64]{
		{Source: 2, Target: 0, Value: 1},
		{Source: 0, Target: 1, Value: 2},
		{Source: 2, Target: 1, Value: 3},
	})

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, uint32(0), g.TargetID(g.EdgeAt(2, 0)))
	assert.Equal(t, uint32(1), g.TargetID(g.EdgeAt(2, 1)))
}

func TestSetVertexValue_Grows(t *testing.T) {
	g := adjlist.New[core.Void, string, uint32, uint32]()
	g.SetVertexValue(3, "later")

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, "later", g.VertexValue(3))
	assert.Equal(t, "", g.VertexValue(0))
}

func TestEnsureVertex_Idempotent(t *testing.T) {
	g := adjlist.New[core.Void, core.Void, uint32, uint32]()
	g.EnsureVertex(2)
	g.EnsureVertex(1)

	assert.Equal(t, 3, g.Order())
}

func TestFindVertex_Bounds(t *testing.T) {
	g := adjlist.New[core.Void, core.Void, uint32, uint32]()
	g.EnsureVertex(1)

	_, ok := g.FindVertex(1)
	assert.True(t, ok)
	_, ok = g.FindVertex(2)
	assert.False(t, ok)
}

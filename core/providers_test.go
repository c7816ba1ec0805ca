package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradkrish/graph-v2/core"
)

func sampleEdges() []core.Edge[uint32, int] {
	return []core.Edge[uint32, int]{
		{Source: 0, Target: 1, Value: 10},
		{Source: 0, Target: 2, Value: 20},
		{Source: 2, Target: 3, Value: 30},
	}
}

func drainEdges[VId core.Unsigned, EV any](in core.EdgeInput[VId, EV]) []core.Edge[VId, EV] {
	var out []core.Edge[VId, EV]
	for rec, ok := in.Next(); ok; rec, ok = in.Next() {
		out = append(out, rec)
	}

	return out
}

func TestEdgeSlice_YieldsInOrder(t *testing.T) {
	in := core.EdgeSlice(sampleEdges())
	assert.Equal(t, sampleEdges(), drainEdges[uint32, int](in))
}

func TestEdgeSlice_Capabilities(t *testing.T) {
	in := core.EdgeSlice(sampleEdges())

	assert.Equal(t, 3, in.Len())
	last, ok := in.Last()
	require.True(t, ok)
	assert.Equal(t, core.Edge[uint32, int]{Source: 2, Target: 3, Value: 30}, last)

	// Last must not consume the stream.
	assert.Len(t, drainEdges[uint32, int](in), 3)
}

func TestEdgeSlice_Empty(t *testing.T) {
	in := core.EdgeSlice[uint32, int](nil)

	assert.Equal(t, 0, in.Len())
	_, ok := in.Last()
	assert.False(t, ok)
	_, ok = in.Next()
	assert.False(t, ok)
}

func TestProjectEdges_AppliesProjection(t *testing.T) {
	type row struct {
		from, to int
		km       float64
	}
	rows := []row{{0, 1, 85}, {1, 2, 80}}
	in := core.ProjectEdges(rows, func(r row) core.Edge[uint32, float64] {
		return core.Edge[uint32, float64]{Source: uint32(r.from), Target: uint32(r.to), Value: r.km}
	})

	assert.Equal(t, 2, in.Len())
	last, ok := in.Last()
	require.True(t, ok)
	assert.Equal(t, uint32(2), last.Target)

	got := drainEdges[uint32, float64](in)
	require.Len(t, got, 2)
	assert.Equal(t, 85.0, got[0].Value)
	assert.Equal(t, uint32(1), got[1].Source)
}

func TestEdgeFunc_NoCapabilities(t *testing.T) {
	edges := sampleEdges()
	i := 0
	var in core.EdgeInput[uint32, int] = core.EdgeFunc(func() (core.Edge[uint32, int], bool) {
		if i == len(edges) {
			return core.Edge[uint32, int]{}, false
		}
		rec := edges[i]
		i++

		return rec, true
	})

	_, sized := in.(core.Sized)
	assert.False(t, sized, "function streams must not claim a length")
	_, tailed := in.(core.Tailed[uint32, int])
	assert.False(t, tailed, "function streams must not claim tail access")
	assert.Equal(t, edges, drainEdges[uint32, int](in))
}

func TestVertexSlice_YieldsInOrder(t *testing.T) {
	recs := []core.Vertex[uint32, string]{{ID: 1, Value: "b"}, {ID: 0, Value: "a"}}
	in := core.VertexSlice(recs)

	assert.Equal(t, 2, in.Len())
	first, ok := in.Next()
	require.True(t, ok)
	assert.Equal(t, recs[0], first)
	second, ok := in.Next()
	require.True(t, ok)
	assert.Equal(t, recs[1], second)
	_, ok = in.Next()
	assert.False(t, ok)
}

func TestProjectVertices_AppliesProjection(t *testing.T) {
	names := []string{"Frankfurt", "Mannheim"}
	in := core.ProjectVertices(names, func(name string) core.Vertex[uint32, string] {
		var id uint32
		if name == "Mannheim" {
			id = 1
		}

		return core.Vertex[uint32, string]{ID: id, Value: name}
	})

	assert.Equal(t, 2, in.Len())
	rec, ok := in.Next()
	require.True(t, ok)
	assert.Equal(t, core.Vertex[uint32, string]{ID: 0, Value: "Frankfurt"}, rec)
}

func TestVertexFunc_NoCapabilities(t *testing.T) {
	done := false
	var in core.VertexInput[uint32, string] = core.VertexFunc(func() (core.Vertex[uint32, string], bool) {
		if done {
			return core.Vertex[uint32, string]{}, false
		}
		done = true

		return core.Vertex[uint32, string]{ID: 0, Value: "only"}, true
	})

	_, sized := in.(core.Sized)
	assert.False(t, sized)
	rec, ok := in.Next()
	require.True(t, ok)
	assert.Equal(t, "only", rec.Value)
	_, ok = in.Next()
	assert.False(t, ok)
}

package dfs_test

import (
	"fmt"
	"strings"

	"github.com/pradkrish/graph-v2/core"
	"github.com/pradkrish/graph-v2/csr"
	"github.com/pradkrish/graph-v2/dfs"
)

// ExampleVerticesWith walks a small route graph depth-first, indenting
// each city by its traversal depth.
func ExampleVerticesWith() {
	g := csr.New[float64, string, core.Void, uint32, uint32]()
	edges := core.EdgeSlice([]core.Edge[uint32, float64]{
		{Source: 0, Target: 1, Value: 85},
		{Source: 0, Target: 4, Value: 217},
		{Source: 1, Target: 2, Value: 80},
	})
	names := core.VertexSlice([]core.Vertex[uint32, string]{
		{ID: 0, Value: "Frankfurt"}, {ID: 1, Value: "Mannheim"},
		{ID: 2, Value: "Karlsruhe"}, {ID: 4, Value: "Würzburg"},
	})
	if err := g.Load(edges, names, 0); err != nil {
		fmt.Println("load:", err)

		return
	}

	it, err := dfs.VerticesWith(g, 0, g.VertexValue)
	if err != nil {
		fmt.Println("dfs:", err)

		return
	}
	fmt.Println("[0] Frankfurt (seed)")
	for it.Next() {
		ev := it.Vertex()
		fmt.Printf("%s[%d] %s\n", strings.Repeat("  ", it.Depth()-1), ev.ID, ev.Value)
	}

	// Output:
	// [0] Frankfurt (seed)
	//   [1] Mannheim
	//     [2] Karlsruhe
	//   [4] Würzburg
}

// ExampleEdgeIterator_Cancel prunes one branch mid-walk.
func ExampleEdgeIterator_Cancel() {
	g, err := csr.FromEdges[float64, uint32, uint32]([]core.Edge[uint32, float64]{
		{Source: 0, Target: 1, Value: 85},
		{Source: 0, Target: 2, Value: 217},
		{Source: 1, Target: 3, Value: 80},
	})
	if err != nil {
		fmt.Println("load:", err)

		return
	}

	it, err := dfs.Edges(g, 0)
	if err != nil {
		fmt.Println("dfs:", err)

		return
	}
	for it.Next() {
		ev := it.Edge()
		fmt.Printf("%d -> %d\n", ev.Source, ev.Target)
		if ev.Target == 1 {
			it.Cancel(dfs.CancelBranch) // skip everything below vertex 1
		}
	}

	// Output:
	// 0 -> 1
	// 0 -> 2
}

package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/dfs"
)

// buildDressDAG is the classic getting-dressed precedence graph.
func buildDressDAG() *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("undershorts", "pants", 0)
	_, _ = g.AddEdge("pants", "belt", 0)
	_, _ = g.AddEdge("pants", "shoes", 0)
	_, _ = g.AddEdge("socks", "shoes", 0)
	_, _ = g.AddEdge("shirt", "belt", 0)
	_, _ = g.AddEdge("shirt", "tie", 0)
	_, _ = g.AddEdge("tie", "jacket", 0)
	_, _ = g.AddEdge("belt", "jacket", 0)

	return g
}

// assertTopoOrder checks that order respects every edge of g.
func assertTopoOrder(t *testing.T, g *core.Graph, order []string) {
	t.Helper()
	require.Len(t, order, g.VertexCount())
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %s→%s violated", e.From, e.To)
	}
}

// TestTopologicalSort_DAG verifies both sorts emit valid orderings.
func TestTopologicalSort_DAG(t *testing.T) {
	g := buildDressDAG()

	byDFS, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assertTopoOrder(t, g, byDFS)

	byKahn, err := dfs.KahnSort(g)
	require.NoError(t, err)
	assertTopoOrder(t, g, byKahn)
}

// TestTopologicalSort_CycleFails verifies the directed triangle A→B→C→A has no
// valid ordering and both algorithms must say so.
func TestTopologicalSort_CycleFails(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.KahnSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopologicalSort_PartialCycle verifies a cycle hanging off an
// otherwise sortable prefix still fails: no silent partial answers.
func TestTopologicalSort_PartialCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("D", "B", 0) // cycle B→C→D→B below the root

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.KahnSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopologicalSort_Validation covers nil and undirected rejection.
func TestTopologicalSort_Validation(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
	_, err = dfs.KahnSort(nil)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)

	und := core.NewGraph()
	_, _ = und.AddEdge("A", "B", 0)
	_, err = dfs.TopologicalSort(und)
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)
	_, err = dfs.KahnSort(und)
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)
}

// TestTopologicalSort_Deterministic verifies repeat runs agree.
func TestTopologicalSort_Deterministic(t *testing.T) {
	g := buildDressDAG()

	first, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	second, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	kahnFirst, err := dfs.KahnSort(g)
	require.NoError(t, err)
	kahnSecond, err := dfs.KahnSort(g)
	require.NoError(t, err)
	assert.Equal(t, kahnFirst, kahnSecond)
}

// TestTopologicalSort_Cancellation verifies context cancellation.
func TestTopologicalSort_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalSort(buildDressDAG(), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = dfs.KahnSort(buildDressDAG(), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestKahnSort_SingleVertexAndEmpty covers degenerate inputs.
func TestKahnSort_SingleVertexAndEmpty(t *testing.T) {
	empty := core.NewGraph(core.WithDirected(true))
	order, err := dfs.KahnSort(empty)
	require.NoError(t, err)
	assert.Empty(t, order)

	one := core.NewGraph(core.WithDirected(true))
	require.NoError(t, one.AddVertex("solo"))
	order, err = dfs.KahnSort(one)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, order)
}

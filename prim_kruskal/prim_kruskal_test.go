package prim_kruskal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/prim_kruskal"
)

// triangle builds the undirected weighted triangle A—B:1, B—C:2, A—C:4.
func triangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)
	return g
}

// edgePairs projects tree edges to unordered endpoint pairs for
// assertions that do not care about orientation.
func edgePairs(edges []core.Edge) [][2]string {
	out := make([][2]string, 0, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if v < u {
			u, v = v, u
		}
		out = append(out, [2]string{u, v})
	}
	return out
}

func TestKruskal_Validation(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	directed := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err = prim_kruskal.Kruskal(directed)
	assert.ErrorIs(t, err, prim_kruskal.ErrDirectedGraph)

	unweighted := core.NewGraph()
	_, err = prim_kruskal.Kruskal(unweighted)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnweightedGraph)
}

func TestPrim_RootValidation(t *testing.T) {
	g := triangle()

	_, err := prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, err = prim_kruskal.Prim(g, "ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestKruskal_Triangle pins the exact tree on the reference triangle:
// weight 3 via edges A—B and B—C.
func TestKruskal_Triangle(t *testing.T) {
	res, err := prim_kruskal.Kruskal(triangle())
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Weight)
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, edgePairs(res.Edges))
}

// TestPrim_MatchesKruskalWeight pins the cross-algorithm property: equal
// total weight on the same connected graph, from every possible root.
func TestPrim_MatchesKruskalWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 3)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("B", "D", 5)
	_, _ = g.AddEdge("C", "D", 7)
	_, _ = g.AddEdge("D", "E", 1)

	kr, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	for _, root := range g.Vertices() {
		pr, err := prim_kruskal.Prim(g, root)
		require.NoError(t, err)
		assert.Equal(t, kr.Weight, pr.Weight, "root %s", root)
		assert.Len(t, pr.Edges, g.VertexCount()-1)
	}
}

// TestMST_TrivialGraphs verifies empty and single-vertex graphs yield an
// empty tree rather than an error.
func TestMST_TrivialGraphs(t *testing.T) {
	empty := core.NewGraph(core.WithWeighted())
	res, err := prim_kruskal.Kruskal(empty)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Weight)

	single := core.NewGraph(core.WithWeighted())
	require.NoError(t, single.AddVertex("A"))
	res, err = prim_kruskal.Prim(single, "A")
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
}

// TestMST_Disconnected verifies the strict default errors and the
// forest-mode asymmetry: Kruskal spans all components, Prim only the
// root's.
func TestMST_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 2)

	_, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	kr, err := prim_kruskal.Kruskal(g, prim_kruskal.WithForest())
	require.NoError(t, err)
	assert.Len(t, kr.Edges, 2)
	assert.Equal(t, int64(3), kr.Weight)

	pr, err := prim_kruskal.Prim(g, "A", prim_kruskal.WithForest())
	require.NoError(t, err)
	assert.Len(t, pr.Edges, 1)
	assert.Equal(t, int64(1), pr.Weight)
}

// TestKruskal_EqualWeightsDeterministic verifies ties break by insertion
// order, so repeat runs pick the identical tree.
func TestKruskal_EqualWeightsDeterministic(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph(core.WithWeighted())
		_, _ = g.AddEdge("A", "B", 1)
		_, _ = g.AddEdge("B", "C", 1)
		_, _ = g.AddEdge("C", "A", 1)
		return g
	}

	first, err := prim_kruskal.Kruskal(build())
	require.NoError(t, err)
	second, err := prim_kruskal.Kruskal(build())
	require.NoError(t, err)

	assert.Equal(t, edgePairs(first.Edges), edgePairs(second.Edges))
	// First two inserted edges win the tie.
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, edgePairs(first.Edges))
}

// TestMST_SkipsLoopsAndParallels verifies self-loops never enter the
// tree and only the lightest of a parallel bundle can.
func TestMST_SkipsLoopsAndParallels(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 3)

	for name, run := range map[string]func() (*prim_kruskal.Result, error){
		"kruskal": func() (*prim_kruskal.Result, error) { return prim_kruskal.Kruskal(g) },
		"prim":    func() (*prim_kruskal.Result, error) { return prim_kruskal.Prim(g, "A") },
	} {
		res, err := run()
		require.NoError(t, err, name)
		assert.Equal(t, int64(5), res.Weight, name)
		assert.Len(t, res.Edges, 2, name)
	}
}

func TestMST_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := prim_kruskal.Kruskal(triangle(), prim_kruskal.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = prim_kruskal.Prim(triangle(), "A", prim_kruskal.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

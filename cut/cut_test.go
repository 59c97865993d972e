package cut_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/cut"
)

// bridgePairs projects bridge edges to unordered endpoint pairs.
func bridgePairs(edges []core.Edge) [][2]string {
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

func TestCut_Validation(t *testing.T) {
	_, err := cut.Cut(nil)
	assert.ErrorIs(t, err, cut.ErrNilGraph)

	directed := core.NewGraph(core.WithDirected(true))
	_, err = cut.Cut(directed)
	assert.ErrorIs(t, err, cut.ErrDirectedGraph)
}

// TestCut_Path verifies every interior vertex of a path is an
// articulation point and every edge a bridge.
func TestCut_Path(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)

	res, err := cut.Cut(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, res.Points)
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}}, bridgePairs(res.Bridges))
}

// TestCut_CycleHasNone verifies a cycle has no cut structure at all.
func TestCut_CycleHasNone(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	res, err := cut.Cut(g)
	require.NoError(t, err)
	assert.Empty(t, res.Points)
	assert.Empty(t, res.Bridges)
}

// TestCut_Barbell verifies two triangles joined by one edge: both joint
// vertices are articulation points and the joining edge is the only
// bridge.
func TestCut_Barbell(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"D", "E"}, {"E", "F"}, {"F", "D"},
		{"C", "D"},
	} {
		_, _ = g.AddEdge(pair[0], pair[1], 0)
	}

	res, err := cut.Cut(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, res.Points)
	assert.Equal(t, [][2]string{{"C", "D"}}, bridgePairs(res.Bridges))
}

// TestCut_SharedVertex verifies the hinge of two triangles is an
// articulation point even though no edge is a bridge.
func TestCut_SharedVertex(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"A", "B"}, {"B", "H"}, {"H", "A"},
		{"H", "X"}, {"X", "Y"}, {"Y", "H"},
	} {
		_, _ = g.AddEdge(pair[0], pair[1], 0)
	}

	res, err := cut.Cut(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"H"}, res.Points)
	assert.Empty(t, res.Bridges)
}

// TestCut_ParallelEdgesAreNotBridges verifies only the exact arrival
// edge is skipped, so a doubled edge stops being a bridge.
func TestCut_ParallelEdgesAreNotBridges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	res, err := cut.Cut(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Points)
	assert.Equal(t, [][2]string{{"B", "C"}}, bridgePairs(res.Bridges))
}

// TestCut_SelfLoopsIgnored verifies loops change nothing.
func TestCut_SelfLoopsIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 0)

	res, err := cut.Cut(g)
	require.NoError(t, err)
	assert.Empty(t, res.Points)
	assert.Equal(t, [][2]string{{"A", "B"}}, bridgePairs(res.Bridges))
}

// TestCut_MultipleComponents verifies each component is analyzed
// independently, isolated vertices included.
func TestCut_MultipleComponents(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("X", "Y", 0)
	require.NoError(t, g.AddVertex("Z"))

	res, err := cut.Cut(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Points)
	assert.Len(t, res.Bridges, 3)
}

// TestCut_Wrappers verifies the convenience accessors agree with Cut.
func TestCut_Wrappers(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	full, err := cut.Cut(g)
	require.NoError(t, err)
	points, err := cut.ArticulationPoints(g)
	require.NoError(t, err)
	bridges, err := cut.Bridges(g)
	require.NoError(t, err)

	assert.Equal(t, full.Points, points)
	assert.Equal(t, full.Bridges, bridges)
}

// TestCut_DeepChain verifies the explicit frame stack survives a path
// far beyond comfortable recursion depth.
func TestCut_DeepChain(t *testing.T) {
	g := core.NewGraph()
	const depth = 200_000
	for i := 0; i < depth; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%07d", i), fmt.Sprintf("v%07d", i+1), 0)
	}

	res, err := cut.Cut(g)
	require.NoError(t, err)
	assert.Len(t, res.Points, depth-1)
	assert.Len(t, res.Bridges, depth)
}

func TestCut_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	_, err := cut.Cut(g, cut.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryphlib/gryph/core"
)

// TestAddVertex_Basics covers idempotent insertion and empty-ID rejection.
func TestAddVertex_Basics(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent no-op
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

// TestAddEdge_AutoVertex verifies that AddEdge creates unknown endpoints.
func TestAddEdge_AutoVertex(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_UndirectedMirror pins the invariant that one undirected edge
// is visible from both endpoints but remains a single logical edge.
func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())

	fromA, err := g.NeighborIDs("A")
	require.NoError(t, err)
	fromB, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, fromA)
	assert.Equal(t, []string{"A"}, fromB)

	// Same logical edge on both sides: IDs must agree.
	ea, err := g.Neighbors("A")
	require.NoError(t, err)
	eb, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, ea, 1)
	require.Len(t, eb, 1)
	assert.Equal(t, ea[0].ID, eb[0].ID)
}

// TestAddEdge_DirectedOneWay verifies directed edges do not mirror.
func TestAddEdge_DirectedOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, fromB)
}

// TestAddEdge_FlagEnforcement covers weight, loop, and multi-edge policy.
func TestAddEdge_FlagEnforcement(t *testing.T) {
	plain := core.NewGraph()
	_, err := plain.AddEdge("A", "B", 7)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = plain.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = plain.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = plain.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// The mirrored orientation is the same logical pair.
	_, err = plain.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	open := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	_, err = open.AddEdge("A", "A", 3)
	require.NoError(t, err)
	_, err = open.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = open.AddEdge("A", "B", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, open.EdgeCount())
}

// TestNeighbors_DeterministicOrder pins insertion-ordered adjacency.
func TestNeighbors_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, to := range []string{"C", "A", "B", "D"} {
		_, err := g.AddEdge("S", to, 0)
		require.NoError(t, err)
	}

	edges, err := g.Neighbors("S")
	require.NoError(t, err)
	got := make([]string, len(edges))
	for i, e := range edges {
		got[i] = e.To
	}
	assert.Equal(t, []string{"C", "A", "B", "D"}, got)
}

// TestVertices_Sorted pins the sorted-vertex guarantee.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

// TestNeighbors_UnknownVertex covers query validation.
func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestRemoveEdge_And_RemoveVertex covers removal plus adjacency cleanup.
func TestRemoveEdge_And_RemoveVertex(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(id))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge(id), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveVertex("B"))
	assert.False(t, g.HasVertex("B"))
	assert.Zero(t, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
}

// TestClone_Independence verifies deep copies: mutations of the clone must
// not leak back into the original.
func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	c := g.Clone()
	_, err = c.AddEdge("B", "C", 2)
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasVertex("C"))

	// Clone preserves weights and IDs.
	edges := c.Edges()
	require.NotEmpty(t, edges)
	assert.Equal(t, int64(5), edges[0].Weight)
	assert.Equal(t, g.Edges()[0].ID, edges[0].ID)
}

// TestCloneEmpty_KeepsVerticesAndFlags verifies flag and vertex carry-over.
func TestCloneEmpty_KeepsVerticesAndFlags(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)

	c := g.CloneEmpty()
	assert.True(t, c.Directed())
	assert.True(t, c.Weighted())
	assert.Equal(t, 2, c.VertexCount())
	assert.Zero(t, c.EdgeCount())
}

// TestTranspose_ReversesDirectedEdges pins transpose semantics.
func TestTranspose_ReversesDirectedEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	tr := g.Transpose()
	assert.True(t, tr.HasEdge("B", "A"))
	assert.True(t, tr.HasEdge("C", "B"))
	assert.False(t, tr.HasEdge("A", "B"))
	// Original untouched.
	assert.True(t, g.HasEdge("A", "B"))
}

// TestConcurrentBuild exercises the lock under parallel mutation.
func TestConcurrentBuild(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, err := g.AddEdge("hub", fmt.Sprintf("v%d-%d", w, i), int64(i))
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	assert.True(t, g.HasVertex("hub"))
	assert.Equal(t, 400, g.EdgeCount())
	assert.Equal(t, 401, g.VertexCount())
}

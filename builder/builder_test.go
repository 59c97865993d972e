package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryphlib/gryph/builder"
	"github.com/gryphlib/gryph/coloring"
	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/cut"
	"github.com/gryphlib/gryph/prim_kruskal"
)

func TestBuild_Validation(t *testing.T) {
	_, err := builder.Build(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrNilConstructor)

	_, err = builder.Build(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestBuild_Shapes(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(6), 6, 6},
		{"complete", builder.Complete(5), 5, 10},
		{"star", builder.Star(7), 7, 6},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

// TestBuild_Composition verifies constructors stack in one graph: a
// cycle plus a chord through the configured weight function.
func TestBuild_Composition(t *testing.T) {
	g, err := builder.Build(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.Option{builder.WithWeightFunc(func(u, v string) int64 {
			return int64(len(u) + len(v))
		})},
		builder.Cycle(4),
		func(g *core.Graph, cfg builder.Config) error {
			_, err := g.AddEdge("v0000", "v0002", 99)
			return err
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.To != "v0002" || e.From != "v0000" {
			assert.Equal(t, int64(10), e.Weight)
		}
	}
}

// TestBuild_RandomSparseReplays verifies the same seed reproduces the
// same graph and different seeds (almost surely) differ.
func TestBuild_RandomSparseReplays(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.Build(nil,
			[]builder.Option{builder.WithSeed(seed)},
			builder.RandomSparse(30, 0.3))
		require.NoError(t, err)
		return g
	}

	pairs := func(g *core.Graph) [][2]string {
		out := make([][2]string, 0, g.EdgeCount())
		for _, e := range g.Edges() {
			out = append(out, [2]string{e.From, e.To})
		}
		return out
	}

	a, b := build(42), build(42)
	assert.Equal(t, pairs(a), pairs(b))

	c := build(43)
	assert.NotEqual(t, pairs(a), pairs(c))
}

// TestBuild_FixturesFeedAlgorithms runs built shapes through the
// algorithm packages as a smoke check of the whole surface.
func TestBuild_FixturesFeedAlgorithms(t *testing.T) {
	grid, err := builder.Build([]core.GraphOption{core.WithWeighted()}, nil,
		builder.Grid(4, 4))
	require.NoError(t, err)
	mst, err := prim_kruskal.Kruskal(grid)
	require.NoError(t, err)
	assert.Len(t, mst.Edges, 15)
	assert.Equal(t, int64(15), mst.Weight) // default weight 1 per edge

	bip, err := builder.Build(nil, nil, builder.CompleteBipartite(3, 4))
	require.NoError(t, err)
	ok, err := coloring.IsBipartite(bip)
	require.NoError(t, err)
	assert.True(t, ok)

	path, err := builder.Build(nil, nil, builder.Path(10))
	require.NoError(t, err)
	res, err := cut.Cut(path)
	require.NoError(t, err)
	assert.Len(t, res.Points, 8)
	assert.Len(t, res.Bridges, 9)
}

package core_test

import (
	"fmt"
	"testing"

	"github.com/gryphlib/gryph/core"
)

// chain builds a weighted path of n vertices for read benchmarks.
func chain(n int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%06d", i), fmt.Sprintf("v%06d", i+1), int64(i))
	}
	return g
}

func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("A", "B", int64(i))
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g := chain(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("v005000")
	}
}

func BenchmarkVertices(b *testing.B) {
	g := chain(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Vertices()
	}
}

func BenchmarkClone(b *testing.B) {
	g := chain(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

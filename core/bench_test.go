// Package core_test provides benchmarks for core.MultiGraph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

// BenchmarkAddEdge_Parallel measures insertion with many parallel edges per pair.
func BenchmarkAddEdge_Parallel(b *testing.B) {
	g := core.NewMultiGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(1, core.VertexID(i%100+2), float64(i))
	}
}

// BenchmarkMinEdge measures the linear scan over a 1000-edge bucket.
func BenchmarkMinEdge(b *testing.B) {
	g, err := builder.ParallelChain(2, 1000, builder.WithWeightFn(builder.DescendingWeightFn(1000)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.MinEdge(1, 2)
	}
}

// BenchmarkAdjList measures the simple view of a 1000-hop parallel chain.
func BenchmarkAdjList(b *testing.B) {
	g, err := builder.ParallelChain(1000, 3, builder.WithSeed(1), builder.WithUniformWeights(1, 10))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjList()
	}
}

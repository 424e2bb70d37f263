// SPDX-License-Identifier: MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphkit/core"
)

// TestConcurrentReaders runs many readers against a built graph; run with -race.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewMultiGraph()
	for i := 1; i < 100; i++ {
		_, _ = g.AddEdge(core.VertexID(i), core.VertexID(i+1), float64(i))
		_, _ = g.AddEdge(core.VertexID(i), core.VertexID(i+1), float64(i)/2)
	}

	const readers = 32
	var wg sync.WaitGroup
	mins := make([]float64, readers)
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			e, _ := g.MinEdge(10, 11)
			mins[r] = e.Weight
			_ = g.Vertices()
			_ = g.AdjList()
		}(r)
	}
	wg.Wait()

	for _, w := range mins {
		assert.Equal(t, 5.0, w)
	}
}

// TestConcurrentWriters checks bucket IDs stay dense under parallel AddEdge.
func TestConcurrentWriters(t *testing.T) {
	g := core.NewMultiGraph()
	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.AddEdge(1, 2, 1)
		}()
	}
	wg.Wait()

	edges := g.ParallelEdges(1, 2)
	assert.Len(t, edges, writers)
	for i, e := range edges {
		assert.Equal(t, i, e.ID)
	}
}

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

// sample is the shared fixture:
//
//	1 → 2 → 4
//	 ↘ 3 ↗ ↘ 5
var sample = core.AdjList{
	1: {2, 3},
	2: {4},
	3: {4, 5},
	4: {},
}

func TestRecursive(t *testing.T) {
	assert.Equal(t, []core.VertexID{1, 2, 4, 3, 5}, dfs.Recursive(sample, 1))
	assert.Equal(t, []core.VertexID{3, 4, 5}, dfs.Recursive(sample, 3))
}

func TestIterative(t *testing.T) {
	// the last successor is popped first
	assert.Equal(t, []core.VertexID{1, 3, 5, 4, 2}, dfs.Iterative(sample, 1))
	assert.Equal(t, []core.VertexID{3, 5, 4}, dfs.Iterative(sample, 3))
}

func TestTraversal_UnknownStartAndCycles(t *testing.T) {
	// a start vertex with no entry is still visited once
	assert.Equal(t, []core.VertexID{9}, dfs.Recursive(sample, 9))
	assert.Equal(t, []core.VertexID{9}, dfs.Iterative(sample, 9))

	cyc := core.AdjList{1: {2}, 2: {3, 1}, 3: {1, 3}}
	assert.Equal(t, []core.VertexID{1, 2, 3}, dfs.Recursive(cyc, 1))
	assert.Equal(t, []core.VertexID{1, 2, 3}, dfs.Iterative(cyc, 1))
}

func TestTraversal_SameVertexSet(t *testing.T) {
	adj, err := core.AdjListFromMatrix([][]int{
		{0, 1, 1, 0, 0},
		{0, 0, 0, 2, 0},
		{1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
	})
	assert.NoError(t, err)

	rec := dfs.Recursive(adj, 1)
	it := dfs.Iterative(adj, 1)
	assert.ElementsMatch(t, rec, it)
	assert.Len(t, rec, 5)
	assert.Equal(t, core.VertexID(1), rec[0])
	assert.Equal(t, core.VertexID(1), it[0])
}

// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

func TestPath(t *testing.T) {
	adj, err := builder.Path(4)
	require.NoError(t, err)
	assert.Equal(t, core.AdjList{1: {2}, 2: {3}, 3: {4}}, adj)

	_, err = builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBinaryTree(t *testing.T) {
	adj, err := builder.BinaryTree(6)
	require.NoError(t, err)
	assert.Equal(t, core.AdjList{1: {2, 3}, 2: {4, 5}, 3: {6}}, adj)

	single, err := builder.BinaryTree(1)
	require.NoError(t, err)
	assert.Equal(t, core.AdjList{1: {}}, single)

	_, err = builder.BinaryTree(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestParallelChain_Defaults(t *testing.T) {
	g, err := builder.ParallelChain(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []core.VertexID{1, 2, 3}, g.Vertices())
	for _, e := range g.ParallelEdges(1, 2) {
		assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}
}

func TestParallelChain_DescendingWeights(t *testing.T) {
	g, err := builder.ParallelChain(3, 3, builder.WithWeightFn(builder.DescendingWeightFn(3)))
	require.NoError(t, err)
	for _, hop := range [][2]core.VertexID{{1, 2}, {2, 3}} {
		edges := g.ParallelEdges(hop[0], hop[1])
		require.Len(t, edges, 3)
		assert.Equal(t, []float64{3, 2, 1}, []float64{edges[0].Weight, edges[1].Weight, edges[2].Weight})
		e, ok := g.MinEdge(hop[0], hop[1])
		require.True(t, ok)
		assert.Equal(t, 2, e.ID)
	}
}

func TestParallelChain_SeededIsDeterministic(t *testing.T) {
	build := func() *core.MultiGraph {
		g, err := builder.ParallelChain(5, 2, builder.WithSeed(7), builder.WithUniformWeights(1, 10))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	for i := core.VertexID(1); i < 5; i++ {
		wa, wb := a.ParallelEdges(i, i+1), b.ParallelEdges(i, i+1)
		assert.Equal(t, wa, wb)
		for _, e := range wa {
			assert.GreaterOrEqual(t, e.Weight, 1.0)
			assert.Less(t, e.Weight, 10.0)
		}
	}
}

func TestParallelChain_Errors(t *testing.T) {
	_, err := builder.ParallelChain(1, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.ParallelChain(3, 0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.ParallelChain(3, 1, builder.WithUniformWeights(5, 1))
	assert.ErrorIs(t, err, builder.ErrBadWeightRange)

	_, err = builder.ParallelChain(3, 1, builder.WithWeightFn(builder.ConstantWeightFn(-1)))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = builder.ParallelChain(3, 1, builder.WithWeightFn(builder.ConstantWeightFn(math.NaN())))
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

// Package dijkstra_test contains unit tests for the Dijkstra implementation
// on multigraphs: validation, parallel-edge collapsing, caps and tie order.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dijkstra"
)

// buildGraph adds every (from, to, weight) triple to a fresh graph.
func buildGraph(t *testing.T, edges [][3]float64) *core.MultiGraph {
	t.Helper()
	g := core.NewMultiGraph()
	for _, e := range edges {
		_, err := g.AddEdge(core.VertexID(e[0]), core.VertexID(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := buildGraph(t, [][3]float64{{1, 2, 1}})

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(1))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(9))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// ------------------------------------------------------------------------
// 2. Distances over parallel edges
// ------------------------------------------------------------------------

func TestDijkstra_ParallelEdgesCollapseToMinimum(t *testing.T) {
	// 1→2 has 5.0 and 2.0; 1→3→2 costs 1.0+1.5.
	g := buildGraph(t, [][3]float64{
		{1, 2, 5.0},
		{1, 3, 1.0},
		{3, 2, 1.5},
		{1, 2, 2.0},
	})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist[1])
	assert.Equal(t, 2.0, dist[2])
	assert.Equal(t, 1.0, dist[3])
	assert.Equal(t, core.VertexID(1), prev[2])
	_, hasSource := prev[1]
	assert.False(t, hasSource)
}

func TestDijkstra_DirectedAndUnreachable(t *testing.T) {
	g := buildGraph(t, [][3]float64{{1, 2, 1}, {3, 1, 1}})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev is nil without WithReturnPath")
	assert.Equal(t, 1.0, dist[2])
	assert.True(t, math.IsInf(dist[3], 1), "edges are one-way")
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildGraph(t, [][3]float64{{1, 2, 1}, {2, 3, 1}, {3, 4, 1}})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[3])
	assert.True(t, math.IsInf(dist[4], 1))
}

// ------------------------------------------------------------------------
// 3. ShortestPath
// ------------------------------------------------------------------------

func TestShortestPath(t *testing.T) {
	g := buildGraph(t, [][3]float64{
		{1, 2, 7},
		{1, 3, 9},
		{1, 6, 14},
		{2, 3, 10},
		{2, 4, 15},
		{3, 4, 11},
		{3, 6, 2},
		{6, 5, 9},
		{4, 5, 6},
	})

	path, err := dijkstra.ShortestPath(g, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 3, 6, 5}, path)
}

func TestShortestPath_ZeroEdgePairIsNotZeroWeight(t *testing.T) {
	// 1 and 3 share no direct edge; the route must go through 2.
	g := buildGraph(t, [][3]float64{{1, 2, 4}, {2, 3, 4}, {3, 1, 0}})

	path, err := dijkstra.ShortestPath(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 2, 3}, path)
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := buildGraph(t, [][3]float64{{1, 2, 1}})

	path, err := dijkstra.ShortestPath(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{2}, path)
}

func TestShortestPath_Errors(t *testing.T) {
	g := buildGraph(t, [][3]float64{{1, 2, 1}, {3, 4, 1}})

	_, err := dijkstra.ShortestPath(g, 1, 4)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, err = dijkstra.ShortestPath(g, 1, 99)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(g, 99, 1)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(nil, 1, 2)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_TieIsStable(t *testing.T) {
	// 1→2→4 and 1→3→4 both cost 2; the first declared branch wins every time.
	g := buildGraph(t, [][3]float64{{1, 2, 1}, {1, 3, 1}, {2, 4, 1}, {3, 4, 1}})

	for i := 0; i < 20; i++ {
		path, err := dijkstra.ShortestPath(g, 1, 4)
		require.NoError(t, err)
		require.Equal(t, []core.VertexID{1, 2, 4}, path)
	}
}

// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: topology constructors.
// Determinism:
//   - Vertices are numbered 1..n; successor lists are ascending.
//   - Edges of ParallelChain are inserted hop by hop, bucket by bucket.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	minPathNodes  = 2
	minTreeNodes  = 1
	minChainEdges = 1
)

// Path returns the directed path 1→2→…→n. Vertex n is a sink with no key.
// Complexity: O(n).
func Path(n int) (core.AdjList, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	adj := make(core.AdjList, n-1)
	for i := 1; i < n; i++ {
		adj[core.VertexID(i)] = []core.VertexID{core.VertexID(i + 1)}
	}

	return adj, nil
}

// BinaryTree returns a complete binary tree with n vertices in heap
// numbering: vertex v points to 2v and 2v+1 when they are ≤ n. Leaves have no key.
// Complexity: O(n).
func BinaryTree(n int) (core.AdjList, error) {
	if n < minTreeNodes {
		return nil, fmt.Errorf("BinaryTree: n=%d < min=%d: %w", n, minTreeNodes, ErrTooFewVertices)
	}
	adj := make(core.AdjList, n/2)
	for v := 1; 2*v <= n; v++ {
		kids := []core.VertexID{core.VertexID(2 * v)}
		if 2*v+1 <= n {
			kids = append(kids, core.VertexID(2*v+1))
		}
		adj[core.VertexID(v)] = kids
	}
	if n == 1 {
		adj[1] = []core.VertexID{}
	}

	return adj, nil
}

// ParallelChain returns a multigraph 1→2→…→n where every hop carries k
// parallel edges. Weights come from the configured WeightFn, called once per
// edge in insertion order.
//
// Errors:
//   - ErrTooFewVertices if n < 2 or k < 1.
//   - ErrBadWeightRange from WithUniformWeights.
//   - core errors if the WeightFn yields a negative or non-finite weight.
//
// Complexity: O(n·k).
func ParallelChain(n, k int, opts ...Option) (*core.MultiGraph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("ParallelChain: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	if k < minChainEdges {
		return nil, fmt.Errorf("ParallelChain: k=%d < min=%d: %w", k, minChainEdges, ErrTooFewVertices)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := core.NewMultiGraph()
	for i := 1; i < n; i++ {
		for j := 0; j < k; j++ {
			w := o.WeightFn(o.rng)
			if _, err := g.AddEdge(core.VertexID(i), core.VertexID(i+1), w); err != nil {
				return nil, fmt.Errorf("ParallelChain: AddEdge(%d,%d): %w", i, i+1, err)
			}
		}
	}

	return g, nil
}

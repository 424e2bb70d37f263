// Package dfs provides topological sort on directed adjacency lists.
//
// TopologicalSort orders vertices so that every edge u→v has u before v.
// It reuses the explicit frame stack of DetectCycle: a vertex is emitted when
// its frame is exhausted, and the emitted sequence is reversed at the end.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext makes TopologicalSort stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort returns every vertex of adj, successors without a key
// included, in topological order. Roots are tried in ascending order and
// successors in list order, so the result is deterministic.
//
// Errors:
//   - ErrCycleDetected, naming the vertex that closes the cycle.
//   - ctx.Err() when cancelled via WithCancelContext.
func TopologicalSort(adj core.AdjList, options ...TopoOption) ([]core.VertexID, error) {
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	state := make(map[core.VertexID]int, len(adj))
	post := make([]core.VertexID, 0, len(adj))

	for _, root := range sortedKeys(adj) {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack := []frame{{id: root}}

		for len(stack) > 0 {
			if err := opts.ctx.Err(); err != nil {
				return nil, err
			}
			top := &stack[len(stack)-1]
			nbrs := adj[top.id]
			if top.next == len(nbrs) {
				state[top.id] = Black
				post = append(post, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			u := nbrs[top.next]
			top.next++

			switch state[u] {
			case White:
				state[u] = Gray
				stack = append(stack, frame{id: u})
			case Gray:
				return nil, fmt.Errorf("%w: at vertex %d", ErrCycleDetected, u)
			}
		}
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return post, nil
}

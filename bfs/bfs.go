// Package bfs provides breadth-first search over a core.AdjList:
// bounded-distance neighbor discovery and a full walk returning
// fewest-hop distances, parent links and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Neighbors returns every vertex reachable from start in at most maxDistance
// hops. Expansion stops at vertices whose distance equals maxDistance.
//
// start itself is included only when a cycle leads back to it within the
// bound. maxDistance <= 0, a nil adj or an unknown start yield an empty set.
// Vertices missing from adj as keys are treated as sinks. Iteration order of
// the result is unspecified.
//
// Example: adj {1:[2], 2:[3], 3:[4]}, start 1, maxDistance 2 → {2, 3}.
//
// It runs Walk with MaxDepth = maxDistance. Every vertex the walk reaches
// besides start is a neighbor; start counts only if the walk sees an edge
// back into it, and such edges are offered to the filter only from vertices
// shallower than the bound.
//
// Complexity: O(V + E) within the bound.
func Neighbors(adj core.AdjList, start core.VertexID, maxDistance int) map[core.VertexID]struct{} {
	found := make(map[core.VertexID]struct{})
	if maxDistance <= 0 {
		return found
	}

	returns := false
	res, err := Walk(adj, start,
		WithMaxDepth(maxDistance),
		WithFilterNeighbor(func(_, nbr core.VertexID) bool {
			if nbr == start {
				returns = true
			}
			return true
		}),
	)
	if err != nil {
		return found
	}
	for _, v := range res.Order[1:] {
		found[v] = struct{}{}
	}
	if returns {
		found[start] = struct{}{}
	}

	return found
}

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     core.VertexID
	depth  int
	parent core.VertexID // zero for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     core.AdjList
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.VertexID]bool
	res     *Result
}

// Walk runs breadth-first search on adj starting from start.
// The start vertex must be a key of adj or appear in some successor list.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// the context error on cancellation, or any OnVisit error.
func Walk(adj core.AdjList, start core.VertexID, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !hasVertex(adj, start) {
		return nil, ErrStartVertexNotFound
	}

	n := len(adj)
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexID]bool, n),
		res: &Result{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}

	w.enqueue(start, 0, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if d > 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.id] {
			if !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			if !w.visited[nbr] {
				w.enqueue(nbr, nextDepth, item.id)
			}
		}
	}

	return nil
}

// hasVertex reports whether v is a key of adj or a successor of some key.
func hasVertex(adj core.AdjList, v core.VertexID) bool {
	if _, ok := adj[v]; ok {
		return true
	}
	for _, nbrs := range adj {
		for _, u := range nbrs {
			if u == v {
				return true
			}
		}
	}

	return false
}

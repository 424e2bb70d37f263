// SPDX-License-Identifier: MIT
//
// File: multigraph.go
// Role: Edge insertion and read-only queries over MultiGraph.
// Determinism:
//   - ParallelEdges returns edges in insertion order.
//   - Successors returns first-declaration order; Vertices is ascending.
// Concurrency:
//   - AddEdge under write lock, every query under read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge appends a directed edge from→to with the given weight and returns
// its ID inside the (from, to) bucket. Parallel edges are kept, never merged.
//
// Errors:
//   - ErrBadVertexID if from or to is not positive.
//   - ErrBadWeight if weight is NaN or ±Inf.
//   - ErrNegativeWeight if weight < 0.
//
// Complexity: O(1) amortized.
func (g *MultiGraph) AddEdge(from, to VertexID, weight float64) (int, error) {
	if from <= 0 || to <= 0 {
		return 0, fmt.Errorf("%w: %d→%d", ErrBadVertexID, from, to)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return 0, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	inner, ok := g.buckets[from]
	if !ok {
		inner = make(map[VertexID][]Edge)
		g.buckets[from] = inner
	}
	bucket, seen := inner[to]
	if !seen {
		g.succ[from] = append(g.succ[from], to)
	}

	id := len(bucket)
	inner[to] = append(bucket, Edge{From: from, To: to, ID: id, Weight: weight})
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.edgeCount++

	return id, nil
}

// ParallelEdges returns a copy of all edges u→v in insertion order.
// A pair without edges yields an empty slice.
// Complexity: O(k) where k is the bucket size.
func (g *MultiGraph) ParallelEdges(u, v VertexID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.buckets[u][v]
	out := make([]Edge, len(bucket))
	copy(out, bucket)

	return out
}

// MinEdge returns the parallel edge u→v with strictly minimum weight.
// On equal weights the earliest declared edge wins. ok is false when u→v has no edge.
// Complexity: O(k).
func (g *MultiGraph) MinEdge(u, v VertexID) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.buckets[u][v]
	if len(bucket) == 0 {
		return Edge{}, false
	}
	best := bucket[0]
	for _, e := range bucket[1:] {
		if e.Weight < best.Weight {
			best = e
		}
	}

	return best, true
}

// HasVertex reports whether v is an endpoint of at least one edge.
func (g *MultiGraph) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[v]

	return ok
}

// HasEdge reports whether at least one edge u→v exists.
func (g *MultiGraph) HasEdge(u, v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.buckets[u][v]) > 0
}

// Successors returns the distinct targets of edges leaving u,
// in the order their first edge was declared.
func (g *MultiGraph) Successors(u VertexID) []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]VertexID(nil), g.succ[u]...)
}

// Vertices returns every vertex ID in ascending order.
// Complexity: O(V log V).
func (g *MultiGraph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedVertices(g)
}

// VertexCount returns the number of distinct edge endpoints.
func (g *MultiGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edges, parallel ones included.
func (g *MultiGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// ForEachEdge calls fn for every edge: sources ascending, successors in
// declaration order, parallel edges by ID. Iteration stops when fn returns false.
// fn runs under the read lock and must not call AddEdge on the same graph.
func (g *MultiGraph) ForEachEdge(fn func(Edge) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, u := range sortedVertices(g) {
		for _, v := range g.succ[u] {
			for _, e := range g.buckets[u][v] {
				if !fn(e) {
					return
				}
			}
		}
	}
}

// AdjList returns the simple adjacency view of g: every vertex maps to its
// distinct successors in declaration order. Sinks map to an empty slice.
// Complexity: O(V + E').
func (g *MultiGraph) AdjList() AdjList {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make(AdjList, len(g.vertices))
	for v := range g.vertices {
		adj[v] = append([]VertexID{}, g.succ[v]...)
	}

	return adj
}

// sortedVertices returns the vertex set ascending. Caller holds g.mu.
func sortedVertices(g *MultiGraph) []VertexID {
	out := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

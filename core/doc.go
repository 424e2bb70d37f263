// SPDX-License-Identifier: MIT
//
// Package core defines the weighted directed multigraph used by every
// shortest-trail routine, together with the plain AdjList view consumed by
// the traversal packages.
//
// A MultiGraph G = (V, E) has these properties:
//
//   - Vertices are positive integers (VertexID) and exist only as edge
//     endpoints; there is no vertex registry and no isolated vertex.
//   - Edges are directed and carry a finite, non-negative float64 weight.
//   - Any ordered pair (u, v) may hold several parallel edges. They live in a
//     bucket buckets[u][v] in insertion order, and Edge.ID is the index inside
//     that bucket. Edge identity is therefore unique per (u, v) only.
//   - A pair without edges means "no direct edge", never a zero-weight edge.
//
// Lifecycle:
//
//	g := core.NewMultiGraph()
//	_, _ = g.AddEdge(1, 2, 5.0) // ID 0 in bucket 1→2
//	_, _ = g.AddEdge(1, 2, 2.0) // ID 1 in bucket 1→2
//	e, _ := g.MinEdge(1, 2)     // e.ID == 1, e.Weight == 2.0
//
// The graph is built once (usually by package loader) and read afterwards.
// A single sync.RWMutex guards the storage, so concurrent readers never
// contend with each other.
//
// AdjList is a separate, unweighted view: vertex → ordered successor list.
// Build one with MultiGraph.AdjList or AdjListFromMatrix.
//
// Errors:
//
//	ErrBadVertexID          - vertex ID is zero or negative.
//	ErrNegativeWeight       - edge weight below zero.
//	ErrBadWeight            - NaN or infinite edge weight.
//	ErrVertexNotFound       - vertex is not an endpoint of any edge.
//	ErrNonSquareMatrix      - adjacency matrix is not n×n.
//	ErrNegativeMultiplicity - adjacency matrix cell below zero.
package core

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID, Edge, MultiGraph and AdjList declarations, sentinel errors,
//       and the NewMultiGraph constructor.
// Policy:
//   - Vertices are plain integer keys; no vertex objects are allocated.
//   - Edge identity is bucket-local: Edge.ID is unique only per (From, To).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a vertex identifier that is not a positive integer.
	ErrBadVertexID = errors.New("core: vertex ID must be positive")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight is not finite")

	// ErrVertexNotFound indicates an operation referenced a vertex that is not an endpoint of any edge.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNonSquareMatrix indicates an adjacency matrix whose rows differ in length from its row count.
	ErrNonSquareMatrix = errors.New("core: adjacency matrix is not square")

	// ErrNegativeMultiplicity indicates an adjacency matrix cell below zero.
	ErrNegativeMultiplicity = errors.New("core: negative edge multiplicity")
)

// VertexID identifies a vertex. Valid identifiers are positive.
type VertexID int

// Edge is one directed, weighted connection of a MultiGraph.
//
// ID is the position of the edge inside its (From, To) bucket, starting at 0
// in declaration order. Two edges with different endpoints may share an ID.
type Edge struct {
	From   VertexID
	To     VertexID
	ID     int
	Weight float64
}

// MultiGraph is a weighted directed multigraph: any ordered vertex pair may
// carry several parallel edges, each with its own weight.
//
// The graph is meant to be built once (see package loader) and then queried.
// All methods are safe for concurrent use; readers never block each other.
type MultiGraph struct {
	mu sync.RWMutex

	// buckets[from][to] holds the parallel edges from→to in insertion order.
	buckets map[VertexID]map[VertexID][]Edge

	// succ[from] lists distinct successors of from in first-declaration order.
	succ map[VertexID][]VertexID

	// vertices is the implicit vertex set (all edge endpoints).
	vertices map[VertexID]struct{}

	edgeCount int
}

// NewMultiGraph returns an empty MultiGraph.
// Complexity: O(1).
func NewMultiGraph() *MultiGraph {
	return &MultiGraph{
		buckets:  make(map[VertexID]map[VertexID][]Edge),
		succ:     make(map[VertexID][]VertexID),
		vertices: make(map[VertexID]struct{}),
	}
}

// AdjList is a simple directed adjacency view: vertex → ordered successors.
// Repeated successors encode edge multiplicity where the producer keeps it.
type AdjList map[VertexID][]VertexID

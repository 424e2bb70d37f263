// SPDX-License-Identifier: MIT
//
// File: conversions.go
// Role: Adjacency-matrix → AdjList conversion.

package core

import "fmt"

// AdjListFromMatrix converts a square multiplicity matrix into an AdjList.
//
// Cell m[i][j] is the number of edges from vertex i+1 to vertex j+1. The
// resulting list for vertex i+1 holds j+1 repeated m[i][j] times, with j
// ascending. Every row vertex gets an entry, even with no successors.
//
// Errors:
//   - ErrNonSquareMatrix if any row length differs from len(m).
//   - ErrNegativeMultiplicity if any cell is below zero.
//
// Time Complexity: O(n² + E)
func AdjListFromMatrix(m [][]int) (AdjList, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquareMatrix, i, len(row), n)
		}
	}

	adj := make(AdjList, n)
	for i, row := range m {
		nbrs := make([]VertexID, 0, n)
		for j, count := range row {
			if count < 0 {
				return nil, fmt.Errorf("%w: cell [%d][%d]=%d", ErrNegativeMultiplicity, i, j, count)
			}
			for k := 0; k < count; k++ {
				nbrs = append(nbrs, VertexID(j+1))
			}
		}
		adj[VertexID(i+1)] = nbrs
	}

	return adj, nil
}

// Clone returns a deep copy of a.
func (a AdjList) Clone() AdjList {
	if a == nil {
		return nil
	}
	out := make(AdjList, len(a))
	for v, nbrs := range a {
		out[v] = append([]VertexID{}, nbrs...)
	}

	return out
}

// Package dfs defines shared state constants and errors for depth-first
// traversal, cycle detection and topological sort over a core.AdjList.
package dfs

import "errors"

// Visitation states of a vertex during cycle detection and topological sort.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current exploration path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

// ExampleRecursive contrasts the two traversal orders on the same list.
func ExampleRecursive() {
	adj := core.AdjList{1: {2, 3}, 2: {4}, 3: {4}}

	fmt.Println(dfs.Recursive(adj, 1))
	fmt.Println(dfs.Iterative(adj, 1))
	// Output:
	// [1 2 4 3]
	// [1 3 4 2]
}

// ExampleDetectCycle reports the closed cycle found in a small graph.
func ExampleDetectCycle() {
	adj := core.AdjList{1: {2}, 2: {3}, 3: {1}}

	cycle, ok := dfs.DetectCycle(adj)
	fmt.Println(ok, cycle, dfs.IsAcyclic(adj))
	// Output: true [1 2 3 1] false
}

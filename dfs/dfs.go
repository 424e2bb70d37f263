// Package dfs implements depth-first search over a core.AdjList.
//
// Recursive and Iterative both return vertices in first-visit order and
// record each vertex at most once. They differ in successor order:
// Recursive descends into successors in list order, Iterative pushes them
// onto an explicit stack and therefore explores the last successor first.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the visited set plus the recursion or explicit stack.
package dfs

import "github.com/katalvlaran/graphkit/core"

// Recursive returns the vertices reachable from start in recursive DFS
// first-visit order, start first. Vertices absent from adj as keys are sinks.
func Recursive(adj core.AdjList, start core.VertexID) []core.VertexID {
	w := &walker{
		adj:     adj,
		visited: make(map[core.VertexID]bool, len(adj)),
		order:   make([]core.VertexID, 0, len(adj)),
	}
	w.visit(start)

	return w.order
}

// walker holds the single shared visited set for Recursive.
type walker struct {
	adj     core.AdjList
	visited map[core.VertexID]bool
	order   []core.VertexID
}

func (w *walker) visit(v core.VertexID) {
	w.visited[v] = true
	w.order = append(w.order, v)
	for _, u := range w.adj[v] {
		if !w.visited[u] {
			w.visit(u)
		}
	}
}

// Iterative returns the vertices reachable from start using an explicit
// stack: pop a vertex, record it if new, then push its unvisited successors
// in list order.
func Iterative(adj core.AdjList, start core.VertexID) []core.VertexID {
	visited := make(map[core.VertexID]bool, len(adj))
	order := make([]core.VertexID, 0, len(adj))
	stack := []core.VertexID{start}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		order = append(order, v)
		for _, u := range adj[v] {
			if !visited[u] {
				stack = append(stack, u)
			}
		}
	}

	return order
}

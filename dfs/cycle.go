// Package dfs implements cycle detection for directed adjacency lists.
//
// Both IsAcyclic and DetectCycle run an explicit-stack DFS with three-color
// marking over one shared state map: a successor that is Gray (still on the
// current path) closes a cycle, while Black successors were explored on an
// earlier branch and are never revisited. A self-loop is a cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// IsAcyclic reports whether adj contains no directed cycle.
func IsAcyclic(adj core.AdjList) bool {
	_, found := DetectCycle(adj)

	return !found
}

// DetectCycle returns the first cycle found, closed as [v, ..., v], and true.
// Roots are tried in ascending vertex order and successors in list order,
// so the reported cycle is deterministic. Returns (nil, false) for a DAG.
func DetectCycle(adj core.AdjList) ([]core.VertexID, bool) {
	state := make(map[core.VertexID]int, len(adj))
	for _, root := range sortedKeys(adj) {
		if state[root] != White {
			continue
		}
		if cycle := findFrom(adj, root, state); cycle != nil {
			return cycle, true
		}
	}

	return nil, false
}

// frame is one level of the explicit DFS stack: a vertex and the index of
// the next successor to examine.
type frame struct {
	id   core.VertexID
	next int
}

// findFrom explores from root and returns a closed cycle, or nil.
func findFrom(adj core.AdjList, root core.VertexID, state map[core.VertexID]int) []core.VertexID {
	stack := []frame{{id: root}}
	state[root] = Gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := adj[top.id]
		if top.next == len(nbrs) {
			state[top.id] = Black
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
			return closeCycle(stack, u)
		}
	}

	return nil
}

// closeCycle cuts the current path at u and appends u again.
func closeCycle(stack []frame, u core.VertexID) []core.VertexID {
	idx := len(stack) - 1
	for idx > 0 && stack[idx].id != u {
		idx--
	}
	cycle := make([]core.VertexID, 0, len(stack)-idx+1)
	for _, f := range stack[idx:] {
		cycle = append(cycle, f.id)
	}

	return append(cycle, u)
}

// sortedKeys returns the keys of adj in ascending order.
func sortedKeys(adj core.AdjList) []core.VertexID {
	keys := make([]core.VertexID, 0, len(adj))
	for v := range adj {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

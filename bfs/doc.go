// Package bfs provides breadth-first search over a core.AdjList.
//
// What
//
//   - Neighbors: bounded-distance reachability. Returns the set of vertices
//     reachable from a start vertex in 1..maxDistance hops. The start vertex
//     is not part of the answer unless a cycle brings the search back to it.
//   - Walk: full traversal returning a Result with
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Walk honors an OnVisit hook (may abort with an error), neighbor
//     filtering, MaxDepth (d>0) or explicit "no limit" (d==0), and context
//     cancellation.
//
// Determinism
//
//	Successors are expanded in AdjList order, so Walk's visit sequence is
//	reproducible. Neighbors guarantees set membership only.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue + visited + result maps)
//
// Errors
//
//   - ErrGraphNil            nil adjacency list passed to Walk.
//   - ErrStartVertexNotFound start vertex is neither a key nor a successor.
//   - ErrOptionViolation     negative MaxDepth.
package bfs

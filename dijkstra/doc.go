// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.MultiGraph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source vertex to
//     every vertex in O((V + E) log V).
//   - Parallel edges collapse to their minimum weight for the search; which
//     concrete edge is used on each hop is decided later by package trail.
//   - ShortestPath rebuilds one vertex sequence from the predecessor map.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.MultiGraph.
//   - ErrEmptySource:    Dijkstra called without Source(v).
//   - ErrVertexNotFound: source or target is not an endpoint of any edge
//     (matches core.ErrVertexNotFound too).
//   - ErrNoPath:         the target is unreachable.
//   - ErrBadMaxDistance: negative or NaN MaxDistance.
//
// API reference:
//
//	func Dijkstra(g *core.MultiGraph, opts ...Option) (dist, prev, err)
//	func ShortestPath(g *core.MultiGraph, from, to core.VertexID) ([]core.VertexID, error)
//
// Tie-breaking:
//
//	Among equal-weight paths the first one found wins: relaxation uses a strict
//	"<", the heap breaks distance ties by push order and successors are scanned
//	in declaration order. Callers should rely only on minimality.
//
// Thread safety:
//
//	Dijkstra only reads the graph, so many searches may share one MultiGraph.
package dijkstra

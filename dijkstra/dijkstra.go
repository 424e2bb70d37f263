// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// multigraphs.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing each outgoing vertex pair with the minimum weight
// among its parallel edges.
//
// Complexity:
//
//   - Time:  O((V + E) log V), plus O(E) to scan parallel buckets.
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Notes on implementation choices:
//
//   - Weights are validated by core.MultiGraph on insertion, so no negative
//     weight can reach the relaxation loop.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Heap entries are ordered by (distance, push sequence) and successors are
//     relaxed in declaration order, so ties always resolve the same way.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex → minimum distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: if ReturnPath, vertex → predecessor on one shortest path. The source
//     and unreached vertices have no entry. Nil otherwise.
//   - err:  ErrBadMaxDistance, ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
func Dijkstra(g *core.MultiGraph, opts ...Option) (map[core.VertexID]float64, map[core.VertexID]core.VertexID, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !cfg.hasSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}

	// 2) Prepare state
	r := newRunner(g, cfg)
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the vertex sequence of one minimum-weight path from
// `from` to `to`, both included. from == to yields [from] when the vertex exists.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexNotFound if either endpoint is not in g.
//   - ErrNoPath if `to` is unreachable.
func ShortestPath(g *core.MultiGraph, from, to core.VertexID) ([]core.VertexID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, to)
	}

	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return nil, err
	}
	if math.IsInf(dist[to], 1) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, from, to)
	}

	// walk predecessors back to the source, then reverse
	path := []core.VertexID{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.MultiGraph                // input graph; read-only
	options Options                         // validated configuration
	dist    map[core.VertexID]float64       // best known distance from Source
	prev    map[core.VertexID]core.VertexID // predecessor on the shortest path
	visited map[core.VertexID]bool          // finalized vertices
	pq      nodePQ                          // lazy min-heap
	seq     int                             // push counter for stable ordering
}

func newRunner(g *core.MultiGraph, cfg Options) *runner {
	n := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.VertexID]float64, n),
		prev:    make(map[core.VertexID]core.VertexID, n),
		visited: make(map[core.VertexID]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every distance to +Inf and seeds the heap with the source.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process pops the closest unfinished vertex until the heap drains or the
// next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries every successor of u through its lightest parallel edge.
func (r *runner) relax(u core.VertexID) {
	for _, v := range r.g.Successors(u) {
		e, ok := r.g.MinEdge(u, v)
		if !ok {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict "<" keeps the first-found predecessor on ties
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

func (r *runner) push(id core.VertexID, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// nodeItem is a heap entry: a vertex with its tentative distance.
type nodeItem struct {
	id   core.VertexID
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

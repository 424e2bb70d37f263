// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Segment and Trail types, sentinel errors and batch options.

package trail

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/graphkit/core"
)

var (
	// ErrNotFound indicates that the end vertex cannot be reached from the
	// start vertex, or that one of them is absent from the graph.
	// The underlying dijkstra error is kept in the chain.
	ErrNotFound = errors.New("trail: no trail between vertices")

	// ErrNilGraph indicates a nil *core.MultiGraph.
	ErrNilGraph = errors.New("trail: graph is nil")
)

// Segment is one hop of a resolved trail: the concrete parallel edge chosen
// between VertexStart and VertexEnd.
//
// EdgeID indexes the (VertexStart, VertexEnd) bucket of the source graph.
// Weight is the lightest parallel edge for this hop, not a path-wide optimum.
type Segment struct {
	VertexStart core.VertexID
	VertexEnd   core.VertexID
	EdgeID      int
	Weight      float64
}

// Trail is an ordered sequence of hops. For consecutive segments
// t[i].VertexEnd == t[i+1].VertexStart. An empty trail means start == end.
type Trail []Segment

// Total returns the sum of segment weights.
func (t Trail) Total() float64 {
	var sum float64
	for _, s := range t {
		sum += s.Weight
	}

	return sum
}

// Vertices returns the visited vertex sequence, start and end included.
// An empty trail yields nil.
func (t Trail) Vertices() []core.VertexID {
	if len(t) == 0 {
		return nil
	}
	out := make([]core.VertexID, 0, len(t)+1)
	out = append(out, t[0].VertexStart)
	for _, s := range t {
		out = append(out, s.VertexEnd)
	}

	return out
}

// String renders t with Format.
func (t Trail) String() string { return Format(t) }

// Query is one start/end request for FindAll.
type Query struct {
	Start core.VertexID
	End   core.VertexID
}

// Options configures FindAll.
type Options struct {
	// Concurrency bounds the number of searches in flight. Values < 1 mean GOMAXPROCS.
	Concurrency int
}

// Option configures Options.
type Option func(*Options)

// WithConcurrency limits FindAll to n parallel searches.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// DefaultOptions returns Options sized to GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Concurrency: runtime.GOMAXPROCS(0)}
}

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted multigraphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// Between two vertices only the lightest parallel edge matters, so the
// search runs over per-pair minimum weights and never over edge identities.
//
// Options:
//
//	– Source:      ID of the starting vertex (must be present in the graph).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond it are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptySource     if no Source option was supplied.
//	– ErrVertexNotFound  if a source or target vertex does not exist in the graph.
//	– ErrNoPath          if the target cannot be reached from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex was configured.
	ErrEmptySource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.MultiGraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested vertex is not part of the graph.
	// It wraps core.ErrVertexNotFound.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrNoPath indicates that the target vertex is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be present in the graph).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – vertices farther than this are not explored. Default +Inf.
type Options struct {
	Source      core.VertexID
	ReturnPath  bool
	MaxDistance float64

	hasSource bool
	err       error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. It must be supplied.
func Source(v core.VertexID) Option {
	return func(o *Options) {
		o.Source = v
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are not explored.
// A negative or NaN value is recorded and surfaced as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no predecessor map and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Walk options, sentinel errors and the Result type.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphkit/core"
)

var (
	// ErrStartVertexNotFound means start is neither a key nor a successor in the list.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil means Walk received a nil AdjList.
	ErrGraphNil = errors.New("bfs: adjacency list is nil")

	// ErrOptionViolation wraps an invalid option value, e.g. a negative depth.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option mutates Options. Invalid values are stored and reported by Walk.
type Option func(*Options)

// Options tunes Walk.
type Options struct {
	// Ctx is checked before each dequeue.
	Ctx context.Context

	// OnVisit runs as a vertex leaves the queue; a non-nil error ends the walk.
	OnVisit func(id core.VertexID, depth int) error

	// MaxDepth bounds expansion: vertices at depth MaxDepth are visited but
	// their successors are not. Zero means unbounded.
	MaxDepth int

	// FilterNeighbor sees every edge curr→neighbor from an expanded vertex,
	// including edges into already-visited vertices; false skips the edge.
	FilterNeighbor func(curr, neighbor core.VertexID) bool

	err error
}

// DefaultOptions is unbounded, unfiltered and uncancellable.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(core.VertexID, int) error { return nil },
		FilterNeighbor: func(_, _ core.VertexID) bool { return true },
	}
}

// WithContext cancels the walk with ctx. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook. A nil fn is ignored.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits expansion to d hops; 0 lifts the limit and d < 0 is
// reported as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter. A nil fn is ignored.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is what Walk discovered.
type Result struct {
	// Order lists vertices as they left the queue, start first.
	Order []core.VertexID
	// Depth maps each reached vertex to its hop count from start.
	Depth map[core.VertexID]int
	// Parent maps each reached vertex except start to its BFS-tree parent.
	Parent map[core.VertexID]core.VertexID
}

// PathTo returns a fewest-hop path start→…→dest, or an error if dest was not reached.
func (r *Result) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	var path []core.VertexID
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// SPDX-License-Identifier: MIT
//
// Package trail finds and renders minimum-weight trails in a weighted
// multigraph.
//
// FindMinTrail works in two explicit phases:
//
//  1. dijkstra.ShortestPath picks the vertex sequence, using for every vertex
//     pair the minimum weight among its parallel edges.
//  2. Each consecutive pair of that sequence is resolved to its lightest
//     parallel edge (earliest declared on ties), giving one Segment per hop.
//
// Edge identity never enters the search graph; it is attached only after the
// vertex sequence is fixed. Because phase 1 already used per-pair minima, the
// trail total always equals the shortest distance.
package trail

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dijkstra"
)

// FindMinTrail returns the minimum-weight trail from start to end.
//
// start == end returns an empty, non-nil Trail without searching, even if the
// vertex is absent from g. Unreachable or unknown vertices fail with ErrNotFound.
func FindMinTrail(g *core.MultiGraph, start, end core.VertexID) (Trail, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == end {
		return Trail{}, nil
	}

	way, err := dijkstra.ShortestPath(g, start, end)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) || errors.Is(err, dijkstra.ErrVertexNotFound) {
			return nil, fmt.Errorf("%w: %d→%d: %w", ErrNotFound, start, end, err)
		}
		return nil, err
	}

	t := make(Trail, 0, len(way)-1)
	for i := 0; i+1 < len(way); i++ {
		e, ok := g.MinEdge(way[i], way[i+1])
		if !ok {
			// the path was built from existing edges
			return nil, fmt.Errorf("trail: hop %d→%d has no edge", way[i], way[i+1])
		}
		t = append(t, Segment{
			VertexStart: e.From,
			VertexEnd:   e.To,
			EdgeID:      e.ID,
			Weight:      e.Weight,
		})
	}

	return t, nil
}

// FindAll resolves many queries against one read-only graph in parallel.
// Results come back in query order. The first failing query cancels the rest
// and its error is returned.
func FindAll(ctx context.Context, g *core.MultiGraph, queries []Query, opts ...Option) ([]Trail, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultOptions().Concurrency
	}

	out := make([]Trail, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Concurrency)
	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := FindMinTrail(g, q.Start, q.End)
			if err != nil {
				return fmt.Errorf("trail: query %d: %w", i, err)
			}
			out[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

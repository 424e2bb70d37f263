// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: sentinel errors, WeightFn helpers and functional options.

package builder

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadWeightRange indicates a weight range with min < 0 or max < min.
var ErrBadWeightRange = errors.New("builder: invalid weight range")

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces one edge weight. It must be deterministic for a given
// rng state; rng may be nil when no seed was configured.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns w.
func ConstantWeightFn(w float64) WeightFn {
	return func(_ *rand.Rand) float64 { return w }
}

// UniformWeightFn samples uniformly in [min, max). Without an rng it falls
// back to min so unseeded builds stay deterministic.
func UniformWeightFn(min, max float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// DescendingWeightFn yields start, start-1, … on successive calls, wrapping
// back to start after reaching 1. Useful when every bucket should hold its
// lightest edge last.
func DescendingWeightFn(start int) WeightFn {
	next := start
	return func(_ *rand.Rand) float64 {
		w := float64(next)
		next--
		if next < 1 {
			next = start
		}
		return w
	}
}

// Options configures weighted constructors.
type Options struct {
	WeightFn WeightFn
	rng      *rand.Rand
	err      error
}

// Option configures Options.
type Option func(*Options)

// WithSeed freezes the random source used by WeightFn.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the weight generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFn = fn
		}
	}
}

// WithUniformWeights draws weights uniformly from [min, max).
// An invalid range is surfaced as ErrBadWeightRange by the constructor.
func WithUniformWeights(min, max float64) Option {
	return func(o *Options) {
		if min < 0 || max < min {
			o.err = fmt.Errorf("%w: min=%g max=%g", ErrBadWeightRange, min, max)
			return
		}
		o.WeightFn = UniformWeightFn(min, max)
	}
}

// DefaultOptions returns constant unit weights and no random source.
func DefaultOptions() Options {
	return Options{WeightFn: DefaultWeightFn}
}

// Package dijkstra computes single-source shortest paths over the same dense
// edge-list model as floydwarshall, for graphs with non-negative weights.
//
// It is an independent oracle: CrossCheck recomputes every row of an
// all-pairs distance matrix from scratch and reports the first disagreement.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E), the heap holds up to E entries (lazy decrease-key).
//
// Options:
//
//	– MaxDistance: vertices farther than this are left Unreachable. CrossCheck
//	  skips cells beyond the cap.
//
// Every representable weight is a passable edge, math.MaxInt64 included, so
// results line up with floydwarshall cell for cell.
//
// Errors (sentinel):
//
//	– ErrNegativeWeight   if any edge weight is negative.
//	– ErrSourceOutOfRange if the source is not in [0, n).
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrMismatch         if CrossCheck finds a differing distance.
//
// Edge ingestion follows floydwarshall: endpoints are validated first and a
// repeated (u, v) pair keeps the weight of the later edge.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrSourceOutOfRange indicates a source vertex outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrMismatch indicates that an all-pairs matrix disagrees with Dijkstra.
	ErrMismatch = errors.New("dijkstra: distance mismatch")
)

// Options configures a single run.
//
// MaxDistance – cap on explored distances. Default math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64

	err error
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns Options without a distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// WithMaxDistance stops exploration beyond d. d < 0 is recorded as ErrBadMaxDistance.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// newOptions applies opts over DefaultOptions and returns any recorded
// option error.
func newOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// Package floydwarshall defines the edge type, configuration options and
// sentinel errors for the all-pairs shortest path engine.
//
// Options:
//
//	– Ctx:     cancellation checked once before every pivot k.
//	– Workers: number of goroutines relaxing rows for a fixed pivot (≥ 1).
//	– OnPivot: progress hook invoked once per pivot k, on the calling goroutine.
//
// Errors (sentinel):
//
//	– ErrInvalidVertexCount if numVertices < 0.
//	– ErrEdgeOutOfRange     if an edge endpoint lies outside [0, numVertices).
//	– ErrVertexOutOfRange   if a path query names a vertex outside the matrix.
//	– ErrPathLoop           if path reconstruction exceeds numVertices hops.
//	– ErrNoSuchEdge         if PathWeight meets a hop with no edge.
//	– ErrOptionViolation    if an invalid Option was supplied.
package floydwarshall

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine and its helpers.
var (
	// ErrInvalidVertexCount indicates a negative vertex count.
	ErrInvalidVertexCount = errors.New("floydwarshall: vertex count must be non-negative")

	// ErrEdgeOutOfRange indicates an edge whose source or destination is not in [0, n).
	ErrEdgeOutOfRange = errors.New("floydwarshall: edge endpoint out of range")

	// ErrVertexOutOfRange indicates a query vertex outside the matrix order.
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex out of range")

	// ErrPathLoop indicates that following next hops did not reach the target
	// within n steps, which only happens on matrices affected by a negative cycle.
	ErrPathLoop = errors.New("floydwarshall: path reconstruction did not terminate")

	// ErrNoSuchEdge indicates that a path uses a hop that is not an input edge.
	ErrNoSuchEdge = errors.New("floydwarshall: no edge between consecutive path vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("floydwarshall: invalid option supplied")
)

// Edge is a directed, weighted connection From → To.
// Vertices are dense indices in [0, numVertices).
type Edge struct {
	From   int   `yaml:"from" toml:"from"`
	To     int   `yaml:"to" toml:"to"`
	Weight int64 `yaml:"weight" toml:"weight"`
}

// Option configures Compute via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Compute.
type Option func(*Options)

// Options holds the tunables of a single Compute call.
type Options struct {
	// Ctx allows cancellation between pivots.
	Ctx context.Context

	// Workers is the number of goroutines sharing the rows of one pivot round.
	// 1 runs the classic single-threaded triple loop.
	Workers int

	// OnPivot is called before pivot k is relaxed.
	OnPivot func(k int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a single worker
//   - a no-op OnPivot hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		OnPivot: func(int) {},
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines used per pivot round.
//
//	w ≥ 1: use w workers (capped at numVertices at run time)
//	w < 1: invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithOnPivot registers a progress callback. nil is ignored.
func WithOnPivot(fn func(k int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPivot = fn
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) over int64 weights with next-hop tracking.
//   - Deterministic loop order (k → i → j), overflow-checked relaxation,
//     negative-cycle detection from the diagonal.
//
// Contract:
//   - Vertices are dense indices [0, n); edges are validated before any work.
//   - Unreachable / NoHop are tagged values, never arithmetic operands.

package floydwarshall

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/apsp/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opCompute = "Compute"
	opPath    = "ReconstructPath"
	opWeight  = "PathWeight"
)

// Result is the output of Compute. The caller owns both matrices.
type Result struct {
	// Dist[i][j] is the shortest known i→j weight, or matrix.Unreachable.
	Dist *matrix.DistanceMatrix

	// Next[i][j] is the vertex after i on a shortest i→j path, or matrix.NoHop.
	Next *matrix.NextMatrix

	// NegativeCycle is true iff some Dist[i][i] < 0. Once set, every other
	// entry must be treated as unreliable.
	NegativeCycle bool
}

// Compute runs Floyd–Warshall on a graph of n vertices given as an edge list.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. n ≥ 0 (ErrInvalidVertexCount).
//  3. Every edge endpoint in [0, n) (ErrEdgeOutOfRange, wrapped with the edge index).
//
// No matrix is allocated before validation succeeds.
//
// Edge ingestion follows input order and the last edge for a given (u, v) wins.
// Self-loops only ever lower the diagonal: a negative self-loop sets
// dist[i][i] = w and next[i][i] = i, a non-negative one leaves (or resets) the
// diagonal to 0 and NoHop.
//
// Relaxation uses a snapshot of the pivot row per round, so rows may be split
// across Workers goroutines with a barrier between pivots; the output is the
// same for any worker count.
//
// Complexity:
//
//   - Time:  O(n³ + E)
//   - Space: O(n²) for the two matrices plus O(n) pivot snapshot.
func Compute(n int, edges []Edge, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", opCompute, n, ErrInvalidVertexCount)
	}
	if err := ValidateEdges(n, edges); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	dist, err := matrix.NewDistanceMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	next, err := matrix.NewNextMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	s := &solver{
		n:        n,
		dist:     dist.Raw(),
		next:     next.Raw(),
		pivotRow: make([]matrix.Distance, n),
		opts:     cfg,
	}
	s.seed(edges)
	if err = s.run(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	return &Result{Dist: dist, Next: next, NegativeCycle: s.negativeCycle()}, nil
}

// ValidateEdges checks that every endpoint lies in [0, n).
// The first offending edge is reported with its index.
// Complexity: O(E).
func ValidateEdges(n int, edges []Edge) error {
	for idx, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("edge #%d %d→%d (n=%d): %w", idx, e.From, e.To, n, ErrEdgeOutOfRange)
		}
	}

	return nil
}

// solver holds the mutable state of one Compute call.
type solver struct {
	n        int               // matrix order
	dist     []matrix.Distance // row-major distances (live matrix storage)
	next     []matrix.Hop      // row-major next hops (live matrix storage)
	pivotRow []matrix.Distance // snapshot of dist[k][*] for the current round
	opts     Options
}

// seed writes the edges into the freshly initialized matrices, in input order.
func (s *solver) seed(edges []Edge) {
	var idx int
	for _, e := range edges {
		idx = e.From*s.n + e.To
		if e.From == e.To {
			// The diagonal never rises above 0.
			if e.Weight < 0 {
				s.dist[idx] = matrix.Finite(e.Weight)
				s.next[idx] = matrix.HopTo(e.To)
			} else {
				s.dist[idx] = matrix.Finite(0)
				s.next[idx] = matrix.NoHop
			}
			continue
		}
		s.dist[idx] = matrix.Finite(e.Weight)
		s.next[idx] = matrix.HopTo(e.To)
	}
}

// run performs the n pivot rounds, checking for cancellation before each.
func (s *solver) run() error {
	workers := s.opts.Workers
	if workers > s.n {
		workers = s.n
	}

	for k := 0; k < s.n; k++ {
		select {
		case <-s.opts.Ctx.Done():
			return fmt.Errorf("pivot %d: %w", k, s.opts.Ctx.Err())
		default:
		}
		s.opts.OnPivot(k)

		copy(s.pivotRow, s.dist[k*s.n:(k+1)*s.n])
		if workers <= 1 {
			for i := 0; i < s.n; i++ {
				s.relaxRow(k, i)
			}
			continue
		}
		if err := s.parallelRound(k, workers); err != nil {
			return fmt.Errorf("pivot %d: %w", k, err)
		}
	}

	return nil
}

// parallelRound splits the rows of pivot k into contiguous blocks, one per
// worker. Each worker writes only its own rows; Wait is the barrier that
// commits round k before k+1 starts.
func (s *solver) parallelRound(k, workers int) error {
	g, ctx := errgroup.WithContext(s.opts.Ctx)
	block := (s.n + workers - 1) / workers
	for lo := 0; lo < s.n; lo += block {
		lo, hi := lo, min(lo+block, s.n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				s.relaxRow(k, i)
			}
			return nil
		})
	}

	return g.Wait()
}

// relaxRow relaxes dist[i][*] through pivot k.
// dist[i][k] and next[i][k] are read once; row k comes from the snapshot.
func (s *solver) relaxRow(k, i int) {
	base := i * s.n
	ik := s.dist[base+k]
	if !ik.IsFinite() {
		// i cannot reach k: no path via k can improve row i.
		return
	}
	hop := s.next[base+k]

	var (
		kj, cand matrix.Distance
		ok       bool
	)
	for j := 0; j < s.n; j++ {
		kj = s.pivotRow[j]
		if !kj.IsFinite() {
			continue
		}
		cand, ok = ik.Add(kj)
		if !ok {
			// Overflowing sum is treated as "not smaller".
			continue
		}
		if cand.Less(s.dist[base+j]) {
			s.dist[base+j] = cand
			s.next[base+j] = hop
		}
	}
}

// negativeCycle reports whether any diagonal entry is negative.
func (s *solver) negativeCycle() bool {
	for i := 0; i < s.n; i++ {
		if w, _ := s.dist[i*s.n+i].Value(); w < 0 {
			return true
		}
	}

	return false
}

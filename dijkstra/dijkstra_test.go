// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, last-edge-wins ingestion, MaxDistance and
// agreement with the all-pairs engine.
package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/dijkstra"
	"github.com/katalvlaran/apsp/floydwarshall"
	"github.com/katalvlaran/apsp/matrix"
)

// sample is the 5-vertex demo graph.
var sample = []floydwarshall.Edge{
	{From: 0, To: 1, Weight: 10},
	{From: 0, To: 3, Weight: 5},
	{From: 1, To: 3, Weight: 2},
	{From: 1, To: 2, Weight: 1},
	{From: 2, To: 4, Weight: 4},
	{From: 3, To: 1, Weight: 3},
	{From: 3, To: 2, Weight: 9},
	{From: 3, To: 4, Weight: 2},
	{From: 4, To: 2, Weight: 6},
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestFrom_Validation(t *testing.T) {
	_, err := dijkstra.ShortestFrom(-1, nil, 0)
	require.ErrorIs(t, err, floydwarshall.ErrInvalidVertexCount)

	_, err = dijkstra.ShortestFrom(2, []floydwarshall.Edge{{From: 0, To: 2, Weight: 1}}, 0)
	require.ErrorIs(t, err, floydwarshall.ErrEdgeOutOfRange)

	_, err = dijkstra.ShortestFrom(2, nil, 2)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, err = dijkstra.ShortestFrom(0, nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange, "empty graph has no source")

	_, err = dijkstra.ShortestFrom(2, []floydwarshall.Edge{{From: 0, To: 1, Weight: -1}}, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.ShortestFrom(2, nil, 0, dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// ------------------------------------------------------------------------
// 2. Behaviour
// ------------------------------------------------------------------------

func TestShortestFrom_Sample(t *testing.T) {
	res, err := dijkstra.ShortestFrom(5, sample, 0)
	require.NoError(t, err)
	require.Equal(t, []matrix.Distance{
		matrix.Finite(0), matrix.Finite(8), matrix.Finite(9), matrix.Finite(5), matrix.Finite(7),
	}, res.Dist)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 1, 2}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)

	from2, err := dijkstra.ShortestFrom(5, sample, 2)
	require.NoError(t, err)
	path, err = from2.PathTo(0)
	require.NoError(t, err)
	require.Nil(t, path)
	require.Equal(t, matrix.Unreachable, from2.Dist[0])

	_, err = res.PathTo(5)
	require.ErrorIs(t, err, floydwarshall.ErrVertexOutOfRange)
}

func TestShortestFrom_LastEdgeWins(t *testing.T) {
	edges := []floydwarshall.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 1, Weight: 9},
		{From: 1, To: 1, Weight: 3},
	}
	res, err := dijkstra.ShortestFrom(2, edges, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.Finite(9), res.Dist[1])
}

func TestShortestFrom_Caps(t *testing.T) {
	res, err := dijkstra.ShortestFrom(5, sample, 0, dijkstra.WithMaxDistance(7))
	require.NoError(t, err)
	require.Equal(t, matrix.Finite(7), res.Dist[4])
	require.Equal(t, matrix.Unreachable, res.Dist[2], "9 > MaxDistance")

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Nil(t, path)
}

func TestShortestFrom_Overflow(t *testing.T) {
	edges := []floydwarshall.Edge{
		{From: 0, To: 1, Weight: math.MaxInt64 - 1},
		{From: 1, To: 2, Weight: 5},
	}
	res, err := dijkstra.ShortestFrom(3, edges, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.Finite(math.MaxInt64-1), res.Dist[1])
	require.Equal(t, matrix.Unreachable, res.Dist[2])
}

func TestShortestFrom_MaxInt64EdgeIsPassable(t *testing.T) {
	edges := []floydwarshall.Edge{
		{From: 0, To: 1, Weight: math.MaxInt64},
		{From: 1, To: 2, Weight: 0},
	}
	res, err := dijkstra.ShortestFrom(3, edges, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.Finite(math.MaxInt64), res.Dist[1])
	require.Equal(t, matrix.Finite(math.MaxInt64), res.Dist[2])

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
}

// ------------------------------------------------------------------------
// 3. Agreement with the all-pairs engine
// ------------------------------------------------------------------------

func TestAgreesWithFloydWarshall(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		n, edges, err := builder.Build(
			[]builder.Option{builder.WithSeed(seed), builder.WithUniformWeight(0, 30)},
			builder.RandomSparse(16, 0.2),
		)
		require.NoError(t, err)

		all, err := floydwarshall.Compute(n, edges)
		require.NoError(t, err)

		for src := 0; src < n; src++ {
			one, err := dijkstra.ShortestFrom(n, edges, src)
			require.NoError(t, err)
			row, err := all.Dist.Row(src)
			require.NoError(t, err)
			require.Equal(t, row, one.Dist, "seed %d source %d", seed, src)
		}
	}
}

func TestCrossCheck(t *testing.T) {
	ctx := context.Background()
	res, err := floydwarshall.Compute(5, sample)
	require.NoError(t, err)
	require.NoError(t, dijkstra.CrossCheck(ctx, 5, sample, res.Dist))

	tampered := res.Dist.Clone()
	require.NoError(t, tampered.Set(0, 2, matrix.Finite(10)))
	require.ErrorIs(t, dijkstra.CrossCheck(ctx, 5, sample, tampered), dijkstra.ErrMismatch)

	require.ErrorIs(t, dijkstra.CrossCheck(ctx, 4, sample, res.Dist), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, dijkstra.CrossCheck(ctx, 5, sample, nil), matrix.ErrNilMatrix)

	neg := []floydwarshall.Edge{{From: 0, To: 1, Weight: -1}}
	negRes, err := floydwarshall.Compute(2, neg)
	require.NoError(t, err)
	require.ErrorIs(t, dijkstra.CrossCheck(ctx, 2, neg, negRes.Dist), dijkstra.ErrNegativeWeight)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, dijkstra.CrossCheck(cancelled, 5, sample, res.Dist), context.Canceled)
}

func TestCrossCheck_Int64Boundary(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		n     int
		edges []floydwarshall.Edge
	}{
		{"single max edge", 2, []floydwarshall.Edge{{From: 0, To: 1, Weight: math.MaxInt64}}},
		{"max edge then zero", 3, []floydwarshall.Edge{
			{From: 0, To: 1, Weight: math.MaxInt64},
			{From: 1, To: 2, Weight: 0},
		}},
		{"sum overflows", 3, []floydwarshall.Edge{
			{From: 0, To: 1, Weight: math.MaxInt64},
			{From: 1, To: 2, Weight: 1},
		}},
		{"two halves", 3, []floydwarshall.Edge{
			{From: 0, To: 1, Weight: math.MaxInt64 / 2},
			{From: 1, To: 2, Weight: math.MaxInt64/2 + 1},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := floydwarshall.Compute(tc.n, tc.edges)
			require.NoError(t, err)
			require.NoError(t, dijkstra.CrossCheck(ctx, tc.n, tc.edges, res.Dist))
		})
	}
}

func TestCrossCheck_MaxDistance(t *testing.T) {
	ctx := context.Background()
	res, err := floydwarshall.Compute(5, sample)
	require.NoError(t, err)
	require.NoError(t, dijkstra.CrossCheck(ctx, 5, sample, res.Dist, dijkstra.WithMaxDistance(7)))

	// 0→2 is 9: above the cap a wrong value goes unnoticed.
	beyond := res.Dist.Clone()
	require.NoError(t, beyond.Set(0, 2, matrix.Finite(11)))
	require.NoError(t, dijkstra.CrossCheck(ctx, 5, sample, beyond, dijkstra.WithMaxDistance(7)))

	// 0→4 is 7: within the cap it is still compared.
	within := res.Dist.Clone()
	require.NoError(t, within.Set(0, 4, matrix.Finite(6)))
	err = dijkstra.CrossCheck(ctx, 5, sample, within, dijkstra.WithMaxDistance(7))
	require.ErrorIs(t, err, dijkstra.ErrMismatch)
	require.Contains(t, err.Error(), "via [0 3 4]")

	// A cell claimed reachable below the cap that Dijkstra cannot reach.
	phantom := res.Dist.Clone()
	require.NoError(t, phantom.Set(2, 0, matrix.Finite(1)))
	require.ErrorIs(t, dijkstra.CrossCheck(ctx, 5, sample, phantom, dijkstra.WithMaxDistance(7)), dijkstra.ErrMismatch)

	require.ErrorIs(t, dijkstra.CrossCheck(ctx, 5, sample, res.Dist, dijkstra.WithMaxDistance(-1)), dijkstra.ErrBadMaxDistance)
}

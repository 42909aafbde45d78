package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/floydwarshall"
)

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"path too small", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too small", builder.Cycle(1), builder.ErrTooFewVertices},
		{"star too small", builder.Star(1), builder.ErrTooFewVertices},
		{"complete too small", builder.Complete(0), builder.ErrTooFewVertices},
		{"grid zero rows", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"ring fanout", builder.Ring(4, 4), builder.ErrTooFewVertices},
		{"ring zero fanout", builder.Ring(4, 0), builder.ErrTooFewVertices},
		{"bad probability", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"no rng", builder.RandomDAG(4, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
		{"wheel too small", builder.Wheel(3), builder.ErrTooFewVertices},
		{"bipartite empty side", builder.CompleteBipartite(2, 0), builder.ErrTooFewVertices},
		{"regular degree", builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"regular no rng", builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := builder.Build(nil, tc.cons)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCycle_EdgesAndWeights(t *testing.T) {
	n, edges, err := builder.Build([]builder.Option{builder.WithConstantWeight(-2)}, builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []floydwarshall.Edge{
		{From: 0, To: 1, Weight: -2},
		{From: 1, To: 2, Weight: -2},
		{From: 2, To: 0, Weight: -2},
	}, edges)
}

func TestPathStarGridRing_Counts(t *testing.T) {
	cases := []struct {
		name      string
		cons      builder.Constructor
		wantN     int
		wantEdges int
	}{
		{"path", builder.Path(5), 5, 4},
		{"star", builder.Star(4), 4, 6},
		{"complete", builder.Complete(4), 4, 12},
		{"grid", builder.Grid(2, 3), 6, 2 * (2*2 + 1*3)},
		{"ring", builder.Ring(10, 3), 10, 30},
		{"sparse p=1", builder.RandomSparse(5, 1), 5, 20},
		{"dag p=1", builder.RandomDAG(5, 1), 5, 10},
		{"sparse p=0", builder.RandomSparse(5, 0), 5, 0},
		{"wheel", builder.Wheel(5), 5, 4 + 2*4},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, edges, err := builder.Build(nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, n)
			assert.Len(t, edges, tc.wantEdges)
			for _, e := range edges {
				assert.NotEqual(t, e.From, e.To, "no self-loops")
				assert.EqualValues(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestBuild_OverlayTakesLargestOrder(t *testing.T) {
	n, edges, err := builder.Build(nil, builder.Path(3), builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Len(t, edges, 2+5)
}

func TestRandom_DeterministicForSeed(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{builder.WithSeed(42), builder.WithUniformWeight(-5, 5)}
	}
	_, a, err := builder.Build(opts(), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	_, b, err := builder.Build(opts(), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	require.Equal(t, a, b)

	for _, e := range a {
		require.GreaterOrEqual(t, e.Weight, int64(-5))
		require.LessOrEqual(t, e.Weight, int64(5))
	}
}

func TestRandomDAG_ForwardOnly(t *testing.T) {
	_, edges, err := builder.Build(
		[]builder.Option{builder.WithRand(rand.New(rand.NewSource(7)))},
		builder.RandomDAG(20, 0.4),
	)
	require.NoError(t, err)
	require.NotEmpty(t, edges)
	for _, e := range edges {
		require.Less(t, e.From, e.To)
	}
}

func TestUniformWeightFn(t *testing.T) {
	require.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })

	fn := builder.UniformWeightFn(-3, 9)
	require.EqualValues(t, -3, fn(nil), "nil rng falls back to min")

	full := builder.UniformWeightFn(math.MinInt64, math.MaxInt64)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		_ = full(rng) // must not panic on the full int64 range
	}
}

func TestRandomRegular_OutDegree(t *testing.T) {
	n, edges, err := builder.Build([]builder.Option{builder.WithSeed(3)}, builder.RandomRegular(8, 3))
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Len(t, edges, 8*3)

	out := make(map[int]map[int]bool)
	for _, e := range edges {
		require.NotEqual(t, e.From, e.To)
		if out[e.From] == nil {
			out[e.From] = make(map[int]bool)
		}
		require.False(t, out[e.From][e.To], "parallel arc %d→%d", e.From, e.To)
		out[e.From][e.To] = true
	}
	for u := 0; u < n; u++ {
		require.Len(t, out[u], 3)
	}
}

func TestWheel_HubIsLastVertex(t *testing.T) {
	_, edges, err := builder.Build(nil, builder.Wheel(4))
	require.NoError(t, err)
	require.Equal(t, []floydwarshall.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 0, Weight: 1},
		{From: 3, To: 0, Weight: 1}, {From: 0, To: 3, Weight: 1},
		{From: 3, To: 1, Weight: 1}, {From: 1, To: 3, Weight: 1},
		{From: 3, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1},
	}, edges)
}

func TestCompleteBipartite_NoNegativeCycle(t *testing.T) {
	n, edges, err := builder.Build([]builder.Option{builder.WithConstantWeight(-4)}, builder.CompleteBipartite(3, 3))
	require.NoError(t, err)
	res, err := floydwarshall.Compute(n, edges)
	require.NoError(t, err)
	require.False(t, res.NegativeCycle)
}

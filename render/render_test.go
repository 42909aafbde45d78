package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/floydwarshall"
	"github.com/katalvlaran/apsp/matrix"
	"github.com/katalvlaran/apsp/render"
)

func TestPlain_Layout(t *testing.T) {
	res, err := floydwarshall.Compute(3, []floydwarshall.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: -1},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Plain(&buf, res))

	want := "Distance Matrix:\n" +
		"0 2 1 \n" +
		"INF 0 -1 \n" +
		"INF INF 0 \n" +
		"\nNext Matrix:\n" +
		"N/A 1 1 \n" +
		"N/A N/A 2 \n" +
		"N/A N/A N/A \n" +
		"\nNegative Cycle: No\n"
	require.Equal(t, want, buf.String())
}

func TestPlain_NegativeCycle(t *testing.T) {
	res, err := floydwarshall.Compute(2, []floydwarshall.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: -2},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Plain(&buf, res))
	require.True(t, strings.HasSuffix(buf.String(), "Negative Cycle: Yes\n"))

	require.ErrorIs(t, render.Plain(&buf, nil), matrix.ErrNilMatrix)
}

func TestTables_ContainTokens(t *testing.T) {
	res, err := floydwarshall.Compute(3, []floydwarshall.Edge{{From: 0, To: 2, Weight: 7}})
	require.NoError(t, err)

	dist := render.Distances(res.Dist)
	assert.Contains(t, dist, matrix.InfToken)
	assert.Contains(t, dist, "7")

	next := render.Next(res.Next)
	assert.Contains(t, next, matrix.NoneToken)
	// Header row plus one line per vertex, framed by borders.
	assert.GreaterOrEqual(t, strings.Count(next, "\n"), 4)

	empty, err := floydwarshall.Compute(0, nil)
	require.NoError(t, err)
	assert.Empty(t, render.Distances(empty.Dist))
	assert.Empty(t, render.Next(nil))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "0 -> 3 -> 1", render.Path([]int{0, 3, 1}))
	assert.Equal(t, "4", render.Path([]int{4}))
	assert.Equal(t, render.Unreachable, render.Path(nil))
	assert.Equal(t, "Yes", render.YesNo(true))
}

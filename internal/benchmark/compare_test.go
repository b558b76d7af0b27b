package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	labels := []string{"ones", "zeros", "eye"}
	prev := []Statistic{
		{MeanMs: 100, StdDevMs: 10},
		{MeanMs: 200, StdDevMs: 0},
		{MeanMs: 0, StdDevMs: 0},
	}
	curr := []Statistic{
		{MeanMs: 110, StdDevMs: 8}, // 10% slower, 20% less jitter
		{MeanMs: 150, StdDevMs: 1},
		{MeanMs: 5, StdDevMs: 1},
	}

	comps, err := Compare(labels, prev, curr)
	require.NoError(t, err)
	require.Len(t, comps, 3)

	c := comps[0]
	assert.Equal(t, "ones", c.Label)
	assert.InDelta(t, 10.0, c.MeanDiff, 0.01)
	assert.InDelta(t, -20.0, c.StdDevDiff, 0.01)
	assert.True(t, c.Regressed(5))
	assert.False(t, c.Regressed(15))

	assert.InDelta(t, -25.0, comps[1].MeanDiff, 0.01)
	assert.Zero(t, comps[1].StdDevDiff)
	assert.True(t, comps[1].Improved(10))

	// A zero baseline has no meaningful percentage.
	assert.Zero(t, comps[2].MeanDiff)
	assert.Equal(t, "eye: +0.00% mean", comps[2].String())
}

func TestCompare_RowMismatch(t *testing.T) {
	_, err := Compare([]string{"a", "b"}, []Statistic{{}, {}}, []Statistic{{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row count mismatch")
}

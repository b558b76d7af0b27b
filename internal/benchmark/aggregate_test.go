package benchmark

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		mean   float64
		std    float64
	}{
		{"single", Sample{0.0042}, 4.2, 0},
		{"constant", Sample{0.001, 0.001, 0.001}, 1, 0},
		// Population std of {1,2,3,4} is sqrt(1.25), not the corrected sqrt(5/3).
		{"population", Sample{0.001, 0.002, 0.003, 0.004}, 2.5, math.Sqrt(1.25)},
		{"two", Sample{0.010, 0.020}, 15, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Aggregate(tt.sample)
			require.NoError(t, err)
			assert.InDelta(t, tt.mean, st.MeanMs, 1e-9)
			assert.InDelta(t, tt.std, st.StdDevMs, 1e-9)
			assert.GreaterOrEqual(t, st.StdDevMs, 0.0)
		})
	}
}

func TestAggregate_SingleIsExactlyZero(t *testing.T) {
	st, err := Aggregate(Sample{0.123456789})
	require.NoError(t, err)
	assert.Equal(t, 0.0, st.StdDevMs)
	assert.Equal(t, 0.123456789*1e3, st.MeanMs)
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil)
	assert.Error(t, err)
}

func TestAggregate_NearZeroWork(t *testing.T) {
	sample, err := NewSampler(nil).Sample(func() (any, error) { return 2, nil }, 10)
	require.NoError(t, err)

	st, err := Aggregate(sample)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, st.MeanMs, 0.0)
	// Sanity bound only: the population std of non-negative values never
	// exceeds mean*sqrt(n-1).
	assert.LessOrEqual(t, st.StdDevMs, st.MeanMs*3+1e-9)
}

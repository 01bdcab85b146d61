package spc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubgroupChart(t *testing.T) {
	chart, err := NewSubgroupChart([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 3, chart.Groups())
	assert.Equal(t, 2, chart.Size())
	assert.Equal(t, 6, chart.Observations())

	assert.Equal(t, []float64{1.5, 3.5, 5.5}, chart.SubgroupMeans())
	assert.Equal(t, []float64{1, 1, 1}, chart.SubgroupRanges())
	assert.InDelta(t, 3.5, chart.Mean(), 1e-9)
	assert.InDelta(t, 1.0, chart.RangeMean(), 1e-9)

	value := chart.ValueBounds()
	assert.InDelta(t, 3.5, value.Center, 1e-9)
	assert.InDelta(t, 5.38, value.Upper, 1e-9) // x̄̄ + A2·R̄
	assert.InDelta(t, 1.62, value.Lower, 1e-9) // x̄̄ - A2·R̄
	assert.InDelta(t, 3.5+1.880*2/3, value.UpperB, 1e-9)
	assert.InDelta(t, 3.5+1.880/3, value.UpperC, 1e-9)
	assert.InDelta(t, 3.5-1.880*2/3, value.LowerB, 1e-9)
	assert.InDelta(t, 3.5-1.880/3, value.LowerC, 1e-9)

	rng := chart.RangeBounds()
	assert.InDelta(t, 1.0, rng.Center, 1e-9)
	assert.InDelta(t, 3.267, rng.Upper, 1e-9) // D4·R̄
	assert.Zero(t, rng.Lower)                 // D3 is zero at n=2

	assert.InDelta(t, 0.886525, chart.WithinDeviation(), 1e-6)  // R̄/d2
	assert.InDelta(t, 1.870829, chart.OverallDeviation(), 1e-6) // over the flattened matrix
}

func TestNewSubgroupChartRangeLowerLimit(t *testing.T) {
	// At n=7 and above D3 is positive, so the range chart gains a real
	// lower limit.
	subgroups := make([][]float64, 4)
	for i := range subgroups {
		subgroups[i] = []float64{1, 2, 3, 4, 5, 6, 8}
	}
	chart, err := NewSubgroupChart(subgroups)
	require.NoError(t, err)

	rng := chart.RangeBounds()
	assert.InDelta(t, 7.0, rng.Center, 1e-9)
	assert.InDelta(t, 0.076*7, rng.Lower, 1e-9) // D3·R̄
	assert.Greater(t, rng.Lower, 0.0)
}

func TestNewSubgroupChartValidation(t *testing.T) {
	t.Run("no subgroups", func(t *testing.T) {
		_, err := NewSubgroupChart(nil)
		var ierr *InsufficientDataError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "subgroup", ierr.Chart)
	})

	t.Run("ragged subgroups", func(t *testing.T) {
		_, err := NewSubgroupChart([][]float64{{1, 2}, {3, 4, 5}})
		var cerr *ConstructionError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "subgroups", cerr.Field)
	})

	t.Run("subgroup size outside constants table", func(t *testing.T) {
		_, err := NewSubgroupChart([][]float64{{1}})
		var cerr *ConstructionError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "subgroup_size", cerr.Field)
	})
}

func TestSubgroupChartScoreSubgroups(t *testing.T) {
	chart, err := NewSubgroupChart([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	means, ranges, err := chart.ScoreSubgroups([][]float64{{2, 4}, {10, 4}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 7}, means.Series.Values)
	assert.Equal(t, []float64{2, 6}, ranges.Series.Values)
	assert.Equal(t, []string{"1", "2"}, means.Series.Labels)
	assert.Equal(t, chart.ValueBounds(), means.Bounds)
	assert.Equal(t, chart.RangeBounds(), ranges.Bounds)

	_, _, err = chart.ScoreSubgroups([][]float64{{1, 2, 3}}, nil)
	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "subgroups", cerr.Field)
}

func TestSubgroupChartNaNPropagates(t *testing.T) {
	chart, err := NewSubgroupChart([][]float64{{1, math.NaN()}, {3, 4}})
	require.NoError(t, err) // shape-valid data never raises

	assert.True(t, math.IsNaN(chart.Mean()))
	assert.True(t, math.IsNaN(chart.RangeMean()))
	assert.True(t, math.IsNaN(chart.ValueBounds().Upper))
	assert.True(t, math.IsNaN(chart.WithinDeviation()))
}

func BenchmarkNewSubgroupChart(b *testing.B) {
	subgroups := make([][]float64, 200)
	for i := range subgroups {
		subgroups[i] = []float64{1, 2, 3, 4, 5}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewSubgroupChart(subgroups); err != nil {
			b.Fatal(err)
		}
	}
}

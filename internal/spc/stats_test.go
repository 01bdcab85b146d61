package spc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 3.0, Mean([]float64{1, 2, 3, 4, 5}), 1e-9)
	assert.InDelta(t, -1.5, Mean([]float64{-1, -2}), 1e-9)
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestSampleVariance(t *testing.T) {
	// Deviations from 3 are -2,-1,0,1,2; sum of squares 10 over n-1=4.
	assert.InDelta(t, 2.5, SampleVariance([]float64{1, 2, 3, 4, 5}), 1e-9)
	assert.InDelta(t, math.Sqrt(2.5), SampleStdDev([]float64{1, 2, 3, 4, 5}), 1e-9)

	assert.Zero(t, SampleVariance([]float64{7, 7, 7}))
	assert.True(t, math.IsNaN(SampleVariance([]float64{7})))
	assert.True(t, math.IsNaN(SampleStdDev(nil)))
}

func TestPercentile(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.0, Percentile(values, 0), 1e-9)
	assert.InDelta(t, 4.0, Percentile(values, 1), 1e-9)
	assert.InDelta(t, 2.5, Percentile(values, 0.5), 1e-9)  // interpolated
	assert.InDelta(t, 1.75, Percentile(values, 0.25), 1e-9)

	// Order must not matter.
	assert.InDelta(t, 2.5, Percentile([]float64{4, 1, 3, 2}, 0.5), 1e-9)

	assert.True(t, math.IsNaN(Percentile(nil, 0.5)))
	assert.True(t, math.IsNaN(Percentile(values, -0.1)))
	assert.True(t, math.IsNaN(Percentile(values, 1.1)))
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 3.0, Median([]float64{5, 1, 3, 2, 4}), 1e-9)
	assert.InDelta(t, 2.5, Median([]float64{1, 2, 3, 4}), 1e-9)
}

func TestDescribe(t *testing.T) {
	d := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 8, d.Count)
	assert.InDelta(t, 5.0, d.Mean, 1e-9)
	assert.InDelta(t, 4.5, d.Median, 1e-9)
	assert.InDelta(t, 2.0, d.Min, 1e-9)
	assert.InDelta(t, 9.0, d.Max, 1e-9)
	assert.InDelta(t, 7.0, d.Range, 1e-9)
	assert.InDelta(t, 4.0, d.Q1, 1e-9)
	assert.InDelta(t, 5.5, d.Q3, 1e-9)
	// Sum of squared deviations is 32, so sample variance is 32/7.
	assert.InDelta(t, 32.0/7, d.Variance, 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7), d.StdDev, 1e-9)
	assert.InDelta(t, d.StdDev/math.Sqrt(8), d.SEM, 1e-9)
}

func TestDescribeEmpty(t *testing.T) {
	d := Describe(nil)
	assert.Zero(t, d.Count)
	assert.True(t, math.IsNaN(d.Mean))
	assert.True(t, math.IsNaN(d.StdDev))
	assert.True(t, math.IsNaN(d.SEM))
}

func TestMovingRanges(t *testing.T) {
	assert.Equal(t, []float64{2, 1, 2, 1}, MovingRanges([]float64{10, 12, 11, 13, 12}))
	assert.Equal(t, []float64{3}, MovingRanges([]float64{5, 2})) // absolute
	assert.Nil(t, MovingRanges([]float64{5}))
	assert.Nil(t, MovingRanges(nil))
}

func TestMRound(t *testing.T) {
	assert.InDelta(t, 7.5, MRound(7.3, 0.5), 1e-9)
	assert.InDelta(t, 7.0, MRound(7.2, 0.5), 1e-9)
	assert.InDelta(t, -7.5, MRound(-7.3, 0.5), 1e-9) // halves away from zero
	assert.InDelta(t, 3.0, MRound(2.5, 1), 1e-9)
	assert.InDelta(t, 10.0, MRound(12, 5), 1e-9)
	assert.True(t, math.IsNaN(MRound(7, 0)))
}

func TestSequentialLabels(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, SequentialLabels(3))
	assert.Empty(t, SequentialLabels(0))
}

package spc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistogram(t *testing.T) {
	// 1..8: IQR 3.5, Freedman-Diaconis width 2·3.5/∛8 = 3.5, two bins.
	h, err := NewHistogram([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 4.5, 8}, h.Breaks)
	assert.Equal(t, []int{4, 4}, h.Counts)
	assert.Equal(t, []float64{2.75, 6.25}, h.Mids)
	assert.True(t, h.Equidist)

	// Density = relative frequency over bin width.
	assert.InDelta(t, 0.5/3.5, h.Densities[0], 1e-9)
	assert.InDelta(t, 0.5/3.5, h.Densities[1], 1e-9)

	assert.Equal(t, 8, h.Count)
	assert.InDelta(t, 4.5, h.Mean, 1e-9)
	assert.InDelta(t, 4.5, h.Median, 1e-9)
	assert.InDelta(t, math.Sqrt(6), h.StdDev, 1e-9)
}

func TestNewHistogramHalfOpenBins(t *testing.T) {
	h, err := NewHistogram([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4.5, 8}, h.Breaks)

	// A value on an interior break belongs to the bin above it; the
	// closing edge belongs to the last bin.
	h2, err := NewHistogram([]float64{1, 2, 3, 4, 4.5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, h2.Counts)
}

func TestNewHistogramSingleValue(t *testing.T) {
	h, err := NewHistogram([]float64{5, 5, 5})
	require.NoError(t, err)

	assert.Equal(t, []int{3}, h.Counts)
	assert.Equal(t, []float64{5, 5}, h.Breaks)
	assert.Equal(t, 3, h.Count)
	assert.Zero(t, h.Densities[0]) // zero-width bin has no density
}

func TestNewHistogramDropsNonFinite(t *testing.T) {
	h, err := NewHistogram([]float64{1, math.NaN(), 2, math.Inf(1), 3})
	require.NoError(t, err)
	assert.Equal(t, 3, h.Count)

	_, err = NewHistogram([]float64{math.NaN(), math.Inf(-1)})
	var ierr *InsufficientDataError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "histogram", ierr.Chart)
}

func TestNewHistogramCountsSumToInput(t *testing.T) {
	values := make([]float64, 500)
	for i := range values {
		values[i] = math.Sin(float64(i)*1.3) * 10
	}
	h, err := NewHistogram(values)
	require.NoError(t, err)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, len(values), total)
	assert.Len(t, h.Breaks, len(h.Counts)+1)
	assert.Len(t, h.Mids, len(h.Counts))
}

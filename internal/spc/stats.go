package spc

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or NaN for an empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleVariance returns the sample variance (n-1 denominator), or NaN
// for fewer than two values.
func SampleVariance(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	mean := Mean(values)
	sumSquared := 0.0
	for _, v := range values {
		sumSquared += (v - mean) * (v - mean)
	}
	return sumSquared / float64(len(values)-1)
}

// SampleStdDev returns the sample standard deviation (n-1 denominator),
// or NaN for fewer than two values.
func SampleStdDev(values []float64) float64 {
	return math.Sqrt(SampleVariance(values))
}

// Percentile returns the p-quantile (p in [0,1]) of values using linear
// interpolation between order statistics. NaN for an empty input.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 || p < 0 || p > 1 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Median returns the 50th percentile of values.
func Median(values []float64) float64 {
	return Percentile(values, 0.5)
}

// DescriptiveStats summarizes a sample the way a capability study report
// leads off: location, spread, and the five-number summary.
type DescriptiveStats struct {
	Count    int
	Mean     float64
	Median   float64
	StdDev   float64 // sample standard deviation
	Variance float64 // sample variance
	SEM      float64 // standard error of the mean
	Min      float64
	Q1       float64
	Q3       float64
	Max      float64
	Range    float64
}

// Describe computes descriptive statistics over values. NaN observations
// propagate into the results rather than being skipped.
func Describe(values []float64) DescriptiveStats {
	d := DescriptiveStats{
		Count:    len(values),
		Mean:     Mean(values),
		Median:   Median(values),
		StdDev:   SampleStdDev(values),
		Variance: SampleVariance(values),
		Min:      Percentile(values, 0),
		Q1:       Percentile(values, 0.25),
		Q3:       Percentile(values, 0.75),
		Max:      Percentile(values, 1),
	}
	d.Range = d.Max - d.Min
	if d.Count > 0 {
		d.SEM = d.StdDev / math.Sqrt(float64(d.Count))
	} else {
		d.SEM = math.NaN()
	}
	return d
}

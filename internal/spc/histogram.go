package spc

import (
	"math"
	"sort"
)

// Histogram holds R-style histogram data: bin breaks, half-open bin
// counts (the last bin is closed on both ends), bar mid-values and
// relative frequency densities. Rendering is the presentation layer's
// job.
type Histogram struct {
	Breaks    []float64
	Counts    []int
	Mids      []float64
	Densities []float64
	Equidist  bool

	Count  int
	Mean   float64
	Median float64
	StdDev float64
}

// NewHistogram bins values using the Freedman-Diaconis rule, falling back
// to Sturges when the interquartile range is degenerate. Non-finite
// values are dropped before binning; an input with no finite values is an
// error.
func NewHistogram(values []float64) (Histogram, error) {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return Histogram{}, &InsufficientDataError{Chart: "histogram", Got: 0, Required: 1}
	}
	sort.Float64s(kept)
	min, max := kept[0], kept[len(kept)-1]

	bins := binCount(kept, min, max)
	width := (max - min) / float64(bins)

	h := Histogram{
		Breaks:    make([]float64, bins+1),
		Counts:    make([]int, bins),
		Mids:      make([]float64, bins),
		Densities: make([]float64, bins),
		Equidist:  true,
		Count:     len(kept),
		Mean:      Mean(kept),
		Median:    Median(kept),
		StdDev:    SampleStdDev(kept),
	}
	for i := 0; i <= bins; i++ {
		h.Breaks[i] = min + float64(i)*width
	}
	h.Breaks[bins] = max // avoid float drift on the closing edge

	// All bins are [lo, hi) except the last, which is [lo, hi].
	for _, v := range kept {
		idx := bins - 1
		if width > 0 {
			idx = int((v - min) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		h.Counts[idx]++
	}

	for i := 0; i < bins; i++ {
		lo, hi := h.Breaks[i], h.Breaks[i+1]
		h.Mids[i] = (lo + hi) / 2
		if hi > lo {
			h.Densities[i] = (float64(h.Counts[i]) / float64(len(kept))) / (hi - lo)
		}
	}
	return h, nil
}

// binCount applies Freedman-Diaconis with a Sturges fallback.
func binCount(sorted []float64, min, max float64) int {
	n := len(sorted)
	if n == 1 || min == max {
		return 1
	}

	iqr := Percentile(sorted, 0.75) - Percentile(sorted, 0.25)
	fdWidth := 2 * iqr / math.Cbrt(float64(n))
	if fdWidth > 0 {
		return int(math.Ceil((max - min) / fdWidth))
	}

	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

package spc

import "strconv"

// Series is an ordered sequence of observations paired with display
// labels. Label order defines the x axis and carries no other meaning.
type Series struct {
	Values []float64
	Labels []string
}

// NewSeries pairs values with labels. Nil labels are generated as
// "1", "2", ... in series order; a mismatched label count is a
// construction error.
func NewSeries(values []float64, labels []string) (Series, error) {
	if labels == nil {
		labels = SequentialLabels(len(values))
	}
	if len(labels) != len(values) {
		return Series{}, &ConstructionError{
			Field:   "labels",
			Message: "label count must match value count",
			Value:   len(labels),
		}
	}
	return Series{Values: values, Labels: labels}, nil
}

// Len returns the number of observations in the series.
func (s Series) Len() int { return len(s.Values) }

// SequentialLabels generates the default observation labels "1".."n".
func SequentialLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}

// MovingRanges returns the absolute differences between consecutive
// values. The result has one fewer element than the input; an input
// shorter than two values yields an empty slice.
func MovingRanges(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	mr := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		diff := values[i] - values[i-1]
		if diff < 0 {
			diff = -diff
		}
		mr[i-1] = diff
	}
	return mr
}

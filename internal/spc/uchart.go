package spc

import "math"

// UChart is an attribute chart for defects per unit where the number of
// units inspected varies per period. Because unit counts vary, the upper
// control limit is computed per point; there is no meaningful lower limit
// and zone rules do not apply.
type UChart struct {
	labels      []string
	rates       []float64
	upperLimits []float64
	center      float64
}

// NewUChart builds a u chart from parallel defect counts and unit counts.
// The center line is total defects over total units and each point's
// upper limit is center + 3·sqrt(center/units). Nil labels are generated
// sequentially.
func NewUChart(defects, units []float64, labels []string) (*UChart, error) {
	if len(defects) == 0 {
		return nil, &InsufficientDataError{Chart: "u", Got: 0, Required: 1}
	}
	if len(units) != len(defects) {
		return nil, &ConstructionError{
			Field:   "units",
			Message: "unit count must match defect count",
			Value:   len(units),
		}
	}
	if labels == nil {
		labels = SequentialLabels(len(defects))
	}
	if len(labels) != len(defects) {
		return nil, &ConstructionError{
			Field:   "labels",
			Message: "label count must match defect count",
			Value:   len(labels),
		}
	}

	totalDefects, totalUnits := 0.0, 0.0
	for i := range defects {
		totalDefects += defects[i]
		totalUnits += units[i]
	}

	u := &UChart{
		labels:      labels,
		rates:       make([]float64, len(defects)),
		upperLimits: make([]float64, len(defects)),
		center:      totalDefects / totalUnits,
	}
	for i := range defects {
		u.rates[i] = defects[i] / units[i]
		u.upperLimits[i] = u.center + 3*math.Sqrt(u.center/units[i])
	}
	return u, nil
}

// Center returns the center line ū.
func (u *UChart) Center() float64 { return u.center }

// Rates returns the per-period defect rates u = c/n.
func (u *UChart) Rates() []float64 { return u.rates }

// UpperLimits returns the per-period upper control limits.
func (u *UChart) UpperLimits() []float64 { return u.upperLimits }

// Labels returns the period labels.
func (u *UChart) Labels() []string { return u.labels }

// Violations returns the points at or above their control limit, as
// parallel value and label lists.
func (u *UChart) Violations() Violations {
	var v Violations
	for i, rate := range u.rates {
		if rate >= u.upperLimits[i] {
			v.Values = append(v.Values, rate)
			v.Labels = append(v.Labels, u.labels[i])
		}
	}
	return v
}

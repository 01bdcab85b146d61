package spc

import "sort"

// ParetoRow is one category of a Pareto analysis, in descending frequency
// order.
type ParetoRow struct {
	Category     string
	Frequency    float64
	CumFrequency float64
	Percent      float64
	CumPercent   float64
}

// Pareto is the computed data behind a Pareto chart. Frequencies may be
// counts or costs; the ordering and cumulative shares are what matter.
type Pareto struct {
	Rows  []ParetoRow
	Total float64
}

// NewPareto sorts categories by descending frequency and accumulates
// frequencies and percentage shares. Categories and frequencies must be
// parallel and non-empty, and the frequency total must be positive for
// the percentage columns to be meaningful.
func NewPareto(categories []string, frequencies []float64) (Pareto, error) {
	if len(categories) == 0 {
		return Pareto{}, &InsufficientDataError{Chart: "pareto", Got: 0, Required: 1}
	}
	if len(frequencies) != len(categories) {
		return Pareto{}, &ConstructionError{
			Field:   "frequencies",
			Message: "frequency count must match category count",
			Value:   len(frequencies),
		}
	}

	total := 0.0
	for _, f := range frequencies {
		total += f
	}
	if !(total > 0) {
		return Pareto{}, &ValidationError{
			Field:   "frequencies",
			Message: "frequency total must be positive",
			Value:   total,
		}
	}

	p := Pareto{Rows: make([]ParetoRow, len(categories)), Total: total}
	for i := range categories {
		p.Rows[i] = ParetoRow{Category: categories[i], Frequency: frequencies[i]}
	}
	// Stable, so equal frequencies keep their input order.
	sort.SliceStable(p.Rows, func(i, j int) bool {
		return p.Rows[i].Frequency > p.Rows[j].Frequency
	})

	cum := 0.0
	for i := range p.Rows {
		cum += p.Rows[i].Frequency
		p.Rows[i].CumFrequency = cum
		p.Rows[i].Percent = p.Rows[i].Frequency / total * 100
		p.Rows[i].CumPercent = cum / total * 100
	}
	return p, nil
}

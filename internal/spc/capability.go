package spc

import "math"

// ProcessCapability holds the performance (overall variation) and
// capability (within variation) ratios of a calibrated chart measured
// against a bilateral specification. Computed once at construction.
//
// A zero deviation estimate yields infinite ratios and NaN observations
// yield NaN ratios; both propagate unraised, consistent with the rest of
// the package.
type ProcessCapability struct {
	// Performance, against the overall sample standard deviation.
	Pp  float64
	Ppu float64
	Ppl float64
	Ppk float64

	// Capability, against the within (short-term) standard deviation.
	Cp  float64
	Cpu float64
	Cpl float64
	Cpk float64
}

// NewProcessCapability computes capability ratios from a calibrated chart
// and a normalized specification. Both limits must be present: a
// unilateral capability study is meaningless, so missing limits fail with
// a MissingLimitError instead of producing silent NaN.
func NewProcessCapability(chart ControlChart, limits SpecLimits) (ProcessCapability, error) {
	lsl, hasLower := limits.Lower()
	usl, hasUpper := limits.Upper()
	switch {
	case !hasLower && !hasUpper:
		return ProcessCapability{}, &MissingLimitError{Limit: "both"}
	case !hasLower:
		return ProcessCapability{}, &MissingLimitError{Limit: "lower"}
	case !hasUpper:
		return ProcessCapability{}, &MissingLimitError{Limit: "upper"}
	}

	mean := chart.Mean()
	overall := chart.OverallDeviation()
	within := chart.WithinDeviation()

	pc := ProcessCapability{
		Pp:  (usl - lsl) / (6 * overall),
		Ppu: (usl - mean) / (3 * overall),
		Ppl: (mean - lsl) / (3 * overall),
		Cp:  (usl - lsl) / (6 * within),
		Cpu: (usl - mean) / (3 * within),
		Cpl: (mean - lsl) / (3 * within),
	}
	pc.Ppk = math.Min(pc.Ppu, pc.Ppl)
	pc.Cpk = math.Min(pc.Cpu, pc.Cpl)
	return pc, nil
}

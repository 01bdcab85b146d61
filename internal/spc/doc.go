// Package spc implements the statistical process control analytics core:
// Shewhart control charts, out-of-control pattern rules, specification
// limit normalization, and process capability indices.
//
// # Components
//
//   - constants.go: bias-correction constants (d2, d3, d4, A2, E2) keyed
//     by subgroup size
//   - series.go: observation series and moving ranges
//   - individuals.go: XmR chart for individual observations
//   - subgroup.go: X̄-R chart for subgrouped samples
//   - uchart.go: u chart for defects per unit with varying unit counts
//   - rules.go: the eight out-of-control pattern rules
//   - speclimits.go: normalization of engineering specification limits
//   - capability.go: Pp/Ppk and Cp/Cpk indices
//   - histogram.go, pareto.go, stats.go: supporting chart data and
//     descriptive statistics
//
// # Usage
//
//	series, err := spc.NewSeries(values, nil)
//	if err != nil {
//	    return err
//	}
//	chart, err := spc.NewIndividualsChart(series)
//	if err != nil {
//	    return err
//	}
//	violations := spc.EvaluateRules(chart.Score(series))
//
//	limits, err := spc.NewSpecLimits(spc.Value(75), spc.Value(125), spc.Absent())
//	if err != nil {
//	    return err
//	}
//	pc, err := spc.NewProcessCapability(chart, limits)
//
// # Design
//
// Charts are calibrated once from a reference dataset and immutable
// afterwards. Scoring new data reuses the calibrated limits without
// recomputing them, so monitoring data never leaks into the calibration
// statistics. Every type in this package is a pure function of its
// constructor arguments and safe for concurrent use on independent data.
//
// Malformed input (wrong shapes, unsupported subgroup sizes, contradictory
// specifications) fails construction with a typed error. Mathematically
// degenerate but well-shaped input (NaN observations, zero variation) is
// not an error: the indeterminacy propagates through the results as
// NaN/Inf so an analysis stays defined even when uninformative.
//
// The package performs no I/O. Formatting and rendering of results belong
// to the report layer.
package spc

package spc

// Bounds holds the fixed boundaries a series is judged against: the
// center line, the control limits, and the zone B (2/3) and zone C (1/3)
// boundaries on each side. Pattern rules depend on nothing else.
type Bounds struct {
	Center float64
	Upper  float64
	UpperB float64
	UpperC float64
	Lower  float64
	LowerB float64
	LowerC float64
}

// Scored pairs a series with the calibrated boundaries it is judged
// against, ready for rule evaluation or plotting.
type Scored struct {
	Series Series
	Bounds Bounds
}

// ControlChart is the read-only contract both chart variants satisfy.
// The rule engine and capability math depend only on this interface,
// never on a concrete chart type.
type ControlChart interface {
	// Mean is the process mean estimated from the calibration data.
	Mean() float64
	// WithinDeviation is the short-term (range-based, bias-corrected)
	// standard deviation, Shewhart's formula.
	WithinDeviation() float64
	// OverallDeviation is the ordinary sample standard deviation of the
	// full calibration dataset.
	OverallDeviation() float64
	// ValueBounds are the boundaries of the location chart (X or X̄).
	ValueBounds() Bounds
	// RangeBounds are the boundaries of the dispersion chart (MR or R).
	RangeBounds() Bounds
}

// valueChartBounds centers zones symmetrically: the limits sit at
// center±spread and the zone boundaries split that distance into thirds.
func valueChartBounds(center, spread float64) Bounds {
	return Bounds{
		Center: center,
		Upper:  center + spread,
		UpperB: center + spread*2/3,
		UpperC: center + spread*1/3,
		Lower:  center - spread,
		LowerB: center - spread*2/3,
		LowerC: center - spread*1/3,
	}
}

// rangeChartBounds handles the asymmetric dispersion charts: zone widths
// follow the distance from center to the upper limit, and the lower zone
// boundaries are clamped at zero because a range cannot be negative.
func rangeChartBounds(center, upper, lower float64) Bounds {
	third := (upper - center) / 3
	b := Bounds{
		Center: center,
		Upper:  upper,
		UpperB: center + 2*third,
		UpperC: center + third,
		Lower:  lower,
		LowerB: center - 2*third,
		LowerC: center - third,
	}
	if b.LowerC < 0 {
		b.LowerC = 0
	}
	if b.LowerB < 0 {
		b.LowerB = 0
	}
	return b
}

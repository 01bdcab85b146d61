package spc

// IndividualsChart is an XmR chart: a chart of individual observations
// paired with a moving-range chart. Short-term variation is estimated
// from the mean moving range because no subgroups exist.
//
// The chart is calibrated once at construction and immutable afterwards;
// scoring new data reuses the calibrated limits without recomputing them.
type IndividualsChart struct {
	observations int

	mean   float64
	mrMean float64

	value Bounds
	rng   Bounds

	within  float64
	overall float64
}

// NewIndividualsChart calibrates an XmR chart from a series of individual
// observations. Fewer than two calibration points is an error. Non-finite
// observations are not rejected; they propagate as NaN through the
// derived statistics.
func NewIndividualsChart(calibration Series) (*IndividualsChart, error) {
	if calibration.Len() < 2 {
		return nil, &InsufficientDataError{Chart: "individuals", Got: calibration.Len(), Required: 2}
	}

	// Moving ranges span two consecutive observations.
	row, err := Constants(2)
	if err != nil {
		return nil, err
	}

	mr := MovingRanges(calibration.Values)
	c := &IndividualsChart{
		observations: calibration.Len(),
		mean:         Mean(calibration.Values),
		mrMean:       Mean(mr),
	}

	c.value = valueChartBounds(c.mean, row.E2*c.mrMean)
	c.rng = rangeChartBounds(c.mrMean, row.D4*c.mrMean, 0)

	c.within = c.mrMean / row.D2
	c.overall = SampleStdDev(calibration.Values)
	return c, nil
}

// Mean returns the process mean x̄ from the calibration data.
func (c *IndividualsChart) Mean() float64 { return c.mean }

// MovingRangeMean returns the mean moving range MR̄ from the calibration
// data, the center line of the moving-range chart.
func (c *IndividualsChart) MovingRangeMean() float64 { return c.mrMean }

// Observations returns the calibration sample size.
func (c *IndividualsChart) Observations() int { return c.observations }

// WithinDeviation returns MR̄/d2, Shewhart's short-term estimate.
func (c *IndividualsChart) WithinDeviation() float64 { return c.within }

// OverallDeviation returns the sample standard deviation of the full
// calibration series.
func (c *IndividualsChart) OverallDeviation() float64 { return c.overall }

// ValueBounds returns the individuals (X) chart boundaries.
func (c *IndividualsChart) ValueBounds() Bounds { return c.value }

// RangeBounds returns the moving-range (MR) chart boundaries.
func (c *IndividualsChart) RangeBounds() Bounds { return c.rng }

// Score applies the calibrated X-chart limits to a series. The series may
// be the calibration data or new monitoring data; either way the limits
// are not recomputed.
func (c *IndividualsChart) Score(s Series) Scored {
	return Scored{Series: s, Bounds: c.value}
}

// ScoreMovingRanges derives the moving ranges of a series and applies the
// calibrated MR-chart limits to them. Labels shift by one: each range is
// labelled by the later of the two observations it spans.
func (c *IndividualsChart) ScoreMovingRanges(s Series) Scored {
	mr := Series{Values: MovingRanges(s.Values)}
	if len(s.Labels) >= 1 {
		mr.Labels = s.Labels[1:]
	}
	return Scored{Series: mr, Bounds: c.rng}
}

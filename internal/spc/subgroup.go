package spc

// SubgroupChart is an X̄-R chart: subgroup means charted against limits
// derived from the mean subgroup range. Subgroup size is fixed at
// construction and indexes the constants table.
//
// Like IndividualsChart, the chart is calibrated once and immutable;
// scoring new subgroups reuses the calibrated limits.
type SubgroupChart struct {
	groups int
	size   int

	constants ConstantsRow

	means  []float64
	ranges []float64

	grandMean float64
	rangeMean float64

	value Bounds
	rng   Bounds

	within  float64
	overall float64
}

// NewSubgroupChart calibrates an X̄-R chart from a matrix of k subgroups
// of n samples each. n must be constant across subgroups and within the
// supported constants range; fewer than one subgroup is an error.
func NewSubgroupChart(subgroups [][]float64) (*SubgroupChart, error) {
	if len(subgroups) < 1 {
		return nil, &InsufficientDataError{Chart: "subgroup", Got: 0, Required: 1}
	}

	n := len(subgroups[0])
	row, err := Constants(n)
	if err != nil {
		return nil, err
	}
	for i, g := range subgroups {
		if len(g) != n {
			return nil, &ConstructionError{
				Field:   "subgroups",
				Message: "subgroup size must be constant across subgroups",
				Value:   [2]int{i, len(g)},
			}
		}
	}

	c := &SubgroupChart{
		groups:    len(subgroups),
		size:      n,
		constants: row,
		means:     make([]float64, len(subgroups)),
		ranges:    make([]float64, len(subgroups)),
	}

	flat := make([]float64, 0, len(subgroups)*n)
	for i, g := range subgroups {
		c.means[i] = Mean(g)
		c.ranges[i] = groupRange(g)
		flat = append(flat, g...)
	}
	c.grandMean = Mean(c.means)
	c.rangeMean = Mean(c.ranges)

	c.value = valueChartBounds(c.grandMean, row.A2*c.rangeMean)
	lcl := row.D3 * c.rangeMean
	if lcl < 0 {
		lcl = 0
	}
	c.rng = rangeChartBounds(c.rangeMean, row.D4*c.rangeMean, lcl)

	c.within = c.rangeMean / row.D2
	c.overall = SampleStdDev(flat)
	return c, nil
}

// groupRange returns max-min of one subgroup. NaN members poison the
// result, matching the propagation rules for degenerate data.
func groupRange(g []float64) float64 {
	min, max := g[0], g[0]
	for _, v := range g[1:] {
		if v != v { // NaN
			return v
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}

// Groups returns the number of calibration subgroups k.
func (c *SubgroupChart) Groups() int { return c.groups }

// Size returns the subgroup size n.
func (c *SubgroupChart) Size() int { return c.size }

// Observations returns the total calibration sample size k×n.
func (c *SubgroupChart) Observations() int { return c.groups * c.size }

// Mean returns the grand mean x̄̄ of the subgroup means.
func (c *SubgroupChart) Mean() float64 { return c.grandMean }

// RangeMean returns the mean subgroup range R̄, the center line of the
// range chart.
func (c *SubgroupChart) RangeMean() float64 { return c.rangeMean }

// SubgroupMeans returns the calibration subgroup means.
func (c *SubgroupChart) SubgroupMeans() []float64 { return c.means }

// SubgroupRanges returns the calibration subgroup ranges.
func (c *SubgroupChart) SubgroupRanges() []float64 { return c.ranges }

// WithinDeviation returns R̄/d2, Shewhart's short-term estimate.
func (c *SubgroupChart) WithinDeviation() float64 { return c.within }

// OverallDeviation returns the sample standard deviation across the full
// calibration matrix.
func (c *SubgroupChart) OverallDeviation() float64 { return c.overall }

// ValueBounds returns the mean (X̄) chart boundaries.
func (c *SubgroupChart) ValueBounds() Bounds { return c.value }

// RangeBounds returns the range (R) chart boundaries.
func (c *SubgroupChart) RangeBounds() Bounds { return c.rng }

// Score applies the calibrated X̄-chart limits to a series of subgroup
// means without recomputing them.
func (c *SubgroupChart) Score(means Series) Scored {
	return Scored{Series: means, Bounds: c.value}
}

// ScoreSubgroups reduces new subgroups to their means and ranges and
// applies the calibrated limits of both sub-charts. The new subgroups
// must have the calibrated size.
func (c *SubgroupChart) ScoreSubgroups(subgroups [][]float64, labels []string) (means, ranges Scored, err error) {
	if labels == nil {
		labels = SequentialLabels(len(subgroups))
	}
	if len(labels) != len(subgroups) {
		return Scored{}, Scored{}, &ConstructionError{
			Field:   "labels",
			Message: "label count must match subgroup count",
			Value:   len(labels),
		}
	}

	m := make([]float64, len(subgroups))
	r := make([]float64, len(subgroups))
	for i, g := range subgroups {
		if len(g) != c.size {
			return Scored{}, Scored{}, &ConstructionError{
				Field:   "subgroups",
				Message: "subgroup size must match the calibrated size",
				Value:   [2]int{i, len(g)},
			}
		}
		m[i] = Mean(g)
		r[i] = groupRange(g)
	}

	means = Scored{Series: Series{Values: m, Labels: labels}, Bounds: c.value}
	ranges = Scored{Series: Series{Values: r, Labels: labels}, Bounds: c.rng}
	return means, ranges, nil
}

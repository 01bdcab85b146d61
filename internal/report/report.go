package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"spckit/internal/spc"
)

// ruleDescriptions names the pattern rules in report output, keyed by
// rule number.
var ruleDescriptions = map[int]string{
	1: "point beyond a control limit",
	2: "2 of 3 consecutive points beyond zone B, same side",
	3: "4 of 5 consecutive points beyond zone C, same side",
	4: "9 consecutive points on the same side of center",
	5: "7 consecutive points trending in one direction",
	6: "8 consecutive points beyond zone C",
	7: "15 consecutive points inside zone C",
	8: "14 consecutive points alternating direction",
}

// Renderer writes plain-text summaries of analytics results. It is a
// thin formatting layer; all numbers come in precomputed.
type Renderer struct {
	w io.Writer
}

// New returns a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) heading(title string) error {
	_, err := fmt.Fprintf(r.w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	return err
}

// Individuals summarizes a calibrated XmR chart.
func (r *Renderer) Individuals(title string, c *spc.IndividualsChart) error {
	if err := r.heading(title); err != nil {
		return err
	}
	value, rng := c.ValueBounds(), c.RangeBounds()
	_, err := fmt.Fprintf(r.w,
		"observations:      %d\n"+
			"process mean:      %.4f\n"+
			"mean moving range: %.4f\n"+
			"X chart limits:    LCL %.4f  UCL %.4f\n"+
			"MR chart limits:   LCL %.4f  UCL %.4f\n"+
			"sigma (within):    %.4f\n"+
			"sigma (overall):   %.4f\n\n",
		c.Observations(), c.Mean(), c.MovingRangeMean(),
		value.Lower, value.Upper, rng.Lower, rng.Upper,
		c.WithinDeviation(), c.OverallDeviation())
	return err
}

// Subgroup summarizes a calibrated X̄-R chart.
func (r *Renderer) Subgroup(title string, c *spc.SubgroupChart) error {
	if err := r.heading(title); err != nil {
		return err
	}
	value, rng := c.ValueBounds(), c.RangeBounds()
	_, err := fmt.Fprintf(r.w,
		"subgroups:         %d of size %d (%d observations)\n"+
			"grand mean:        %.4f\n"+
			"mean range:        %.4f\n"+
			"Xbar chart limits: LCL %.4f  UCL %.4f\n"+
			"R chart limits:    LCL %.4f  UCL %.4f\n"+
			"sigma (within):    %.4f\n"+
			"sigma (overall):   %.4f\n\n",
		c.Groups(), c.Size(), c.Observations(),
		c.Mean(), c.RangeMean(),
		value.Lower, value.Upper, rng.Lower, rng.Upper,
		c.WithinDeviation(), c.OverallDeviation())
	return err
}

// Rules lists the rule violations of a scored series, one block per rule
// that fired. A fully in-control series reports a single line.
func (r *Renderer) Rules(title string, violations map[int]spc.Violations) error {
	if err := r.heading(title); err != nil {
		return err
	}
	fired := false
	for rule := 1; rule <= spc.NumRules; rule++ {
		v := violations[rule]
		if len(v.Values) == 0 {
			continue
		}
		fired = true
		if _, err := fmt.Fprintf(r.w, "rule %d (%s): %d points\n",
			rule, ruleDescriptions[rule], len(v.Values)); err != nil {
			return err
		}
		for i := range v.Values {
			if _, err := fmt.Fprintf(r.w, "  %s: %.4f\n", v.Labels[i], v.Values[i]); err != nil {
				return err
			}
		}
	}
	if !fired {
		if _, err := fmt.Fprintln(r.w, "no rule violations"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

// Capability summarizes a capability study: performance indices against
// overall variation, capability indices against within variation.
func (r *Renderer) Capability(title string, pc spc.ProcessCapability) error {
	if err := r.heading(title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.w,
		"performance:  Pp %.4f  Ppu %.4f  Ppl %.4f  Ppk %.4f\n"+
			"capability:   Cp %.4f  Cpu %.4f  Cpl %.4f  Cpk %.4f\n\n",
		pc.Pp, pc.Ppu, pc.Ppl, pc.Ppk,
		pc.Cp, pc.Cpu, pc.Cpl, pc.Cpk)
	return err
}

// UChart summarizes a defects-per-unit chart, including its per-period
// limits and any points at or above them.
func (r *Renderer) UChart(title string, u *spc.UChart) error {
	if err := r.heading(title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "center line: %.4f\n", u.Center()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "period\trate\tUCL")
	rates, limits, labels := u.Rates(), u.UpperLimits(), u.Labels()
	for i := range rates {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\n", labels[i], rates[i], limits[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	v := u.Violations()
	if len(v.Values) > 0 {
		if _, err := fmt.Fprintf(r.w, "out of control: %s\n", strings.Join(v.Labels, ", ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

// Pareto renders the descending frequency table with cumulative shares.
func (r *Renderer) Pareto(title string, p spc.Pareto) error {
	if err := r.heading(title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "category\tfrequency\tcum\tpercent\tcum%")
	for _, row := range p.Rows {
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.1f\t%.1f\n",
			row.Category, row.Frequency, row.CumFrequency, row.Percent, row.CumPercent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

// Histogram renders the bins as a text bar chart scaled to a fixed
// maximum bar width, followed by the summary statistics.
func (r *Renderer) Histogram(title string, h spc.Histogram) error {
	if err := r.heading(title); err != nil {
		return err
	}

	const barWidth = 40
	maxCount := 0
	for _, c := range h.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	for i, c := range h.Counts {
		bar := 0
		if maxCount > 0 {
			bar = c * barWidth / maxCount
		}
		if _, err := fmt.Fprintf(r.w, "[%10.4f, %10.4f) %5d %s\n",
			h.Breaks[i], h.Breaks[i+1], c, strings.Repeat("#", bar)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.w, "n=%d mean=%.4f median=%.4f stddev=%.4f\n\n",
		h.Count, h.Mean, h.Median, h.StdDev)
	return err
}

// Descriptive renders the descriptive-statistics preamble of a study.
func (r *Renderer) Descriptive(title string, d spc.DescriptiveStats) error {
	if err := r.heading(title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.w,
		"count:     %d\n"+
			"mean:      %.4f  (SEM %.4f)\n"+
			"median:    %.4f\n"+
			"stddev:    %.4f  (variance %.4f)\n"+
			"min/max:   %.4f / %.4f  (range %.4f)\n"+
			"quartiles: Q1 %.4f  Q3 %.4f\n\n",
		d.Count, d.Mean, d.SEM, d.Median, d.StdDev, d.Variance,
		d.Min, d.Max, d.Range, d.Q1, d.Q3)
	return err
}

// Command spcreport runs the analytics suite over a set of built-in
// sample datasets and prints plain-text reports to stdout. It exists to
// demonstrate the library end to end; it reads no input files.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"spckit/internal/config"
	"spckit/internal/infrastructure"
	"spckit/internal/report"
	"spckit/internal/spc"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "spcreport:", err)
		os.Exit(1)
	}

	logger := infrastructure.NewLogger(cfg.Logging, os.Stderr)
	ctx := infrastructure.WithTraceID(context.Background())

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.ErrorContext(ctx, "report failed", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "report complete")
}

// section is one independently renderable block of the report.
type section struct {
	name    string
	enabled bool
	render  func(*report.Renderer) error
}

// run renders every enabled section concurrently into its own buffer,
// then writes them to out in a fixed order.
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	sections := []section{
		{name: "stable process", enabled: cfg.Report.Charts, render: stableProcess},
		{name: "shifted process", enabled: cfg.Report.Rules, render: shiftedProcess},
		{name: "subgroup study", enabled: cfg.Report.Charts, render: subgroupStudy},
		{name: "capability study", enabled: cfg.Report.Capability, render: capabilityStudy},
		{name: "defect rates", enabled: cfg.Report.Charts, render: defectRates},
		{name: "defect categories", enabled: cfg.Report.Charts, render: defectCategories},
		{name: "measurement distribution", enabled: cfg.Report.Descriptive, render: measurementDistribution},
	}

	buffers := make([]bytes.Buffer, len(sections))
	g, _ := errgroup.WithContext(ctx)
	for i := range sections {
		if !sections[i].enabled {
			continue
		}
		i := i
		g.Go(func() error {
			if err := sections[i].render(report.New(&buffers[i])); err != nil {
				return fmt.Errorf("%s: %w", sections[i].name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range buffers {
		if _, err := out.Write(buffers[i].Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// Sample datasets, compiled in so the binary needs no input files.
var (
	// Viscosity readings from a process running in control around 100.
	stableReadings = []float64{
		101.2, 99.4, 100.8, 98.7, 100.1, 101.9, 99.2, 100.5, 98.9, 101.1,
		100.3, 99.8, 101.6, 98.4, 100.9, 99.6, 100.2, 101.4, 99.1, 100.7,
		98.8, 100.4, 101.0, 99.5, 100.6,
	}

	// The same process after a tooling change: the second half runs high.
	shiftedReadings = []float64{
		99.8, 100.4, 99.1, 100.9, 99.5, 100.2, 99.7, 100.6, 99.3, 100.1,
		103.2, 103.8, 104.1, 103.5, 104.6, 103.9, 104.3, 103.7, 104.8, 104.2,
	}

	// Fill weights, five bottles per hourly subgroup.
	fillWeights = [][]float64{
		{502.1, 499.8, 501.3, 500.6, 498.9},
		{500.4, 501.7, 499.2, 500.9, 501.1},
		{499.6, 500.8, 501.5, 498.7, 500.2},
		{501.9, 499.4, 500.7, 501.2, 499.9},
		{500.1, 501.4, 498.8, 500.5, 499.7},
		{499.3, 500.6, 501.8, 499.1, 500.3},
		{501.0, 499.5, 500.9, 501.6, 498.6},
		{500.7, 501.2, 499.8, 500.4, 501.5},
	}

	// Monthly invoice errors against invoices processed.
	invoiceErrors = []float64{12, 9, 14, 8, 11, 16, 7, 10, 13, 9, 15, 11}
	invoiceCounts = []float64{480, 510, 440, 500, 470, 430, 520, 490, 450, 505, 435, 475}
	invoiceMonths = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}

	// Final-inspection defect tallies by category.
	defectNames  = []string{"scratch", "dent", "misalignment", "discoloration", "crack", "other"}
	defectCounts = []float64{58, 112, 31, 19, 44, 9}
)

func stableProcess(r *report.Renderer) error {
	s, err := spc.NewSeries(stableReadings, nil)
	if err != nil {
		return err
	}
	chart, err := spc.NewIndividualsChart(s)
	if err != nil {
		return err
	}
	if err := r.Individuals("viscosity (stable)", chart); err != nil {
		return err
	}
	return r.Rules("viscosity stability", spc.EvaluateRules(chart.Score(s)))
}

func shiftedProcess(r *report.Renderer) error {
	s, err := spc.NewSeries(shiftedReadings, nil)
	if err != nil {
		return err
	}
	chart, err := spc.NewIndividualsChart(s)
	if err != nil {
		return err
	}
	if err := r.Individuals("viscosity (after tooling change)", chart); err != nil {
		return err
	}
	return r.Rules("tooling change stability", spc.EvaluateRules(chart.Score(s)))
}

func subgroupStudy(r *report.Renderer) error {
	chart, err := spc.NewSubgroupChart(fillWeights)
	if err != nil {
		return err
	}
	if err := r.Subgroup("fill weight", chart); err != nil {
		return err
	}

	means, ranges, err := chart.ScoreSubgroups(fillWeights, nil)
	if err != nil {
		return err
	}
	if err := r.Rules("fill weight means", spc.EvaluateRules(means)); err != nil {
		return err
	}
	return r.Rules("fill weight ranges", spc.EvaluateRules(ranges))
}

func capabilityStudy(r *report.Renderer) error {
	s, err := spc.NewSeries(stableReadings, nil)
	if err != nil {
		return err
	}
	chart, err := spc.NewIndividualsChart(s)
	if err != nil {
		return err
	}
	limits, err := spc.NewSpecLimits(spc.Value(95), spc.Value(105), spc.Absent())
	if err != nil {
		return err
	}
	pc, err := spc.NewProcessCapability(chart, limits)
	if err != nil {
		return err
	}
	return r.Capability("viscosity capability", pc)
}

func defectRates(r *report.Renderer) error {
	u, err := spc.NewUChart(invoiceErrors, invoiceCounts, invoiceMonths)
	if err != nil {
		return err
	}
	return r.UChart("invoice errors per invoice", u)
}

func defectCategories(r *report.Renderer) error {
	p, err := spc.NewPareto(defectNames, defectCounts)
	if err != nil {
		return err
	}
	return r.Pareto("final inspection defects", p)
}

func measurementDistribution(r *report.Renderer) error {
	if err := r.Descriptive("viscosity sample", spc.Describe(stableReadings)); err != nil {
		return err
	}
	h, err := spc.NewHistogram(stableReadings)
	if err != nil {
		return err
	}
	return r.Histogram("viscosity distribution", h)
}

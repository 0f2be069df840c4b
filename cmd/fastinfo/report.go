package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the error of one kernel over the sample set.
type Stats struct {
	Samples int     `yaml:"samples"`
	Skipped int     `yaml:"skipped,omitempty"`
	Max     float64 `yaml:"max"`
	Mean    float64 `yaml:"mean"`
	StdDev  float64 `yaml:"stddev"`
}

// Row is one kernel at one precision.
type Row struct {
	Kernel    string `yaml:"kernel"`
	Precision int    `yaml:"precision"`
	Metric    string `yaml:"metric"`
	Fast      Stats  `yaml:"fastmath"`
	Reference *Stats `yaml:"algo_approx,omitempty"`
}

// Report is the full accuracy report.
type Report struct {
	CPU  string `yaml:"cpu,omitempty"`
	Rows []Row  `yaml:"results"`
}

func buildReport(kernels []kernelEntry, precisions []int, cfg Config, logger *zap.Logger) Report {
	var r Report
	for _, k := range kernels {
		xs, ys := k.inputs(cfg)
		if ys == nil {
			ys = make([]float64, len(xs))
		}

		for _, prec := range precisions {
			start := time.Now()
			row := Row{Kernel: k.name, Precision: prec, Metric: k.metric.String()}

			if prec == 32 {
				row.Fast = measure(xs, ys, k.metric,
					func(x, y float64) float64 { return float64(k.fast32(float32(x), float32(y))) },
					func(x, y float64) float64 { return k.exact(float64(float32(x)), float64(float32(y))) })
			} else {
				row.Fast = measure(xs, ys, k.metric, k.fast64, k.exact)
				if k.reference != nil {
					ref := measure(xs, ys, k.metric, k.reference, k.exact)
					row.Reference = &ref
				}
			}

			logger.Debug("kernel evaluated",
				zap.String("kernel", k.name),
				zap.Int("precision", prec),
				zap.Int("samples", row.Fast.Samples),
				zap.Int("skipped", row.Fast.Skipped),
				zap.Duration("elapsed", time.Since(start)))
			r.Rows = append(r.Rows, row)
		}
	}
	return r
}

// measure evaluates got against want on every (x, y) pair. Pairs whose
// reference value is not finite, or zero under the relative metric, are
// counted as skipped.
func measure(xs, ys []float64, m metric, got, want func(x, y float64) float64) Stats {
	errs := make([]float64, 0, len(xs))
	skipped := 0
	for i, x := range xs {
		w := want(x, ys[i])
		if math.IsNaN(w) || math.IsInf(w, 0) || (m == relative && w == 0) {
			skipped++
			continue
		}
		d := math.Abs(got(x, ys[i]) - w)
		if m == relative {
			d /= math.Abs(w)
		}
		errs = append(errs, d)
	}

	s := Stats{Samples: len(errs), Skipped: skipped}
	if len(errs) == 0 {
		return s
	}
	s.Max = floats.Max(errs)
	s.Mean = stat.Mean(errs, nil)
	if len(errs) > 1 {
		s.StdDev = stat.StdDev(errs, nil)
	}
	return s
}

func writeReport(w io.Writer, r Report, format string) error {
	if format == "yaml" {
		return writeYAML(w, r)
	}
	return writeTable(w, r)
}

func writeYAML(w io.Writer, r Report) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func writeTable(w io.Writer, r Report) error {
	if r.CPU != "" {
		if _, err := fmt.Fprintf(w, "CPU: %s\n\n", r.CPU); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tBits\tMetric\tSamples\tMax\tMean\tStdDev\tapprox Max\tapprox Mean\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t------\t-------\t---\t----\t------\t----------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, row := range r.Rows {
		refMax, refMean := "-", "-"
		if row.Reference != nil {
			refMax = formatErr(row.Reference.Max)
			refMean = formatErr(row.Reference.Mean)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Kernel,
			row.Precision,
			row.Metric,
			row.Fast.Samples,
			formatErr(row.Fast.Max),
			formatErr(row.Fast.Mean),
			formatErr(row.Fast.StdDev),
			refMax,
			refMean,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func formatErr(v float64) string {
	return strconv.FormatFloat(v, 'e', 3, 64)
}

// Command fastinfo reports the accuracy of the fastmath kernels.
//
// Usage:
//
//	fastinfo [flags] [kernel ...]
//
// Without arguments it reports every kernel. Each kernel is sampled over a
// fixed input set and compared against the math package; for float64, the
// algo-approx equivalents are measured on the same inputs where they exist.
//
// Defaults come from the environment (FASTINFO_SAMPLES, FASTINFO_MIN,
// FASTINFO_MAX, FASTINFO_PRECISION, FASTINFO_FORMAT, FASTINFO_LOG_LEVEL).
//
// Examples:
//
//	fastinfo sqrt log2
//	fastinfo -precision 32 -samples 100000
//	fastinfo -format yaml -cpu
//	fastinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-fastvec/internal/cpu"
)

var errNoKernels = errors.New("no matching kernels")

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of sample points per kernel")
	flag.Float64Var(&cfg.Min, "min", cfg.Min, "lower bound of the positive input range")
	flag.Float64Var(&cfg.Max, "max", cfg.Max, "upper bound of the positive input range")
	flag.StringVar(&cfg.Precision, "precision", cfg.Precision, "float width: 32, 64 or all")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: table or yaml")
	list := flag.Bool("list", false, "list available kernel names")
	showCPU := flag.Bool("cpu", false, "include detected CPU features")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fastinfo [flags] [kernel ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reports max/mean/stddev error of the fast approximations.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, reports every kernel.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fastinfo sqrt log2\n")
		fmt.Fprintf(os.Stderr, "  fastinfo -precision 32 -samples 100000\n")
		fmt.Fprintf(os.Stderr, "  fastinfo -format yaml -cpu\n")
	}
	flag.Parse()

	logger, err := newLogger(cfg.LogLevel, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if *list {
		printList(os.Stdout)
		return
	}

	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	kernels := resolveKernels(flag.Args(), logger)
	if len(kernels) == 0 {
		fmt.Fprintf(os.Stderr, "error: %v\n", errNoKernels)
		os.Exit(1)
	}
	precisions, _ := parsePrecision(cfg.Precision)

	report := buildReport(kernels, precisions, cfg, logger)
	if *showCPU {
		report.CPU = cpu.DetectFeatures().String()
	}

	if err := writeReport(os.Stdout, report, cfg.Format); err != nil {
		logger.Error("failed to write report", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	byName := make(map[string]string, len(registry))
	for _, e := range registry {
		byName[e.name] = e.desc
	}
	for _, n := range kernelNames() {
		fmt.Fprintf(w, "%-8s %s\n", n, byName[n])
	}
}

package main

import (
	"math"
	"sort"
	"strings"

	approx "github.com/meko-christian/algo-approx"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-fastvec/fastmath"
	"github.com/cwbudde/algo-fastvec/internal/sampling"
)

const ln2 = 0.693147180559945309417232121458

type metric int

const (
	relative metric = iota
	absolute
)

func (m metric) String() string {
	if m == absolute {
		return "abs"
	}
	return "rel"
}

// kernelEntry describes one approximation and how to sample and check it.
// Single-argument kernels ignore y.
type kernelEntry struct {
	name   string
	desc   string
	metric metric
	inputs func(cfg Config) (x, y []float64)

	fast32 func(x, y float32) float32
	fast64 func(x, y float64) float64
	exact  func(x, y float64) float64

	// reference is the algo-approx equivalent, float64 only. Nil if none.
	reference func(x, y float64) float64
}

func positiveRange(cfg Config) (x, y []float64) {
	return sampling.LogSpaced(cfg.Samples, cfg.Min, cfg.Max), nil
}

var registry = []kernelEntry{
	{
		name:      "invsqrt",
		desc:      "1/sqrt(x), magic seed + one Newton step",
		metric:    relative,
		inputs:    positiveRange,
		fast32:    func(x, _ float32) float32 { return fastmath.InvSqrt(x) },
		fast64:    func(x, _ float64) float64 { return fastmath.InvSqrt(x) },
		exact:     func(x, _ float64) float64 { return 1 / math.Sqrt(x) },
		reference: func(x, _ float64) float64 { return 1 / approx.FastSqrt(x) },
	},
	{
		name:      "sqrt",
		desc:      "x * InvSqrt(x)",
		metric:    relative,
		inputs:    positiveRange,
		fast32:    func(x, _ float32) float32 { return fastmath.Sqrt(x) },
		fast64:    func(x, _ float64) float64 { return fastmath.Sqrt(x) },
		exact:     func(x, _ float64) float64 { return math.Sqrt(x) },
		reference: func(x, _ float64) float64 { return approx.FastSqrt(x) },
	},
	{
		name:      "log2",
		desc:      "bit pattern scaled by 2^-mantissa minus bias",
		metric:    absolute,
		inputs:    positiveRange,
		fast32:    func(x, _ float32) float32 { return fastmath.Log2(x) },
		fast64:    func(x, _ float64) float64 { return fastmath.Log2(x) },
		exact:     func(x, _ float64) float64 { return math.Log2(x) },
		reference: func(x, _ float64) float64 { return approx.FastLog(x) / ln2 },
	},
	{
		name:   "exp2",
		desc:   "inverse of log2, clamped to the exponent range",
		metric: relative,
		inputs: func(cfg Config) (x, y []float64) {
			return sampling.Linear(cfg.Samples, -10, 10), nil
		},
		fast32:    func(p, _ float32) float32 { return fastmath.Exp2(p) },
		fast64:    func(p, _ float64) float64 { return fastmath.Exp2(p) },
		exact:     func(p, _ float64) float64 { return math.Exp2(p) },
		reference: func(p, _ float64) float64 { return approx.FastExp(p * ln2) },
	},
	{
		name:   "pow",
		desc:   "Exp2(y * Log2(x)), x in [0.5, 8], |y| <= 2",
		metric: relative,
		inputs: func(cfg Config) (x, y []float64) {
			return sampling.LogSpaced(cfg.Samples, 0.5, 8), sampling.Uniform(1, -2, 2, cfg.Samples)
		},
		fast32:    fastmath.Pow[float32],
		fast64:    fastmath.Pow[float64],
		exact:     math.Pow,
		reference: func(x, y float64) float64 { return approx.FastExp(y * approx.FastLog(x)) },
	},
	{
		name:   "cbrt",
		desc:   "Pow(x, 1/3)",
		metric: relative,
		inputs: positiveRange,
		fast32: func(x, _ float32) float32 { return fastmath.Cbrt(x) },
		fast64: func(x, _ float64) float64 { return fastmath.Cbrt(x) },
		exact:  func(x, _ float64) float64 { return math.Cbrt(x) },
	},
	{
		name:   "hypot",
		desc:   "Sqrt(x*x + y*y), unscaled",
		metric: relative,
		inputs: func(cfg Config) (x, y []float64) {
			return sampling.LogSpaced(cfg.Samples, cfg.Min, cfg.Max), sampling.Uniform(2, cfg.Min, cfg.Max, cfg.Samples)
		},
		fast32: fastmath.Hypot[float32],
		fast64: fastmath.Hypot[float64],
		exact:  math.Hypot,
	},
}

func kernelNames() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}

// resolveKernels maps names to registry entries in the given order. Unknown
// names are logged and skipped; no names selects every kernel.
func resolveKernels(names []string, logger *zap.Logger) []kernelEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]kernelEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []kernelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			logger.Warn("unknown kernel, use -list to see available", zap.String("kernel", name))
			continue
		}
		result = append(result, e)
	}
	return result
}

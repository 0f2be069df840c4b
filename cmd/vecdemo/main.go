// Command vecdemo walks through the vector container and the fast-math
// kernels, printing each intermediate result.
//
// Usage:
//
//	vecdemo [-double] [-precision n]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-fastvec/fastmath"
	"github.com/cwbudde/algo-fastvec/vector"
)

func main() {
	double := flag.Bool("double", false, "use float64 vectors and kernels")
	precision := flag.Int("precision", vector.DefaultPrecision, "decimals per printed element")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	opts := []vector.FormatOption{vector.WithPrecision(*precision)}
	if *double {
		err = run[float64](os.Stdout, opts...)
	} else {
		err = run[float32](os.Stdout, opts...)
	}
	if err != nil {
		logger.Error("demo failed", zap.Bool("double", *double), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// demo prints vectors and scalars to w, remembering the first write error.
type demo struct {
	w    io.Writer
	opts []vector.FormatOption
	err  error
}

func (d *demo) printf(format string, args ...any) {
	if d.err == nil {
		_, d.err = fmt.Fprintf(d.w, format, args...)
	}
}

func (d *demo) vec(label string, v interface {
	Fprint(io.Writer, string, ...vector.FormatOption) error
}) {
	if d.err == nil {
		d.err = v.Fprint(d.w, label, d.opts...)
	}
}

func run[T fastmath.Float](w io.Writer, opts ...vector.FormatOption) error {
	d := &demo{w: w, opts: opts}
	d.printf("=== vector operations ===\n")

	v1, err := vector.Zeros[T](3)
	if err != nil {
		return err
	}
	v2, err := vector.Filled[T](3, 2)
	if err != nil {
		return err
	}
	v3, err := vector.FromSlice([]T{1, 2, 3})
	if err != nil {
		return err
	}
	defer v1.Release()
	defer v2.Release()
	defer v3.Release()

	d.vec("v1", v1)
	d.vec("v2", v2)
	d.vec("v3", v3)

	sum, err := v2.Add(v3)
	if err != nil {
		return err
	}
	d.vec("v2 + v3", sum)
	sum.Release()

	if err := v1.AddInPlace(v3); err != nil {
		return err
	}
	d.vec("v1 += v3", v1)

	prod, err := v1.Mul(v2)
	if err != nil {
		return err
	}
	d.vec("v1 * v2", prod)
	prod.Release()

	if err := v1.AddScalarInPlace(10); err != nil {
		return err
	}
	d.vec("v1 += 10", v1)

	diff, err := v1.Sub(v3)
	if err != nil {
		return err
	}
	d.vec("v1 - v3", diff)
	diff.Release()

	cross, err := v3.Cross(v2)
	if err != nil {
		return err
	}
	d.vec("cross(v3, v2)", cross)
	cross.Release()

	dot, err := v3.Dot(v2)
	if err != nil {
		return err
	}
	d.printf("dot(v3, v2) = %f\n", dot)
	d.printf("magnitude(v3) = %f\n", v3.Magnitude())

	cp, err := v3.Copy()
	if err != nil {
		return err
	}
	if err := cp.PowInPlace(2); err != nil {
		return err
	}
	d.vec("v3^2", cp)
	cp.Release()

	d.printf("=== scalar kernels ===\n")
	d.printf("PowInt(2, 5) = %d\n", fastmath.PowInt(2, 5))
	d.printf("PowFloatInt(2, 3) = %f\n", fastmath.PowFloatInt(T(2), 3))
	d.printf("Sqrt(9) = %f\n", fastmath.Sqrt(T(9)))
	d.printf("Pow(2, 3) = %f\n", fastmath.Pow(T(2), T(3)))
	d.printf("Cbrt(27) = %f\n", fastmath.Cbrt(T(27)))
	d.printf("Hypot(3, 4) = %f\n", fastmath.Hypot(T(3), T(4)))
	d.printf("=== done ===\n")

	return d.err
}

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-fastvec/vector"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		run  func(*bytes.Buffer) error
	}{
		{"float32", func(b *bytes.Buffer) error { return run[float32](b) }},
		{"float64", func(b *bytes.Buffer) error { return run[float64](b) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.run(&buf); err != nil {
				t.Fatalf("run: %v", err)
			}
			out := buf.String()
			for _, want := range []string{
				"v1 [0.000000, 0.000000, 0.000000]",
				"v2 + v3 [3.000000, 4.000000, 5.000000]",
				"v1 += v3 [1.000000, 2.000000, 3.000000]",
				"v1 * v2 [2.000000, 4.000000, 6.000000]",
				"v1 += 10 [11.000000, 12.000000, 13.000000]",
				"v1 - v3 [10.000000, 10.000000, 10.000000]",
				"cross(v3, v2) [-2.000000, 4.000000, -2.000000]",
				"dot(v3, v2) = 12.000000",
				"PowInt(2, 5) = 32",
				"PowFloatInt(2, 3) = 8.000000",
				"=== done ===",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunPrecision(t *testing.T) {
	var buf bytes.Buffer
	if err := run[float64](&buf, vector.WithPrecision(1)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "cross(v3, v2) [-2.0, 4.0, -2.0]") {
		t.Fatalf("precision option not applied:\n%s", buf.String())
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRunReportsWriteError(t *testing.T) {
	if err := run[float32](failingWriter{}); !errors.Is(err, errWrite) {
		t.Fatalf("run() = %v, want %v", err, errWrite)
	}
}

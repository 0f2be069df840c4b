package vector

import (
	"io"
	"os"
	"strconv"
)

// DefaultPrecision is the number of decimals used when formatting elements.
const DefaultPrecision = 6

// FormatConfig controls the textual dump of a vector.
type FormatConfig struct {
	Precision int
}

// FormatOption mutates a FormatConfig.
type FormatOption func(*FormatConfig)

// DefaultFormatConfig returns the six-decimal layout.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{Precision: DefaultPrecision}
}

// WithPrecision sets the number of decimals per element. Negative values are ignored.
func WithPrecision(decimals int) FormatOption {
	return func(cfg *FormatConfig) {
		if decimals >= 0 {
			cfg.Precision = decimals
		}
	}
}

// ApplyFormatOptions applies zero or more options to the default config.
func ApplyFormatOptions(opts ...FormatOption) FormatConfig {
	cfg := DefaultFormatConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Sprint renders v as "<label> [e0, e1, ..., en]". An empty label drops the
// prefix; an undefined vector renders as an empty list.
func (v *Vector[T]) Sprint(label string, opts ...FormatOption) string {
	return string(v.appendText(nil, label, ApplyFormatOptions(opts...)))
}

// String renders v with the default precision and no label.
func (v *Vector[T]) String() string {
	return v.Sprint("")
}

// Fprint writes the Sprint rendering of v followed by a newline to w.
func (v *Vector[T]) Fprint(w io.Writer, label string, opts ...FormatOption) error {
	buf := v.appendText(nil, label, ApplyFormatOptions(opts...))
	_, err := w.Write(append(buf, '\n'))
	return err
}

// Print writes the Sprint rendering of v followed by a newline to stdout.
func (v *Vector[T]) Print(label string, opts ...FormatOption) error {
	return v.Fprint(os.Stdout, label, opts...)
}

func (v *Vector[T]) appendText(buf []byte, label string, cfg FormatConfig) []byte {
	if label != "" {
		buf = append(buf, label...)
		buf = append(buf, ' ')
	}
	buf = append(buf, '[')
	for i, x := range v.Raw() {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendFloat(buf, float64(x), 'f', cfg.Precision, 64)
	}
	return append(buf, ']')
}

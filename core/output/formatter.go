// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of a
// conversion table. Values arrive at full float64 precision; rounding
// happens here and nowhere else.
package output

import (
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wageman/core/convert"
	"wageman/core/wage"
	"wageman/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the plain grouped listing, one unit per paragraph
	FormatText Format = "text"

	// FormatTable is an aligned terminal table
	FormatTable Format = "table"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown table
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Options control how values are displayed.
type Options struct {
	// Precision is the number of decimal places; negative means shortest
	// representation that round-trips
	Precision int

	// CurrencySymbol is prepended to every value
	CurrencySymbol string

	// NoColor disables ANSI styling
	NoColor bool
}

// Result contains one conversion and its table
type Result struct {
	// Input is the wage as the user stated it
	Input wage.Wage

	// Table holds every converted value
	Table convert.Table

	// Metadata contains execution context
	Metadata Metadata
}

// Metadata contains execution context
type Metadata struct {
	// RunID identifies this conversion in logs and output
	RunID string `json:"run_id"`

	// Timestamp is when the conversion was performed
	Timestamp string `json:"timestamp"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewResult converts in and stamps the result with a fresh run id.
func NewResult(in wage.Wage, version string) *Result {
	return &Result{
		Input: in,
		Table: convert.ToAll(in),
		Metadata: Metadata{
			RunID:     uuid.NewString(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   version,
		},
	}
}

var constructors = map[Format]func(Options) Formatter{
	FormatText:     func(o Options) Formatter { return &textFormatter{opts: o} },
	FormatTable:    func(o Options) Formatter { return &tableFormatter{opts: o} },
	FormatJSON:     func(o Options) Formatter { return &jsonFormatter{} },
	FormatMarkdown: func(o Options) Formatter { return &markdownFormatter{opts: o} },
}

// Get returns the formatter for format.
func Get(format Format, opts Options) (Formatter, error) {
	ctor, ok := constructors[format]
	if !ok {
		return nil, errors.NotSupported("output format", string(format))
	}
	return ctor(opts), nil
}

// Formats lists the supported formats, sorted.
func Formats() []Format {
	formats := make([]Format, 0, len(constructors))
	for f := range constructors {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// FormatValue renders v with precision decimal places, or at full
// precision when precision is negative. Infinities render as +Inf/-Inf.
func FormatValue(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	d := decimal.NewFromFloat(v)
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(int32(precision))
}

func (o Options) money(v float64) string {
	return o.CurrencySymbol + FormatValue(v, o.Precision)
}

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wageman/core/convert"
	"wageman/core/wage"
	wmerrors "wageman/internal/errors"
)

var plain = Options{Precision: 2, CurrencySymbol: "$", NoColor: true}

func render(t *testing.T, format Format, opts Options, in wage.Wage) string {
	t.Helper()
	f, err := Get(format, opts)
	require.NoError(t, err)
	assert.Equal(t, format, f.Format())

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, NewResult(in, "test")))
	return buf.String()
}

func TestTextLayout(t *testing.T) {
	got := render(t, FormatText, plain, wage.New(32, wage.PrefixHour, wage.UnitHour4))

	want := "4 hours:\n" +
		"Hour\t$32.00\nDay\t$128.00\nMonth\t$3840.00\n\n" +
		"6 hours:\n" +
		"Hour\t$32.00\nDay\t$192.00\nMonth\t$5760.00\n\n" +
		"8 hours:\n" +
		"Hour\t$32.00\nDay\t$256.00\nMonth\t$7680.00\n\n"
	assert.Equal(t, want, got)
}

func TestTextFullPrecision(t *testing.T) {
	opts := Options{Precision: -1, CurrencySymbol: "€", NoColor: true}
	got := render(t, FormatText, opts, wage.New(100, wage.PrefixDay, wage.UnitHour6))

	assert.Contains(t, got, "4 hours:\nHour\t€16.666666666666668\n")
	assert.Contains(t, got, "Day\t€100\n")
}

func TestTextColor(t *testing.T) {
	opts := plain
	opts.NoColor = false
	got := render(t, FormatText, opts, wage.New(1, wage.PrefixHour, wage.UnitHour4))
	assert.True(t, strings.HasPrefix(got, "\033[1m\033[36m4 hours:\033[0m\n"), got)
}

func TestTableLayout(t *testing.T) {
	got := render(t, FormatTable, plain, wage.New(32, wage.PrefixHour, wage.UnitHour4))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Input: $32.00 per Hour (4 hours)", lines[0])
	assert.Equal(t, "Workday │ Hour   │ Day     │ Month", lines[1])
	assert.Equal(t, "4 hours │ $32.00 │ $128.00 │ $3840.00", lines[3])
	assert.Equal(t, "6 hours │ $32.00 │ $192.00 │ $5760.00", lines[4])
	assert.Equal(t, "8 hours │ $32.00 │ $256.00 │ $7680.00", lines[5])
}

func TestMarkdown(t *testing.T) {
	got := render(t, FormatMarkdown, plain, wage.New(160, wage.PrefixDay, wage.UnitHour8))

	assert.Contains(t, got, "**$160.00 per Day (8 hours workday)**")
	assert.Contains(t, got, "| Workday | Hour | Day | Month |\n|---|---:|---:|---:|\n")
	assert.Contains(t, got, "| 4 hours | $20.00 | $80.00 | $2400.00 |\n")
	assert.Contains(t, got, "| 8 hours | $20.00 | $160.00 | $4800.00 |\n")
}

func TestJSON(t *testing.T) {
	got := render(t, FormatJSON, plain, wage.New(160, wage.PrefixDay, wage.UnitHour8))

	var doc struct {
		Input struct {
			Value  float64 `json:"value"`
			Prefix string  `json:"prefix"`
			Unit   string  `json:"unit"`
		} `json:"input"`
		HourlyRate float64 `json:"hourly_rate"`
		Table      []struct {
			Unit        string `json:"unit"`
			HoursPerDay int    `json:"hours_per_day"`
			Values      []struct {
				Prefix string  `json:"prefix"`
				Hours  int     `json:"hours"`
				Value  float64 `json:"value"`
			} `json:"values"`
		} `json:"table"`
		Metadata Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &doc))

	assert.Equal(t, 160.0, doc.Input.Value)
	assert.Equal(t, "Day", doc.Input.Prefix)
	assert.Equal(t, "8 hours", doc.Input.Unit)
	assert.Equal(t, 20.0, doc.HourlyRate)

	require.Len(t, doc.Table, 3)
	assert.Equal(t, "4 hours", doc.Table[0].Unit)
	assert.Equal(t, 4, doc.Table[0].HoursPerDay)
	require.Len(t, doc.Table[0].Values, 3)
	assert.Equal(t, "Day", doc.Table[0].Values[1].Prefix)
	assert.Equal(t, 80.0, doc.Table[0].Values[1].Value)
	assert.Equal(t, 240, doc.Table[2].Values[2].Hours)
	assert.Equal(t, 4800.0, doc.Table[2].Values[2].Value)

	_, err := uuid.Parse(doc.Metadata.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "test", doc.Metadata.Version)
}

func TestJSONRejectsInfinity(t *testing.T) {
	f, err := Get(FormatJSON, plain)
	require.NoError(t, err)

	result := NewResult(wage.New(math.MaxFloat64, wage.PrefixHour, wage.UnitHour8), "test")
	err = f.Render(&bytes.Buffer{}, result)
	require.Error(t, err)
	assert.True(t, wmerrors.IsType(err, wmerrors.TypeOutput))
}

func TestUnknownFormat(t *testing.T) {
	_, err := Get("xml", plain)
	require.Error(t, err)
	assert.True(t, wmerrors.IsType(err, wmerrors.TypeNotSupported))
	assert.Equal(t, []Format{FormatJSON, FormatMarkdown, FormatTable, FormatText}, Formats())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{3840, 2, "3840.00"},
		{3840, -1, "3840"},
		{0.125, 2, "0.13"},
		{-10, 0, "-10"},
		{1.0 / 3, -1, "0.3333333333333333"},
		{math.Inf(1), 2, "+Inf"},
		{math.Inf(-1), -1, "-Inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.v, tt.precision), "%v@%d", tt.v, tt.precision)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorsAreOutputErrors(t *testing.T) {
	result := &Result{Input: wage.New(1, wage.PrefixHour, wage.UnitHour4), Table: convert.ToAll(wage.New(1, wage.PrefixHour, wage.UnitHour4))}

	for _, format := range Formats() {
		f, err := Get(format, plain)
		require.NoError(t, err)

		err = f.Render(failWriter{}, result)
		require.Error(t, err, format)
		assert.True(t, wmerrors.IsType(err, wmerrors.TypeOutput), format)
	}
}

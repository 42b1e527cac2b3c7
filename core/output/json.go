package output

import (
	"encoding/json"
	"io"
	"math"

	"wageman/core/convert"
	"wageman/internal/errors"
)

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

type jsonWage struct {
	Value  json.Number `json:"value"`
	Prefix string      `json:"prefix"`
	Unit   string      `json:"unit"`
}

type jsonRow struct {
	Unit        string     `json:"unit"`
	HoursPerDay int        `json:"hours_per_day"`
	Values      []jsonCell `json:"values"`
}

type jsonCell struct {
	Prefix string      `json:"prefix"`
	Hours  int         `json:"hours"`
	Value  json.Number `json:"value"`
}

type jsonDocument struct {
	Input      jsonWage    `json:"input"`
	HourlyRate json.Number `json:"hourly_rate"`
	Table      []jsonRow   `json:"table"`
	Metadata   Metadata    `json:"metadata"`
}

// Render writes the table as a single JSON document. Values are exact
// decimal renderings of the float64 results.
func (f *jsonFormatter) Render(w io.Writer, result *Result) error {
	doc, err := buildDocument(result)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Output("write json", err)
	}
	return nil
}

func buildDocument(result *Result) (*jsonDocument, error) {
	in := result.Input

	inValue, err := number(in.Value)
	if err != nil {
		return nil, err
	}
	rate, err := number(convert.HourlyRate(in))
	if err != nil {
		return nil, err
	}

	doc := &jsonDocument{
		Input:      jsonWage{Value: inValue, Prefix: in.Prefix.String(), Unit: in.Unit.String()},
		HourlyRate: rate,
		Metadata:   result.Metadata,
	}

	var row *jsonRow
	for _, c := range result.Table.Cells() {
		if row == nil || row.Unit != c.Unit.String() {
			doc.Table = append(doc.Table, jsonRow{Unit: c.Unit.String(), HoursPerDay: c.Unit.Hours()})
			row = &doc.Table[len(doc.Table)-1]
		}
		v, err := number(c.Value)
		if err != nil {
			return nil, err
		}
		row.Values = append(row.Values, jsonCell{
			Prefix: c.Prefix.String(),
			Hours:  c.Prefix.Hours(c.Unit),
			Value:  v,
		})
	}
	return doc, nil
}

func number(v float64) (json.Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", errors.Newf(errors.TypeOutput, "value %v cannot be represented in JSON", v)
	}
	return json.Number(FormatValue(v, -1)), nil
}

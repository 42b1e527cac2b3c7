package output

import (
	"io"

	"wageman/core/ui"
	"wageman/core/wage"
	"wageman/internal/errors"
)

type textFormatter struct {
	opts Options
}

func (f *textFormatter) Format() Format { return FormatText }

// Render prints each unit as a heading followed by one line per prefix,
// with a blank line closing every group.
func (f *textFormatter) Render(w io.Writer, result *Result) error {
	out := ui.NewWriter(w, f.opts.NoColor)

	cells := result.Table.Cells()
	for i, c := range cells {
		if i == 0 || c.Unit != cells[i-1].Unit {
			if i > 0 {
				out.Line("")
			}
			out.Header(c.Unit.String() + ":")
		}
		out.Line(c.Prefix.String() + "\t" + f.opts.money(c.Value))
	}
	if len(cells) > 0 {
		out.Line("")
	}

	if err := out.Err(); err != nil {
		return errors.Output("write text table", err)
	}
	return nil
}

type tableFormatter struct {
	opts Options
}

func (f *tableFormatter) Format() Format { return FormatTable }

func (f *tableFormatter) Render(w io.Writer, result *Result) error {
	out := ui.NewWriter(w, f.opts.NoColor)

	headers := []string{"Workday"}
	for p := range wage.Prefixes().Seq() {
		headers = append(headers, p.String())
	}
	table := out.NewTable(headers...).AlignRight(1, 2, 3)

	for u := range wage.Units().Seq() {
		row := []string{u.String()}
		for p := range wage.Prefixes().Seq() {
			if v, ok := result.Table.Get(u, p); ok {
				row = append(row, f.opts.money(v))
			} else {
				row = append(row, "")
			}
		}
		table.AddRow(row...)
	}

	out.Header("Input: " + f.opts.money(result.Input.Value) + " per " +
		result.Input.Prefix.String() + " (" + result.Input.Unit.String() + ")")
	table.Render()

	if err := out.Err(); err != nil {
		return errors.Output("write table", err)
	}
	return nil
}

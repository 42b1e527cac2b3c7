package output

import (
	"fmt"
	"io"
	"strings"

	"wageman/core/wage"
	"wageman/internal/errors"
)

type markdownFormatter struct {
	opts Options
}

func (f *markdownFormatter) Format() Format { return FormatMarkdown }

// Render writes one row per unit and one column per prefix.
func (f *markdownFormatter) Render(w io.Writer, result *Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s per %s (%s workday)**\n\n",
		f.opts.money(result.Input.Value), result.Input.Prefix, result.Input.Unit)

	header := []string{"Workday"}
	align := []string{"---"}
	for p := range wage.Prefixes().Seq() {
		header = append(header, p.String())
		align = append(align, "---:")
	}
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Join(align, "|") + "|\n")

	for u := range wage.Units().Seq() {
		cells := []string{u.String()}
		for p := range wage.Prefixes().Seq() {
			v, _ := result.Table.Get(u, p)
			cells = append(cells, escape(f.opts.money(v)))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Output("write markdown", err)
	}
	return nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

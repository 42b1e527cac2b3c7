// Package cmd - conversion command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wageman/adapters/hcl"
	"wageman/core/convert"
	"wageman/core/input"
	"wageman/core/output"
	"wageman/core/wage"
	"wageman/internal/config"
	"wageman/internal/errors"
	"wageman/internal/logging"
)

func (o *rootOptions) runConvert(cmd *cobra.Command, args []string) error {
	in, err := o.readWage(args)
	if err != nil {
		return err
	}

	opts, format, err := o.outputOptions(cmd)
	if err != nil {
		return err
	}
	formatter, err := output.Get(format, opts)
	if err != nil {
		return err
	}

	result := output.NewResult(in, Version)

	log := logging.With(zap.String("run_id", result.Metadata.RunID))
	log.Debug("wage parsed",
		zap.Float64("value", in.Value),
		zap.Stringer("prefix", in.Prefix),
		zap.Stringer("unit", in.Unit))
	log.Debug("table built",
		zap.Float64("hourly_rate", convert.HourlyRate(in)),
		zap.Int("cells", result.Table.Len()),
		zap.String("format", string(format)))

	return formatter.Render(cmd.OutOrStdout(), result)
}

func (o *rootOptions) readWage(args []string) (wage.Wage, error) {
	if o.file != "" {
		if len(args) > 0 {
			return wage.Wage{}, errors.Input("a value cannot be combined with --file")
		}
		return hcl.LoadProfile(o.file)
	}
	if len(args) == 0 {
		return wage.Wage{}, errors.Input("missing <value>; see --help")
	}
	return input.Parse(args[0], o.sel)
}

// outputOptions merges flags over the loaded configuration.
func (o *rootOptions) outputOptions(cmd *cobra.Command) (output.Options, output.Format, error) {
	cfg := config.Get().Output
	flags := cmd.Flags()

	opts := output.Options{
		Precision:      cfg.Precision,
		CurrencySymbol: cfg.CurrencySymbol,
		NoColor:        cfg.NoColor,
	}
	if flags.Changed("precision") {
		if o.precision < -1 || o.precision > config.MaxPrecision {
			return opts, "", errors.Newf(errors.TypeInput, "precision must be between -1 and %d", config.MaxPrecision)
		}
		opts.Precision = o.precision
	}
	if flags.Changed("currency") {
		opts.CurrencySymbol = o.currency
	}
	if flags.Changed("color") {
		opts.NoColor = !o.color
	}

	format := output.Format(cfg.DefaultFormat)
	if o.format != "" {
		format = output.Format(o.format)
	}
	return opts, format, nil
}

// Package cmd provides the CLI commands for wageman.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wageman/core/input"
	"wageman/internal/config"
	"wageman/internal/errors"
	"wageman/internal/logging"
)

// Version is overridden at build time with -ldflags "-X wageman/cmd/cli/cmd.Version=...".
var Version = "0.1.0"

// rootOptions holds the flags of one command tree.
type rootOptions struct {
	cfgFile string
	verbose bool

	sel       input.Selection
	file      string
	format    string
	precision int
	currency  string
	color     bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wageman <value> (-H | -d | -m) (-4 | -6 | -8)",
		Short: "Convert a wage between hourly, daily and monthly rates",
		Long: `wageman restates one wage for every pay period (hour, day, month)
and every workday length (4, 6 or 8 hours). A month counts 30 workdays.

Examples:
  wageman 20 -H -8          # $20 per hour, 8-hour workday
  wageman 160 -d -8         # $160 per day of 8 hours
  wageman -m -6 -- -500     # negative values go after --
  wageman --file rate.hcl --format json`,
		Version:           Version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.initConfig,
		RunE:              o.runConvert,
	}
	rootCmd.SetVersionTemplate("wageman version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.wageman.json)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging on stderr")

	f := rootCmd.Flags()
	f.BoolVarP(&o.sel.Hour, "hour", "H", false, "input wage is per hour")
	f.BoolVarP(&o.sel.Day, "day", "d", false, "input wage is per day")
	f.BoolVarP(&o.sel.Month, "month", "m", false, "input wage is per month")
	f.BoolVarP(&o.sel.Hour4, "4h", "4", false, "workday is 4 hours")
	f.BoolVarP(&o.sel.Hour6, "6h", "6", false, "workday is 6 hours")
	f.BoolVarP(&o.sel.Hour8, "8h", "8", false, "workday is 8 hours")
	f.StringVarP(&o.file, "file", "f", "", "read the wage from an HCL profile instead of arguments")
	f.StringVarP(&o.format, "format", "o", "", "output format (text, table, json, markdown)")
	f.IntVarP(&o.precision, "precision", "p", 2, "decimal places, -1 for full precision")
	f.StringVar(&o.currency, "currency", "", "currency symbol printed before values")
	f.BoolVar(&o.color, "color", false, "style headings with ANSI colors")

	rootCmd.MarkFlagsMutuallyExclusive("hour", "day", "month")
	rootCmd.MarkFlagsMutuallyExclusive("4h", "6h", "8h")
	for _, name := range []string{"hour", "day", "month", "4h", "6h", "8h"} {
		rootCmd.MarkFlagsMutuallyExclusive("file", name)
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(o))

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// ExitCode maps an Execute error to a process exit status: 0 on success,
// 1 for anything the user can fix, 255 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	e, ok := errors.As(err)
	if !ok {
		// cobra flag and argument errors
		return 1
	}
	switch e.Type {
	case errors.TypeInput, errors.TypeParsing, errors.TypeConfig, errors.TypeNotSupported:
		return 1
	}
	return 255
}

func (o *rootOptions) initConfig(cmd *cobra.Command, args []string) error {
	path := o.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	config.Set(cfg)

	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	switch cfg.Logging.Output {
	case "", "stderr":
		logging.InitializeWriter(cfg.Logging, cmd.ErrOrStderr())
	default:
		if err := logging.Initialize(cfg.Logging); err != nil {
			return errors.Config("open log output "+cfg.Logging.Output, err)
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "wageman version %s\n", Version); err != nil {
				return errors.Output("write version", err)
			}
			return nil
		},
	}
}

// Package main provides the CLI entry point for xlsx2csv.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xlsx2csv-go/internal/config"
	"github.com/ukaji3/xlsx2csv-go/internal/logging"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv"
)

func main() {
	os.Exit(execute(newRootCmd(os.Stdout, os.Stderr), os.Args[1:]))
}

// execute runs cmd with args and maps the outcome to a process exit code.
func execute(cmd *cobra.Command, args []string) int {
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xlsx2csv <input-file> [output-directory]",
		Short: "Convert every sheet of a workbook to CSV",
		Long: `xlsx2csv writes each worksheet of an Excel workbook to its own CSV file
named <input-stem>_<sheet>.csv. Files are UTF-8 with a byte-order mark so that
non-ASCII text opens correctly in spreadsheet applications.

The output directory defaults to the directory of the input file and is
created if missing.

Settings are read from xlsx2csv.yaml (in . or ~/.config/xlsx2csv) and
XLSX2CSV_* environment variables: XLSX2CSV_LOG_LEVEL, XLSX2CSV_LOG_FORMAT,
XLSX2CSV_PASSWORD.`,
		Example: `  xlsx2csv data.xlsx
  xlsx2csv data.xlsx output/
  xlsx2csv -- -data.xlsx output/`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat, stderr)
	if cfg.File != "" {
		logger.Info("using config file", "path", cfg.File)
	}

	opts := xlsx2csv.DefaultOptions()
	opts.Stdout = stdout
	opts.Logger = logger
	opts.Password = cfg.Password
	if len(args) > 1 {
		opts.OutputDir = args[1]
	}

	_, err = xlsx2csv.Convert(args[0], opts)
	return err
}

// Package xlsx2csv converts spreadsheet workbooks into one CSV file per sheet.
package xlsx2csv

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options configures a conversion.
type Options struct {
	// OutputDir is where CSV files are written.
	// If empty, defaults to the directory containing the input file.
	OutputDir string
	// Password opens encrypted workbooks. Ignored for unencrypted files.
	Password string
	// Stdout receives human-readable progress. Defaults to os.Stdout.
	Stdout io.Writer
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Stdout: os.Stdout,
		Logger: slog.Default(),
	}
}

// ResolveOutputDir returns the output directory for inputPath.
func (o Options) ResolveOutputDir(inputPath string) string {
	if o.OutputDir != "" {
		return o.OutputDir
	}
	return filepath.Dir(inputPath)
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

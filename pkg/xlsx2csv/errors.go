package xlsx2csv

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrMissingDependency indicates the workbook needs a reader this build does not include.
var ErrMissingDependency = errors.New("missing dependency")

// Conversion stages reported by ConversionError.
const (
	StageOpen  = "open"
	StageMkdir = "mkdir"
	StageRead  = "read"
	StageWrite = "write"
)

// MissingDependencyError describes a workbook format that cannot be read and how to fix it.
type MissingDependencyError struct {
	Format string
	Remedy string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%v: no reader for %s workbooks; %s", ErrMissingDependency, e.Format, e.Remedy)
}

func (e *MissingDependencyError) Unwrap() error {
	return ErrMissingDependency
}

// ConversionError represents any other failure while converting a workbook.
type ConversionError struct {
	Stage     string // "open", "mkdir", "read", "write"
	SheetName string // empty for workbook-level stages
	Err       error
}

func (e *ConversionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("conversion error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage, sheetName string, err error) *ConversionError {
	return &ConversionError{
		Stage:     stage,
		SheetName: sheetName,
		Err:       err,
	}
}

package gearsheet

import (
	"fmt"

	"gearsheet/pkg/gearsheet/config"
	"gearsheet/pkg/gearsheet/parser"
	"gearsheet/pkg/gearsheet/writer"
)

// The pipeline's error taxonomy. Each sentinel is owned by the stage that
// raises it; they are re-exported here so callers can match against one
// package.
var (
	// ErrInputNotFound indicates the input dump file does not exist.
	ErrInputNotFound = parser.ErrInputNotFound
	// ErrMalformedInput indicates the input dump is empty or has no header row.
	ErrMalformedInput = parser.ErrMalformedInput
	// ErrInvalidConfig indicates the sheet configuration is missing a
	// required section or contains an unusable value.
	ErrInvalidConfig = config.ErrInvalidConfig
	// ErrWriteFailure indicates the output workbook could not be created or saved.
	ErrWriteFailure = writer.ErrWriteFailure
)

// SheetError represents a failure while producing a specific sheet.
type SheetError struct {
	Sheet string
	Stage string // "project", "write"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, stage string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}

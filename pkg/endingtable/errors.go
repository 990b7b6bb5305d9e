package endingtable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInputNotFound indicates the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrInputRead indicates the input file could not be opened or parsed.
var ErrInputRead = errors.New("cannot read input")

// ErrSchema indicates the input table lacks required columns.
var ErrSchema = errors.New("missing required columns")

// ErrOutputWrite indicates the output file could not be written.
var ErrOutputWrite = errors.New("cannot write output")

// SchemaError lists the required columns absent from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSchema, strings.Join(e.Missing, ", "))
}

// Is reports whether target is ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// RowError describes a problem with a single data row. It is never fatal:
// the row is either skipped or converted with a default.
type RowError struct {
	Row    int    // sheet row number (1-based)
	Column string // canonical column name, empty when not column specific
	Value  string // raw cell text
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %q (%q): %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError creates a new RowError.
func NewRowError(row int, column, value string, err error) *RowError {
	return &RowError{
		Row:    row,
		Column: column,
		Value:  value,
		Err:    err,
	}
}

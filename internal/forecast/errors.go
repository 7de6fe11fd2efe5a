package forecast

import (
	"errors"
	"fmt"
)

var (
	ErrNoRows = errors.New("transaction table has no usable rows")
	// ErrInsufficientHistory marks a matrix too short to budget from. It is
	// reported on the plan, never returned to callers.
	ErrInsufficientHistory = errors.New("insufficient monthly history")
	ErrNoOrderFound        = errors.New("no candidate order could be fitted")
)

// SchemaError reports a transaction table that is missing a required field.
type SchemaError struct {
	Field  string
	Row    int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("schema error: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("schema error: row %d: %s: %s", e.Row, e.Field, e.Reason)
}

func newColumnError(field, reason string) *SchemaError {
	return &SchemaError{Field: field, Row: -1, Reason: reason}
}

// ModelFitError reports a category whose series could not be modelled.
type ModelFitError struct {
	Category string
	Err      error
}

func (e *ModelFitError) Error() string {
	return fmt.Sprintf("model fit failed for %q: %v", e.Category, e.Err)
}

func (e *ModelFitError) Unwrap() error {
	return e.Err
}

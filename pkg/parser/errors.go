package parser

import "fmt"

const (
	FieldDate   = "date"
	FieldAmount = "amount"
)

// FieldError reports a date or amount that is present but cannot be parsed.
type FieldError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

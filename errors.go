package quoter

import (
	"errors"
	"fmt"
)

// Common errors returned by Quoter operations.
var (
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrUnsupportedValueKind = errors.New("unsupported value kind")
	ErrMalformedBytea       = errors.New("malformed bytea")
)

// QuoteError wraps an error with quoting context.
//
// It records which operation failed and the input that caused it, so a
// caller building SQL can report exactly which name or value was rejected.
type QuoteError struct {
	Op    string // Operation being performed: "quote_table_name", "quote", "unescape_bytea"
	Input string // Offending input, truncated for display
	Cause error  // The underlying error that occurred
}

func (e *QuoteError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *QuoteError) Unwrap() error {
	return e.Cause
}

// maxErrorInput bounds how much of a rejected input ends up in error messages.
const maxErrorInput = 64

// newQuoteError creates a new QuoteError, truncating long inputs.
func newQuoteError(op, input string, err error) error {
	if len(input) > maxErrorInput {
		input = input[:maxErrorInput] + "..."
	}
	return &QuoteError{
		Op:    op,
		Input: input,
		Cause: err,
	}
}

package currency

import "errors"

// Validation failure kinds. Every *ValidationError wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	// ErrEmptyCode indicates the input was the empty string.
	ErrEmptyCode = errors.New("empty currency code")

	// ErrCodeTooLong indicates the input exceeds the provider's max code length.
	ErrCodeTooLong = errors.New("currency code too long")

	// ErrUnknownCode indicates the input is not in the provider's code set.
	ErrUnknownCode = errors.New("unknown currency code")
)

// ValidationError is the structured outcome of a failed validation. Message
// is human-readable and safe to surface to end users. Validation failures are
// expected per-input outcomes, not faults: validating a batch can continue
// past any number of them.
type ValidationError struct {
	Message string
	kind    error
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap exposes the failure kind for errors.Is.
func (e *ValidationError) Unwrap() error { return e.kind }

func newValidationError(kind error, message string) *ValidationError {
	return &ValidationError{Message: message, kind: kind}
}

package estimator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput matches every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports an out-of-domain numeric argument. The same input
// always produces the same error.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// Invalid builds an InvalidInputError for callers that add their own limits
// on top of the estimator's domain checks.
func Invalid(field, format string, args ...any) error {
	return invalid(field, fmt.Sprintf(format, args...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requireFinite(field string, v float64) error {
	if !isFinite(v) {
		return invalid(field, "must be a finite number")
	}
	return nil
}

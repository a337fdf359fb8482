package optionpricing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrConvergenceFailure = errors.New("convergence failure")
)

// InputError reports a contract field that fails validation. It unwraps
// to ErrInvalidInput so callers can match with errors.Is.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func newInputError(field string, value float64, reason string) *InputError {
	return &InputError{Field: field, Value: value, Reason: reason}
}

// ConvergenceError reports an implied volatility search that could not
// be resolved. It unwraps to ErrConvergenceFailure.
type ConvergenceError struct {
	Reason     string
	Iterations int
	LastSigma  float64
	LastDiff   float64
}

func (e *ConvergenceError) Error() string {
	if e.Iterations > 0 {
		return fmt.Sprintf("convergence failure: %s (iterations=%d, sigma=%v, diff=%v)", e.Reason, e.Iterations, e.LastSigma, e.LastDiff)
	}

	return fmt.Sprintf("convergence failure: %s", e.Reason)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrConvergenceFailure
}

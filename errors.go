package surreal

import (
	"errors"
	"fmt"
)

// WellFormingError is returned by the validating constructor when both
// option sets are non-empty and some left option is not strictly less than
// some right option. It is the only user-facing checked error in the core:
// all other operations are total over well-formed handles.
type WellFormingError struct {
	// Left is the offending (largest) left option.
	Left Number

	// Right is the offending (smallest) right option.
	Right Number
}

// Error implements the error interface.
func (e *WellFormingError) Error() string {
	return fmt.Sprintf("surreal: not well formed: left option %s is not less than right option %s",
		e.Left, e.Right)
}

// IsWellFormingError reports whether err is (or wraps) a *WellFormingError.
func IsWellFormingError(err error) bool {
	var we *WellFormingError
	return errors.As(err, &we)
}

// DivisorError is returned by RemChecked when the divisor is not strictly
// positive, the precondition for the remainder loop to terminate.
type DivisorError struct {
	// Divisor is the rejected divisor.
	Divisor Number
}

// Error implements the error interface.
func (e *DivisorError) Error() string {
	return fmt.Sprintf("surreal: remainder divisor %s is not strictly positive", e.Divisor)
}

// IsDivisorError reports whether err is (or wraps) a *DivisorError.
func IsDivisorError(err error) bool {
	var de *DivisorError
	return errors.As(err, &de)
}

package stgen

import (
	"errors"
	"fmt"
)

// ExitCode represents categorized error codes
type ExitCode int

const (
	ExitCodeAssertionFailure   ExitCode = 1
	ExitCodeClosureIncomplete  ExitCode = 20
	ExitCodeTableOverflow      ExitCode = 21
	ExitCodeArithmeticOverflow ExitCode = 22
	ExitCodeInvariantViolation ExitCode = 23
	ExitCodeOsError            ExitCode = 33
)

func (e ExitCode) String() string {
	switch e {
	case ExitCodeAssertionFailure:
		return "AssertionFailure"
	case ExitCodeClosureIncomplete:
		return "ClosureIncomplete"
	case ExitCodeTableOverflow:
		return "TableOverflow"
	case ExitCodeArithmeticOverflow:
		return "ArithmeticOverflow"
	case ExitCodeInvariantViolation:
		return "InvariantViolation"
	case ExitCodeOsError:
		return "OsError"
	default:
		return fmt.Sprintf("ExitCode(%d)", int(e))
	}
}

// StateTableError represents an error from state table generation
type StateTableError struct {
	Code    ExitCode
	Message string
}

func (e *StateTableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewStateTableError creates a new StateTableError
func NewStateTableError(code ExitCode, message string) *StateTableError {
	return &StateTableError{Code: code, Message: message}
}

// ErrExitCode creates a StateTableError and returns it
func ErrExitCode(code ExitCode, message string) error {
	return &StateTableError{Code: code, Message: message}
}

func errExitCodef(code ExitCode, format string, args ...any) error {
	return &StateTableError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsStateTableError checks if an error is a StateTableError and returns it
func IsStateTableError(err error) (*StateTableError, bool) {
	var stErr *StateTableError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

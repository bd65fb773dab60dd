// Package errors provides consistent error types for the Cotton Tracker CLI.
// It defines two main categories: UserError (fixable by the user) and
// SystemError (persistence or environment issues), plus sentinels for the
// conditions the stores and the reconciler report.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrRecordNotFound     = errors.New("history record not found")
	ErrEmptySession       = errors.New("session is empty")
	ErrPromotedNotCleared = errors.New("session promoted but not cleared")
	ErrInvalidExpression  = errors.New("invalid quantity expression")
	ErrInvalidResult      = errors.New("invalid expression result")
	ErrInvalidDate        = errors.New("invalid date")
	ErrDatabaseCorrupted  = errors.New("database corrupted")
	ErrLockHeld           = errors.New("database locked by another process")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, out-of-range quantity or rate, malformed expression.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
	Err        error  // Underlying sentinel, if any
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a system-level error that the user cannot directly
// fix. Examples: store rejection, disk full, database corruption.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// PromotedNotClearedError reports that a day completion committed the merged
// history record but failed to clear the session afterwards. The caller must
// retry only the clear step; re-running the promotion would duplicate entries.
type PromotedNotClearedError struct {
	Date  string // The history date that was committed
	Cause error  // Why the clear failed
}

func (e *PromotedNotClearedError) Error() string {
	return fmt.Sprintf("day %s saved to history but session not cleared: %v", e.Date, e.Cause)
}

func (e *PromotedNotClearedError) Unwrap() error {
	return e.Cause
}

// Is makes the error match ErrPromotedNotCleared.
func (e *PromotedNotClearedError) Is(target error) bool {
	return target == ErrPromotedNotCleared
}

// NewPromotedNotClearedError creates a new PromotedNotClearedError.
func NewPromotedNotClearedError(date string, cause error) *PromotedNotClearedError {
	return &PromotedNotClearedError{Date: date, Cause: cause}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// IsNotFound checks if an error is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntryNotFound) || errors.Is(err, ErrRecordNotFound)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// AsSystemError extracts a SystemError from an error chain.
func AsSystemError(err error) (*SystemError, bool) {
	var se *SystemError
	ok := errors.As(err, &se)
	return se, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

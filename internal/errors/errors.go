package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the
// application. These codes are used to signal the outcome of the program
// execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorOverflow = 2   // Indicates the requested term exceeds the numeric type.
	ExitErrorIO       = 3   // Indicates the output destination rejected a write.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WriteError represents a failed write to the output destination. It is
// fatal: the program performs no retry or recovery (the destination is
// assumed gone, as with a closed pipe).
type WriteError struct {
	// Op describes what was being written, e.g. "term 4" or "sequence file".
	Op string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns a formatted message naming the failed write.
func (e WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying I/O error, allowing inspection with
// errors.Is and errors.As.
func (e WriteError) Unwrap() error { return e.Cause }

// NewWriteError wraps an I/O error with the operation that failed.
// Returns nil if err is nil.
func NewWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	return WriteError{Op: op, Cause: err}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error can be unwrapped with errors.Unwrap() and checked with
// errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

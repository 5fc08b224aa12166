package core

import (
	perrors "github.com/pkg/errors"
)

const (
	// ErrUnknownApplication - the requested app id is not in the catalog
	ErrUnknownApplication = 101
	// ErrToolUnavailable - the backing tool for a method is not usable
	ErrToolUnavailable = 102
	// ErrNetwork - a network level failure
	ErrNetwork = 103
	// ErrTimeout - an operation exceeded its deadline
	ErrTimeout = 104
	// ErrNonZeroExit - an install command exited with a non-zero code
	ErrNonZeroExit = 105
	// ErrDownload - the installer artifact could not be downloaded
	ErrDownload = 106
	// ErrCancelled - the install was cancelled by the caller
	ErrCancelled = 107
)

// Error is a typed error used to classify install failures
type Error struct {
	err  string
	Type int
}

func (e *Error) Error() string {
	return e.err
}

// NewTypedError creates a new error with a provisor specific type
func NewTypedError(msg string, etype int) error {
	return &Error{err: msg, Type: etype}
}

// IsErrorType takes an error and checks if it matches the provided type. The
// error chain is unwrapped first, so wrapped typed errors still match.
func IsErrorType(err error, etype int) bool {
	if err == nil {
		return false
	}
	switch e := perrors.Cause(err).(type) {
	case *Error:
		return e.Type == etype
	default:
		return false
	}
}

// IsRetryable checks if an error is worth retrying under the provided retry
// configuration. Download failures count as network failures.
func IsRetryable(err error, cfg RetryConfig) bool {
	if cfg.RetryNetworkErrors && (IsErrorType(err, ErrNetwork) || IsErrorType(err, ErrDownload)) {
		return true
	}
	if cfg.RetryTimeouts && IsErrorType(err, ErrTimeout) {
		return true
	}
	return false
}

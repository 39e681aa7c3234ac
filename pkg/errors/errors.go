package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Path resolution errors
	ErrPathNotFound ErrorCode = "PATH_NOT_FOUND"
	ErrPathInvalid  ErrorCode = "PATH_INVALID"
	ErrRootNotFound ErrorCode = "ROOT_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Formatter invocation errors
	ErrToolExecute ErrorCode = "TOOL_EXECUTE"
)

// FmtError represents a structured error with code and details
type FmtError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FmtError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FmtError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FmtError) Is(target error) bool {
	var targetErr *FmtError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FmtError with the given code and message
func New(code ErrorCode, message string) *FmtError {
	return &FmtError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FmtError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FmtError {
	return &FmtError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FmtError
func Wrap(err error, code ErrorCode, message string) *FmtError {
	if err == nil {
		return nil
	}
	return &FmtError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FmtError {
	if err == nil {
		return nil
	}
	return &FmtError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FmtError) WithDetail(key string, value interface{}) *FmtError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fmtErr *FmtError
	if errors.As(err, &fmtErr) {
		return fmtErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FmtError
func GetErrorCode(err error) ErrorCode {
	var fmtErr *FmtError
	if errors.As(err, &fmtErr) {
		return fmtErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FmtError
func GetErrorDetails(err error) map[string]interface{} {
	var fmtErr *FmtError
	if errors.As(err, &fmtErr) {
		return fmtErr.Details
	}
	return nil
}

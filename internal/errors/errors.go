package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies a loader failure.
type ErrorType string

const (
	ErrTypeNotFound  ErrorType = "NOT_FOUND"
	ErrTypeEmptyData ErrorType = "EMPTY_DATA"
	ErrTypeIO        ErrorType = "IO"
	ErrTypeConfig    ErrorType = "CONFIG"
)

// Sentinel values for errors.Is matching on the failure category.
var (
	ErrNotFound  = &AppError{Type: ErrTypeNotFound, Message: "resource not found"}
	ErrEmptyData = &AppError{Type: ErrTypeEmptyData, Message: "resource empty or unparseable"}
	ErrIO        = &AppError{Type: ErrTypeIO, Message: "i/o failure"}
	ErrConfig    = &AppError{Type: ErrTypeConfig, Message: "invalid configuration"}
)

// AppError is an application-specific error carrying a failure category, an
// optional cause, and free-form context for logging.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError of the same Type, so callers can test a failure
// category against the package sentinels without comparing messages.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Type == t.Type
	}
	return false
}

// WithContext attaches a key/value pair to the error and returns it.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error.
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("file not found at %s", path), cause)
}

// NewEmptyDataError reports a resource that exists but holds no usable data.
func NewEmptyDataError(path string, cause error) *AppError {
	return NewAppError(ErrTypeEmptyData, fmt.Sprintf("file %s is empty or unparseable", path), cause)
}

// NewIOError reports any other read failure.
func NewIOError(path string, cause error) *AppError {
	return NewAppError(ErrTypeIO, fmt.Sprintf("i/o error while accessing %s", path), cause)
}

// NewConfigError reports invalid configuration.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

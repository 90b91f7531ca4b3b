package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryIO              = "io"
	categoryParse           = "parse"
	categoryStore           = "store"
	categoryFormat          = "format"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 400,
	}
}

// NewIOError creates a new ServiceError with category io (file open/read/delete/archive failures).
func NewIOError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryIO,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 500,
	}
}

// NewParseError creates a new ServiceError with category parse (timestamp parse or unknown event kind).
func NewParseError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryParse,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 422,
	}
}

// NewStoreError creates a new ServiceError with category store.
func NewStoreError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryStore,
		Code:           code,
		Message:        "store operation failed",
		Cause:          cause,
		HttpStatusCode: 503,
	}
}

// NewFormatError creates a new ServiceError with category format.
func NewFormatError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryFormat,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 422,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: 500,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // io, parse, store, format, invalid_argument or internal
	Code           string // service-owned stable code (e.g. ING_1000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int    // HTTP status code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// IsInternalError reports whether the error is caused by the system rather than the caller's input.
// Store and io failures count as internal.
func (e *ServiceError) IsInternalError() bool {
	switch e.Category {
	case categoryInternal, categoryStore, categoryIO:
		return true
	}
	return false
}

func (e *ServiceError) IsIOError() bool {
	return e.Category == categoryIO
}

func (e *ServiceError) IsParseError() bool {
	return e.Category == categoryParse
}

func (e *ServiceError) IsStoreError() bool {
	return e.Category == categoryStore
}

func (e *ServiceError) IsFormatError() bool {
	return e.Category == categoryFormat
}

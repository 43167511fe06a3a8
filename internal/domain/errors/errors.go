package errors

import (
	"context"
	"fmt"
	"net/http"

	"userlookup/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Kind is the closed set of failure classes produced by the use case layer.
type Kind int

const (
	// KindUnknown marks errors this layer did not produce, cancellation included.
	KindUnknown Kind = iota
	// KindInfrastructure marks pool acquisition and query failures.
	KindInfrastructure
	// KindNotFound marks a successful lookup that matched no record.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInfrastructure:
		return "infrastructure"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// KindOf classifies err by walking its chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var infraErr *InfrastructureError
	if errors.As(err, &infraErr) {
		return KindInfrastructure
	}

	if errors.Is(err, ErrNotFound) {
		return KindNotFound
	}

	return KindUnknown
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not Found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewNotFoundError returns ErrNotFound carrying details.
func NewNotFoundError(details string) *BaseError {
	return ErrNotFound.WithDetails(details)
}

// InfrastructureError reports a connection, pool or query fault. The detail is
// an opaque diagnostic; no structured cause is exposed beyond Unwrap.
type InfrastructureError struct {
	err     error
	details string
}

// NewInfrastructureError creates an infrastructure error; err may be nil.
func NewInfrastructureError(err error, details string) *InfrastructureError {
	return &InfrastructureError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *InfrastructureError) Error() string {
	if e.err == nil {
		return e.details
	}

	return fmt.Sprintf("%s: %v", e.details, e.err)
}

// Unwrap exposes the driver error.
func (e *InfrastructureError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *InfrastructureError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *InfrastructureError) ErrorCode() string {
	return "INFRASTRUCTURE_FAILURE"
}

// Message returns the user-friendly error message
func (e *InfrastructureError) Message() string {
	return "Infrastructure failure"
}

// Details returns the full diagnostic, cause included.
func (e *InfrastructureError) Details() string {
	return e.Error()
}

// AcquireFailedDetail prefixes every pool acquisition failure.
const AcquireFailedDetail = "Failed to acquire connection"

// Infrastructure converts a storage-side failure into an InfrastructureError.
// context.Canceled is returned as-is (with a stack) because a cancelled call is
// neither a missing record nor a broken backend.
func Infrastructure(err error, details string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return errors.WithStack(err)
	}

	var infraErr *InfrastructureError
	if errors.As(err, &infraErr) {
		return err
	}

	return NewInfrastructureError(err, details)
}

// NewAcquireError reports a failure to obtain a connection from a pool.
func NewAcquireError(err error) error {
	return Infrastructure(err, AcquireFailedDetail)
}

// Package errors defines the application error taxonomy shared by
// controllers and HTTP handlers.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the application.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL"
)

// AppError carries a machine-readable code alongside a human-readable
// message. Handlers map codes to HTTP status codes; controllers raise them.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that the requested entity does not resolve to a live row.
// Soft-deleted rows read as absent.
func NotFound(format string, args ...any) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation reports malformed input, rejected before any mutation attempt.
func Validation(format string, args ...any) *AppError {
	return &AppError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness violation such as a duplicate context name.
func Conflict(format string, args ...any) *AppError {
	return &AppError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected store or infrastructure failure.
func Internal(msg string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: msg, Err: err}
}

func is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool   { return is(err, CodeNotFound) }
func IsValidation(err error) bool { return is(err, CodeValidation) }
func IsConflict(err error) bool   { return is(err, CodeConflict) }

// HTTPStatus maps an error to its HTTP status code. Unrecognized errors
// are treated as internal failures.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

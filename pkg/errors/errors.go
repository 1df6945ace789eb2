package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

// Forbidden is the access-denied outcome: the resource exists but the caller
// is not a party to it. Kept distinct from NotFound so clients can explain
// the difference.
func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

// Transient marks a backend hiccup (unavailable, deadline exceeded).
// Idempotent reads may retry these.
func Transient(message string, err error) *AppError {
	return &AppError{
		Code:    "TRANSIENT",
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// PermissionDenied marks a backing-store policy rejection. Must be logged and
// surfaced as a configuration problem, never swallowed as zero results.
func PermissionDenied(message string, err error) *AppError {
	return &AppError{
		Code:    "PERMISSION_DENIED",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is(err, "NOT_FOUND")
}

func IsForbidden(err error) bool {
	return Is(err, "FORBIDDEN")
}

func IsTransient(err error) bool {
	return Is(err, "TRANSIENT")
}

func IsPermissionDenied(err error) bool {
	return Is(err, "PERMISSION_DENIED")
}

package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError classifies a failure so the handler layer can pick the right HTTP
// status without matching on error strings. Err carries the internal cause for
// server-side logging and is never serialized to the client.
type AppError struct {
	Status  int
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

func (e *AppError) Unwrap() error { return e.Err }

// ValidationError reports missing, malformed or out-of-range input (400).
func ValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message}
}

// ConflictError reports a uniqueness violation (400).
func ConflictError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: "CONFLICT", Message: message}
}

// NotFoundError reports a missing referenced entity (404).
func NotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

// AuthenticationError reports a missing or invalid credential (401).
func AuthenticationError(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

// AuthorizationError reports an insufficient role (403).
func AuthorizationError(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: message}
}

// InternalError wraps an unexpected failure (500). The client only ever sees
// the generic message.
func InternalError(err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "Internal server error", Err: err}
}

// AsAppError unwraps err into an *AppError if it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Package errors provides the error taxonomy shared by providers, relays and
// the dispatcher.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

const (
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
	ErrCodeUnknownIntent ErrorCode = "UNKNOWN_INTENT"
)

// StandardError is the structured error carried across service boundaries.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Detail is the human-readable text written to error response bodies.
func (e *StandardError) Detail() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Message
}

// HTTPStatus maps the error code onto a response status.
func (e *StandardError) HTTPStatus() int {
	return StatusForCode(e.Code)
}

// StatusForCode returns the HTTP status for an error code.
func StatusForCode(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnknownIntent:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CodeForStatus is the inverse of StatusForCode for statuses received from a
// downstream service.
func CodeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return ErrCodeNotFound
	case status >= 400 && status < 500:
		return ErrCodeBadRequest
	default:
		return ErrCodeInternal
	}
}

// NewBadRequestError is returned for malformed bodies or a mismatched type tag.
func NewBadRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBadRequest,
		Message:   "Bad request",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError is returned when a requested resource is not served.
func NewNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   "Not found",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure, keeping its message.
func NewInternalError(err error) *StandardError {
	details := "unknown error"
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal error",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

func NewUnknownIntentError(query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownIntent,
		Message:   "I don't understand that request. Try asking about weather or tell me a joke!",
		Metadata:  map[string]interface{}{"query": query},
		Timestamp: time.Now().UTC(),
	}
}

// Normalize converts any error into a StandardError. Errors that are not
// already StandardErrors become INTERNAL_ERROR.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// HasCode reports whether err is a StandardError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// GetErrorCategory groups codes for logs and metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeBadRequest, ErrCodeNotFound, ErrCodeUnknownIntent:
		return "CLIENT"
	case ErrCodeInternal:
		return "SERVER"
	default:
		return "OTHER"
	}
}

// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package domain

import "errors"

// ErrorType represents the semantic category of an error
type ErrorType int

const (
	ErrorTypeValidation   ErrorType = iota // Input validation errors (400 Bad Request)
	ErrorTypeUnauthorized                  // Authentication errors (401 Unauthorized)
	ErrorTypeNotFound                      // Resource not found errors (404 Not Found)
	ErrorTypeUpstream                      // Upstream API errors (502 Bad Gateway)
	ErrorTypeInternal                      // Internal server errors (500 Internal Server Error)
	ErrorTypeUnavailable                   // Service unavailable errors (503 Service Unavailable)
)

// DomainError represents an error with semantic type information
type DomainError struct {
	Type    ErrorType
	Message string
	// StatusCode is the upstream HTTP status for ErrorTypeUpstream errors,
	// zero otherwise.
	StatusCode int
	Err        error // underlying error for wrapping
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the semantic type of an error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ErrorTypeInternal // default fallback
}

// Error constructors for different types
func NewValidationError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, Message: message, Err: errors.Join(err...)}
}

func NewUnauthorizedError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnauthorized, Message: message, Err: errors.Join(err...)}
}

func NewNotFoundError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeNotFound, Message: message, Err: errors.Join(err...)}
}

// NewUpstreamError wraps a non-2xx response from the calendar API, keeping
// the original status code so it can be surfaced to the caller.
func NewUpstreamError(message string, statusCode int, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUpstream, Message: message, StatusCode: statusCode, Err: errors.Join(err...)}
}

func NewInternalError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInternal, Message: message, Err: errors.Join(err...)}
}

func NewUnavailableError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnavailable, Message: message, Err: errors.Join(err...)}
}

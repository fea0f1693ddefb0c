package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a structured error response from the backend.
// Callers should prefer the predicate functions (IsNotFound,
// IsUnauthorized, etc.) to inspect errors rather than asserting on
// this type directly.
type APIError struct {
	operation  string
	statusCode int
	detail     string
}

func (e *APIError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("%s: HTTP %d: %s", e.operation, e.statusCode, e.detail)
	}
	return fmt.Sprintf("%s: HTTP %d", e.operation, e.statusCode)
}

func newAPIError(operation string, statusCode int, detail string) *APIError {
	return &APIError{
		operation:  operation,
		statusCode: statusCode,
		detail:     detail,
	}
}

// StatusCode returns the HTTP status code from the response.
func (e *APIError) StatusCode() int { return e.statusCode }

// Detail returns the server-supplied error message, when present.
func (e *APIError) Detail() string { return e.detail }

// Operation returns a short description of the API call that failed.
func (e *APIError) Operation() string { return e.operation }

// TransportError wraps a failure that happened before any HTTP status
// was received (connection refused, DNS, timeout).
type TransportError struct {
	operation string
	err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.operation, e.err)
}

func (e *TransportError) Unwrap() error { return e.err }

// IsUnauthorized reports whether err is an API error with HTTP 401 status.
func IsUnauthorized(err error) bool { return HasStatusCode(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is an API error with HTTP 403 status.
func IsForbidden(err error) bool { return HasStatusCode(err, http.StatusForbidden) }

// IsNotFound reports whether err is an API error with HTTP 404 status.
func IsNotFound(err error) bool { return HasStatusCode(err, http.StatusNotFound) }

// IsValidation reports whether err is an API error carrying a rejected
// payload (HTTP 400 or 422). The server message is in Detail.
func IsValidation(err error) bool {
	return HasStatusCode(err, http.StatusBadRequest) ||
		HasStatusCode(err, http.StatusUnprocessableEntity)
}

// IsServerError reports whether err is an API error with a 5xx status.
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.statusCode >= 500
}

// IsNetwork reports whether err is a transport failure (no HTTP
// response was received at all).
func IsNetwork(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// HasStatusCode reports whether err is an API error whose HTTP status code matches.
func HasStatusCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.statusCode == code
}

package listing

import (
	"errors"
	"fmt"
)

// ErrFetchFailed matches every error returned when the listing page could
// not be retrieved: transport errors, timeouts, and non-2xx responses.
var ErrFetchFailed = errors.New("failed to fetch listing")

// FetchError describes a failed listing fetch.
type FetchError struct {
	// URL is the page that was requested.
	URL string

	// StatusCode is the HTTP status of the response, or 0 when no response
	// was received.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFetchFailed, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFetchFailed.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// StatusError is the cause recorded when the server answered with a
// non-success status.
type StatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Status is the status line text, e.g. "503 Service Unavailable".
	Status string
}

// Error implements error.
func (e *StatusError) Error() string {
	return "unexpected HTTP status " + e.Status
}

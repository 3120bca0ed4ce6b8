package dblp

import (
	"errors"
	"fmt"
)

// Sentinel errors for error type checking with errors.Is.
var (
	// ErrNetworkError indicates a connection or transport failure.
	ErrNetworkError = errors.New("network error")
	// ErrInvalidResponse indicates the API returned an unparseable body.
	ErrInvalidResponse = errors.New("invalid response")
)

// StatusError reports a non-200 response from the search API. Callers
// treat it as "zero candidates", not as a fatal condition.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search API returned status code %d", e.StatusCode)
}

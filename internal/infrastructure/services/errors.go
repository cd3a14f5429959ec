// internal/infrastructure/services/errors.go
package services

import "fmt"

// TransportError indicates the remote service could not be reached at all.
// Submissions that fail this way are safe to retry.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s service unreachable: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError indicates the remote service answered with a non-success
// status. Message carries the server-provided body when present.
type RejectedError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s service rejected request (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s service rejected request (status %d)", e.Service, e.StatusCode)
}

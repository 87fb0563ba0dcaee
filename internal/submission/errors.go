package submission

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInFlight is returned when a submit arrives while another attempt
	// from the same session is still pending.
	ErrInFlight = errors.New("submission already in progress")

	// ErrAlreadySubmitted is returned when submitting again after a success
	// without resetting the session first.
	ErrAlreadySubmitted = errors.New("inquiry already submitted")
)

// TransportError is a failure to get an answer from the endpoint at all:
// network errors, timeouts, or a response that could not be understood.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("send inquiry to %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError is an explicit non-success answer from the endpoint.
type RejectedError struct {
	StatusCode int
	Reason     string
}

func (e *RejectedError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("inquiry rejected (%d): %s", e.StatusCode, reason)
}

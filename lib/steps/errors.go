package steps

import (
	"errors"
	"fmt"
)

var (
	// ErrParse means the text is not account#password#steps.
	ErrParse = errors.New("steps: malformed request")
	// ErrGroupChannel means credentials were posted in a group chat.
	ErrGroupChannel = errors.New("steps: request sent in a group channel")
	// ErrStepsOutOfRange means steps is outside [MinSteps, MaxSteps].
	ErrStepsOutOfRange = errors.New("steps: step count out of range")
	// ErrMissingCKey means the API key is not configured.
	ErrMissingCKey = errors.New("steps: ckey not configured")
	// ErrTimeout means the remote endpoint did not answer in time.
	ErrTimeout = errors.New("steps: remote request timed out")
	// ErrRecallUnsupported is returned by events whose host cannot delete messages.
	ErrRecallUnsupported = errors.New("steps: message recall not supported")
)

// StatusError is a non-200 HTTP answer from the remote endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("steps: remote returned HTTP %d", e.Code)
}

// NetworkError is any transport failure other than a timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "steps: network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FormatError means the remote body is not the expected JSON envelope.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return "steps: bad response format: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// RemoteRejection is a well-formed envelope whose code is not 200.
type RemoteRejection struct {
	Message string
}

func (e *RemoteRejection) Error() string {
	return "steps: remote rejected request: " + e.Message
}

package domain

import "errors"

const (
	MsgMissingDataset   = "missing dataset"
	MsgInvalidParameter = "invalid parameter"
	MsgTransportFailure = "transport failure"
	MsgNoResults        = "no results"
)

// ValidationError reports bad or missing input, detected before any network call.
type ValidationError struct {
	Message string
	// Field names the offending input when the message alone is ambiguous.
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// ServiceError reports a failed submission to the optimization service.
// Transport is false when the service itself reported the error; in that case
// Message carries the service text verbatim.
type ServiceError struct {
	Message   string
	Transport bool
	Err       error
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Unwrap() error { return e.Err }

// NewTransportError wraps a network, timeout or decoding failure.
func NewTransportError(err error) *ServiceError {
	return &ServiceError{Message: MsgTransportFailure, Transport: true, Err: err}
}

// ExportError reports an export that cannot produce a meaningful artifact.
type ExportError struct {
	Message string
}

func (e *ExportError) Error() string { return e.Message }

// ErrNoResults is returned when an export is requested with nothing computed.
var ErrNoResults = &ExportError{Message: MsgNoResults}

// Return a user-facing message for errors that end a submission.
func FailureMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

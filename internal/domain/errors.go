package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the lead capture flow.
var (
	// ErrSubmissionInFlight is returned when a form is asked to submit while
	// a previous submission is still awaiting the backend.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// ErrUnknownField is returned when an update names a field the lead
	// submission does not have.
	ErrUnknownField = errors.New("unknown lead field")

	// ErrBackendUnavailable wraps transport level failures talking to the backend.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

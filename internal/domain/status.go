package domain

// SubmissionStatus is the state of a lead capture form.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
	StatusError      SubmissionStatus = "error"
)

// CanTransition reports whether a form may move from s to next.
// idle, success and error only ever move to submitting; submitting only
// resolves to success or error. Nothing returns to idle.
func (s SubmissionStatus) CanTransition(next SubmissionStatus) bool {
	switch s {
	case StatusIdle, StatusSuccess, StatusError:
		return next == StatusSubmitting
	case StatusSubmitting:
		return next == StatusSuccess || next == StatusError
	default:
		return false
	}
}

package contact

import "github.com/amaljosh/wellness/internal/domain"

// FormData is the View Model for the lead capture form region.
type FormData struct {
	Values domain.LeadSubmission
	Status domain.SubmissionStatus
	// Banner is the status message to show, empty for none.
	Banner string
	// Errors maps a field name to the message shown under its input.
	Errors map[string]string
}

// Submitting reports whether the submit button should be disabled.
func (d FormData) Submitting() bool {
	return d.Status == domain.StatusSubmitting
}

// Package leadform holds the lead capture form: the visitor's snapshot, the
// submission state machine and the per-visitor registry of form instances.
package leadform

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amaljosh/wellness/internal/domain"
)

// Banner texts shown after a submission resolves.
const (
	SuccessMessage = "Thank you! Your message has been sent. We'll contact you within 24 hours."
	ErrorMessage   = "Sorry, there was an error sending your message. Please try again."
)

// Form is one mounted lead capture form. It is safe for concurrent use; the
// submitting status doubles as the guard against a second request.
type Form struct {
	mu        sync.Mutex
	lead      domain.LeadSubmission
	status    domain.SubmissionStatus
	lastErr   error
	touchedAt time.Time

	submitter domain.LeadSubmitter
	now       func() time.Time
}

// New mounts an empty form that submits through submitter.
func New(submitter domain.LeadSubmitter) *Form {
	return newForm(submitter, time.Now)
}

func newForm(submitter domain.LeadSubmitter, now func() time.Time) *Form {
	return &Form{
		status:    domain.StatusIdle,
		submitter: submitter,
		now:       now,
		touchedAt: now(),
	}
}

// UpdateField sets one field of the snapshot. The value is stored as typed.
func (f *Form) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case domain.FieldFullName:
		f.lead.FullName = value
	case domain.FieldEmail:
		f.lead.Email = value
	case domain.FieldPhone:
		f.lead.Phone = value
	case domain.FieldHealthConcern:
		f.lead.HealthConcern = value
	case domain.FieldHealthGoals:
		f.lead.HealthGoals = value
	default:
		return domain.ErrUnknownField
	}
	f.touchedAt = f.now()
	return nil
}

// Snapshot returns a copy of the current field values.
func (f *Form) Snapshot() domain.LeadSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lead
}

// Status returns the current submission status.
func (f *Form) Status() domain.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// LastError returns the failure behind the most recent error status, if any.
func (f *Form) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// TouchedAt is the last time the form was mounted, edited or submitted.
func (f *Form) TouchedAt() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touchedAt
}

// Submit sends the current snapshot to the backend and resolves the status.
// Callers validate first; Submit does not. Backend failures never escape:
// they end in StatusError with the snapshot kept. The only returned error is
// domain.ErrSubmissionInFlight, in which case nothing was sent.
func (f *Form) Submit(ctx context.Context) (domain.SubmissionStatus, error) {
	f.mu.Lock()
	if !f.status.CanTransition(domain.StatusSubmitting) {
		status := f.status
		f.mu.Unlock()
		return status, domain.ErrSubmissionInFlight
	}
	f.status = domain.StatusSubmitting
	f.touchedAt = f.now()
	lead := f.lead
	f.mu.Unlock()

	err := f.submitter.SubmitLead(ctx, lead)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.touchedAt = f.now()
	if err != nil {
		slog.Error("Error submitting lead", "error", err, "email", lead.Email)
		f.status = domain.StatusError
		f.lastErr = err
		return f.status, nil
	}
	f.status = domain.StatusSuccess
	f.lastErr = nil
	f.lead = domain.LeadSubmission{}
	return f.status, nil
}

// Banner returns the message for the current status, or "" when none shows.
func Banner(status domain.SubmissionStatus) string {
	switch status {
	case domain.StatusSuccess:
		return SuccessMessage
	case domain.StatusError:
		return ErrorMessage
	default:
		return ""
	}
}

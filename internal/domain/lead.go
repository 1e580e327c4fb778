package domain

import "context"

// Field names of a lead submission, as they appear on the wire and in the form.
const (
	FieldFullName      = "full_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldHealthConcern = "health_concern"
	FieldHealthGoals   = "health_goals"
)

// LeadSubmission is one visitor's contact request as typed into the form.
type LeadSubmission struct {
	FullName      string `json:"full_name" form:"full_name" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	Phone         string `json:"phone" form:"phone" validate:"required"`
	HealthConcern string `json:"health_concern" form:"health_concern" validate:"omitempty,health_concern"`
	HealthGoals   string `json:"health_goals" form:"health_goals" validate:"required"`
}

// IsEmpty reports whether every field is the empty string.
func (l LeadSubmission) IsEmpty() bool {
	return l == LeadSubmission{}
}

// LeadSubmitter sends a lead to the backend. Any returned error means the
// lead was not accepted.
type LeadSubmitter interface {
	SubmitLead(ctx context.Context, lead LeadSubmission) error
}

// HealthChecker asks the backend whether it is reachable.
type HealthChecker interface {
	Health(ctx context.Context) (string, error)
}

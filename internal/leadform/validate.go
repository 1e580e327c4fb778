package leadform

import (
	"errors"
	"reflect"
	"strings"

	"github.com/amaljosh/wellness/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Violation is one failed rule on one field.
type Violation struct {
	Field   string
	Rule    string
	Message string
}

// Validation is the outcome of checking a snapshot before submission.
type Validation struct {
	Valid      bool
	Violations []Violation
}

// For returns the first violation on field, if any.
func (v Validation) For(field string) (Violation, bool) {
	for _, vi := range v.Violations {
		if vi.Field == field {
			return vi, true
		}
	}
	return Violation{}, false
}

var messages = map[string]string{
	"required":       "This field is required.",
	"email":          "Please enter a valid email address.",
	"health_concern": "Please choose one of the listed concerns.",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire names so violations line up with inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("health_concern", func(fl validator.FieldLevel) bool {
		return domain.IsValidHealthConcern(fl.Field().String())
	})
	return v
}

// Validate checks the rules a browser would enforce on the form inputs:
// required fields, email syntax and the fixed concern options. Whitespace
// only values count as empty.
func Validate(lead domain.LeadSubmission) Validation {
	trimmed := domain.LeadSubmission{
		FullName:      strings.TrimSpace(lead.FullName),
		Email:         strings.TrimSpace(lead.Email),
		Phone:         strings.TrimSpace(lead.Phone),
		HealthConcern: lead.HealthConcern,
		HealthGoals:   strings.TrimSpace(lead.HealthGoals),
	}

	err := validate.Struct(trimmed)
	if err == nil {
		return Validation{Valid: true}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Validation{Violations: []Violation{{Rule: "invalid", Message: err.Error()}}}
	}

	out := Validation{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "This value is not valid."
		}
		out.Violations = append(out.Violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: msg,
		})
	}
	return out
}

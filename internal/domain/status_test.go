package domain_test

import (
	"testing"

	"github.com/amaljosh/wellness/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSubmissionStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.SubmissionStatus
		want     bool
	}{
		{domain.StatusIdle, domain.StatusSubmitting, true},
		{domain.StatusIdle, domain.StatusSuccess, false},
		{domain.StatusSubmitting, domain.StatusSuccess, true},
		{domain.StatusSubmitting, domain.StatusError, true},
		{domain.StatusSubmitting, domain.StatusSubmitting, false},
		{domain.StatusSubmitting, domain.StatusIdle, false},
		{domain.StatusSuccess, domain.StatusSubmitting, true},
		{domain.StatusSuccess, domain.StatusIdle, false},
		{domain.StatusError, domain.StatusSubmitting, true},
		{domain.StatusError, domain.StatusIdle, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestHealthConcern_Label(t *testing.T) {
	assert.Equal(t, "Weight Management", domain.ConcernWeightManagement.Label())
	assert.Equal(t, "PCOS", domain.ConcernPCOS.Label())
	assert.Equal(t, "Digestive Issues", domain.ConcernDigestiveIssues.Label())
	assert.Equal(t, "Other", domain.ConcernOther.Label())
}

func TestIsValidHealthConcern(t *testing.T) {
	assert.True(t, domain.IsValidHealthConcern("pcos"))
	assert.True(t, domain.IsValidHealthConcern("family-health"))
	assert.False(t, domain.IsValidHealthConcern(""))
	assert.False(t, domain.IsValidHealthConcern("PCOS"))
	assert.False(t, domain.IsValidHealthConcern("cancer"))
}

func TestLeadSubmission_IsEmpty(t *testing.T) {
	assert.True(t, domain.LeadSubmission{}.IsEmpty())
	assert.False(t, domain.LeadSubmission{Phone: "5551234"}.IsEmpty())
}

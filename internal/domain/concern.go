package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HealthConcern is one of the fixed category tags a visitor can pick.
type HealthConcern string

const (
	ConcernWeightManagement HealthConcern = "weight-management"
	ConcernDiabetes         HealthConcern = "diabetes"
	ConcernPCOS             HealthConcern = "pcos"
	ConcernDigestiveIssues  HealthConcern = "digestive-issues"
	ConcernHeartHealth      HealthConcern = "heart-health"
	ConcernSkinIssues       HealthConcern = "skin-issues"
	ConcernFamilyHealth     HealthConcern = "family-health"
	ConcernOther            HealthConcern = "other"
)

// HealthConcerns lists the selectable tags in display order.
var HealthConcerns = []HealthConcern{
	ConcernWeightManagement,
	ConcernDiabetes,
	ConcernPCOS,
	ConcernDigestiveIssues,
	ConcernHeartHealth,
	ConcernSkinIssues,
	ConcernFamilyHealth,
	ConcernOther,
}

// acronyms are tags whose label is not simple title casing.
var acronyms = map[HealthConcern]string{
	ConcernPCOS: "PCOS",
}

// Label returns the human readable option text, e.g. "Weight Management".
func (h HealthConcern) Label() string {
	if label, ok := acronyms[h]; ok {
		return label
	}
	// Casers hold state, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(string(h), "-", " "))
}

// IsValidHealthConcern reports whether tag is one of the fixed tags.
// The empty string is not a tag; callers treat it as "no concern selected".
func IsValidHealthConcern(tag string) bool {
	for _, c := range HealthConcerns {
		if string(c) == tag {
			return true
		}
	}
	return false
}

package domain

import (
	"context"
	"strings"
)

// RegistrationInput is the registration payload. Pointer fields distinguish
// an absent value from an empty one.
type RegistrationInput struct {
	Name         *string
	University   *string
	CohortID     *string
	Stack        *string
	GitHub       *string
	Availability *bool
	Intent       *string
}

// RegistrationFields is a validated, normalized RegistrationInput.
type RegistrationFields struct {
	Name       string
	University string
	CohortID   string
	Stack      string
	GitHub     *string
	Intent     string
}

// Validate checks required fields in order (name, university, stack, intent, cohort,
// availability) and returns a *ValidationError for the first failure.
func (in RegistrationInput) Validate() (RegistrationFields, error) {
	var f RegistrationFields
	required := []struct {
		label string
		value *string
		dest  *string
	}{
		{"Name", in.Name, &f.Name},
		{"University", in.University, &f.University},
		{"Stack", in.Stack, &f.Stack},
		{"Intent", in.Intent, &f.Intent},
		{"Cohort", in.CohortID, &f.CohortID},
	}
	for _, r := range required {
		v := ""
		if r.value != nil {
			v = strings.TrimSpace(*r.value)
		}
		if v == "" {
			return RegistrationFields{}, &ValidationError{
				Field:   strings.ToLower(r.label),
				Message: r.label + " is required.",
			}
		}
		*r.dest = v
	}
	if in.GitHub != nil {
		if gh := strings.TrimSpace(*in.GitHub); gh != "" {
			f.GitHub = &gh
		}
	}
	if in.Availability == nil || !*in.Availability {
		return RegistrationFields{}, &ValidationError{
			Field:   "availability",
			Message: "Sprint availability confirmation is required.",
		}
	}
	return f, nil
}

// RegistrationService submits or resubmits a candidate's registration.
type RegistrationService interface {
	SubmitRegistration(ctx context.Context, identity *Identity, input RegistrationInput) error
}

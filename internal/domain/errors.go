package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across workflows. Controllers map them to status codes.
var (
	ErrUnauthorized = errors.New("unauthorized")

	ErrEmailNotVerified     = errors.New("email is not verified yet")
	ErrNoCohortAssigned     = errors.New("no cohort assigned to your profile")
	ErrQualifierLinkMissing = errors.New("qualifier link is not configured for this cohort")

	ErrProfileNotFound = errors.New("profile not found")
	ErrCohortNotFound  = errors.New("cohort not found")

	ErrDuplicateProfile         = errors.New("profile already exists for identity")
	ErrQualifierAlreadyRecorded = errors.New("qualifier email already recorded")

	ErrEmailDelivery   = errors.New("failed to send qualifier email")
	ErrSendNotRecorded = errors.New("qualifier email was sent but we could not persist send state, please contact support")
)

// ValidationError reports the first invalid field of a request payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsConflict reports whether err is a business-rule block on qualifier dispatch.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailNotVerified) ||
		errors.Is(err, ErrNoCohortAssigned) ||
		errors.Is(err, ErrQualifierLinkMissing)
}

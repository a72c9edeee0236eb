package domain

import (
	"context"
	"time"
)

// CandidateProfile is a registered candidate, keyed by the identity provider's user id.
// swagger:model CandidateProfile
type CandidateProfile struct {
	ID                      string     `json:"id"`
	IdentityUserID          string     `json:"-"`
	Email                   string     `json:"email"`
	Name                    string     `json:"name"`
	University              string     `json:"university"`
	Stack                   string     `json:"stack"`
	GitHub                  *string    `json:"github"`
	Availability            bool       `json:"availability"`
	Intent                  string     `json:"intent"`
	EmailVerified           bool       `json:"email_verified"`
	CohortID                *string    `json:"cohort_id"`
	QualifierEmailSentAt    *time.Time `json:"qualifier_email_sent_at"`
	QualifierEmailMessageID *string    `json:"qualifier_email_message_id"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// QualifierSent reports whether the one-shot qualifier email has been recorded.
func (p *CandidateProfile) QualifierSent() bool {
	return p.QualifierEmailSentAt != nil
}

// QualifierSendState is the set of columns written after a successful dispatch.
type QualifierSendState struct {
	Email         string
	EmailVerified bool
	SentAt        time.Time
	MessageID     *string
}

// ProfileRepository defines the interface for candidate profile storage
type ProfileRepository interface {
	GetByIdentityID(ctx context.Context, identityUserID string) (*CandidateProfile, error)
	Create(ctx context.Context, p *CandidateProfile) error
	UpdateRegistration(ctx context.Context, p *CandidateProfile) error
	// MarkQualifierSent records the dispatch. It only updates a row whose
	// qualifier_email_sent_at is still null and returns ErrQualifierAlreadyRecorded otherwise.
	MarkQualifierSent(ctx context.Context, profileID string, state QualifierSendState) error
}

package domain

import (
	"context"
	"time"
)

// QualifierEmailStatusSent is the only status written to the audit log.
const QualifierEmailStatusSent = "sent"

// QualifierEmailLog is one append-only audit row per successful dispatch.
// It is never consulted for idempotency decisions.
type QualifierEmailLog struct {
	ID                string
	ProfileID         string
	CohortID          string
	RecipientEmail    string
	ProviderMessageID *string
	SentAt            time.Time
	Status            string
}

// QualifierEmailLogRepository appends audit rows.
type QualifierEmailLogRepository interface {
	Append(ctx context.Context, entry *QualifierEmailLog) error
}

// QualifierSendResult is the outcome of a dispatch request.
// swagger:model QualifierSendResult
type QualifierSendResult struct {
	OK          bool      `json:"ok"`
	AlreadySent bool      `json:"alreadySent"`
	SentAt      time.Time `json:"sentAt"`
	MessageID   *string   `json:"messageId,omitempty"`
}

// QualifierService sends the qualifier-test email at most once per profile.
type QualifierService interface {
	SendQualifierEmail(ctx context.Context, identity *Identity) (*QualifierSendResult, error)
}

package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"opternportal/internal/domain"
)

type qualifierEmailLogRepository struct {
	DB *sql.DB
}

// NewQualifierEmailLogRepository returns an append-only domain.QualifierEmailLogRepository.
func NewQualifierEmailLogRepository(db *sql.DB) domain.QualifierEmailLogRepository {
	return &qualifierEmailLogRepository{DB: db}
}

func (r *qualifierEmailLogRepository) Append(ctx context.Context, entry *domain.QualifierEmailLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = domain.QualifierEmailStatusSent
	}
	query := `
		INSERT INTO qualifier_email_logs (id, user_id, cohort_id, recipient_email, provider_message_id, sent_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID, entry.ProfileID, entry.CohortID, entry.RecipientEmail, entry.ProviderMessageID, entry.SentAt, entry.Status,
	)
	return err
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"opternportal/internal/domain"
)

const uniqueViolation = "23505"

const profileColumns = `id, identity_user_id, email, name, university, stack, github, availability, intent,
		email_verified, cohort_id, qualifier_email_sent_at, qualifier_email_message_id, created_at, updated_at`

type profileRepository struct {
	DB *sql.DB
}

// NewProfileRepository returns a domain.ProfileRepository backed by the users table.
func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) GetByIdentityID(ctx context.Context, identityUserID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + profileColumns + `
		FROM users
		WHERE identity_user_id = $1
	`
	p := &domain.CandidateProfile{}
	var github, cohortID, messageID sql.NullString
	var sentAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, identityUserID).Scan(
		&p.ID, &p.IdentityUserID, &p.Email, &p.Name, &p.University, &p.Stack, &github, &p.Availability, &p.Intent,
		&p.EmailVerified, &cohortID, &sentAt, &messageID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	p.GitHub = nullStringPtr(github)
	p.CohortID = nullStringPtr(cohortID)
	p.QualifierEmailMessageID = nullStringPtr(messageID)
	if sentAt.Valid {
		t := sentAt.Time
		p.QualifierEmailSentAt = &t
	}
	return p, nil
}

func (r *profileRepository) Create(ctx context.Context, p *domain.CandidateProfile) error {
	query := `
		INSERT INTO users (identity_user_id, email, name, university, stack, github, availability, intent,
			email_verified, cohort_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.IdentityUserID, p.Email, p.Name, p.University, p.Stack, p.GitHub, p.Availability, p.Intent,
		p.EmailVerified, p.CohortID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateProfile
		}
		return err
	}
	return nil
}

func (r *profileRepository) UpdateRegistration(ctx context.Context, p *domain.CandidateProfile) error {
	query := `
		UPDATE users
		SET email = $1, email_verified = $2, name = $3, university = $4, stack = $5, github = $6,
			availability = $7, intent = $8, cohort_id = $9, updated_at = $10
		WHERE id = $11
	`
	res, err := r.DB.ExecContext(ctx, query,
		p.Email, p.EmailVerified, p.Name, p.University, p.Stack, p.GitHub,
		p.Availability, p.Intent, p.CohortID, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) MarkQualifierSent(ctx context.Context, profileID string, state domain.QualifierSendState) error {
	query := `
		UPDATE users
		SET email = $1, email_verified = $2, qualifier_email_sent_at = $3, qualifier_email_message_id = $4, updated_at = $3
		WHERE id = $5 AND qualifier_email_sent_at IS NULL
	`
	res, err := r.DB.ExecContext(ctx, query, state.Email, state.EmailVerified, state.SentAt, state.MessageID, profileID)
	if err != nil {
		return fmt.Errorf("update send state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update send state: %w", err)
	}
	if n == 0 {
		return domain.ErrQualifierAlreadyRecorded
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

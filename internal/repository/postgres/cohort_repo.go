package postgres

import (
	"context"
	"database/sql"
	"errors"

	"opternportal/internal/domain"
)

const cohortColumns = `id, slug, type, apply_window, sprint_window, to_char(apply_by, 'YYYY-MM-DD'),
		qualifier_test_url, is_active, created_at`

type cohortRepository struct {
	DB *sql.DB
}

// NewCohortRepository returns a domain.CohortRepository implemented with Postgres.
func NewCohortRepository(db *sql.DB) domain.CohortRepository {
	return &cohortRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCohort(row rowScanner) (*domain.Cohort, error) {
	c := &domain.Cohort{}
	var applyBy, link sql.NullString
	if err := row.Scan(&c.ID, &c.Slug, &c.Type, &c.ApplyWindow, &c.SprintWindow, &applyBy, &link, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.ApplyBy = nullStringPtr(applyBy)
	c.QualifierTestURL = nullStringPtr(link)
	return c, nil
}

func (r *cohortRepository) List(ctx context.Context) ([]*domain.Cohort, error) {
	query := `SELECT ` + cohortColumns + `
		FROM cohorts
		ORDER BY is_active DESC, created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cohorts := make([]*domain.Cohort, 0)
	for rows.Next() {
		c, err := scanCohort(rows)
		if err != nil {
			return nil, err
		}
		cohorts = append(cohorts, c)
	}
	return cohorts, rows.Err()
}

func (r *cohortRepository) GetByID(ctx context.Context, id string) (*domain.Cohort, error) {
	query := `SELECT ` + cohortColumns + `
		FROM cohorts
		WHERE id = $1
	`
	c, err := scanCohort(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCohortNotFound
		}
		return nil, err
	}
	return c, nil
}

// Upsert inserts the cohort or updates the row with the same slug. ID and CreatedAt are set from the stored row.
func (r *cohortRepository) Upsert(ctx context.Context, c *domain.Cohort) error {
	query := `
		INSERT INTO cohorts (slug, type, apply_window, sprint_window, apply_by, qualifier_test_url, is_active)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7)
		ON CONFLICT (slug) DO UPDATE
		SET type = EXCLUDED.type,
			apply_window = EXCLUDED.apply_window,
			sprint_window = EXCLUDED.sprint_window,
			apply_by = EXCLUDED.apply_by,
			qualifier_test_url = EXCLUDED.qualifier_test_url,
			is_active = EXCLUDED.is_active
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Slug, c.Type, c.ApplyWindow, c.SprintWindow, c.ApplyBy, c.QualifierTestURL, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
}

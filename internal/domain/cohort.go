package domain

import (
	"context"
	"sort"
	"time"
)

// Cohort is an application cohort. Rows are managed outside the portal.
// swagger:model Cohort
type Cohort struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	Type             string    `json:"type"`
	ApplyWindow      string    `json:"apply_window"`
	SprintWindow     string    `json:"sprint_window"`
	ApplyBy          *string   `json:"apply_by"`
	QualifierTestURL *string   `json:"qualifier_test_url"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// HasQualifierLink reports whether a non-blank qualifier test URL is configured.
func (c *Cohort) HasQualifierLink() bool {
	return c.QualifierTestURL != nil && *c.QualifierTestURL != ""
}

// PublicCohort is the cohort shape served to anonymous clients; it omits the qualifier link.
// swagger:model PublicCohort
type PublicCohort struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Type         string    `json:"type"`
	ApplyWindow  string    `json:"apply_window"`
	SprintWindow string    `json:"sprint_window"`
	ApplyBy      *string   `json:"apply_by"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns the anonymous view of the cohort.
func (c *Cohort) Public() PublicCohort {
	return PublicCohort{
		ID:           c.ID,
		Slug:         c.Slug,
		Type:         c.Type,
		ApplyWindow:  c.ApplyWindow,
		SprintWindow: c.SprintWindow,
		ApplyBy:      c.ApplyBy,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

// SortCohorts orders cohorts active first, then by creation time ascending.
func SortCohorts(cohorts []*Cohort) {
	sort.SliceStable(cohorts, func(i, j int) bool {
		a, b := cohorts[i], cohorts[j]
		if a.IsActive != b.IsActive {
			return a.IsActive
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

// CandidateDashboard is the authenticated candidate's view: profile, assigned cohort and all cohorts.
type CandidateDashboard struct {
	User           *CandidateProfile `json:"user"`
	AssignedCohort *Cohort           `json:"assignedCohort"`
	Cohorts        []*Cohort         `json:"cohorts"`
}

// CohortRepository defines the interface for cohort storage
type CohortRepository interface {
	List(ctx context.Context) ([]*Cohort, error)
	GetByID(ctx context.Context, id string) (*Cohort, error)
	Upsert(ctx context.Context, c *Cohort) error
}

// CohortService lists cohorts and builds the candidate dashboard.
type CohortService interface {
	ListCohorts(ctx context.Context) ([]*Cohort, error)
	Dashboard(ctx context.Context, identity *Identity) (*CandidateDashboard, error)
}

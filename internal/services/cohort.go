package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"opternportal/internal/domain"
)

type cohortService struct {
	cohorts  domain.CohortRepository
	profiles domain.ProfileRepository
}

// NewCohortService creates a CohortService.
func NewCohortService(cohorts domain.CohortRepository, profiles domain.ProfileRepository) domain.CohortService {
	return &cohortService{cohorts: cohorts, profiles: profiles}
}

func (s *cohortService) ListCohorts(ctx context.Context) ([]*domain.Cohort, error) {
	ctx, span := tracer.Start(ctx, "CohortService.ListCohorts")
	defer span.End()

	cohorts, err := s.cohorts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohorts: %w", err)
	}
	if cohorts == nil {
		cohorts = []*domain.Cohort{}
	}
	domain.SortCohorts(cohorts)
	return cohorts, nil
}

// Dashboard loads the caller's profile and all cohorts concurrently.
// Email and verification come from the identity, not the stored mirror.
func (s *cohortService) Dashboard(ctx context.Context, identity *domain.Identity) (*domain.CandidateDashboard, error) {
	ctx, span := tracer.Start(ctx, "CohortService.Dashboard")
	defer span.End()

	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	var (
		profile *domain.CandidateProfile
		cohorts []*domain.Cohort
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.GetByIdentityID(gctx, identity.UserID)
		if err != nil {
			return fmt.Errorf("unable to load your profile: %w", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		list, err := s.ListCohorts(gctx)
		if err != nil {
			return err
		}
		cohorts = list
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	profile.Email = identity.Email
	profile.EmailVerified = identity.EmailVerified

	var assigned *domain.Cohort
	if profile.CohortID != nil {
		for _, c := range cohorts {
			if c.ID == *profile.CohortID {
				assigned = c
				break
			}
		}
	}
	return &domain.CandidateDashboard{
		User:           profile,
		AssignedCohort: assigned,
		Cohorts:        cohorts,
	}, nil
}

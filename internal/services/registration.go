package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"opternportal/internal/domain"
)

var tracer = otel.Tracer("opternportal/internal/services")

type registrationService struct {
	profiles domain.ProfileRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewRegistrationService creates a RegistrationService backed by the profile store.
func NewRegistrationService(profiles domain.ProfileRepository, logger *slog.Logger) domain.RegistrationService {
	return &registrationService{profiles: profiles, logger: logger, now: time.Now}
}

// SubmitRegistration validates the input and upserts the caller's profile.
// The cohort id is stored as given; its existence is not checked.
func (s *registrationService) SubmitRegistration(ctx context.Context, identity *domain.Identity, input domain.RegistrationInput) error {
	ctx, span := tracer.Start(ctx, "RegistrationService.SubmitRegistration")
	defer span.End()

	if identity == nil {
		return domain.ErrUnauthorized
	}
	fields, err := input.Validate()
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("cohort.id", fields.CohortID))

	existing, err := s.profiles.GetByIdentityID(ctx, identity.UserID)
	switch {
	case err == nil:
		return s.update(ctx, existing, identity, fields)
	case !errors.Is(err, domain.ErrProfileNotFound):
		span.RecordError(err)
		return fmt.Errorf("failed to load profile: %w", err)
	}

	now := s.now().UTC()
	profile := &domain.CandidateProfile{IdentityUserID: identity.UserID, CreatedAt: now}
	applyRegistration(profile, identity, fields, now)
	err = s.profiles.Create(ctx, profile)
	if err == nil {
		s.logger.InfoContext(ctx, "profile created", "profile_id", profile.ID, "cohort_id", fields.CohortID)
		return nil
	}
	if !errors.Is(err, domain.ErrDuplicateProfile) {
		span.RecordError(err)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	// Lost the insert race to a concurrent first registration; update the winner.
	s.logger.WarnContext(ctx, "concurrent first registration, retrying as update", "identity_user_id", identity.UserID)
	existing, err = s.profiles.GetByIdentityID(ctx, identity.UserID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to reload profile: %w", err)
	}
	return s.update(ctx, existing, identity, fields)
}

func (s *registrationService) update(ctx context.Context, profile *domain.CandidateProfile, identity *domain.Identity, fields domain.RegistrationFields) error {
	applyRegistration(profile, identity, fields, s.now().UTC())
	if err := s.profiles.UpdateRegistration(ctx, profile); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	s.logger.InfoContext(ctx, "profile updated", "profile_id", profile.ID, "cohort_id", fields.CohortID)
	return nil
}

func applyRegistration(p *domain.CandidateProfile, identity *domain.Identity, f domain.RegistrationFields, now time.Time) {
	cohortID := f.CohortID
	p.Email = identity.Email
	p.EmailVerified = identity.EmailVerified
	p.Name = f.Name
	p.University = f.University
	p.Stack = f.Stack
	p.GitHub = f.GitHub
	p.Availability = true
	p.Intent = f.Intent
	p.CohortID = &cohortID
	p.UpdatedAt = now
}

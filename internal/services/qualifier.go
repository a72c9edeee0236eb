package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"opternportal/internal/domain"
)

const defaultRecipientName = "Candidate"

type qualifierService struct {
	profiles     domain.ProfileRepository
	cohorts      domain.CohortRepository
	logs         domain.QualifierEmailLogRepository
	emailService domain.EmailService
	dashboardURL string
	logger       *slog.Logger
	now          func() time.Time
}

// NewQualifierService creates the qualifier dispatch workflow. appURL is the
// public portal origin used for the dashboard link in the email.
func NewQualifierService(
	profiles domain.ProfileRepository,
	cohorts domain.CohortRepository,
	logs domain.QualifierEmailLogRepository,
	emailService domain.EmailService,
	appURL string,
	logger *slog.Logger,
) domain.QualifierService {
	return &qualifierService{
		profiles:     profiles,
		cohorts:      cohorts,
		logs:         logs,
		emailService: emailService,
		dashboardURL: strings.TrimSuffix(appURL, "/") + "/cohort-test",
		logger:       logger,
		now:          time.Now,
	}
}

// SendQualifierEmail sends the qualifier link at most once per profile.
// The gate is qualifier_email_sent_at on the profile; the audit log is never consulted.
func (s *qualifierService) SendQualifierEmail(ctx context.Context, identity *domain.Identity) (*domain.QualifierSendResult, error) {
	ctx, span := tracer.Start(ctx, "QualifierService.SendQualifierEmail")
	defer span.End()

	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	if !identity.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	profile, err := s.profiles.GetByIdentityID(ctx, identity.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("unable to load your profile: %w", err)
	}
	span.SetAttributes(attribute.String("profile.id", profile.ID))

	if profile.QualifierSent() {
		span.SetAttributes(attribute.Bool("qualifier.already_sent", true))
		return &domain.QualifierSendResult{
			OK:          true,
			AlreadySent: true,
			SentAt:      *profile.QualifierEmailSentAt,
		}, nil
	}

	if profile.CohortID == nil || *profile.CohortID == "" {
		return nil, domain.ErrNoCohortAssigned
	}
	cohort, err := s.cohorts.GetByID(ctx, *profile.CohortID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("assigned cohort could not be found: %w", err)
	}
	if !cohort.HasQualifierLink() {
		return nil, domain.ErrQualifierLinkMissing
	}

	recipientName := strings.TrimSpace(profile.Name)
	if recipientName == "" {
		recipientName = defaultRecipientName
	}
	messageID, err := s.emailService.SendQualifierLink(ctx, &domain.QualifierEmailData{
		Email:            identity.Email,
		RecipientName:    recipientName,
		CohortType:       cohort.Type,
		QualifierTestURL: *cohort.QualifierTestURL,
		DashboardURL:     s.dashboardURL,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "email delivery failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrEmailDelivery, err)
	}

	sentAt := s.now().UTC().Truncate(time.Microsecond)
	var msgID *string
	if messageID != "" {
		msgID = &messageID
	}

	err = s.profiles.MarkQualifierSent(ctx, profile.ID, domain.QualifierSendState{
		Email:         identity.Email,
		EmailVerified: identity.EmailVerified,
		SentAt:        sentAt,
		MessageID:     msgID,
	})
	switch {
	case errors.Is(err, domain.ErrQualifierAlreadyRecorded):
		s.logger.WarnContext(ctx, "duplicate qualifier dispatch, send state already recorded",
			"profile_id", profile.ID, "message_id", messageID)
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "send state not recorded")
		s.logger.ErrorContext(ctx, "qualifier email sent but send state not recorded",
			"profile_id", profile.ID, "message_id", messageID, "err", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrSendNotRecorded, err)
	}

	if err := s.logs.Append(ctx, &domain.QualifierEmailLog{
		ProfileID:         profile.ID,
		CohortID:          cohort.ID,
		RecipientEmail:    identity.Email,
		ProviderMessageID: msgID,
		SentAt:            sentAt,
		Status:            domain.QualifierEmailStatusSent,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to append qualifier email log", "profile_id", profile.ID, "err", err)
	}

	return &domain.QualifierSendResult{
		OK:          true,
		AlreadySent: false,
		SentAt:      sentAt,
		MessageID:   msgID,
	}, nil
}

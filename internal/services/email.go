package services

import (
	"context"
	"fmt"
	"log/slog"

	"opternportal/internal/domain"
)

const qualifierTemplate = "qualifier"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendQualifierLink renders the "qualifier" template and hands it to the mailer.
func (s *emailService) SendQualifierLink(ctx context.Context, data *domain.QualifierEmailData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("qualifier email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(qualifierTemplate, data)
	if err != nil {
		return "", fmt.Errorf("failed to render qualifier template: %w", err)
	}
	messageID, err := s.mailer.Send(ctx, &domain.EmailMessage{
		To:      data.Email,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send qualifier email: %w", err)
	}
	s.logger.InfoContext(ctx, "qualifier email sent", "to", data.Email, "message_id", messageID)
	return messageID, nil
}

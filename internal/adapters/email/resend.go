package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"opternportal/internal/domain"
)

type resendMailer struct {
	client *resend.Client
	source string
	logger *slog.Logger
}

// newResendMailer builds a Resend client. httpClient may be nil; BaseURL overrides the API host.
func newResendMailer(cfg ResendConfig, source string, httpClient *http.Client, logger *slog.Logger) (*resendMailer, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse resend base url: %w", err)
		}
		client.BaseURL = base
	}
	return &resendMailer{client: client, source: source, logger: logger}, nil
}

func (m *resendMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.source,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email via resend: %w", err)
	}
	m.logger.InfoContext(ctx, "email sent via resend", "message_id", sent.Id)
	return sent.Id, nil
}

package domain

import "context"

// EmailMessage is a rendered message ready for delivery.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the contract for sending emails (infrastructure port).
// The returned message id is empty when the provider does not report one.
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) (messageID string, err error)
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// QualifierEmailData holds data for the qualifier test email.
type QualifierEmailData struct {
	Email            string
	RecipientName    string
	CohortType       string
	QualifierTestURL string
	DashboardURL     string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendQualifierLink(ctx context.Context, data *QualifierEmailData) (messageID string, err error)
}

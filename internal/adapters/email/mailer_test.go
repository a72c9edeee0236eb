package email

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"opternportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testMessage() *domain.EmailMessage {
	return &domain.EmailMessage{
		To:      "ada@example.com",
		Subject: "Hello",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	}
}

func TestNewMailer_providers(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantType any
		wantErr  bool
	}{
		{"noop", MailerConfig{Provider: "noop"}, &noopMailer{}, false},
		{"ses", MailerConfig{Provider: "ses", FromAddress: "team@example.com", SES: SESConfig{Region: "eu-west-1"}}, &sesMailer{}, false},
		{"resend", MailerConfig{Provider: "resend", FromAddress: "team@example.com", Resend: ResendConfig{APIKey: "re_123"}}, &resendMailer{}, false},
		{"provider name is case-insensitive", MailerConfig{Provider: " Resend ", FromAddress: "team@example.com", Resend: ResendConfig{APIKey: "re_123"}}, &resendMailer{}, false},
		{"resend without key", MailerConfig{Provider: "resend", FromAddress: "team@example.com"}, nil, true},
		{"resend without from address", MailerConfig{Provider: "resend", Resend: ResendConfig{APIKey: "re_123"}}, nil, true},
		{"ses without from address", MailerConfig{Provider: "ses", SES: SESConfig{Region: "eu-west-1"}}, nil, true},
		{"unknown provider", MailerConfig{Provider: "carrier-pigeon", FromAddress: "team@example.com"}, nil, true},
		{"empty provider", MailerConfig{FromAddress: "team@example.com"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, testLogger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, m)
		})
	}
}

func TestNoopMailer_Send(t *testing.T) {
	m := &noopMailer{logger: testLogger}
	id, err := m.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestResendMailer_Send(t *testing.T) {
	t.Run("success returns message id", func(t *testing.T) {
		var got struct {
			From    string   `json:"from"`
			To      []string `json:"to"`
			Subject string   `json:"subject"`
			HTML    string   `json:"html"`
			Text    string   `json:"text"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/emails", r.URL.Path)
			assert.Equal(t, "Bearer re_123", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"msg-42"}`))
		}))
		defer srv.Close()

		m, err := newResendMailer(ResendConfig{APIKey: "re_123", BaseURL: srv.URL + "/"}, "Optern <team@example.com>", srv.Client(), testLogger)
		require.NoError(t, err)
		id, err := m.Send(context.Background(), testMessage())
		require.NoError(t, err)
		assert.Equal(t, "msg-42", id)
		assert.Equal(t, "Optern <team@example.com>", got.From)
		assert.Equal(t, []string{"ada@example.com"}, got.To)
		assert.Equal(t, "Hello", got.Subject)
		assert.Equal(t, "<p>hi</p>", got.HTML)
		assert.Equal(t, "hi", got.Text)
	})

	t.Run("provider error surfaces message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"statusCode":422,"message":"Invalid from address"}`))
		}))
		defer srv.Close()

		m, err := newResendMailer(ResendConfig{APIKey: "re_123", BaseURL: srv.URL}, "team@example.com", srv.Client(), testLogger)
		require.NoError(t, err)
		_, err = m.Send(context.Background(), testMessage())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid from address")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		m, err := newResendMailer(ResendConfig{APIKey: "re_123", BaseURL: srv.URL}, "team@example.com", nil, testLogger)
		require.NoError(t, err)
		_, err = m.Send(context.Background(), testMessage())
		require.Error(t, err)
	})
}

type fakeSES struct {
	input *ses.SendEmailInput
	out   *ses.SendEmailOutput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	return f.out, f.err
}

func TestSESMailer_Send(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeSES{out: &ses.SendEmailOutput{MessageId: aws.String("ses-1")}}
		m := &sesMailer{client: fake, source: formatSource("Optern", "team@example.com"), logger: testLogger}

		id, err := m.Send(context.Background(), testMessage())
		require.NoError(t, err)
		assert.Equal(t, "ses-1", id)
		assert.Equal(t, "Optern <team@example.com>", aws.ToString(fake.input.Source))
		assert.Equal(t, []string{"ada@example.com"}, fake.input.Destination.ToAddresses)
		assert.Equal(t, "<p>hi</p>", aws.ToString(fake.input.Message.Body.Html.Data))
		assert.Equal(t, "hi", aws.ToString(fake.input.Message.Body.Text.Data))
	})

	t.Run("error", func(t *testing.T) {
		fake := &fakeSES{err: errors.New("throttled")}
		m := &sesMailer{client: fake, source: "team@example.com", logger: testLogger}
		_, err := m.Send(context.Background(), testMessage())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SES")
	})
}

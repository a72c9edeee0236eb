package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GO_ENV", "production")
	t.Setenv("IDENTITY_JWT_PUBLIC_KEY", "pem")
	t.Setenv("IDENTITY_SECRET_KEY", "sk_test")
	t.Setenv("QUALIFIER_FROM_EMAIL", "team@example.com")
	t.Setenv("RESEND_API_KEY", "re_test")
}

func TestLoad_defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "resend", cfg.Email.Provider)
	assert.Equal(t, "https://api.clerk.com", cfg.Identity.APIURL)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("EMAIL_PROVIDER", " SES ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.Equal(t, "team@example.com", cfg.Email.FromAddress)
}

func TestLoad_noopOutsideProduction(t *testing.T) {
	setRequired(t)
	t.Setenv("GO_ENV", "development")
	t.Setenv("EMAIL_PROVIDER", "noop")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "noop", cfg.Email.Provider)
}

func TestLoad_validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing public key",
			env:     map[string]string{"IDENTITY_JWT_PUBLIC_KEY": ""},
			wantErr: "IDENTITY_JWT_PUBLIC_KEY",
		},
		{
			name:    "ses without from address",
			env:     map[string]string{"EMAIL_PROVIDER": "ses", "QUALIFIER_FROM_EMAIL": ""},
			wantErr: "QUALIFIER_FROM_EMAIL",
		},
		{
			name:    "resend without api key",
			env:     map[string]string{"EMAIL_PROVIDER": "resend", "RESEND_API_KEY": ""},
			wantErr: "RESEND_API_KEY",
		},
		{
			name:    "noop in production",
			env:     map[string]string{"EMAIL_PROVIDER": "noop"},
			wantErr: "not allowed in production",
		},
		{
			name:    "misspelled provider",
			env:     map[string]string{"EMAIL_PROVIDER": "resnd"},
			wantErr: "unsupported EMAIL_PROVIDER",
		},
		{
			name:    "bad duration",
			env:     map[string]string{"SHUTDOWN_TIMEOUT": "soon"},
			wantErr: "parse env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"opternportal/internal/delivery/http/helpers"
	"opternportal/internal/domain"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testIdentity = &domain.Identity{UserID: "user_123", Email: "ada@example.com", EmailVerified: true}

func strPtr(s string) *string { return &s }

type fakeCohortService struct {
	cohorts []*domain.Cohort
	listErr error
	dash    *domain.CandidateDashboard
	dashErr error
	gotID   *domain.Identity
}

func (f *fakeCohortService) ListCohorts(ctx context.Context) ([]*domain.Cohort, error) {
	return f.cohorts, f.listErr
}

func (f *fakeCohortService) Dashboard(ctx context.Context, identity *domain.Identity) (*domain.CandidateDashboard, error) {
	f.gotID = identity
	return f.dash, f.dashErr
}

type fakeRegistrationService struct {
	err      error
	called   bool
	gotInput domain.RegistrationInput
}

func (f *fakeRegistrationService) SubmitRegistration(ctx context.Context, identity *domain.Identity, input domain.RegistrationInput) error {
	f.called = true
	f.gotInput = input
	if f.err != nil {
		return f.err
	}
	_, err := input.Validate()
	return err
}

type fakeQualifierService struct {
	res    *domain.QualifierSendResult
	err    error
	called bool
}

func (f *fakeQualifierService) SendQualifierEmail(ctx context.Context, identity *domain.Identity) (*domain.QualifierSendResult, error) {
	f.called = true
	return f.res, f.err
}

type fakeDirectory struct {
	query   string
	matches []domain.UniversityMatch
}

func (f *fakeDirectory) Search(ctx context.Context, query string) []domain.UniversityMatch {
	f.query = query
	return f.matches
}

type fakePinger struct{ err error }

func (f *fakePinger) PingContext(ctx context.Context) error { return f.err }

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *helpers.APIError {
	t.Helper()
	var resp helpers.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

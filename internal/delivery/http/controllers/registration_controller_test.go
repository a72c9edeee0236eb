package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"opternportal/internal/delivery/http/helpers"
	"opternportal/internal/delivery/http/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRegistration = `{
	"name": "Ada",
	"university": "MIT",
	"cohortId": "c1",
	"stack": "Go",
	"github": "ada",
	"availability": true,
	"intent": "Learn"
}`

func TestRegistrationController_RegisterProfile(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		withIdentity bool
		serviceErr   error
		wantStatus   int
		wantCode     string
		wantMessage  string
		wantCalled   bool
	}{
		{
			name:         "success",
			body:         validRegistration,
			withIdentity: true,
			wantStatus:   http.StatusOK,
			wantCalled:   true,
		},
		{
			name:         "extra keys are ignored",
			body:         `{"name":"Ada","university":"MIT","cohortId":"c1","stack":"Go","intent":"x","availability":true,"utm_source":"newsletter"}`,
			withIdentity: true,
			wantStatus:   http.StatusOK,
			wantCalled:   true,
		},
		{
			name:        "no identity",
			body:        validRegistration,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    helpers.ErrCodeUnauthorized,
			wantMessage: "Unauthorized.",
		},
		{
			name:         "malformed json",
			body:         `{"name":`,
			withIdentity: true,
			wantStatus:   http.StatusBadRequest,
			wantCode:     helpers.ErrCodeBadRequest,
		},
		{
			name:         "availability false",
			body:         `{"name":"Ada","university":"MIT","cohortId":"c1","stack":"Go","intent":"x","availability":false}`,
			withIdentity: true,
			wantStatus:   http.StatusBadRequest,
			wantCode:     helpers.ErrCodeBadRequest,
			wantMessage:  "Sprint availability confirmation is required.",
			wantCalled:   true,
		},
		{
			name:         "missing name",
			body:         `{"university":"MIT","cohortId":"c1","stack":"Go","intent":"x","availability":true}`,
			withIdentity: true,
			wantStatus:   http.StatusBadRequest,
			wantCode:     helpers.ErrCodeBadRequest,
			wantMessage:  "Name is required.",
			wantCalled:   true,
		},
		{
			name:         "store failure",
			body:         validRegistration,
			withIdentity: true,
			serviceErr:   assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantCode:     helpers.ErrCodeInternalError,
			wantCalled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrationService{err: tt.serviceErr}
			ctrl := NewRegistrationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/register/profile", strings.NewReader(tt.body))
			if tt.withIdentity {
				req = req.WithContext(middleware.SetIdentity(req.Context(), testIdentity))
			}
			rr := httptest.NewRecorder()

			ctrl.RegisterProfile(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, fake.called)
			if tt.wantCode == "" {
				assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
				require.NotNil(t, fake.gotInput.CohortID)
				assert.Equal(t, "c1", *fake.gotInput.CohortID)
				require.NotNil(t, fake.gotInput.Availability)
				assert.True(t, *fake.gotInput.Availability)
				return
			}
			apiErr := decodeError(t, rr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, apiErr.Message)
			}
		})
	}
}

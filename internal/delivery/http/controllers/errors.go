package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"opternportal/internal/delivery/http/helpers"
	"opternportal/internal/delivery/http/middleware"
	"opternportal/internal/domain"
)

// writeServiceError maps workflow errors to status codes and user-facing messages.
// Anything unrecognised is logged and reported as a 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, verr.Message)
		return
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Unauthorized.")
		return
	case errors.Is(err, domain.ErrEmailNotVerified):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "Email is not verified yet.")
		return
	case errors.Is(err, domain.ErrNoCohortAssigned):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "No cohort assigned to your profile.")
		return
	case errors.Is(err, domain.ErrQualifierLinkMissing):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "Qualifier link is not configured for this cohort.")
		return
	}

	logger.ErrorContext(r.Context(), "request failed",
		"path", r.URL.Path, "method", r.Method,
		"request_id", middleware.RequestIDFromContext(r.Context()), "err", err)
	switch {
	case errors.Is(err, domain.ErrEmailDelivery):
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, "Failed to send qualifier email.")
	case errors.Is(err, domain.ErrSendNotRecorded):
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError,
			"Qualifier email was sent but we could not persist send state. Please contact support.")
	case errors.Is(err, domain.ErrProfileNotFound):
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Unable to load your profile.")
	case errors.Is(err, domain.ErrCohortNotFound):
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Assigned cohort could not be found.")
	default:
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Unexpected server error.")
	}
}

// requireIdentity reads the identity set by the auth middleware, writing a 401 when absent.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*domain.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Unauthorized.")
	}
	return id, ok
}

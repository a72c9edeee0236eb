package controllers

import (
	"log/slog"
	"net/http"

	"opternportal/internal/delivery/http/helpers"
	"opternportal/internal/domain"
)

// ListCohortsResponse is the response body for GET /cohorts.
type ListCohortsResponse struct {
	Cohorts []domain.PublicCohort `json:"cohorts"`
}

// CohortController serves the public cohort list and the candidate dashboard.
type CohortController struct {
	Logger  *slog.Logger
	Service domain.CohortService
}

// NewCohortController creates a CohortController with the given logger and service.
func NewCohortController(logger *slog.Logger, svc domain.CohortService) *CohortController {
	return &CohortController{
		Logger:  logger,
		Service: svc,
	}
}

// ListCohorts godoc
// @Summary List cohorts
// @Description Public list of cohorts, active first then oldest first. The qualifier test link is never included.
// @Tags cohorts
// @Produce json
// @Success 200 {object} controllers.ListCohortsResponse
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /cohorts [get]
func (c *CohortController) ListCohorts(w http.ResponseWriter, r *http.Request) {
	cohorts, err := c.Service.ListCohorts(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Failed to load cohorts.")
		return
	}
	out := make([]domain.PublicCohort, 0, len(cohorts))
	for _, co := range cohorts {
		out = append(out, co.Public())
	}
	helpers.WriteJSON(w, http.StatusOK, ListCohortsResponse{Cohorts: out})
}

// Dashboard godoc
// @Summary Candidate dashboard
// @Description Returns the caller's profile (email and verification fresh from the identity provider), the assigned cohort or null, and all cohorts.
// @Tags cohorts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.CandidateDashboard
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /me/cohort-test [get]
func (c *CohortController) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	dash, err := c.Service.Dashboard(r.Context(), identity)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dash)
}

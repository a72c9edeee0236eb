package controllers

import (
	"log/slog"
	"net/http"

	"opternportal/internal/delivery/http/helpers"
	"opternportal/internal/domain"
)

// RegisterProfileRequest is the request body for POST /register/profile.
// Every field is optional at the JSON level; required-ness is checked by the workflow.
type RegisterProfileRequest struct {
	Name         *string `json:"name"`
	University   *string `json:"university"`
	CohortID     *string `json:"cohortId"`
	Stack        *string `json:"stack"`
	GitHub       *string `json:"github"`
	Availability *bool   `json:"availability"`
	Intent       *string `json:"intent"`
}

func (req RegisterProfileRequest) toInput() domain.RegistrationInput {
	return domain.RegistrationInput{
		Name:         req.Name,
		University:   req.University,
		CohortID:     req.CohortID,
		Stack:        req.Stack,
		GitHub:       req.GitHub,
		Availability: req.Availability,
		Intent:       req.Intent,
	}
}

// RegistrationController handles candidate registration.
type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

// NewRegistrationController creates a RegistrationController with the given logger and service.
func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterProfile godoc
// @Summary Submit registration
// @Description Creates or updates the caller's candidate profile. Re-submitting overwrites every field, including the cohort.
// @Tags registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterProfileRequest true "Registration form"
// @Success 200 {object} helpers.OKResponse
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /register/profile [post]
func (c *RegistrationController) RegisterProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	var req RegisterProfileRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	if err := c.Service.SubmitRegistration(r.Context(), identity, req.toInput()); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.OKResponse{OK: true})
}

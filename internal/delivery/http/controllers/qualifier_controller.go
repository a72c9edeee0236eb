package controllers

import (
	"log/slog"
	"net/http"

	"opternportal/internal/delivery/http/helpers"
	"opternportal/internal/domain"
)

// QualifierController handles qualifier email dispatch.
type QualifierController struct {
	Logger  *slog.Logger
	Service domain.QualifierService
}

// NewQualifierController creates a QualifierController with the given logger and service.
func NewQualifierController(logger *slog.Logger, svc domain.QualifierService) *QualifierController {
	return &QualifierController{
		Logger:  logger,
		Service: svc,
	}
}

// SendQualifier godoc
// @Summary Send qualifier test email
// @Description Emails the assigned cohort's qualifier link to the caller's verified address, at most once. Repeated calls return alreadySent with the original timestamp.
// @Tags qualifier
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.QualifierSendResult
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.ErrorResponse "error.code: conflict (unverified email, no cohort, or no qualifier link)"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Failure 502 {object} helpers.ErrorResponse "error.code: bad_gateway"
// @Router /qualifier/send [post]
func (c *QualifierController) SendQualifier(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	res, err := c.Service.SendQualifierEmail(r.Context(), identity)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, res)
}

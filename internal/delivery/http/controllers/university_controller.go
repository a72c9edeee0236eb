package controllers

import (
	"net/http"

	"opternportal/internal/delivery/http/helpers"
	"opternportal/internal/domain"
)

// UniversityController serves university autocomplete.
type UniversityController struct {
	Directory domain.UniversityDirectory
}

// NewUniversityController creates a UniversityController over the given directory.
func NewUniversityController(dir domain.UniversityDirectory) *UniversityController {
	return &UniversityController{Directory: dir}
}

// Search godoc
// @Summary Search universities
// @Description Case-insensitive substring match on name, country or domain. Queries shorter than two characters return an empty list. At most 20 results.
// @Tags universities
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} domain.UniversityMatch
// @Router /universities [get]
func (c *UniversityController) Search(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.Directory.Search(r.Context(), r.URL.Query().Get("q")))
}

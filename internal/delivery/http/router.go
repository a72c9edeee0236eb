package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"opternportal/internal/delivery/http/controllers"
	"opternportal/internal/delivery/http/helpers"
	"opternportal/internal/delivery/http/middleware"
	"opternportal/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Cohort       *controllers.CohortController
	Registration *controllers.RegistrationController
	Qualifier    *controllers.QualifierController
	University   *controllers.UniversityController
	Health       *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, identity domain.IdentityProvider, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireIdentity(identity, logger)

	// Public
	mux.HandleFunc("GET /cohorts", c.Cohort.ListCohorts)
	mux.HandleFunc("GET /universities", c.University.Search)
	mux.HandleFunc("GET /healthz", c.Health.Health)

	// Candidate
	mux.HandleFunc("GET /me/cohort-test", auth(c.Cohort.Dashboard))
	mux.HandleFunc("POST /register/profile", auth(c.Registration.RegisterProfile))
	mux.HandleFunc("POST /qualifier/send", auth(c.Qualifier.SendQualifier))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "route not found")
	})

	return mux
}

// NewHandler wraps the router with tracing, request logging and CORS.
func NewHandler(mux http.Handler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	return middleware.Tracing(middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, middleware.SpanRoute(mux))))
}

// @title Optern Candidate Portal API
// @version 1.0
// @description Cohort listing, candidate registration and one-shot qualifier test email dispatch.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Identity provider session token, as "Bearer <token>".
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"opternportal/config"
	_ "opternportal/docs"
	"opternportal/internal/adapters/email"
	"opternportal/internal/adapters/identity"
	"opternportal/internal/adapters/university"
	apphttp "opternportal/internal/delivery/http"
	"opternportal/internal/delivery/http/controllers"
	"opternportal/internal/repository/postgres"
	"opternportal/internal/services"
	"opternportal/internal/telemetry"
)

func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("api exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "opternportal-api", cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown failed", "err", err)
		}
	}()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("database ready")

	// Repositories
	profileRepo := postgres.NewProfileRepository(db)
	cohortRepo := postgres.NewCohortRepository(db)
	logRepo := postgres.NewQualifierEmailLogRepository(db)

	// Adapters
	identityProvider, err := identity.NewProvider(identity.Config{
		APIURL:       cfg.Identity.APIURL,
		SecretKey:    cfg.Identity.SecretKey,
		JWTPublicKey: cfg.Identity.JWTPublicKey,
		Issuer:       cfg.Identity.Issuer,
	}, &http.Client{Timeout: 10 * time.Second}, logger)
	if err != nil {
		return err
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipTLS,
		},
		Resend: email.ResendConfig{APIKey: cfg.Email.ResendAPIKey},
	}, logger)
	if err != nil {
		return err
	}
	loader := university.EmbeddedLoader()
	if cfg.UniversitiesPath != "" {
		loader = university.FileLoader(cfg.UniversitiesPath)
	}
	directory := university.NewDirectory(loader, logger)

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	registrationService := services.NewRegistrationService(profileRepo, logger)
	qualifierService := services.NewQualifierService(profileRepo, cohortRepo, logRepo, emailService, cfg.AppURL, logger)
	cohortService := services.NewCohortService(cohortRepo, profileRepo)

	router := apphttp.NewRouter(apphttp.Controllers{
		Cohort:       controllers.NewCohortController(logger, cohortService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
		Qualifier:    controllers.NewQualifierController(logger, qualifierService),
		University:   controllers.NewUniversityController(directory),
		Health:       controllers.NewHealthController(logger, db),
	}, identityProvider, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      apphttp.NewHandler(router, cfg.CORSAllowedOrigins, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "email_provider", cfg.Email.Provider)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// Package main upserts cohorts from a YAML file. Cohorts are managed outside
// the portal; this is the operator tool for creating and editing them.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"

	"opternportal/config"
	"opternportal/internal/domain"
	"opternportal/internal/repository/postgres"
)

type cohortFile struct {
	Cohorts []cohortEntry `yaml:"cohorts"`
}

type cohortEntry struct {
	Slug             string `yaml:"slug"`
	Type             string `yaml:"type"`
	ApplyWindow      string `yaml:"apply_window"`
	SprintWindow     string `yaml:"sprint_window"`
	ApplyBy          string `yaml:"apply_by"`
	QualifierTestURL string `yaml:"qualifier_test_url"`
	IsActive         bool   `yaml:"is_active"`
}

func main() {
	var path string
	var dryRun bool
	flag.StringVar(&path, "file", "cmd/seed/cohorts.yaml", "cohort definitions")
	flag.BoolVar(&dryRun, "dry-run", false, "parse and validate only")
	flag.Parse()

	logger := config.NewLogger()

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read seed file", "path", path, "err", err)
		os.Exit(1)
	}
	cohorts, err := parseCohorts(raw)
	if err != nil {
		logger.Error("invalid seed file", "path", path, "err", err)
		os.Exit(1)
	}
	if dryRun {
		logger.Info("seed file valid", "cohorts", len(cohorts))
		return
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("migrate", "err", err)
		os.Exit(1)
	}

	repo := postgres.NewCohortRepository(db)
	for _, c := range cohorts {
		if err := repo.Upsert(ctx, c); err != nil {
			logger.Error("upsert cohort", "slug", c.Slug, "err", err)
			os.Exit(1)
		}
		logger.Info("cohort upserted", "slug", c.Slug, "id", c.ID, "active", c.IsActive)
	}
}

// parseCohorts decodes and validates a seed file. Slugs must be unique and
// apply_by, when set, must be a YYYY-MM-DD date.
func parseCohorts(raw []byte) ([]*domain.Cohort, error) {
	var f cohortFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Cohorts))
	out := make([]*domain.Cohort, 0, len(f.Cohorts))
	for i, e := range f.Cohorts {
		slug := strings.TrimSpace(e.Slug)
		if slug == "" {
			return nil, fmt.Errorf("cohort %d: slug is required", i)
		}
		if _, dup := seen[slug]; dup {
			return nil, fmt.Errorf("cohort %q: duplicate slug", slug)
		}
		seen[slug] = struct{}{}
		if strings.TrimSpace(e.Type) == "" {
			return nil, fmt.Errorf("cohort %q: type is required", slug)
		}
		c := &domain.Cohort{
			Slug:         slug,
			Type:         strings.TrimSpace(e.Type),
			ApplyWindow:  e.ApplyWindow,
			SprintWindow: e.SprintWindow,
			IsActive:     e.IsActive,
		}
		if applyBy := strings.TrimSpace(e.ApplyBy); applyBy != "" {
			if _, err := time.Parse(time.DateOnly, applyBy); err != nil {
				return nil, fmt.Errorf("cohort %q: apply_by: %w", slug, err)
			}
			c.ApplyBy = &applyBy
		}
		if u := strings.TrimSpace(e.QualifierTestURL); u != "" {
			c.QualifierTestURL = &u
		}
		out = append(out, c)
	}
	return out, nil
}

// Package university serves autocomplete lookups over the world universities dataset.
package university

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"opternportal/internal/domain"
)

const (
	minQueryLength = 2
	maxResults     = 20
)

//go:embed data/world_universities_and_domains.json
var bundledDataset []byte

// Loader returns the raw dataset.
type Loader func() ([]domain.University, error)

// EmbeddedLoader decodes the dataset compiled into the binary.
func EmbeddedLoader() Loader {
	return func() ([]domain.University, error) {
		return decode(bundledDataset)
	}
}

// FileLoader reads the dataset from path on first use.
func FileLoader(path string) Loader {
	return func() ([]domain.University, error) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read universities dataset: %w", err)
		}
		return decode(raw)
	}
}

func decode(raw []byte) ([]domain.University, error) {
	var list []domain.University
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode universities dataset: %w", err)
	}
	return list, nil
}

// entry keeps case-folded copies of the searchable fields.
type entry struct {
	match   domain.UniversityMatch
	name    string
	country string
	domains []string
}

type directory struct {
	load   Loader
	logger *slog.Logger

	once    sync.Once
	entries []entry
}

// NewDirectory returns a directory that loads its dataset lazily, once per process.
func NewDirectory(load Loader, logger *slog.Logger) domain.UniversityDirectory {
	return &directory{load: load, logger: logger}
}

// Search matches the query against name, country and domains in dataset order.
func (d *directory) Search(ctx context.Context, query string) []domain.UniversityMatch {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minQueryLength {
		return []domain.UniversityMatch{}
	}

	d.once.Do(func() { d.init(ctx) })

	results := make([]domain.UniversityMatch, 0, maxResults)
	for i := range d.entries {
		if len(results) >= maxResults {
			break
		}
		if d.entries[i].matches(q) {
			results = append(results, d.entries[i].match)
		}
	}
	return results
}

func (d *directory) init(ctx context.Context) {
	list, err := d.load()
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to load universities dataset", "err", err)
		return
	}
	fold := cases.Fold()
	entries := make([]entry, 0, len(list))
	for _, u := range list {
		e := entry{
			match: domain.UniversityMatch{
				Name:         u.Name,
				Country:      u.Country,
				AlphaTwoCode: u.AlphaTwoCode,
			},
			name:    fold.String(u.Name),
			country: fold.String(u.Country),
			domains: make([]string, 0, len(u.Domains)),
		}
		if len(u.Domains) > 0 {
			e.match.Domain = u.Domains[0]
		}
		for _, dom := range u.Domains {
			e.domains = append(e.domains, fold.String(dom))
		}
		entries = append(entries, e)
	}
	d.entries = entries
	d.logger.InfoContext(ctx, "universities dataset loaded", "count", len(entries))
}

func (e *entry) matches(q string) bool {
	if strings.Contains(e.name, q) || strings.Contains(e.country, q) {
		return true
	}
	for _, dom := range e.domains {
		if strings.Contains(dom, q) {
			return true
		}
	}
	return false
}

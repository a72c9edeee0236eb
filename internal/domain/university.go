package domain

import "context"

// University is one entry of the bundled world universities dataset.
type University struct {
	Name          string   `json:"name"`
	Domains       []string `json:"domains"`
	WebPages      []string `json:"web_pages"`
	Country       string   `json:"country"`
	AlphaTwoCode  string   `json:"alpha_two_code"`
	StateProvince *string  `json:"state-province"`
}

// UniversityMatch is a lookup result.
// swagger:model UniversityMatch
type UniversityMatch struct {
	Name         string `json:"name"`
	Country      string `json:"country"`
	AlphaTwoCode string `json:"alpha_two_code"`
	Domain       string `json:"domain"`
}

// UniversityDirectory answers autocomplete lookups.
type UniversityDirectory interface {
	Search(ctx context.Context, query string) []UniversityMatch
}

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCohorts_bundledFile(t *testing.T) {
	raw, err := os.ReadFile("cohorts.yaml")
	require.NoError(t, err)

	cohorts, err := parseCohorts(raw)
	require.NoError(t, err)
	require.Len(t, cohorts, 3)

	first := cohorts[0]
	assert.Equal(t, "backend-spring-2026", first.Slug)
	assert.True(t, first.IsActive)
	require.NotNil(t, first.ApplyBy)
	assert.Equal(t, "2026-02-28", *first.ApplyBy)
	assert.True(t, first.HasQualifierLink())

	assert.False(t, cohorts[1].HasQualifierLink())
	assert.False(t, cohorts[2].IsActive)
}

func TestParseCohorts_invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "cohorts: [", "decode yaml"},
		{"missing slug", "cohorts:\n  - type: Backend\n", "slug is required"},
		{"missing type", "cohorts:\n  - slug: a\n", "type is required"},
		{"duplicate slug", "cohorts:\n  - {slug: a, type: X}\n  - {slug: a, type: Y}\n", "duplicate slug"},
		{"bad date", "cohorts:\n  - {slug: a, type: X, apply_by: 28/02/2026}\n", "apply_by"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCohorts([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

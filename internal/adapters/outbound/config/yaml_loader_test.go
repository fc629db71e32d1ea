package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codelens/codelens/internal/adapters/outbound/config"
	"github.com/codelens/codelens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".codelens.yaml"), []byte(content), 0644))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_ParsesFields(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
profile: performance
max_recommendations: 5
aggressive_sql: true
include:
  - "src/**/*.js"
exclude:
  - "**/*.min.js"
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.ProfilePerformance, cfg.Profile)
	assert.Equal(t, 5, cfg.MaxRecommendations)
	assert.True(t, cfg.AggressiveSQL)
	assert.Equal(t, []string{"src/**/*.js"}, cfg.IncludeGlobs)
	assert.Equal(t, []string{"**/*.min.js"}, cfg.ExcludeGlobs)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "aggressive_sql: true\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.AggressiveSQL)
	assert.Equal(t, domain.ProfileBalanced, cfg.Profile)
	assert.Equal(t, domain.DefaultMaxRecommendations, cfg.MaxRecommendations)
}

func TestLoad_UnknownProfileRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "profile: speedy\n")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .codelens.yaml")
}

func TestLoad_MalformedYAMLRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "profile: [unclosed\n")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .codelens.yaml")
}

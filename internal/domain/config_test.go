package domain_test

import (
	"testing"

	"github.com/codelens/codelens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.ProfileBalanced, cfg.Profile)
	assert.Equal(t, domain.DefaultMaxRecommendations, cfg.MaxRecommendations)
	assert.False(t, cfg.AggressiveSQL)
}

func TestConfig_Validate(t *testing.T) {
	valid := domain.ProjectConfig{Profile: domain.ProfilePerformance}
	require.NoError(t, valid.Validate())

	unknown := domain.ProjectConfig{Profile: "speedy"}
	assert.Error(t, unknown.Validate())

	negative := domain.ProjectConfig{MaxRecommendations: -1}
	assert.Error(t, negative.Validate())

	zero := domain.ProjectConfig{}
	assert.NoError(t, zero.Validate())
}

func TestConfig_EffectiveProfile(t *testing.T) {
	assert.Equal(t, domain.ProfileBalanced, domain.ProjectConfig{}.EffectiveProfile())
	assert.Equal(t, domain.ProfilePerformance,
		domain.ProjectConfig{Profile: domain.ProfilePerformance}.EffectiveProfile())
}

func TestConfig_EffectiveMaxRecommendations(t *testing.T) {
	assert.Equal(t, 3, domain.ProjectConfig{}.EffectiveMaxRecommendations())
	assert.Equal(t, 5, domain.ProjectConfig{MaxRecommendations: 5}.EffectiveMaxRecommendations())
}

func TestWeightProfiles_SumToOne(t *testing.T) {
	for _, p := range domain.ValidProfiles {
		weights := p.Weights()
		require.Len(t, weights, len(domain.CategoryNames), "profile %s", p)

		var sum float64
		for _, name := range domain.CategoryNames {
			w, ok := weights[name]
			require.True(t, ok, "profile %s missing %s", p, name)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "profile %s", p)
	}
}

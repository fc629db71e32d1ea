package domain

import "fmt"

// ProjectConfig holds project-level configuration loaded from
// .codelens.yaml. The zero value changes nothing.
type ProjectConfig struct {
	Profile            WeightProfile `yaml:"profile"             json:"profile,omitempty"`
	MaxRecommendations int           `yaml:"max_recommendations" json:"max_recommendations,omitempty"`
	AggressiveSQL      bool          `yaml:"aggressive_sql"      json:"aggressive_sql,omitempty"`
	IncludeGlobs       []string      `yaml:"include"             json:"include,omitempty"`
	ExcludeGlobs       []string      `yaml:"exclude"             json:"exclude,omitempty"`
}

// DefaultMaxRecommendations caps advisory output so reports stay
// readable.
const DefaultMaxRecommendations = 3

// DefaultConfig returns the configuration used when no .codelens.yaml
// is present.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Profile:            ProfileBalanced,
		MaxRecommendations: DefaultMaxRecommendations,
	}
}

// Validate catches typos in user-provided config before it is applied.
func (c ProjectConfig) Validate() error {
	if c.Profile != "" {
		valid := false
		for _, p := range ValidProfiles {
			if c.Profile == p {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown profile %q (valid: %v)", c.Profile, ValidProfiles)
		}
	}
	if c.MaxRecommendations < 0 {
		return fmt.Errorf("max_recommendations must be >= 0, got %d", c.MaxRecommendations)
	}
	return nil
}

// EffectiveProfile resolves the configured profile, defaulting to
// balanced.
func (c ProjectConfig) EffectiveProfile() WeightProfile {
	if c.Profile == "" {
		return ProfileBalanced
	}
	return c.Profile
}

// EffectiveMaxRecommendations resolves the recommendation cap.
func (c ProjectConfig) EffectiveMaxRecommendations() int {
	if c.MaxRecommendations == 0 {
		return DefaultMaxRecommendations
	}
	return c.MaxRecommendations
}

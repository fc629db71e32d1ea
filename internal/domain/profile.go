package domain

// WeightProfile names a fixed category weight vector. The vector is
// held invariant across a deployment; changing it changes what the
// overall score means.
type WeightProfile string

const (
	ProfileBalanced    WeightProfile = "balanced"
	ProfilePerformance WeightProfile = "performance"
)

// ValidProfiles enumerates the recognized weight profiles.
var ValidProfiles = []WeightProfile{ProfileBalanced, ProfilePerformance}

// Weights returns the category weight vector for a profile, keyed by
// category name. Every vector sums to 1.0.
func (p WeightProfile) Weights() map[string]float64 {
	switch p {
	case ProfilePerformance:
		return map[string]float64{
			CategoryReadability:     0.20,
			CategoryMaintainability: 0.25,
			CategoryPerformance:     0.15,
			CategorySecurity:        0.25,
			CategoryCodeSmell:       0.15,
		}
	default:
		return map[string]float64{
			CategoryReadability:     0.25,
			CategoryMaintainability: 0.25,
			CategoryPerformance:     0.20,
			CategorySecurity:        0.20,
			CategoryCodeSmell:       0.10,
		}
	}
}

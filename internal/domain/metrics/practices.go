package metrics

import "regexp"

// legacyPattern pairs a legacy-idiom matcher with its per-occurrence
// deduction.
type legacyPattern struct {
	re      *regexp.Regexp
	penalty float64
}

var legacyPatterns = []legacyPattern{
	{regexp.MustCompile(`\bvar\s+[a-zA-Z_$]`), 5},
	{regexp.MustCompile(`console\.log\s*\(`), 4},
	{regexp.MustCompile(`\balert\s*\(`), 4},
	{regexp.MustCompile(`\b(TODO|FIXME|XXX)\b`), 3},
	{regexp.MustCompile(`\bgoto\b`), 5},
}

// scoreBestPractices deducts for legacy idioms and leftover debug or
// task markers.
func scoreBestPractices(text string) float64 {
	score := 100.0
	for _, p := range legacyPatterns {
		hits := len(p.re.FindAllString(text, -1))
		score -= float64(hits) * p.penalty
	}
	return clamp(score)
}

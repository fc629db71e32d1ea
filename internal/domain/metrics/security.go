package metrics

import "regexp"

// dangerousPattern pairs a matcher with a per-occurrence deduction.
type dangerousPattern struct {
	re      *regexp.Regexp
	penalty float64
}

// Dangerous patterns scanned regardless of language. Penalties are
// per occurrence against a baseline of 100.
var dangerousPatterns = []dangerousPattern{
	{regexp.MustCompile(`\beval\s*\(`), 15},
	{regexp.MustCompile(`\.innerHTML\s*=`), 15},
	{regexp.MustCompile(`dangerouslySetInnerHTML`), 15},
	{regexp.MustCompile(`document\.write\s*\(`), 12},
	{regexp.MustCompile(`\bexec\s*\(`), 12},
	{regexp.MustCompile(`os\.system\s*\(`), 15},
	{regexp.MustCompile(`shell\s*=\s*True`), 15},
	{regexp.MustCompile(`(?i)\b(password|passwd|secret|token|api_?key)\s*[:=]\s*["'][^"']+["']`), 20},
	{regexp.MustCompile(`(?i)\b(select|insert|update|delete)\b[^"'\n]*["']\s*\+`), 12},
	{regexp.MustCompile(`(?i)f["'].*\b(select|insert|update|delete)\b.*\{`), 12},
}

var sanitizationMarker = regexp.MustCompile(`(?i)\b(sanitize|escape|validate|encodeURIComponent|parameterized|prepared)\w*\s*\(`)

// scoreSecurity starts from a clean baseline and deducts per
// occurrence of each dangerous pattern. Explicit sanitization or
// validation calls earn a small bonus. Not short-circuited for tiny
// files: hardcoded credentials in a 3-line file still count.
func scoreSecurity(text string) float64 {
	score := 100.0
	for _, p := range dangerousPatterns {
		hits := len(p.re.FindAllString(text, -1))
		score -= float64(hits) * p.penalty
	}
	if sanitizationMarker.MatchString(text) {
		score += 5
	}
	return clamp(score)
}

package scoring

import (
	"sort"
	"strings"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/metrics"
)

// Analyze runs the full deterministic pipeline for one source unit:
// metrics, category scores, then report assembly. Pure: same input,
// same output, byte for byte.
func Analyze(unit domain.SourceUnit, cfg domain.ProjectConfig) *domain.QualityResult {
	if strings.TrimSpace(unit.Text) == "" {
		return emptyResult(unit, cfg)
	}

	m := metrics.Compute(unit.Text)
	categories := ScoreCategories(m)
	return Assemble(categories, m, unit, cfg)
}

// Assemble attaches weights from the active profile, computes the
// weighted overall score, and generates recommendations, findings and
// the summary sentence.
func Assemble(categories []domain.CategoryScore, m domain.MetricSet, unit domain.SourceUnit, cfg domain.ProjectConfig) *domain.QualityResult {
	weights := cfg.EffectiveProfile().Weights()
	for i := range categories {
		categories[i].Weight = weights[categories[i].Name]
	}

	overall := domain.ComputeOverallScore(categories)
	issues, snippets := collectFindings(unit.Text)

	return &domain.QualityResult{
		Overall:         overall,
		Categories:      categories,
		Metrics:         m,
		Recommendations: recommend(m, cfg.EffectiveMaxRecommendations()),
		Issues:          issues,
		Snippets:        snippets,
		Summary:         domain.SummaryFor(overall),
		Language:        unit.Language,
		File:            unit.File,
	}
}

// emptyResult is the fixed zero-score report for empty input. All five
// categories are present with score 0 so consumers can render a stable
// shape.
func emptyResult(unit domain.SourceUnit, cfg domain.ProjectConfig) *domain.QualityResult {
	weights := cfg.EffectiveProfile().Weights()
	categories := make([]domain.CategoryScore, 0, len(domain.CategoryNames))
	for _, name := range domain.CategoryNames {
		categories = append(categories, domain.CategoryScore{
			Name:   name,
			Weight: weights[name],
		})
	}
	return &domain.QualityResult{
		Overall:         0,
		Categories:      categories,
		Recommendations: []string{"Please provide code to analyze."},
		Summary:         "No code to analyze.",
		Language:        unit.Language,
		File:            unit.File,
	}
}

// advisory pairs a metric value with its threshold and fixed text.
type advisory struct {
	value     float64
	threshold float64
	text      string
}

// recommend emits one fixed advisory per metric below its cut,
// worst-offender first, capped so the report stays readable.
func recommend(m domain.MetricSet, cap int) []string {
	advisories := []advisory{
		{m.LineLength, 70, "Break long lines; aim for a shorter average line length."},
		{m.CommentRatio, 70, "Add comments and documentation for non-obvious logic."},
		{m.Complexity, 75, "Reduce nesting and branch density; extract helper functions."},
		{m.Security, 85, "Remove dangerous calls and hardcoded credentials; validate all inputs."},
		{m.Consistency, 80, "Settle on one quote style, one indentation style and one naming convention."},
		{m.BestPractices, 80, "Replace legacy idioms and remove leftover debug statements."},
	}

	var below []advisory
	for _, a := range advisories {
		if a.value < a.threshold {
			below = append(below, a)
		}
	}
	sort.SliceStable(below, func(i, j int) bool {
		return below[i].value-below[i].threshold < below[j].value-below[j].threshold
	})

	if cap > 0 && len(below) > cap {
		below = below[:cap]
	}
	out := make([]string, 0, len(below))
	for _, a := range below {
		out = append(out, a.text)
	}
	return out
}

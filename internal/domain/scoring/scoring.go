// Package scoring maps raw metric sets onto the five fixed quality
// categories and assembles the final report. The metric-to-category
// mapping is a product contract: changing which metrics feed which
// category changes what the scores mean, not just how they are
// computed.
package scoring

import (
	"math"

	"github.com/codelens/codelens/internal/domain"
)

// ScoreCategories runs all five category scorers in display order.
// Weights are attached later by Assemble, from the active profile.
func ScoreCategories(m domain.MetricSet) []domain.CategoryScore {
	return []domain.CategoryScore{
		ScoreReadability(m),
		ScoreMaintainability(m),
		ScorePerformance(m),
		ScoreSecurity(m),
		ScoreCodeSmell(m),
	}
}

// mean rounds the unweighted arithmetic mean of metric values to an
// integer score.
func mean(values ...float64) int {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return int(math.Round(sum / float64(len(values))))
}

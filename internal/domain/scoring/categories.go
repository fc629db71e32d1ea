package scoring

import "github.com/codelens/codelens/internal/domain"

// ScoreReadability blends line length, comment coverage and style
// consistency.
func ScoreReadability(m domain.MetricSet) domain.CategoryScore {
	return domain.CategoryScore{
		Name:  domain.CategoryReadability,
		Score: mean(m.LineLength, m.CommentRatio, m.Consistency),
	}
}

// ScoreMaintainability blends structural complexity, best-practice
// adherence and comment coverage.
func ScoreMaintainability(m domain.MetricSet) domain.CategoryScore {
	return domain.CategoryScore{
		Name:  domain.CategoryMaintainability,
		Score: mean(m.Complexity, m.BestPractices, m.CommentRatio),
	}
}

// ScorePerformance uses complexity and line length as heuristic
// proxies; no profiling happens here.
func ScorePerformance(m domain.MetricSet) domain.CategoryScore {
	return domain.CategoryScore{
		Name:  domain.CategoryPerformance,
		Score: mean(m.Complexity, m.LineLength),
	}
}

// ScoreSecurity passes the security metric through unchanged. The
// sanitization bonus is already folded in at the metric layer.
func ScoreSecurity(m domain.MetricSet) domain.CategoryScore {
	return domain.CategoryScore{
		Name:  domain.CategorySecurity,
		Score: mean(m.Security),
	}
}

// ScoreCodeSmell blends legacy-idiom density, complexity and
// consistency.
func ScoreCodeSmell(m domain.MetricSet) domain.CategoryScore {
	return domain.CategoryScore{
		Name:  domain.CategoryCodeSmell,
		Score: mean(m.BestPractices, m.Complexity, m.Consistency),
	}
}

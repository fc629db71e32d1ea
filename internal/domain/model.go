package domain

import (
	"math"
	"time"
)

// QualityResult is the full analysis report for one source unit.
type QualityResult struct {
	Overall         int             `json:"overall"`
	Categories      []CategoryScore `json:"categories"`
	Metrics         MetricSet       `json:"metrics"`
	Recommendations []string        `json:"recommendations,omitempty"`
	Issues          []Issue         `json:"issues,omitempty"`
	Snippets        []Snippet       `json:"snippets,omitempty"`
	Summary         string          `json:"summary,omitempty"`
	Language        Language        `json:"language"`
	File            string          `json:"file,omitempty"`
	CommitHash      string          `json:"commit_hash,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

func (r QualityResult) Grade() string { return GradeFor(r.Overall) }

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}

// SummaryFor buckets an overall score into a human sentence.
func SummaryFor(score int) string {
	switch {
	case score >= 90:
		return "Excellent code quality. Keep it up."
	case score >= 80:
		return "Good code quality with minor room for improvement."
	case score >= 70:
		return "Decent code quality. A few areas deserve attention."
	case score >= 60:
		return "Fair code quality. Several issues should be addressed."
	case score >= 50:
		return "Code quality needs work. Prioritize the recommendations below."
	case score >= 30:
		return "Poor code quality. Significant refactoring is advised."
	default:
		return "Critical code quality issues detected. Immediate attention required."
	}
}

// CategoryScore is one of the five fixed quality dimensions.
type CategoryScore struct {
	Name   string  `json:"name"`
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
}

const (
	CategoryReadability     = "readability"
	CategoryMaintainability = "maintainability"
	CategoryPerformance     = "performance"
	CategorySecurity        = "security"
	CategoryCodeSmell       = "code_smell"
)

// CategoryNames enumerates the fixed categories in display order.
// Scoring does not depend on the order, rendering does.
var CategoryNames = []string{
	CategoryReadability,
	CategoryMaintainability,
	CategoryPerformance,
	CategorySecurity,
	CategoryCodeSmell,
}

// ComputeOverallScore returns the weighted mean of category scores,
// rounded to an integer. Weights are expected to sum to 1.0; a zero
// total weight yields 0.
func ComputeOverallScore(categories []CategoryScore) int {
	var totalWeighted, totalWeight float64
	for _, c := range categories {
		totalWeighted += float64(c.Score) * c.Weight
		totalWeight += c.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(totalWeighted / totalWeight))
}

// MetricSet holds the raw numeric signals computed from source text.
// All values are clamped to [0,100] before leaving the metrics package.
type MetricSet struct {
	LineLength    float64 `json:"line_length"`
	CommentRatio  float64 `json:"comment_ratio"`
	Complexity    float64 `json:"complexity"`
	Security      float64 `json:"security"`
	Consistency   float64 `json:"consistency"`
	BestPractices float64 `json:"best_practices"`
}

// Issue is a located finding within the analyzed source.
type Issue struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Snippet is a located finding that carries the offending code and an
// optional suggestion, for two-pane rendering.
type Snippet struct {
	Title      string `json:"title"`
	Code       string `json:"code"`
	Suggestion string `json:"suggestion,omitempty"`
	Line       int    `json:"line,omitempty"`
}

// RefactoringResult is the outcome of running the rule tables on a
// source unit.
type RefactoringResult struct {
	RefactoredCode   string   `json:"refactored_code"`
	ImprovementCount int      `json:"improvement_count"`
	Improvements     []string `json:"improvements,omitempty"`
	QualityScore     int      `json:"quality_score"`
	Language         Language `json:"language"`
}

// ScoreEntry is one row of the per-project score history.
type ScoreEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	File       string `json:"file,omitempty"`
	Overall    int    `json:"overall"`
	Grade      string `json:"grade"`
}

// ProjectReport aggregates per-file results for a batch scan.
type ProjectReport struct {
	RootPath   string          `json:"root_path"`
	Overall    int             `json:"overall"`
	Files      []QualityResult `json:"files"`
	CommitHash string          `json:"commit_hash,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (r ProjectReport) Grade() string { return GradeFor(r.Overall) }

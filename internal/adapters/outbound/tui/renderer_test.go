package tui_test

import (
	"testing"

	"github.com/codelens/codelens/internal/adapters/outbound/tui"
	"github.com/codelens/codelens/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *domain.QualityResult {
	return &domain.QualityResult{
		Overall: 74,
		Categories: []domain.CategoryScore{
			{Name: domain.CategoryReadability, Score: 80, Weight: 0.25},
			{Name: domain.CategoryMaintainability, Score: 70, Weight: 0.25},
			{Name: domain.CategoryPerformance, Score: 75, Weight: 0.20},
			{Name: domain.CategorySecurity, Score: 72, Weight: 0.20},
			{Name: domain.CategoryCodeSmell, Score: 68, Weight: 0.10},
		},
		Recommendations: []string{"Shorten long lines"},
		Issues: []domain.Issue{
			{Severity: domain.SeverityWarning, Category: domain.CategoryReadability, Line: 3, Message: "Line exceeds 120 characters"},
		},
		Snippets: []domain.Snippet{
			{Title: "Nested conditionals", Code: "if a:\n    if b:", Suggestion: "Flatten with early returns", Line: 7},
		},
		Summary:  domain.SummaryFor(74),
		Language: domain.LangPython,
		File:     "app.py",
	}
}

func TestRenderReport(t *testing.T) {
	out := tui.RenderReport(sampleResult())

	assert.Contains(t, out, "codelens")
	assert.Contains(t, out, "74 / 100")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "app.py")
	assert.Contains(t, out, "Readability")
	assert.Contains(t, out, "Code Smell")
	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "Shorten long lines")
	assert.Contains(t, out, "line 3")
	assert.Contains(t, out, "Nested conditionals")
}

func TestRenderReport_NoIssues(t *testing.T) {
	result := sampleResult()
	result.Issues = nil
	result.Snippets = nil

	out := tui.RenderReport(result)
	assert.Contains(t, out, "No issues found.")
}

func TestRenderProject(t *testing.T) {
	report := &domain.ProjectReport{
		Overall: 68,
		Files: []domain.QualityResult{
			{Overall: 74, File: "a.js"},
			{Overall: 62, File: "src/b.py"},
		},
	}

	out := tui.RenderProject(report)
	assert.Contains(t, out, "2 files analyzed")
	assert.Contains(t, out, "68 / 100")
	assert.Contains(t, out, "a.js")
	assert.Contains(t, out, "src/b.py")
}

func TestRenderRefactor(t *testing.T) {
	result := &domain.RefactoringResult{
		ImprovementCount: 2,
		Improvements:     []string{"Replaced var declarations", "Converted to template literals"},
		QualityScore:     81,
	}

	out := tui.RenderRefactor(result)
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "Replaced var declarations")
	assert.Contains(t, out, "81/100")
}

func TestRenderRefactor_NoChanges(t *testing.T) {
	out := tui.RenderRefactor(&domain.RefactoringResult{QualityScore: 90})
	assert.Contains(t, out, "No applicable rewrites")
}

func TestRenderHistory(t *testing.T) {
	entries := []domain.ScoreEntry{
		{Timestamp: "2026-08-01T12:00:00Z", CommitHash: "abc1234def", Overall: 60, Grade: "C"},
		{Timestamp: "2026-08-10T12:00:00Z", CommitHash: "def5678abc", Overall: 72, Grade: "B"},
	}

	out := tui.RenderHistory(entries)
	assert.Contains(t, out, "2026-08-01")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "↑12")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := tui.RenderHistory(nil)
	assert.Contains(t, out, "No score history found.")
}

func TestRenderDiff(t *testing.T) {
	before := "var x = 1;\nconsole.log(x);\n"
	after := "const x = 1;\nconsole.log(x);\n"

	out := tui.RenderDiff(before, after)
	assert.Contains(t, out, "- var x = 1;")
	assert.Contains(t, out, "+ const x = 1;")
}

func TestRenderDiff_Identical(t *testing.T) {
	out := tui.RenderDiff("same\n", "same\n")
	assert.NotContains(t, out, "- same")
	assert.NotContains(t, out, "+ same")
}

package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codelens/codelens/internal/domain"
)

const (
	longLineLimit = 120
	maxIssues     = 10
	maxSnippets   = 5
)

var (
	// Three conditionals within a few lines of each other is treated
	// as deep nesting. A keyword scan, not a parse.
	nestedConditionals = regexp.MustCompile(`\bif\b[^\n]*\n(?:[^\n]*\n){0,2}?[ \t]+[^\n]*\bif\b[^\n]*\n(?:[^\n]*\n){0,2}?[ \t]+[^\n]*\bif\b`)

	// Bare numeric literals of three or more digits.
	magicNumber = regexp.MustCompile(`\b\d{3,}\b`)
)

// collectFindings produces line-located issues and snippets: long
// lines, nested conditionals and magic numbers. Line numbers are
// 1-based, computed from the newline count preceding each match.
func collectFindings(text string) ([]domain.Issue, []domain.Snippet) {
	var issues []domain.Issue
	var snippets []domain.Snippet

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if len(l) <= longLineLimit {
			continue
		}
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityWarning,
			Category: domain.CategoryReadability,
			Line:     i + 1,
			Message:  fmt.Sprintf("line is %d characters (>%d)", len(l), longLineLimit),
		})
		if len(snippets) < maxSnippets {
			snippets = append(snippets, domain.Snippet{
				Title:      "Long line",
				Code:       strings.TrimSpace(l),
				Suggestion: "Split into multiple statements or extract a variable.",
				Line:       i + 1,
			})
		}
	}

	for _, loc := range nestedConditionals.FindAllStringIndex(text, -1) {
		line := lineAt(text, loc[0])
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityWarning,
			Category: domain.CategoryMaintainability,
			Line:     line,
			Message:  "deeply nested conditionals; consider early returns or extraction",
		})
		if len(snippets) < maxSnippets {
			snippets = append(snippets, domain.Snippet{
				Title:      "Nested conditionals",
				Code:       firstLines(text[loc[0]:loc[1]], 4),
				Suggestion: "Flatten with guard clauses or extract a helper.",
				Line:       line,
			})
		}
	}

	for _, loc := range magicNumber.FindAllStringIndex(text, -1) {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityInfo,
			Category: domain.CategoryCodeSmell,
			Line:     lineAt(text, loc[0]),
			Message:  fmt.Sprintf("magic number %s; extract a named constant", text[loc[0]:loc[1]]),
		})
	}

	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	return issues, snippets
}

// lineAt returns the 1-based line number of a byte offset.
func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}

func firstLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codelens/codelens/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	codeStyle     = lipgloss.NewStyle().Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats one quality report for terminal output.
func RenderReport(result *domain.QualityResult) string {
	var b strings.Builder

	// ── Header ──
	grade := result.Grade()
	title := headerStyle.Render("codelens")
	subtitle := dimStyle.Render("Code Quality Report")
	if result.File != "" {
		subtitle = dimStyle.Render(result.File)
	}
	scoreLine := fmt.Sprintf("%d / 100", result.Overall)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(scoreLine)
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Categories ──
	for _, cat := range result.Categories {
		renderCategory(&b, cat)
	}

	b.WriteString("\n  " + dimStyle.Render(result.Summary) + "\n")

	// ── Recommendations ──
	if len(result.Recommendations) > 0 {
		b.WriteString("\n  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Recommendations") + "\n\n")
		for _, rec := range result.Recommendations {
			b.WriteString("    " + warnStyle.Render("→") + " " + dimStyle.Render(rec) + "\n")
		}
	}

	// ── Issues ──
	b.WriteString("\n  " + separatorLine + "\n\n")
	if len(result.Issues) > 0 {
		errorCount, warnCount, infoCount := countSeverities(result.Issues)
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Issues"))
		b.WriteString("  ")
		if errorCount > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errorCount)))
			b.WriteString("  ")
		}
		if warnCount > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnCount)))
			b.WriteString("  ")
		}
		if infoCount > 0 {
			b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", infoCount)))
		}
		b.WriteString("\n\n")

		for _, issue := range result.Issues {
			renderIssue(&b, issue)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	// ── Snippets ──
	if len(result.Snippets) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Snippets") + "\n\n")
		for _, sn := range result.Snippets {
			renderSnippet(&b, sn)
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, cat domain.CategoryScore) {
	color := scoreColor(cat.Score)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d", cat.Score))
	bar := coloredBar(cat.Score, 20)
	weight := dimStyle.Render(fmt.Sprintf("%d%%", int(cat.Weight*100+0.5)))

	name := catNameStyle.Render(padRight(displayName(cat.Name), 20))
	fmt.Fprintf(b, "  %s %s  %s %s\n", name, bar, scoreText, weight)
}

var categoryLabels = map[string]string{
	domain.CategoryReadability:     "Readability",
	domain.CategoryMaintainability: "Maintainability",
	domain.CategoryPerformance:     "Performance",
	domain.CategorySecurity:        "Security",
	domain.CategoryCodeSmell:       "Code Smell",
}

func displayName(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := severityTag(issue.Severity)
	loc := ""
	if issue.Line > 0 {
		loc = fileStyle.Render(fmt.Sprintf("line %d", issue.Line))
	}

	if loc != "" {
		fmt.Fprintf(b, "    %s %s\n", tag, loc)
		fmt.Fprintf(b, "         %s\n", dimStyle.Render(issue.Message))
	} else {
		fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render(issue.Message))
	}
}

func renderSnippet(b *strings.Builder, sn domain.Snippet) {
	loc := ""
	if sn.Line > 0 {
		loc = fileStyle.Render(fmt.Sprintf("  line %d", sn.Line))
	}
	fmt.Fprintf(b, "    %s%s\n", titleStyle.Render(sn.Title), loc)
	for _, line := range strings.Split(strings.TrimRight(sn.Code, "\n"), "\n") {
		fmt.Fprintf(b, "      %s\n", codeStyle.Render(line))
	}
	if sn.Suggestion != "" {
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(sn.Suggestion))
	}
	b.WriteString("\n")
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func countSeverities(issues []domain.Issue) (errors, warnings, infos int) {
	for _, i := range issues {
		switch i.Severity {
		case domain.SeverityError:
			errors++
		case domain.SeverityWarning:
			warnings++
		default:
			infos++
		}
	}
	return
}

// RenderProject formats a tree-scan report: one line per file, then the
// aggregate.
func RenderProject(report *domain.ProjectReport) string {
	var b strings.Builder

	grade := report.Grade()
	title := headerStyle.Render("codelens")
	subtitle := dimStyle.Render(fmt.Sprintf("%d files analyzed", len(report.Files)))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", report.Overall))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	for _, f := range report.Files {
		bar := coloredBar(f.Overall, 20)
		score := lipgloss.NewStyle().Foreground(scoreColor(f.Overall)).Render(fmt.Sprintf("%3d", f.Overall))
		fmt.Fprintf(&b, "  %s %s  %s %s\n", padRight(truncate(f.File, 36), 36), bar, score, dimStyle.Render(f.Grade()))
	}

	b.WriteString("\n")
	return b.String()
}

// RenderRefactor formats a refactoring result: improvement list plus
// the post-refactor score.
func RenderRefactor(result *domain.RefactoringResult) string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Refactoring Result") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	countStyled := lipgloss.NewStyle().Bold(true).Foreground(accent).
		Render(fmt.Sprintf("%d", result.ImprovementCount))
	fmt.Fprintf(&b, "  %s improvements applied\n\n", countStyled)

	for _, imp := range result.Improvements {
		b.WriteString("    " + passStyle.Render("✓") + " " + dimStyle.Render(imp) + "\n")
	}
	if len(result.Improvements) == 0 {
		b.WriteString("    " + dimStyle.Render("No applicable rewrites for this input.") + "\n")
	}

	scoreStyled := lipgloss.NewStyle().Foreground(scoreColor(result.QualityScore)).
		Render(fmt.Sprintf("%d/100", result.QualityScore))
	fmt.Fprintf(&b, "\n  Post-refactor score: %s\n", scoreStyled)

	return b.String()
}

// RenderHistory formats score history for terminal output.
func RenderHistory(entries []domain.ScoreEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No score history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Score History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Overall)).
			Render(fmt.Sprintf("%d/100", e.Overall))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			scoreStyled,
			e.Grade,
		)

		if i > 0 {
			diff := e.Overall - entries[i-1].Overall
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return "…" + s[len(s)-width+1:]
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

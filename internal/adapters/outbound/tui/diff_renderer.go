package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(success)
	removedStyle = lipgloss.NewStyle().Foreground(danger)
)

// RenderDiff formats a line-level before/after diff of a refactor.
// Long unchanged runs are elided.
func RenderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	var out strings.Builder
	out.WriteString("\n  " + titleStyle.Render("Diff") + "\n")
	out.WriteString("  " + separatorLine + "\n\n")

	for _, d := range diffs {
		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				out.WriteString("  " + addedStyle.Render("+ "+line) + "\n")
			}
		case diffmatchpatch.DiffDelete:
			for _, line := range lines {
				out.WriteString("  " + removedStyle.Render("- "+line) + "\n")
			}
		default:
			for _, line := range elideMiddle(lines) {
				out.WriteString("  " + faintStyle.Render("  "+line) + "\n")
			}
		}
	}

	return out.String()
}

// elideMiddle keeps the first and last few lines of a long unchanged
// run and replaces the middle with a marker.
func elideMiddle(lines []string) []string {
	const keep = 3
	if len(lines) <= keep*2+1 {
		return lines
	}
	elided := len(lines) - keep*2
	out := make([]string, 0, keep*2+1)
	out = append(out, lines[:keep]...)
	out = append(out, fmt.Sprintf("··· %d unchanged lines ···", elided))
	out = append(out, lines[len(lines)-keep:]...)
	return out
}

package metrics

import (
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
)

var identifier = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`)

// scoreConsistency penalizes a file that mixes styles with itself:
// both quote characters, both tab and space indentation, or both
// camelCase and snake_case identifiers in meaningful proportion.
func scoreConsistency(lines []string) float64 {
	score := 100.0

	singles, doubles := 0, 0
	tabIndent, spaceIndent := 0, 0
	for _, l := range lines {
		singles += strings.Count(l, "'")
		doubles += strings.Count(l, `"`)
		switch {
		case strings.HasPrefix(l, "\t"):
			tabIndent++
		case strings.HasPrefix(l, "  "):
			spaceIndent++
		}
	}

	if singles >= 2 && doubles >= 2 {
		score -= 20
	}
	if tabIndent > 0 && spaceIndent > 0 {
		score -= 25
	}
	if mixedNamingStyles(strings.Join(lines, "\n")) {
		score -= 15
	}
	return clamp(score)
}

// mixedNamingStyles reports whether camelCase and snake_case
// identifiers both make up a meaningful share of the file.
func mixedNamingStyles(text string) bool {
	camel, snake, total := 0, 0, 0
	for _, id := range identifier.FindAllString(text, -1) {
		if len(id) < 4 {
			continue
		}
		total++
		if strings.Contains(strings.Trim(id, "_"), "_") {
			snake++
			continue
		}
		if id == strings.ToLower(id) || id == strings.ToUpper(id) {
			continue
		}
		if len(camelcase.Split(id)) > 1 {
			camel++
		}
	}
	if total == 0 {
		return false
	}
	camelShare := float64(camel) / float64(total)
	snakeShare := float64(snake) / float64(total)
	return camelShare > 0.2 && snakeShare > 0.2
}

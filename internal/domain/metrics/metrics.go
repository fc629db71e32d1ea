// Package metrics derives raw numeric quality signals from source
// text. Every function here is a pure text scan: no parsing, no I/O,
// no state. All scores are clamped to [0,100] before being returned.
package metrics

import (
	"regexp"
	"strings"

	"github.com/codelens/codelens/internal/domain"
)

// tinyFileLines is the threshold below which shape-based metrics
// short-circuit to a high baseline. A near-empty file is not "bad";
// penalizing it would just produce noise. Security scanning still runs
// on tiny files, since a dangerous call is dangerous at any size.
const tinyFileLines = 10

const tinyFileBaseline = 85.0

// Compute derives the full metric set for a piece of source text.
// Deterministic and total: any string input, including empty or
// binary-looking text, yields a well-formed set.
func Compute(text string) domain.MetricSet {
	lines := strings.Split(text, "\n")
	nonEmpty := countNonEmpty(lines)

	if nonEmpty < tinyFileLines {
		return domain.MetricSet{
			LineLength:    tinyFileBaseline,
			CommentRatio:  tinyFileBaseline,
			Complexity:    tinyFileBaseline,
			Security:      scoreSecurity(text),
			Consistency:   tinyFileBaseline,
			BestPractices: tinyFileBaseline,
		}
	}

	return domain.MetricSet{
		LineLength:    scoreLineLength(lines),
		CommentRatio:  scoreCommentRatio(lines),
		Complexity:    scoreComplexity(lines, nonEmpty),
		Security:      scoreSecurity(text),
		Consistency:   scoreConsistency(lines),
		BestPractices: scoreBestPractices(text),
	}
}

func countNonEmpty(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}

// lineLengthTarget is the average line length above which the score
// starts dropping.
const lineLengthTarget = 35

// scoreLineLength penalizes long average line length: 2 points per
// character above the target, floored at 0.
func scoreLineLength(lines []string) float64 {
	total, count := 0, 0
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		total += len(l)
		count++
	}
	if count == 0 {
		return 100
	}
	avg := float64(total) / float64(count)
	if avg <= lineLengthTarget {
		return 100
	}
	return clamp(100 - (avg-lineLengthTarget)*2)
}

var (
	commentLine = regexp.MustCompile(`^\s*(//|#|/\*|\*|--)`)
	docMarker   = regexp.MustCompile(`/\*\*|"""|'''|@param|:param|Returns:|@returns`)
)

// scoreCommentRatio rewards commented code. The raw ratio is scaled up
// (a file that is 40% comments is plenty) and documentation markers
// earn a flat bonus.
func scoreCommentRatio(lines []string) float64 {
	comments, code := 0, 0
	inBlock := false
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		switch {
		case inBlock:
			comments++
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
		case commentLine.MatchString(l):
			comments++
			if strings.HasPrefix(trimmed, "/*") && !strings.Contains(trimmed, "*/") {
				inBlock = true
			}
		default:
			code++
		}
	}
	total := comments + code
	if total == 0 {
		return 100
	}

	score := float64(comments) / float64(total) * 250
	if docMarker.MatchString(strings.Join(lines, "\n")) {
		score += 15
	}
	return clamp(score)
}

var branchKeyword = regexp.MustCompile(`\b(if|else|elif|for|while|switch|case|catch|except)\b`)

var definitionMarker = regexp.MustCompile(`\b(function|def|class|func|void|public|private)\b|=>`)

// scoreComplexity penalizes branch-keyword and brace density relative
// to file size, with a small modularity bonus when the file defines
// functions or classes at all.
func scoreComplexity(lines []string, nonEmpty int) float64 {
	text := strings.Join(lines, "\n")
	branches := len(branchKeyword.FindAllString(text, -1))
	braces := strings.Count(text, "{")

	density := (float64(branches) + float64(braces)/2) / float64(nonEmpty)
	score := 100 - density*120

	if definitionMarker.MatchString(text) {
		score += 10
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

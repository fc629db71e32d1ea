package rules

import (
	"regexp"
	"strings"
)

// genericTable is the language-agnostic fallback used for any
// unrecognized language id. Purely cosmetic: blank-line collapsing,
// operator spacing and bracket-driven re-indentation. Designed to
// converge in one pass: running it on its own output changes nothing.
func genericTable() Table {
	return Table{Rules: []Rule{
		collapseBlankLines(),
		normalizeOperatorSpacing(),
		reindentByBrackets(),
	}}
}

var multiBlank = regexp.MustCompile(`\n{3,}`)

func collapseBlankLines() Rule {
	return Rule{
		Name: "collapse-blank-lines",
		Apply: func(text string) string {
			return multiBlank.ReplaceAllString(text, "\n\n")
		},
	}
}

var (
	// Assignment only: the character classes exclude every operator
	// character, so ==, <=, !=, +=, => and friends never match.
	looseAssign = regexp.MustCompile(`([\w\)\]])[ \t]*=[ \t]*([\w\(\["'])`)
	tightComma  = regexp.MustCompile(`,(\S)`)
)

func normalizeOperatorSpacing() Rule {
	return Rule{
		Name: "operator-spacing",
		Apply: func(text string) string {
			text = looseAssign.ReplaceAllString(text, "${1} = ${2}")
			return tightComma.ReplaceAllString(text, ", ${1}")
		},
	}
}

const genericIndent = "    "

// reindentByBrackets recomputes each line's indentation from a running
// bracket depth: a line starting with a closer is dedented before it
// is emitted, and a line ending with an opener indents what follows.
// A plain counter, not a scope stack.
func reindentByBrackets() Rule {
	return Rule{
		Name: "reindent-by-brackets",
		Apply: func(text string) string {
			lines := strings.Split(text, "\n")
			depth := 0
			for i, line := range lines {
				trimmed := strings.TrimSpace(line)
				if trimmed == "" {
					lines[i] = ""
					continue
				}
				if isCloser(trimmed[0]) && depth > 0 {
					depth--
				}
				lines[i] = strings.Repeat(genericIndent, depth) + trimmed
				if isOpener(trimmed[len(trimmed)-1]) {
					depth++
				}
			}
			return strings.Join(lines, "\n")
		},
	}
}

func isOpener(c byte) bool { return c == '{' || c == '(' || c == '[' }
func isCloser(c byte) bool { return c == '}' || c == ')' || c == ']' }

package rules

import (
	"regexp"
	"strings"
)

// pythonTable is the flat-text Python table. Notebook-shaped input
// never reaches it; the registry routes .ipynb JSON to the structural
// notebook path first.
func pythonTable() Table {
	return Table{Rules: []Rule{
		percentToFString(),
		rangeLenToEnumerate(),
		eqBoolToTruthiness(),
		accumulateToComprehension(),
		openCloseToWith(),
		returnTypeHints(),
		insertDocstrings(),
	}}
}

var (
	pyPercentDQ  = regexp.MustCompile(`"([^"\n]*)"\s*%\s*([A-Za-z_][\w.\[\]]*)`)
	pyPercentSQ  = regexp.MustCompile(`'([^'\n]*)'\s*%\s*([A-Za-z_][\w.\[\]]*)`)
	pyVerb       = regexp.MustCompile(`%[sdf]`)
	pyRangeLen   = regexp.MustCompile(`(?m)^([ \t]*)for\s+([A-Za-z_]\w*)\s+in\s+range\(len\(([A-Za-z_]\w*)\)\):`)
	pyEqTrue     = regexp.MustCompile(`([A-Za-z_][\w.\[\]]*(?:\(\))?)\s*==\s*True\b`)
	pyEqFalse    = regexp.MustCompile(`([A-Za-z_][\w.\[\]]*(?:\(\))?)\s*==\s*False\b`)
	pyAccumulate = regexp.MustCompile(`(?m)^([ \t]*)([A-Za-z_]\w*)\s*=\s*\[\]\n([ \t]*)for\s+([A-Za-z_]\w*)\s+in\s+([^\n:]+):\n([ \t]+)([A-Za-z_]\w*)\.append\(([^\n]+)\)\n`)
	pyOpenClose  = regexp.MustCompile(`(?m)^([ \t]*)([A-Za-z_]\w*)\s*=\s*open\(([^\n]*)\)[ \t]*\n((?:[^\n]*\n)*?)([ \t]*)([A-Za-z_]\w*)\.close\(\)[ \t]*\n?`)
	pyDef        = regexp.MustCompile(`^([ \t]*)def\s+(\w+)\(([^)]*)\)(\s*->\s*[^:]+)?:\s*$`)
)

// percentToFString converts single-argument %-formatting into an
// f-string. Multi-argument tuples and exotic verbs are left alone.
func percentToFString() Rule {
	convert := func(re *regexp.Regexp, quote string, text string) string {
		return re.ReplaceAllStringFunc(text, func(match string) string {
			m := re.FindStringSubmatch(match)
			literal, arg := m[1], m[2]
			if len(pyVerb.FindAllString(literal, -1)) != 1 {
				return match
			}
			return "f" + quote + pyVerb.ReplaceAllString(literal, "{"+arg+"}") + quote
		})
	}
	return Rule{
		Name: "percent-to-fstring",
		Apply: func(text string) string {
			text = convert(pyPercentDQ, `"`, text)
			return convert(pyPercentSQ, `'`, text)
		},
	}
}

// rangeLenToEnumerate rewrites "for i in range(len(x)):" to enumerate
// and renames x[i] accesses to the element name.
func rangeLenToEnumerate() Rule {
	return Rule{
		Name: "range-len-to-enumerate",
		Apply: func(text string) string {
			for {
				loc := pyRangeLen.FindStringSubmatchIndex(text)
				if loc == nil {
					return text
				}
				indent := text[loc[2]:loc[3]]
				idx := text[loc[4]:loc[5]]
				seq := text[loc[6]:loc[7]]
				item := seq + "_item"

				header := indent + "for " + idx + ", " + item + " in enumerate(" + seq + "):"
				text = text[:loc[0]] + header + text[loc[1]:]

				access := regexp.MustCompile(regexp.QuoteMeta(seq) + `\[` + regexp.QuoteMeta(idx) + `\]`)
				text = access.ReplaceAllString(text, item)
			}
		},
	}
}

// eqBoolToTruthiness replaces "== True" with the bare expression and
// "== False" with its negation.
func eqBoolToTruthiness() Rule {
	return Rule{
		Name: "eq-bool-to-truthiness",
		Apply: func(text string) string {
			text = pyEqTrue.ReplaceAllString(text, "${1}")
			return pyEqFalse.ReplaceAllString(text, "not ${1}")
		},
	}
}

// accumulateToComprehension collapses the init/loop/append triple into
// a list comprehension when the loop body is exactly one append.
func accumulateToComprehension() Rule {
	return Rule{
		Name: "accumulate-to-comprehension",
		Apply: func(text string) string {
			return pyAccumulate.ReplaceAllStringFunc(text, func(match string) string {
				m := pyAccumulate.FindStringSubmatch(match)
				initIndent, name := m[1], m[2]
				forIndent, loopVar, iterable := m[3], m[4], m[5]
				bodyIndent, target, expr := m[6], m[7], m[8]
				if initIndent != forIndent || name != target || len(bodyIndent) <= len(forIndent) {
					return match
				}
				return initIndent + name + " = [" + expr + " for " + loopVar + " in " + iterable + "]\n"
			})
		},
	}
}

// openCloseToWith converts a paired open()/close() into a with block,
// indenting the enclosed statements one level.
func openCloseToWith() Rule {
	return Rule{
		Name: "open-close-to-with",
		Apply: func(text string) string {
			return pyOpenClose.ReplaceAllStringFunc(text, func(match string) string {
				m := pyOpenClose.FindStringSubmatch(match)
				indent, name, args, body := m[1], m[2], m[3], m[4]
				closeIndent, closeName := m[5], m[6]
				if name != closeName || indent != closeIndent {
					return match
				}

				var b strings.Builder
				b.WriteString(indent + "with open(" + args + ") as " + name + ":\n")
				for _, line := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
					if strings.TrimSpace(line) == "" {
						b.WriteString("\n")
						continue
					}
					b.WriteString("    " + line + "\n")
				}
				return b.String()
			})
		},
	}
}

// returnTypeHints adds "-> None" to defs whose body never returns a
// value. No inference beyond that.
func returnTypeHints() Rule {
	returnsValue := regexp.MustCompile(`^\s*return\s+\S`)
	return Rule{
		Name: "return-type-hints",
		Apply: func(text string) string {
			lines := strings.Split(text, "\n")
			for i, line := range lines {
				m := pyDef.FindStringSubmatch(line)
				if m == nil || m[4] != "" {
					continue
				}
				if defBodyMatches(lines, i, m[1], returnsValue) {
					continue
				}
				lines[i] = m[1] + "def " + m[2] + "(" + m[3] + ") -> None:"
			}
			return strings.Join(lines, "\n")
		},
	}
}

// defBodyMatches reports whether any line in the def's indented body
// matches re.
func defBodyMatches(lines []string, defIdx int, defIndent string, re *regexp.Regexp) bool {
	for _, line := range lines[defIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if len(indent) <= len(defIndent) {
			return false
		}
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// insertDocstrings gives undocumented defs a one-line docstring.
func insertDocstrings() Rule {
	return Rule{
		Name: "insert-docstrings",
		Apply: func(text string) string {
			lines := strings.Split(text, "\n")
			var out []string
			for i, line := range lines {
				out = append(out, line)
				m := pyDef.FindStringSubmatch(line)
				if m == nil || hasDocstring(lines, i) {
					continue
				}
				out = append(out, m[1]+`    """`+m[2]+`."""`)
			}
			return strings.Join(out, "\n")
		},
	}
}

func hasDocstring(lines []string, defIdx int) bool {
	for _, line := range lines[defIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, `'''`)
	}
	return false
}

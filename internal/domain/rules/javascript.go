package rules

import (
	"regexp"
	"strings"
)

// javascriptTable covers JavaScript and TypeScript (jsx/tsx included
// via alias folding). Order matters: var-to-const runs before the
// template-literal rule so converted declarations are already in
// const form, and function-to-arrow runs before JSDoc insertion so
// headers land on the arrow form.
func javascriptTable() Table {
	return Table{Rules: []Rule{
		varToConstLet(),
		functionToArrow(),
		indexLoopToForEach(),
		concatToTemplate(),
		requireToImport(),
		moduleExportsToExport(),
		objectShorthand(),
		optionalChaining(),
		jsdocHeaders(),
	}}
}

var (
	jsVarDecl    = regexp.MustCompile(`(?m)^([ \t]*)var(\s+)([A-Za-z_$][\w$]*)`)
	jsIndexLoop  = regexp.MustCompile(`for\s*\(\s*(?:var|let)\s+([A-Za-z_$][\w$]*)\s*=\s*0\s*;\s*([A-Za-z_$][\w$]*)\s*<\s*([A-Za-z_$][\w$]*)\.length\s*;\s*([A-Za-z_$][\w$]*)\+\+\s*\)\s*\{`)
	jsArrowDef   = regexp.MustCompile(`^[ \t]*(?:export\s+)?const\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s*)?\([^)]*\)\s*=>`)
	jsShorthand  = regexp.MustCompile(`([,{]\s*)([A-Za-z_$][\w$]*)\s*:\s*([A-Za-z_$][\w$]*)`)
	jsAndChain   = regexp.MustCompile(`([A-Za-z_$][\w$]*)\s*&&\s*([A-Za-z_$][\w$]*)\.`)
	jsConcatSeed = []*regexp.Regexp{
		regexp.MustCompile(`"([^"\n]*)"\s*\+\s*([A-Za-z_$][\w$.]*)`),
		regexp.MustCompile(`'([^'\n]*)'\s*\+\s*([A-Za-z_$][\w$.]*)`),
	}
	jsConcatGrow = []*regexp.Regexp{
		regexp.MustCompile("`([^`\n]*)`" + `\s*\+\s*"([^"\n]*)"`),
		regexp.MustCompile("`([^`\n]*)`" + `\s*\+\s*'([^'\n]*)'`),
		regexp.MustCompile("`([^`\n]*)`" + `\s*\+\s*([A-Za-z_$][\w$.]*)`),
	}
)

// varToConstLet rewrites var declarations to const, or to let when the
// variable is reassigned anywhere later in the file.
func varToConstLet() Rule {
	return Rule{
		Name: "var-to-const-let",
		Apply: func(text string) string {
			return jsVarDecl.ReplaceAllStringFunc(text, func(match string) string {
				m := jsVarDecl.FindStringSubmatch(match)
				name := m[3]
				keyword := "const"
				if isReassigned(text, name) {
					keyword = "let"
				}
				return m[1] + keyword + m[2] + name
			})
		},
	}
}

// isReassigned reports whether name receives a second assignment or a
// mutation operator after its declaration.
func isReassigned(text, name string) bool {
	assign := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*(=[^=]|\+\+|--|[+\-*/%]=)`)
	return len(assign.FindAllString(text, -1)) > 1
}

func functionToArrow() Rule {
	return sub("function-to-arrow",
		`(?m)^([ \t]*)function\s+([A-Za-z_$][\w$]*)\s*\(([^)]*)\)\s*\{`,
		`${1}const ${2} = (${3}) => {`)
}

// indexLoopToForEach rewrites the canonical counted loop over
// arr.length into arr.forEach, renames arr[i] accesses to the element
// parameter, and patches the matching closing brace.
func indexLoopToForEach() Rule {
	return Rule{
		Name: "index-loop-to-foreach",
		Apply: func(text string) string {
			for {
				loc := jsIndexLoop.FindStringSubmatchIndex(text)
				if loc == nil {
					return text
				}
				idx := text[loc[2]:loc[3]]
				cond := text[loc[4]:loc[5]]
				arr := text[loc[6]:loc[7]]
				incr := text[loc[8]:loc[9]]
				if idx != cond || idx != incr {
					return text
				}

				header := arr + ".forEach((item, " + idx + ") => {"
				body, rest := splitAtMatchingBrace(text[loc[1]:])
				access := regexp.MustCompile(regexp.QuoteMeta(arr) + `\[` + regexp.QuoteMeta(idx) + `\]`)
				body = access.ReplaceAllString(body, "item")

				text = text[:loc[0]] + header + body + "});" + rest
			}
		},
	}
}

// splitAtMatchingBrace splits text at the brace closing the block that
// was just opened, returning the body (without the closer) and the
// remainder (without the closer). A missing closer returns everything
// as body.
func splitAtMatchingBrace(text string) (body, rest string) {
	depth := 1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[:i], text[i+1:]
			}
		}
	}
	return text, ""
}

// concatToTemplate converts string-literal concatenation chains into
// template literals, iterating until the chain is fully absorbed.
func concatToTemplate() Rule {
	return Rule{
		Name: "concat-to-template",
		Apply: func(text string) string {
			for range 10 {
				before := text
				for _, re := range jsConcatSeed {
					text = re.ReplaceAllString(text, "`${1}$${${2}}`")
				}
				text = jsConcatGrow[0].ReplaceAllString(text, "`${1}${2}`")
				text = jsConcatGrow[1].ReplaceAllString(text, "`${1}${2}`")
				text = jsConcatGrow[2].ReplaceAllString(text, "`${1}$${${2}}`")
				if text == before {
					break
				}
			}
			return text
		},
	}
}

func requireToImport() Rule {
	destructured := regexp.MustCompile(`(?m)^([ \t]*)(?:const|var|let)\s+\{([^}]+)\}\s*=\s*require\(\s*(['"][^'"]+['"])\s*\)\s*;?`)
	plain := regexp.MustCompile(`(?m)^([ \t]*)(?:const|var|let)\s+([A-Za-z_$][\w$]*)\s*=\s*require\(\s*(['"][^'"]+['"])\s*\)\s*;?`)
	return Rule{
		Name: "require-to-import",
		Apply: func(text string) string {
			text = destructured.ReplaceAllString(text, "${1}import {${2}} from ${3};")
			return plain.ReplaceAllString(text, "${1}import ${2} from ${3};")
		},
	}
}

func moduleExportsToExport() Rule {
	property := regexp.MustCompile(`(?m)^([ \t]*)module\.exports\.([A-Za-z_$][\w$]*)\s*=\s*`)
	whole := regexp.MustCompile(`(?m)^([ \t]*)module\.exports\s*=\s*`)
	return Rule{
		Name: "module-exports-to-export",
		Apply: func(text string) string {
			text = property.ReplaceAllString(text, "${1}export const ${2} = ")
			return whole.ReplaceAllString(text, "${1}export default ")
		},
	}
}

// objectShorthand collapses {name: name} properties. Index-based so a
// property's trailing comma is left in place for the next match.
func objectShorthand() Rule {
	return Rule{
		Name: "object-shorthand",
		Apply: func(text string) string {
			locs := jsShorthand.FindAllStringSubmatchIndex(text, -1)
			if locs == nil {
				return text
			}
			var b strings.Builder
			last := 0
			for _, loc := range locs {
				key := text[loc[4]:loc[5]]
				value := text[loc[6]:loc[7]]
				next := nextNonSpace(text, loc[1])
				if key != value || (next != ',' && next != '}') {
					continue
				}
				b.WriteString(text[last:loc[0]])
				b.WriteString(text[loc[2]:loc[3]]) // leading "{ " or ", "
				b.WriteString(key)
				last = loc[1]
			}
			b.WriteString(text[last:])
			return b.String()
		},
	}
}

func nextNonSpace(text string, i int) byte {
	for ; i < len(text); i++ {
		if text[i] != ' ' && text[i] != '\t' && text[i] != '\n' {
			return text[i]
		}
	}
	return 0
}

// optionalChaining rewrites "x && x." guards into "x?.".
func optionalChaining() Rule {
	return Rule{
		Name: "optional-chaining",
		Apply: func(text string) string {
			return jsAndChain.ReplaceAllStringFunc(text, func(match string) string {
				m := jsAndChain.FindStringSubmatch(match)
				if m[1] != m[2] {
					return match
				}
				return m[1] + "?."
			})
		},
	}
}

// jsdocHeaders inserts a minimal JSDoc line above undocumented
// top-level arrow definitions.
func jsdocHeaders() Rule {
	return Rule{
		Name: "jsdoc-headers",
		Apply: func(text string) string {
			lines := strings.Split(text, "\n")
			var out []string
			for _, line := range lines {
				if m := jsArrowDef.FindStringSubmatch(line); m != nil && !isDocumented(out) {
					indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
					out = append(out, indent+"/** "+m[1]+" */")
				}
				out = append(out, line)
			}
			return strings.Join(out, "\n")
		},
	}
}

// isDocumented reports whether the previous non-empty line already
// carries a comment.
func isDocumented(lines []string) bool {
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		return strings.HasSuffix(trimmed, "*/") || strings.HasPrefix(trimmed, "//")
	}
	return false
}

package rules

import (
	"regexp"
	"strings"
)

// javaTable applies the Java modernizations: enhanced-for, var
// declarations, stream pipelines, Javadoc and @Override insertion.
// The filter-loop rule runs before var insertion so the collection
// declaration it consumes is still in explicit-type form.
func javaTable() Table {
	return Table{Rules: []Rule{
		filterLoopToStream(),
		indexLoopToEnhancedFor(),
		explicitNewToVar(),
		javadocHeaders(),
		overrideAnnotations(),
	}}
}

var (
	javaFilterLoop = regexp.MustCompile(`(?m)^([ \t]*)List<(\w+)>\s+(\w+)\s*=\s*new\s+ArrayList<>\(\)\s*;\n[ \t]*for\s*\(\s*(\w+)\s+(\w+)\s*:\s*(\w+)\s*\)\s*\{\n[ \t]*if\s*\(([^\n]+)\)\s*\{\n[ \t]*(\w+)\.add\(\s*(\w+)\s*\)\s*;\n[ \t]*\}\n[ \t]*\}`)
	javaIndexLoop  = regexp.MustCompile(`for\s*\(\s*int\s+(\w+)\s*=\s*0\s*;\s*(\w+)\s*<\s*(\w+)\.size\(\)\s*;\s*(\w+)\+\+\s*\)\s*\{`)
	javaNewDecl    = regexp.MustCompile(`(?m)^([ \t]*)([A-Z]\w*(?:<[^<>\n]*>)?)\s+(\w+)\s*=\s*new\s+`)
	javaMethodDef  = regexp.MustCompile(`^[ \t]*(?:public|protected|private)[ \t][^=;\n]*\([^)]*\)[ \t]*\{`)
	javaOverride   = regexp.MustCompile(`^([ \t]*)public\s+(?:String\s+toString|boolean\s+equals|int\s+hashCode)\s*\(`)
)

// filterLoopToStream collapses the accumulate-with-filter loop into a
// stream().filter().collect() pipeline.
func filterLoopToStream() Rule {
	return Rule{
		Name: "filter-loop-to-stream",
		Apply: func(text string) string {
			return javaFilterLoop.ReplaceAllStringFunc(text, func(match string) string {
				m := javaFilterLoop.FindStringSubmatch(match)
				indent, elemType, result := m[1], m[2], m[3]
				loopType, loopVar, source := m[4], m[5], m[6]
				cond, addTarget, added := m[7], m[8], m[9]
				if loopType != elemType || addTarget != result || added != loopVar {
					return match
				}
				return indent + "List<" + elemType + "> " + result + " = " + source +
					".stream().filter(" + loopVar + " -> " + cond + ").collect(Collectors.toList());"
			})
		},
	}
}

// indexLoopToEnhancedFor rewrites counted list loops, renaming get(i)
// calls to the element.
func indexLoopToEnhancedFor() Rule {
	return Rule{
		Name: "index-loop-to-enhanced-for",
		Apply: func(text string) string {
			for {
				loc := javaIndexLoop.FindStringSubmatchIndex(text)
				if loc == nil {
					return text
				}
				idx := text[loc[2]:loc[3]]
				cond := text[loc[4]:loc[5]]
				list := text[loc[6]:loc[7]]
				incr := text[loc[8]:loc[9]]
				if idx != cond || idx != incr {
					return text
				}

				header := "for (var item : " + list + ") {"
				body, after := splitAtMatchingBrace(text[loc[1]:])
				access := regexp.MustCompile(regexp.QuoteMeta(list) + `\.get\(` + regexp.QuoteMeta(idx) + `\)`)
				body = access.ReplaceAllString(body, "item")

				text = text[:loc[0]] + header + body + "}" + after
			}
		},
	}
}

// explicitNewToVar replaces an explicit left-hand type with var when
// the right-hand new expression restates it.
func explicitNewToVar() Rule {
	return Rule{
		Name: "explicit-new-to-var",
		Apply: func(text string) string {
			return javaNewDecl.ReplaceAllStringFunc(text, func(match string) string {
				m := javaNewDecl.FindStringSubmatch(match)
				if m[2] == "List" || strings.HasPrefix(m[2], "List<") {
					// Interface-typed declarations keep their type;
					// var would narrow them to the implementation.
					return match
				}
				return m[1] + "var " + m[3] + " = new "
			})
		},
	}
}

// javadocHeaders inserts a minimal Javadoc line above undocumented
// method definitions.
func javadocHeaders() Rule {
	methodName := regexp.MustCompile(`(\w+)\s*\(`)
	return Rule{
		Name: "javadoc-headers",
		Apply: func(text string) string {
			lines := strings.Split(text, "\n")
			var out []string
			for _, line := range lines {
				if javaMethodDef.MatchString(line) && !isDocumented(out) && !precededByAnnotation(out) && !strings.Contains(line, "class ") {
					indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
					name := ""
					if m := methodName.FindStringSubmatch(line); m != nil {
						name = m[1]
					}
					out = append(out, indent+"/** "+name+". */")
				}
				out = append(out, line)
			}
			return strings.Join(out, "\n")
		},
	}
}

// overrideAnnotations adds @Override above the well-known Object
// overrides when missing.
func overrideAnnotations() Rule {
	return Rule{
		Name: "override-annotations",
		Apply: func(text string) string {
			lines := strings.Split(text, "\n")
			var out []string
			for _, line := range lines {
				if m := javaOverride.FindStringSubmatch(line); m != nil && !precededByOverride(out) {
					out = append(out, m[1]+"@Override")
				}
				out = append(out, line)
			}
			return strings.Join(out, "\n")
		},
	}
}

func precededByAnnotation(lines []string) bool {
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, "@")
	}
	return false
}

func precededByOverride(lines []string) bool {
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, "@Override")
	}
	return false
}

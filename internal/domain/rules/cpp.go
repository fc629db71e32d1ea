package rules

import "regexp"

// cppTable covers C and C++. The NULL rule runs first so later rules
// (smart pointers, range-for) see modern spellings.
func cppTable() Table {
	return Table{Rules: []Rule{
		nullToNullptr(),
		templateTypeToAuto(),
		indexLoopToRangeFor(),
		newToMakeUnique(),
		bareCatchLogging(),
	}}
}

var (
	cppNull       = regexp.MustCompile(`\bNULL\b`)
	cppTemplDecl  = regexp.MustCompile(`(?m)^([ \t]*)(?:std::)?[A-Za-z_][\w:]*<[^<>\n]+>(?:::[A-Za-z_]\w*)+\s+([A-Za-z_]\w*)\s*=`)
	cppIndexLoop  = regexp.MustCompile(`for\s*\(\s*(?:int|size_t|std::size_t|auto)\s+([A-Za-z_]\w*)\s*=\s*0\s*;\s*([A-Za-z_]\w*)\s*<\s*([A-Za-z_]\w*)\.size\(\)\s*;\s*(?:\+\+([A-Za-z_]\w*)|([A-Za-z_]\w*)\+\+)\s*\)\s*\{`)
	cppNewDecl    = regexp.MustCompile(`(?m)^([ \t]*)([A-Za-z_][\w:]*)\s*\*\s*([A-Za-z_]\w*)\s*=\s*new\s+([A-Za-z_][\w:]*)\s*\(([^;\n]*)\)\s*;`)
	cppEmptyCatch = regexp.MustCompile(`catch\s*\(\s*\.\.\.\s*\)\s*\{\s*\}`)
)

func nullToNullptr() Rule {
	return Rule{
		Name: "null-to-nullptr",
		Apply: func(text string) string {
			return cppNull.ReplaceAllString(text, "nullptr")
		},
	}
}

// templateTypeToAuto replaces spelled-out nested template types (the
// iterator declarations above all) with auto when an initializer makes
// the type deducible.
func templateTypeToAuto() Rule {
	return sub("template-type-to-auto",
		cppTemplDecl.String(),
		"${1}auto ${2} =")
}

// indexLoopToRangeFor rewrites counted loops over container.size()
// into range-based for, renaming indexed accesses to the element.
func indexLoopToRangeFor() Rule {
	return Rule{
		Name: "index-loop-to-range-for",
		Apply: func(text string) string {
			for {
				loc := cppIndexLoop.FindStringSubmatchIndex(text)
				if loc == nil {
					return text
				}
				get := func(n int) string {
					if loc[2*n] < 0 {
						return ""
					}
					return text[loc[2*n]:loc[2*n+1]]
				}
				idx, cond, container := get(1), get(2), get(3)
				incr := get(4)
				if incr == "" {
					incr = get(5)
				}
				if idx != cond || idx != incr {
					return text
				}

				header := "for (const auto& item : " + container + ") {"
				rest := text[loc[1]:]
				access := regexp.MustCompile(regexp.QuoteMeta(container) + `\[` + regexp.QuoteMeta(idx) + `\]`)
				body, after := splitAtMatchingBrace(rest)
				body = access.ReplaceAllString(body, "item")

				text = text[:loc[0]] + header + body + "}" + after
			}
		},
	}
}

// newToMakeUnique converts raw owning new into a make_unique factory
// call. Only simple "T* p = new T(...)" declarations qualify.
func newToMakeUnique() Rule {
	return Rule{
		Name: "new-to-make-unique",
		Apply: func(text string) string {
			return cppNewDecl.ReplaceAllStringFunc(text, func(match string) string {
				m := cppNewDecl.FindStringSubmatch(match)
				declared, constructed := m[2], m[4]
				if declared != constructed {
					return match
				}
				return m[1] + "auto " + m[3] + " = std::make_unique<" + constructed + ">(" + m[5] + ");"
			})
		},
	}
}

// bareCatchLogging gives silent catch-alls a logging body so failures
// stop disappearing.
func bareCatchLogging() Rule {
	return Rule{
		Name: "bare-catch-logging",
		Apply: func(text string) string {
			return cppEmptyCatch.ReplaceAllString(text,
				"catch (...) {\n    std::cerr << \"unhandled exception\\n\";\n}")
		},
	}
}

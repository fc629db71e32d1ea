package rules

import (
	"regexp"
	"strings"
)

// sqlTable formats SQL: keyword upper-casing first (so the clause and
// column rules can match on canonical spellings), then clause-level
// line breaks, then per-column breaks. Aggressive mode appends
// subquery splitting and an advisory header for join/aggregate
// queries.
func sqlTable(opts Options) Table {
	rules := []Rule{
		uppercaseKeywords(),
		clauseLineBreaks(),
		columnLineBreaks(),
	}
	if opts.AggressiveSQL {
		rules = append(rules, splitSubqueries(), adviseJoinAggregates())
	}
	return Table{Rules: rules}
}

// The fixed keyword list for upper-casing. Multi-word keywords come
// first so they win over their single-word prefixes.
var sqlKeywordRe = regexp.MustCompile(`(?i)\b(` + strings.Join([]string{
	`group\s+by`, `order\s+by`, `insert\s+into`, `left\s+join`,
	`right\s+join`, `inner\s+join`, `outer\s+join`, `full\s+join`,
	"select", "from", "where", "having", "join", "on", "as",
	"and", "or", "not", "null", "distinct", "limit", "offset",
	"union", "values", "update", "set", "delete", "case", "when",
	"then", "else", "end", "count", "sum", "avg", "min", "max",
	"like", "in", "between", "exists", "asc", "desc",
}, "|") + `)\b`)

var sqlWhitespaceRun = regexp.MustCompile(`\s+`)

// mapUnquoted applies fn to the segments of text outside single-quoted
// string literals, leaving the literals byte-identical.
func mapUnquoted(text string, fn func(string) string) string {
	var b strings.Builder
	start := 0
	inQuote := false
	for i := 0; i < len(text); i++ {
		if text[i] != '\'' {
			continue
		}
		if inQuote {
			b.WriteString(text[start : i+1])
		} else {
			b.WriteString(fn(text[start:i]))
			b.WriteByte('\'')
		}
		inQuote = !inQuote
		start = i + 1
	}
	if inQuote {
		b.WriteString(text[start:])
	} else {
		b.WriteString(fn(text[start:]))
	}
	return b.String()
}

func uppercaseKeywords() Rule {
	return Rule{
		Name: "uppercase-keywords",
		Apply: func(text string) string {
			return mapUnquoted(text, func(seg string) string {
				return sqlKeywordRe.ReplaceAllStringFunc(seg, func(kw string) string {
					return strings.ToUpper(sqlWhitespaceRun.ReplaceAllString(kw, " "))
				})
			})
		},
	}
}

var sqlClause = regexp.MustCompile(`[ \t]*\n?[ \t]*\b(FROM|WHERE|GROUP BY|HAVING|ORDER BY|LEFT JOIN|RIGHT JOIN|INNER JOIN|OUTER JOIN|FULL JOIN|JOIN|UNION|VALUES|SET)\b`)

// clauseLineBreaks puts each major clause on its own line. Runs after
// upper-casing, so only canonical keywords match. Converges: a clause
// already at line start is rewritten to the same bytes.
func clauseLineBreaks() Rule {
	return Rule{
		Name: "clause-line-breaks",
		Apply: func(text string) string {
			return mapUnquoted(text, func(seg string) string {
				return sqlClause.ReplaceAllString(seg, "\n${1}")
			})
		},
	}
}

var sqlSelectLine = regexp.MustCompile(`(?m)^([ \t]*)SELECT[ \t]+(.+)$`)

// columnLineBreaks splits the select list one column per line,
// aligning continuations under the first column.
func columnLineBreaks() Rule {
	return Rule{
		Name: "column-line-breaks",
		Apply: func(text string) string {
			return sqlSelectLine.ReplaceAllStringFunc(text, func(line string) string {
				m := sqlSelectLine.FindStringSubmatch(line)
				indent, list := m[1], m[2]
				var cols []string
				for _, col := range splitTopLevel(list, ',') {
					if trimmed := strings.TrimSpace(col); trimmed != "" {
						cols = append(cols, trimmed)
					}
				}
				// A trailing comma splits into an empty column; dropping
				// empties keeps the rule convergent.
				if len(cols) < 2 {
					return line
				}
				sep := ",\n" + indent + "       "
				return indent + "SELECT " + strings.Join(cols, sep)
			})
		},
	}
}

// splitTopLevel splits on sep outside parentheses and quotes.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\'':
			inQuote = !inQuote
		case inQuote:
		case s[i] == '(':
			depth++
		case s[i] == ')':
			depth--
		case s[i] == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

var sqlSubquery = regexp.MustCompile(`\([ \t]*SELECT\b`)

func splitSubqueries() Rule {
	return Rule{
		Name: "split-subqueries",
		Apply: func(text string) string {
			return mapUnquoted(text, func(seg string) string {
				return sqlSubquery.ReplaceAllString(seg, "(\n    SELECT")
			})
		},
	}
}

var sqlJoinOrAggregate = regexp.MustCompile(`\b(JOIN|COUNT\(|SUM\(|AVG\(|MIN\(|MAX\()`)

const sqlAdvisory = "-- Review: query uses joins or aggregations; verify supporting indexes.\n"

// adviseJoinAggregates prepends an advisory comment once when the
// query joins or aggregates.
func adviseJoinAggregates() Rule {
	return Rule{
		Name: "advise-join-aggregates",
		Apply: func(text string) string {
			if !sqlJoinOrAggregate.MatchString(text) || strings.HasPrefix(text, "--") {
				return text
			}
			return sqlAdvisory + text
		},
	}
}

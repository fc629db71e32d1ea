// Package rules holds the per-language refactoring tables and the
// engine that applies them. Every table is an ordered sequence of
// text-substitution rules; rule N+1 always consumes rule N's output,
// never the original text. The ordering is a contract: several rules
// are written to operate on the output of earlier ones (var-to-const
// runs before the template-literal rule, for example).
//
// Everything here is pure string-to-string transformation. No parsing,
// no I/O, no state, and no rule ever fails: a pattern that does not
// match is a no-op.
package rules

import "regexp"

// Rule is one named transformation step within a table.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Table is the ordered rule sequence for one language.
type Table struct {
	Rules []Rule
}

// Run applies the table in order, threading each rule's output into
// the next.
func (t Table) Run(text string) string {
	for _, r := range t.Rules {
		text = r.Apply(text)
	}
	return text
}

// sub builds a rule from a regexp and a replacement template.
func sub(name, pattern, replacement string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: name,
		Apply: func(text string) string {
			return re.ReplaceAllString(text, replacement)
		},
	}
}

// subFunc builds a rule from a regexp and a per-match replacement
// function.
func subFunc(name, pattern string, fn func(match string) string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: name,
		Apply: func(text string) string {
			return re.ReplaceAllStringFunc(text, fn)
		},
	}
}

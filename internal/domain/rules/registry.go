package rules

import "github.com/codelens/codelens/internal/domain"

// Options tune optional behavior of individual tables. The zero value
// is the default mode.
type Options struct {
	// AggressiveSQL enables subquery splitting and advisory comment
	// insertion for join- and aggregate-heavy SQL.
	AggressiveSQL bool
}

// tables is the immutable language-to-table registry. Built once at
// init; never mutated. LangGeneric is the mandatory default entry.
var tables = map[domain.Language]Table{
	domain.LangJavaScript: javascriptTable(),
	domain.LangPython:     pythonTable(),
	domain.LangCPP:        cppTable(),
	domain.LangJava:       javaTable(),
	domain.LangSQL:        sqlTable(Options{}),
	domain.LangGeneric:    genericTable(),
}

// Refactor runs the rule table registered for the language over the
// text. Pure and total: unknown languages route to the generic
// formatter, and no input can make it fail.
func Refactor(text string, lang domain.Language) string {
	return RefactorWithOptions(text, lang, Options{})
}

// SupportedLanguages returns the languages with a dedicated rule
// table, in display order. The generic fallback is not included.
func SupportedLanguages() []domain.Language {
	return []domain.Language{
		domain.LangJavaScript,
		domain.LangPython,
		domain.LangCPP,
		domain.LangJava,
		domain.LangSQL,
	}
}

// RuleNames returns the rule names of a language's table in
// application order.
func RuleNames(lang domain.Language) []string {
	table, ok := tables[lang]
	if !ok {
		table = tables[domain.LangGeneric]
	}
	names := make([]string, len(table.Rules))
	for i, r := range table.Rules {
		names[i] = r.Name
	}
	return names
}

// RefactorWithOptions is Refactor with table tuning applied.
func RefactorWithOptions(text string, lang domain.Language, opts Options) string {
	if lang == domain.LangPython {
		// Notebook inputs take a structural path instead of the flat
		// rule table.
		if out, ok := refactorNotebook(text); ok {
			return out
		}
	}
	if lang == domain.LangSQL && opts.AggressiveSQL {
		return sqlTable(opts).Run(text)
	}
	table, ok := tables[lang]
	if !ok {
		table = tables[domain.LangGeneric]
	}
	return table.Run(text)
}

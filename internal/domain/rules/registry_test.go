package rules_test

import (
	"testing"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedLanguages(t *testing.T) {
	langs := rules.SupportedLanguages()
	require.Len(t, langs, 5)
	assert.Contains(t, langs, domain.LangJavaScript)
	assert.Contains(t, langs, domain.LangSQL)
	assert.NotContains(t, langs, domain.LangGeneric)
}

func TestRuleNames_OrderIsStable(t *testing.T) {
	names := rules.RuleNames(domain.LangJavaScript)
	require.NotEmpty(t, names)
	assert.Equal(t, "var-to-const-let", names[0])

	// Unknown languages report the generic table.
	assert.Equal(t, rules.RuleNames(domain.LangGeneric), rules.RuleNames("brainfuck"))
}

func TestRefactor_EmptyInput(t *testing.T) {
	for _, lang := range rules.SupportedLanguages() {
		assert.Equal(t, "", rules.Refactor("", lang), "lang %s", lang)
	}
	assert.Equal(t, "", rules.Refactor("", domain.LangGeneric))
}

func TestRefactor_UnknownLanguageRoutesToGeneric(t *testing.T) {
	in := "a\n\n\n\nb\n"
	assert.Equal(t,
		rules.Refactor(in, domain.LangGeneric),
		rules.Refactor(in, domain.Language("fortran")))
}

package rules_test

import (
	"strings"
	"testing"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountImprovements_JS(t *testing.T) {
	before := "var a = 1;\nvar b = 2;\nfunction f() { return a; }\nconsole.log(b);\n"
	after := rules.Refactor(before, domain.LangJavaScript)

	count, improvements := rules.CountImprovements(before, after, domain.LangJavaScript)
	assert.GreaterOrEqual(t, count, 3)
	require.NotEmpty(t, improvements)

	joined := strings.Join(improvements, "\n")
	assert.Contains(t, joined, "var declarations")
}

func TestCountImprovements_NoChange(t *testing.T) {
	text := "const a = 1;\n"
	count, improvements := rules.CountImprovements(text, text, domain.LangJavaScript)
	assert.Equal(t, 0, count)
	assert.Empty(t, improvements)
}

func TestCountImprovements_FloorOnSubstantialChange(t *testing.T) {
	// No checklist pattern moves, but the text visibly changed: the
	// count floors at 3 with a generic description.
	before := "some text\n"
	after := before + strings.Repeat("rewritten content pads the diff\n", 5)

	count, improvements := rules.CountImprovements(before, after, domain.LangGeneric)
	assert.Equal(t, 3, count)
	require.Len(t, improvements, 1)
	assert.Contains(t, improvements[0], "formatting and style")
}

func TestCountImprovements_SmallChangeNotFloored(t *testing.T) {
	count, _ := rules.CountImprovements("a = 1\n", "a  =  1\n", domain.LangGeneric)
	assert.Equal(t, 0, count)
}

func TestCountImprovements_ResolvedTaskMarkers(t *testing.T) {
	before := "// TODO clean this up\nwork();\n"
	after := "work();\n"

	count, improvements := rules.CountImprovements(before, after, domain.LangJavaScript)
	assert.GreaterOrEqual(t, count, 1)
	assert.Contains(t, strings.Join(improvements, "\n"), "task markers")
}

func TestCountImprovements_Python(t *testing.T) {
	before := "for i in range(len(xs)):\n    print(xs[i])\nok = done == True\n"
	after := rules.Refactor(before, domain.LangPython)

	count, improvements := rules.CountImprovements(before, after, domain.LangPython)
	assert.GreaterOrEqual(t, count, 2)
	assert.NotEmpty(t, improvements)
}

func TestCountImprovements_WeightedChecks(t *testing.T) {
	// make_unique carries weight 2 per occurrence.
	before := "Widget* w = new Widget();\n"
	after := rules.Refactor(before, domain.LangCPP)

	count, _ := rules.CountImprovements(before, after, domain.LangCPP)
	assert.GreaterOrEqual(t, count, 2)
}

package domain_test

import (
	"testing"

	"github.com/codelens/codelens/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		id   string
		want domain.Language
	}{
		{"javascript", domain.LangJavaScript},
		{"ts", domain.LangJavaScript},
		{"TSX", domain.LangJavaScript},
		{"python", domain.LangPython},
		{"ipynb", domain.LangPython},
		{"c++", domain.LangCPP},
		{"hpp", domain.LangCPP},
		{"java", domain.LangJava},
		{"sql", domain.LangSQL},
		{"cobol", domain.LangGeneric},
		{"", domain.LangGeneric},
		{"  Python ", domain.LangPython},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizeLanguage(tt.id), "id %q", tt.id)
	}
}

func TestLanguageIDFromFilename(t *testing.T) {
	assert.Equal(t, "python", domain.LanguageIDFromFilename("script.py"))
	assert.Equal(t, "ipynb", domain.LanguageIDFromFilename("notebook.ipynb"))
	assert.Equal(t, "typescript", domain.LanguageIDFromFilename("app.ts"))
	assert.Equal(t, "go", domain.LanguageIDFromFilename("main.go"))
	assert.Equal(t, "text", domain.LanguageIDFromFilename("LICENSE"))
	assert.Equal(t, "text", domain.LanguageIDFromFilename("data.csv"))
}

func TestLanguageFromFilename(t *testing.T) {
	assert.Equal(t, domain.LangJavaScript, domain.LanguageFromFilename("app.jsx"))
	assert.Equal(t, domain.LangPython, domain.LanguageFromFilename("notebook.ipynb"))
	assert.Equal(t, domain.LangCPP, domain.LanguageFromFilename("util.cc"))
	// Recognized extension without a dedicated table routes to generic.
	assert.Equal(t, domain.LangGeneric, domain.LanguageFromFilename("main.go"))
	assert.Equal(t, domain.LangGeneric, domain.LanguageFromFilename("unknown.zzz"))
}

func TestNewSourceUnit(t *testing.T) {
	unit := domain.NewSourceUnit("print('hi')", "py")
	assert.Equal(t, domain.LangPython, unit.Language)
	assert.Equal(t, "print('hi')", unit.Text)
}

func TestIsAnalyzableFile(t *testing.T) {
	assert.True(t, domain.IsAnalyzableFile("app.js"))
	assert.True(t, domain.IsAnalyzableFile("query.SQL"))
	assert.False(t, domain.IsAnalyzableFile("binary.exe"))
	assert.False(t, domain.IsAnalyzableFile("Makefile"))
}

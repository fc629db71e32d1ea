package rules_test

import (
	"testing"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
	"github.com/stretchr/testify/assert"
)

func refactorCPP(text string) string {
	return rules.Refactor(text, domain.LangCPP)
}

func TestCPP_NullToNullptr(t *testing.T) {
	out := refactorCPP("int* p = NULL;\nif (q == NULL) return;\n")
	assert.NotContains(t, out, "NULL")
	assert.Contains(t, out, "int* p = nullptr;")
	assert.Contains(t, out, "q == nullptr")
}

func TestCPP_TemplateTypeToAuto(t *testing.T) {
	out := refactorCPP("std::vector<int>::iterator it = v.begin();\n")
	assert.Contains(t, out, "auto it = v.begin();")
}

func TestCPP_IndexLoopToRangeFor(t *testing.T) {
	in := "for (int i = 0; i < vec.size(); ++i) {\n    sum += vec[i];\n}\n"
	out := refactorCPP(in)

	assert.Contains(t, out, "for (const auto& item : vec) {")
	assert.Contains(t, out, "sum += item;")
	assert.NotContains(t, out, "vec[i]")
}

func TestCPP_IndexLoopPostfixIncrement(t *testing.T) {
	in := "for (size_t i = 0; i < vec.size(); i++) {\n    use(vec[i]);\n}\n"
	out := refactorCPP(in)
	assert.Contains(t, out, "for (const auto& item : vec) {")
}

func TestCPP_NewToMakeUnique(t *testing.T) {
	out := refactorCPP("Widget* w = new Widget(1, 2);\n")
	assert.Contains(t, out, "auto w = std::make_unique<Widget>(1, 2);")
}

func TestCPP_NewMismatchedTypeUntouched(t *testing.T) {
	out := refactorCPP("Base* b = new Derived();\n")
	assert.Contains(t, out, "Base* b = new Derived();")
}

func TestCPP_BareCatchGetsLogging(t *testing.T) {
	out := refactorCPP("try { run(); } catch (...) {}\n")
	assert.Contains(t, out, "unhandled exception")
	assert.NotContains(t, out, "catch (...) {}")
}

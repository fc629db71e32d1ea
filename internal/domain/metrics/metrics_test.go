package metrics_test

import (
	"strings"
	"testing"

	"github.com/codelens/codelens/internal/domain/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_TinyFileBaseline(t *testing.T) {
	m := metrics.Compute("const x = 1;\nconsole.log(x);\n")

	assert.Equal(t, 85.0, m.LineLength)
	assert.Equal(t, 85.0, m.CommentRatio)
	assert.Equal(t, 85.0, m.Complexity)
	assert.Equal(t, 85.0, m.Consistency)
	assert.Equal(t, 85.0, m.BestPractices)
	assert.Equal(t, 100.0, m.Security)
}

func TestCompute_TinyFileStillScansSecurity(t *testing.T) {
	// A dangerous call is dangerous at any file size.
	m := metrics.Compute("eval(userInput);\n")

	assert.Equal(t, 85.0, m.Complexity)
	assert.Equal(t, 85.0, m.BestPractices)
	assert.Less(t, m.Security, 100.0)
}

func TestCompute_Bounds(t *testing.T) {
	inputs := []string{
		"",
		"x",
		strings.Repeat("eval(a); eval(b); eval(c);\n", 20),
		strings.Repeat("if (a) { if (b) { if (c) { } } }\n", 40),
		strings.Repeat("let a = 1;\n", 50),
	}
	for _, text := range inputs {
		m := metrics.Compute(text)
		for name, v := range map[string]float64{
			"line_length":    m.LineLength,
			"comment_ratio":  m.CommentRatio,
			"complexity":     m.Complexity,
			"security":       m.Security,
			"consistency":    m.Consistency,
			"best_practices": m.BestPractices,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s for %q", name, text[:min(len(text), 20)])
			assert.LessOrEqual(t, v, 100.0, "%s for %q", name, text[:min(len(text), 20)])
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	text := strings.Repeat("function f(a_b, cD) { if (a_b) { return cD; } }\n", 15)
	first := metrics.Compute(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, metrics.Compute(text))
	}
}

func TestLineLength_PenalizesLongLines(t *testing.T) {
	short := strings.Repeat("let a = 1;\n", 12)
	long := strings.Repeat("let averageLine = someFunction(withArguments, andMore) + trailingExpression * factor;\n", 12)

	mShort := metrics.Compute(short)
	mLong := metrics.Compute(long)
	assert.Greater(t, mShort.LineLength, mLong.LineLength)
	assert.Equal(t, 100.0, mShort.LineLength)
}

func TestCommentRatio_RewardsComments(t *testing.T) {
	bare := strings.Repeat("doWork();\n", 12)
	commented := strings.Repeat("// explains the step\ndoWork();\n", 6)

	assert.Greater(t, metrics.Compute(commented).CommentRatio, metrics.Compute(bare).CommentRatio)
}

func TestCommentRatio_TracksBlockComments(t *testing.T) {
	text := "/*\n * long explanation\n * spanning lines\n */\n" + strings.Repeat("doWork();\n", 10)
	m := metrics.Compute(text)
	assert.Greater(t, m.CommentRatio, 0.0)
}

func TestComplexity_PenalizesBranchDensity(t *testing.T) {
	flat := strings.Repeat("total = total + 1\n", 15)
	branchy := strings.Repeat("if a:\n    if b:\n        while c:\n            pass\n", 8)

	assert.Greater(t, metrics.Compute(flat).Complexity, metrics.Compute(branchy).Complexity)
}

func TestSecurity_DeductsPerOccurrence(t *testing.T) {
	pad := strings.Repeat("ok = 1\n", 12)
	one := metrics.Compute(pad + "eval(x)\n")
	two := metrics.Compute(pad + "eval(x)\neval(y)\n")

	assert.Greater(t, one.Security, two.Security)
}

func TestSecurity_HardcodedCredentials(t *testing.T) {
	pad := strings.Repeat("ok = 1\n", 12)
	m := metrics.Compute(pad + `password = "hunter2"` + "\n")
	assert.LessOrEqual(t, m.Security, 80.0)
}

func TestSecurity_SanitizationBonus(t *testing.T) {
	pad := strings.Repeat("ok = 1\n", 12)
	plain := metrics.Compute(pad + "eval(x)\n")
	sanitized := metrics.Compute(pad + "eval(x)\nsanitizeInput(x)\n")

	assert.Greater(t, sanitized.Security, plain.Security)
}

func TestConsistency_MixedQuotes(t *testing.T) {
	clean := strings.Repeat(`say("hello")`+"\n", 12)
	mixed := strings.Repeat(`say("hello")`+"\n"+`say('world')`+"\n", 6)

	assert.Greater(t, metrics.Compute(clean).Consistency, metrics.Compute(mixed).Consistency)
}

func TestConsistency_MixedIndentation(t *testing.T) {
	spaces := strings.Repeat("top()\n  nested()\n", 8)
	mixed := strings.Repeat("top()\n  nested()\n\tother()\n", 6)

	assert.Greater(t, metrics.Compute(spaces).Consistency, metrics.Compute(mixed).Consistency)
}

func TestConsistency_MixedNaming(t *testing.T) {
	camel := strings.Repeat("userName = firstName + lastName\n", 12)
	mixed := strings.Repeat("userName = first_name + lastName + last_name\n", 12)

	mCamel := metrics.Compute(camel)
	mMixed := metrics.Compute(mixed)
	require.Greater(t, mCamel.Consistency, mMixed.Consistency)
}

func TestBestPractices_LegacyIdioms(t *testing.T) {
	clean := strings.Repeat("const a = 1;\n", 12)
	legacy := strings.Repeat("var a = 1; // TODO fix\nconsole.log(a);\n", 6)

	assert.Greater(t, metrics.Compute(clean).BestPractices, metrics.Compute(legacy).BestPractices)
}

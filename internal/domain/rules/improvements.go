package rules

import (
	"fmt"
	"regexp"

	"github.com/codelens/codelens/internal/domain"
)

// Improvement counting. The count badges the refactor's magnitude in
// the UI. It is derived from before/after pattern deltas on a fixed
// checklist, not from the number of rules that fired: a rule that
// matched nothing contributes nothing, a rule that rewrote five var
// declarations contributes five.

// improvementCheck is one entry of the delta checklist. A positive
// delta in the checked direction earns weight points per occurrence.
type improvementCheck struct {
	re       *regexp.Regexp
	removed  bool // count disappearances instead of appearances
	weight   int
	describe string
}

var commonChecks = []improvementCheck{
	{regexp.MustCompile(`\b(TODO|FIXME)\b`), true, 1, "Resolved %d task markers"},
}

var improvementChecks = map[domain.Language][]improvementCheck{
	domain.LangJavaScript: {
		{regexp.MustCompile(`\bvar\s`), true, 1, "Replaced %d var declarations with const/let"},
		{regexp.MustCompile(`\bfunction\b`), true, 1, "Converted %d function declarations to arrow functions"},
		{regexp.MustCompile(`console\.log\s*\(`), true, 1, "Removed %d console.log statements"},
		{regexp.MustCompile(`\brequire\s*\(`), true, 1, "Converted %d require calls to ES imports"},
		{regexp.MustCompile(`(?m)^[ \t]*import\s`), false, 1, "Added %d import statements"},
		{regexp.MustCompile(`\.forEach\(`), false, 1, "Converted %d index loops to forEach"},
		{regexp.MustCompile(`\?\.`), false, 1, "Inserted %d optional chains"},
		{regexp.MustCompile(`['"][^'"\n]*['"]\s*\+`), true, 1, "Converted %d string concatenations to template literals"},
	},
	domain.LangPython: {
		{regexp.MustCompile(`%[sdf]['"]?\s*%`), true, 1, "Converted %d %%-format strings to f-strings"},
		{regexp.MustCompile(`range\(len\(`), true, 1, "Replaced %d range(len()) loops with enumerate"},
		{regexp.MustCompile(`==\s*(True|False)\b`), true, 1, "Simplified %d boolean comparisons"},
		{regexp.MustCompile(`\[[^\[\]\n]+ for [^\[\]\n]+\]`), false, 2, "Introduced %d list comprehensions"},
		{regexp.MustCompile(`\bwith open\(`), false, 2, "Converted %d open/close pairs to context managers"},
		{regexp.MustCompile(`(?m)^[ \t]*"""\w+\."""$`), false, 1, "Added %d docstrings"},
	},
	domain.LangCPP: {
		{regexp.MustCompile(`\bNULL\b`), true, 1, "Replaced %d NULL literals with nullptr"},
		{regexp.MustCompile(`std::make_unique<`), false, 2, "Converted %d raw new calls to make_unique"},
		{regexp.MustCompile(`for \(const auto& item :`), false, 1, "Converted %d index loops to range-based for"},
		{regexp.MustCompile(`\bauto\b`), false, 1, "Introduced %d auto declarations"},
	},
	domain.LangJava: {
		{regexp.MustCompile(`for \(var item :`), false, 1, "Converted %d index loops to enhanced for"},
		{regexp.MustCompile(`\.stream\(\)`), false, 2, "Converted %d filter loops to stream pipelines"},
		{regexp.MustCompile(`(?m)^[ \t]*@Override$`), false, 1, "Added %d @Override annotations"},
		{regexp.MustCompile(`\bvar\s+\w+\s*=\s*new\b`), false, 1, "Replaced %d explicit types with var"},
	},
	domain.LangSQL: {
		{regexp.MustCompile(`\bSELECT\b`), false, 1, "Upper-cased and formatted %d statements"},
		{regexp.MustCompile(`(?m)^FROM\b`), false, 1, "Split %d clauses onto their own lines"},
	},
}

// substantialChange is the length delta beyond which a refactor is
// visibly different even when no checklist pattern moved.
const substantialChange = 100

const improvementFloor = 3

const genericImprovement = "Applied formatting and style improvements"

// CountImprovements diffs structural markers between the original and
// refactored text. If the computed count is below the floor but the
// texts differ substantially, the count is floored at 3 with a generic
// description: visibly changed code is never reported as "0
// improvements".
func CountImprovements(before, after string, lang domain.Language) (int, []string) {
	count := 0
	var descriptions []string

	checks := append(improvementChecks[lang], commonChecks...)
	for _, c := range checks {
		delta := len(c.re.FindAllString(before, -1)) - len(c.re.FindAllString(after, -1))
		if !c.removed {
			delta = -delta
		}
		if delta <= 0 {
			continue
		}
		count += delta * c.weight
		descriptions = append(descriptions, fmt.Sprintf(c.describe, delta))
	}

	lenDelta := len(after) - len(before)
	if lenDelta < 0 {
		lenDelta = -lenDelta
	}
	if count < improvementFloor && lenDelta > substantialChange {
		count = improvementFloor
		descriptions = append(descriptions, genericImprovement)
	}

	return count, descriptions
}

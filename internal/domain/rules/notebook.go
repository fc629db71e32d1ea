package rules

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Notebook handling. Python input that parses as JSON with a
// top-level cells array takes this structural path: long code cells
// are split at blank-line boundaries, literals repeated across cells
// are hoisted into a constants cell, and duplicated line blocks are
// extracted into a helper-function cell. The output is always valid
// JSON with the same or a greater number of cells.

const (
	maxCellLines     = 30
	constantMinUses  = 3
	helperBlockLines = 3
)

type notebookCell map[string]any

// refactorNotebook attempts the notebook path. Returns ok=false when
// the text is not notebook-shaped (not JSON, no cells array, or no
// code cell), in which case the caller falls through to the flat
// table. Malformed JSON never produces an error: the caller keeps the
// original text.
func refactorNotebook(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return "", false
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		// Notebook-shaped but malformed: hand the text back untouched
		// rather than letting the flat rules corrupt half-parsed JSON.
		if strings.Contains(trimmed, `"cells"`) {
			return text, true
		}
		return "", false
	}
	rawCells, ok := doc["cells"]
	if !ok {
		return "", false
	}
	var cells []notebookCell
	if err := json.Unmarshal(rawCells, &cells); err != nil {
		return "", false
	}

	hasCode := false
	for _, c := range cells {
		if cellType(c) == "code" {
			hasCode = true
			break
		}
	}
	if !hasCode {
		return "", false
	}

	cells = hoistConstants(cells)
	cells = extractHelpers(cells)
	cells = splitLongCells(cells)

	updated, err := json.Marshal(cells)
	if err != nil {
		return "", false
	}
	doc["cells"] = updated

	out, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return "", false
	}
	return string(out), true
}

func cellType(c notebookCell) string {
	t, _ := c["type"].(string)
	if t == "" {
		t, _ = c["cell_type"].(string)
	}
	return t
}

// cellSource flattens a cell's source, which the notebook format
// stores as either a string or a list of line strings.
func cellSource(c notebookCell) string {
	switch src := c["source"].(type) {
	case string:
		return src
	case []any:
		var b strings.Builder
		for _, part := range src {
			if s, ok := part.(string); ok {
				b.WriteString(s)
			}
		}
		return b.String()
	}
	return ""
}

// setCellSource writes source back in list-of-lines form, the shape
// Jupyter itself writes.
func setCellSource(c notebookCell, source string) {
	lines := strings.SplitAfter(source, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	out := make([]any, len(lines))
	for i, l := range lines {
		out[i] = l
	}
	c["source"] = out
}

func newCodeCell(source string) notebookCell {
	c := notebookCell{
		"cell_type": "code",
		"metadata":  map[string]any{},
		"outputs":   []any{},
	}
	c["execution_count"] = nil
	setCellSource(c, source)
	return c
}

var notebookLiteral = regexp.MustCompile(`\b\d{2,}(?:\.\d+)?\b`)

// hoistConstants finds numeric literals used in several code cells and
// prepends a constants cell defining a name for each, rewriting the
// uses.
func hoistConstants(cells []notebookCell) []notebookCell {
	uses := map[string]int{}
	for _, c := range cells {
		if cellType(c) != "code" {
			continue
		}
		for _, lit := range notebookLiteral.FindAllString(cellSource(c), -1) {
			uses[lit]++
		}
	}

	var hoisted []string
	for lit, n := range uses {
		if n >= constantMinUses {
			hoisted = append(hoisted, lit)
		}
	}
	if len(hoisted) == 0 {
		return cells
	}
	sort.Strings(hoisted)

	var defs []string
	for _, lit := range hoisted {
		name := constantName(lit)
		defs = append(defs, fmt.Sprintf("%s = %s", name, lit))
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(lit) + `\b`)
		for _, c := range cells {
			if cellType(c) != "code" {
				continue
			}
			setCellSource(c, re.ReplaceAllString(cellSource(c), name))
		}
	}

	header := "# Constants extracted from repeated literals\n" + strings.Join(defs, "\n") + "\n"
	return append([]notebookCell{newCodeCell(header)}, cells...)
}

func constantName(lit string) string {
	return "CONST_" + strings.ReplaceAll(lit, ".", "_")
}

// extractHelpers finds identical blocks of at least three non-empty
// lines appearing in two or more code cells, moves the first such
// block into a helper-function cell, and replaces each occurrence with
// a call.
func extractHelpers(cells []notebookCell) []notebookCell {
	blocks := map[string]int{}
	for _, c := range cells {
		if cellType(c) != "code" {
			continue
		}
		for _, block := range lineBlocks(cellSource(c), helperBlockLines) {
			blocks[block]++
		}
	}

	var duplicated string
	for block, n := range blocks {
		if n >= 2 && len(block) > len(duplicated) {
			duplicated = block
		}
	}
	if duplicated == "" {
		return cells
	}

	const helperName = "extracted_helper"
	var b strings.Builder
	b.WriteString("def " + helperName + "():\n")
	for _, line := range strings.Split(duplicated, "\n") {
		b.WriteString("    " + line + "\n")
	}

	for _, c := range cells {
		if cellType(c) != "code" {
			continue
		}
		src := cellSource(c)
		if strings.Contains(src, duplicated) {
			setCellSource(c, strings.Replace(src, duplicated, helperName+"()", 1))
		}
	}
	return append([]notebookCell{newCodeCell(b.String())}, cells...)
}

// lineBlocks returns every run of exactly n consecutive non-blank,
// unindented-agnostic lines in the source.
func lineBlocks(source string, n int) []string {
	lines := strings.Split(source, "\n")
	var out []string
	for i := 0; i+n <= len(lines); i++ {
		window := lines[i : i+n]
		blank := false
		for _, l := range window {
			if strings.TrimSpace(l) == "" {
				blank = true
				break
			}
		}
		if !blank {
			out = append(out, strings.Join(window, "\n"))
		}
	}
	return out
}

// splitLongCells breaks code cells longer than maxCellLines at blank
// lines, keeping each chunk under the limit where the content allows.
func splitLongCells(cells []notebookCell) []notebookCell {
	var out []notebookCell
	for _, c := range cells {
		if cellType(c) != "code" {
			out = append(out, c)
			continue
		}
		src := cellSource(c)
		lines := strings.Split(src, "\n")
		if len(lines) <= maxCellLines {
			out = append(out, c)
			continue
		}

		chunks := splitAtBlankLines(lines, maxCellLines)
		setCellSource(c, chunks[0])
		out = append(out, c)
		for _, chunk := range chunks[1:] {
			out = append(out, newCodeCell(chunk))
		}
	}
	return out
}

// splitAtBlankLines greedily accumulates lines, cutting at the last
// blank line before the limit. A chunk with no blank line inside the
// limit is cut hard at the limit.
func splitAtBlankLines(lines []string, limit int) []string {
	var chunks []string
	start := 0
	for start < len(lines) {
		end := start + limit
		if end >= len(lines) {
			chunks = append(chunks, strings.Join(lines[start:], "\n"))
			break
		}
		cut := end
		for i := end; i > start; i-- {
			if strings.TrimSpace(lines[i-1]) == "" {
				cut = i
				break
			}
		}
		chunks = append(chunks, strings.Join(lines[start:cut], "\n"))
		start = cut
	}
	return chunks
}

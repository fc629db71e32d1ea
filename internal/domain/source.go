package domain

import (
	"path/filepath"
	"strings"
)

// Language identifies which rule table and metric profile apply to a
// source unit.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangCPP        Language = "cpp"
	LangJava       Language = "java"
	LangSQL        Language = "sql"
	LangGeneric    Language = "generic"
)

// SourceUnit is the immutable input to analysis and refactoring: raw
// text plus a declared language.
type SourceUnit struct {
	Text     string   `json:"text"`
	Language Language `json:"language"`
	File     string   `json:"file,omitempty"`
}

// NewSourceUnit builds a unit from text and a raw language id, folding
// aliases and defaulting to the generic handler.
func NewSourceUnit(text, languageID string) SourceUnit {
	return SourceUnit{Text: text, Language: NormalizeLanguage(languageID)}
}

// languageAliases folds raw language ids onto the registered tables.
// Unknown ids fall through to LangGeneric.
var languageAliases = map[string]Language{
	"javascript": LangJavaScript,
	"js":         LangJavaScript,
	"jsx":        LangJavaScript,
	"typescript": LangJavaScript,
	"ts":         LangJavaScript,
	"tsx":        LangJavaScript,
	"python":     LangPython,
	"py":         LangPython,
	"ipynb":      LangPython,
	"c":          LangCPP,
	"cpp":        LangCPP,
	"c++":        LangCPP,
	"cc":         LangCPP,
	"cxx":        LangCPP,
	"h":          LangCPP,
	"hpp":        LangCPP,
	"java":       LangJava,
	"sql":        LangSQL,
	"generic":    LangGeneric,
	"text":       LangGeneric,
}

// NormalizeLanguage maps a raw language id to a registered Language.
// The mapping is case-insensitive and always succeeds: anything
// unrecognized routes to the generic handler.
func NormalizeLanguage(id string) Language {
	if lang, ok := languageAliases[strings.ToLower(strings.TrimSpace(id))]; ok {
		return lang
	}
	return LangGeneric
}

// extensionLanguages maps file extensions to raw language ids. Kept as
// ids rather than Languages so display names survive normalization
// (e.g. a .go file reports "go" while routing to the generic table).
var extensionLanguages = map[string]string{
	".py":    "python",
	".ipynb": "ipynb",
	".js":    "javascript",
	".jsx":   "jsx",
	".ts":    "typescript",
	".tsx":   "tsx",
	".mjs":   "javascript",
	".java":  "java",
	".c":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".cxx":   "cpp",
	".h":     "h",
	".hpp":   "hpp",
	".cs":    "csharp",
	".go":    "go",
	".rb":    "ruby",
	".rs":    "rust",
	".php":   "php",
	".sh":    "shell",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".json":  "json",
	".md":    "markdown",
	".xml":   "xml",
	".yaml":  "yaml",
	".yml":   "yaml",
}

// LanguageIDFromFilename infers the raw language id from a file name's
// extension. Unknown extensions report "text".
func LanguageIDFromFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if id, ok := extensionLanguages[ext]; ok {
		return id
	}
	return "text"
}

// LanguageFromFilename infers the normalized language for a file name.
func LanguageFromFilename(name string) Language {
	return NormalizeLanguage(LanguageIDFromFilename(name))
}

// AnalyzableExtensions lists extensions the batch scanner picks up.
func AnalyzableExtensions() []string {
	exts := make([]string, 0, len(extensionLanguages))
	for ext := range extensionLanguages {
		exts = append(exts, ext)
	}
	return exts
}

// IsAnalyzableFile reports whether the scanner should analyze a file.
func IsAnalyzableFile(name string) bool {
	_, ok := extensionLanguages[strings.ToLower(filepath.Ext(name))]
	return ok
}

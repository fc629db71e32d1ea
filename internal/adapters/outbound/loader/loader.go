package loader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/codelens/codelens/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	"__pycache__":  true,
	".codelens":    true,
}

const maxFileSize = 1 << 20 // 1MB cap per source file.

// FileLoader implements domain.SourceLoader by reading the filesystem.
type FileLoader struct{}

func New() *FileLoader {
	return &FileLoader{}
}

// LoadFile reads one file and infers its language from the extension.
func (l *FileLoader) LoadFile(path string) (domain.SourceUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SourceUnit{}, err
	}
	if len(data) > maxFileSize {
		data = data[:maxFileSize]
	}
	return domain.SourceUnit{
		Text:     string(data),
		Language: domain.LanguageFromFilename(path),
		File:     filepath.Base(path),
	}, nil
}

// LoadTree walks root and loads every analyzable source file. Include
// globs narrow the set when present; exclude globs always remove.
// Globs match the slash-separated path relative to root.
func (l *FileLoader) LoadTree(root string, include, exclude []string) ([]domain.SourceUnit, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !domain.IsAnalyzableFile(d.Name()) {
			return nil
		}

		relPath, _ := filepath.Rel(absRoot, path)
		relPath = filepath.ToSlash(relPath)

		if len(include) > 0 && !matchesAny(include, relPath) {
			return nil
		}
		if matchesAny(exclude, relPath) {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	units := make([]domain.SourceUnit, 0, len(paths))
	for _, path := range paths {
		unit, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		relPath, _ := filepath.Rel(absRoot, path)
		unit.File = filepath.ToSlash(relPath)
		units = append(units, unit)
	}
	return units, nil
}

func matchesAny(globs []string, relPath string) bool {
	for _, g := range globs {
		g = strings.TrimPrefix(g, "./")
		if ok, err := doublestar.Match(g, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

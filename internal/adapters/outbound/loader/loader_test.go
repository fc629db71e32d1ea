package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codelens/codelens/internal/adapters/outbound/loader"
	"github.com/codelens/codelens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadFile_InfersLanguage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.py", "x = 1\n")

	unit, err := loader.New().LoadFile(filepath.Join(dir, "app.py"))
	require.NoError(t, err)

	assert.Equal(t, "x = 1\n", unit.Text)
	assert.Equal(t, domain.LangPython, unit.Language)
	assert.Equal(t, "app.py", unit.File)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := loader.New().LoadFile(filepath.Join(t.TempDir(), "missing.js"))
	assert.Error(t, err)
}

func TestLoadTree_PicksUpSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "const a = 1;\n")
	writeFile(t, dir, "src/b.py", "x = 1\n")
	writeFile(t, dir, "README.txt", "not source\n")
	writeFile(t, dir, "node_modules/dep/index.js", "skip me\n")
	writeFile(t, dir, ".git/config", "skip me\n")

	units, err := loader.New().LoadTree(dir, nil, nil)
	require.NoError(t, err)

	require.Len(t, units, 2)
	assert.Equal(t, "a.js", units[0].File)
	assert.Equal(t, "src/b.py", units[1].File)
}

func TestLoadTree_IncludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "const a = 1;\n")
	writeFile(t, dir, "src/b.js", "const b = 1;\n")
	writeFile(t, dir, "src/c.py", "x = 1\n")

	units, err := loader.New().LoadTree(dir, []string{"src/**/*.js"}, nil)
	require.NoError(t, err)

	require.Len(t, units, 1)
	assert.Equal(t, "src/b.js", units[0].File)
}

func TestLoadTree_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "const a = 1;\n")
	writeFile(t, dir, "a.min.js", "const a=1;\n")

	units, err := loader.New().LoadTree(dir, nil, []string{"**/*.min.js"})
	require.NoError(t, err)

	require.Len(t, units, 1)
	assert.Equal(t, "a.js", units[0].File)
}

func TestLoadTree_DeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "z.js", "const z = 1;\n")
	writeFile(t, dir, "a.js", "const a = 1;\n")
	writeFile(t, dir, "m.py", "x = 1\n")

	units, err := loader.New().LoadTree(dir, nil, nil)
	require.NoError(t, err)

	require.Len(t, units, 3)
	assert.Equal(t, "a.js", units[0].File)
	assert.Equal(t, "m.py", units[1].File)
	assert.Equal(t, "z.js", units[2].File)
}

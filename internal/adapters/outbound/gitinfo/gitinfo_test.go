package gitinfo_test

import (
	"testing"

	"github.com/codelens/codelens/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
)

func TestIsGitRepo_PlainDirectory(t *testing.T) {
	assert.False(t, gitinfo.New().IsGitRepo(t.TempDir()))
}

func TestCommitHash_PlainDirectory(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}

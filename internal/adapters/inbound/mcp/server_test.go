package mcp_test

import (
	"testing"

	"github.com/codelens/codelens/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
)

func TestNewCodeLensMCPServer(t *testing.T) {
	s := mcp.NewCodeLensMCPServer(t.TempDir())
	assert.NotNil(t, s)
}

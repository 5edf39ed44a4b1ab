package explain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lialoonk/sql-query-parser/internal/explain"
	"github.com/Lialoonk/sql-query-parser/parser"
)

func TestTreeRendering(t *testing.T) {
	tree, err := parser.Parse("SELECT id FROM users")
	require.NoError(t, err)

	out := explain.Tree(tree)
	lines := []string{
		"sql [0,20)",
		" statement [0,20)",
		"  select_stmt [0,20)",
		`identifier [7,9) "id"`,
		`identifier [15,20) "users"`,
	}
	for _, line := range lines {
		assert.Contains(t, out, line)
	}
}

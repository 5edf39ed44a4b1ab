package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lialoonk/sql-query-parser/grammar"
	"github.com/Lialoonk/sql-query-parser/parser"
)

// productionCases holds one accepted input per named production.
var productionCases = map[string]string{
	"sql":               "SELECT id FROM users",
	"statement":         "SELECT id FROM users",
	"union_clause":      "UNION SELECT id FROM users",
	"select_stmt":       "SELECT id FROM users WHERE id = 1",
	"insert_stmt":       "INSERT INTO users VALUES (1)",
	"update_stmt":       "UPDATE users SET name = 'John' WHERE id = 1",
	"delete_stmt":       "DELETE FROM users WHERE id = 1",
	"column_list":       "(id, name)",
	"identifier_list":   "id, name, age",
	"value_rows":        "(1),(2)",
	"value_row":         "(1, 2)",
	"set_list":          "name = 1, age = 2",
	"set_item":          "name = 1",
	"distinct":          "DISTINCT",
	"projection":        "*",
	"projection_list":   "id, name",
	"projection_item":   "COUNT(id) AS total",
	"from_item":         "users u",
	"table_factor":      "users AS u",
	"join_clause":       "JOIN posts p ON u.id = p.user_id AND p.user_id = u.id",
	"JOIN_TYPE":         "LEFT OUTER",
	"where_clause":      "WHERE id = 1",
	"group_by_clause":   "GROUP BY id, name",
	"having_clause":     "HAVING COUNT(id) > 1",
	"order_by_clause":   "ORDER BY id DESC, name",
	"order_list":        "id DESC, name",
	"order_item":        "id DESC",
	"limit_clause":      "LIMIT 10",
	"expr":              "id + 1",
	"or_expr":           "id = 1 OR name = 'a'",
	"and_expr":          "id = 1 AND name = 'a'",
	"not_expr":          "NOT id = 1",
	"comparison":        "id = 1",
	"comparison_suffix": "= 1",
	"comp_op":           "=",
	"in_rhs":            "1, 2",
	"addition":          "1 + 2 - 3",
	"multiplication":    "1 * 2 / 3",
	"unary":             "-id",
	"primary":           "(1)",
	"function_call":     "func(1, 2)",
	"expr_list":         "id, 1, func(2)",
	"column":            "users.id",
	"literal":           "'abc'",
	"boolean":           "TRUE",
	"number":            "-42",
	"string":            "'abc'",
	"identifier":        "table_name",
	"alias":             "alias_name",
	"alias_identifier":  "users",
}

// TestAllProductions checks that every named production accepts a
// representative input, and that the case table covers the whole grammar.
func TestAllProductions(t *testing.T) {
	for _, name := range grammar.SQL.Names() {
		require.Containsf(t, productionCases, name, "no test input for production %s", name)
	}

	for name, input := range productionCases {
		t.Run(name, func(t *testing.T) {
			tree, err := parser.ParseRule(name, input)
			require.NoErrorf(t, err, "failed to parse %q as %s", input, name)
			require.Equal(t, name, tree.Root().Tag())
		})
	}
}

func TestProductionRejections(t *testing.T) {
	cases := map[string]string{
		"insert_stmt":  "INSERT INTO users VALUES",
		"where_clause": "WHERE )",
		"identifier":   "SELECT",
		"number":       "abc",
		"string":       "'unterminated",
		"join_clause":  "JOIN ON a = b",
		"JOIN_TYPE":    "CROSS",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parser.ParseRule(name, input)
			require.Errorf(t, err, "expected %s to reject %q", name, input)
		})
	}
}

func TestIsReserved(t *testing.T) {
	assert.True(t, grammar.IsReserved("SELECT"))
	assert.True(t, grammar.IsReserved("select"))
	assert.True(t, grammar.IsReserved("Outer"))
	assert.False(t, grammar.IsReserved("users"))
	assert.False(t, grammar.IsReserved("selection"))
	assert.False(t, grammar.IsReserved("CROSS"))
}

func TestNewRejectsUnknownReference(t *testing.T) {
	_, err := grammar.New(map[string]grammar.Rule{
		"start": grammar.Ref("missing"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestNewRejectsEmptyGrammar(t *testing.T) {
	_, err := grammar.New(nil)
	require.Error(t, err)
}

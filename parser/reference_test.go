package parser_test

import (
	"testing"

	aftership "github.com/AfterShip/clickhouse-sql-parser/parser"
	"github.com/stretchr/testify/require"

	"github.com/Lialoonk/sql-query-parser/parser"
)

// referenceCorpus is shared between this parser and the reference parser.
// Every query is valid in the supported dialect; most are also valid
// ClickHouse SQL.
var referenceCorpus = []string{
	"SELECT id FROM users",
	"SELECT DISTINCT id, name FROM users",
	"SELECT id AS user_id FROM users",
	"SELECT SUM(price) FROM orders",
	"SELECT id FROM users WHERE age > 18 AND name LIKE 'A%'",
	"SELECT id FROM users WHERE id IN (1, 2, 3)",
	"SELECT id FROM users WHERE age BETWEEN 18 AND 65",
	"SELECT id FROM users WHERE name IS NOT NULL",
	"SELECT u.id, p.title FROM users u INNER JOIN posts p ON u.id = p.user_id",
	"SELECT u.id FROM users u LEFT JOIN posts p ON u.id = p.user_id",
	"SELECT id FROM users GROUP BY id HAVING COUNT(id) > 1 ORDER BY id DESC LIMIT 10",
	"SELECT id FROM users UNION ALL SELECT id FROM posts",
	"INSERT INTO users (id, name) VALUES (1, 'Ada'), (2, 'Grace')",
}

// TestReferenceParserSummary parses the corpus with the reference ClickHouse
// parser and reports how the two parsers agree. The reference result is
// informational; only this parser's acceptance is asserted.
func TestReferenceParserSummary(t *testing.T) {
	var agreed, disagreed int

	for _, query := range referenceCorpus {
		_, err := parser.Parse(query)
		require.NoErrorf(t, err, "query: %s", query)

		stmts, refErr, panicked := tryParseWithReference(query)
		if panicked || refErr != nil || len(stmts) == 0 {
			disagreed++
			t.Logf("reference parser rejected: %s (err: %v, panic: %v)", query, refErr, panicked)
			continue
		}
		agreed++
	}

	t.Logf("reference parser agreement: %d/%d queries", agreed, agreed+disagreed)
}

// tryParseWithReference parses with the reference parser, recovering from
// panics so one bad query cannot take down the comparison.
func tryParseWithReference(query string) (stmts []aftership.Expr, parseErr error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			parseErr = nil
			stmts = nil
		}
	}()
	p := aftership.NewParser(query)
	stmts, parseErr = p.ParseStmts()
	return stmts, parseErr, false
}

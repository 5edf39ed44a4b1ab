// Package analyzer extracts query metadata from a parse tree in a single
// depth-first pass: referenced tables, columns, alias bindings, invoked
// functions, aggregate functions, and join descriptors.
package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/Lialoonk/sql-query-parser/parser"
)

// Analyze parses input and runs the metadata pass over the resulting tree.
// The only possible error is the parser's syntax error; analysis itself
// cannot fail.
func Analyze(input string) (*QueryMetadata, error) {
	tree, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return AnalyzeTree(tree), nil
}

// AnalyzeJSON analyzes input and returns the metadata encoded as JSON.
func AnalyzeJSON(input string) (string, error) {
	meta, err := Analyze(input)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// AnalyzeTree runs the metadata pass over an already-parsed tree. A fresh
// accumulator is created per call, so concurrent calls never interfere.
func AnalyzeTree(t *parser.Tree) *QueryMetadata {
	w := &walker{meta: NewQueryMetadata()}
	w.walk(t.Root())
	return w.meta
}

// walker owns the accumulator for exactly one pass. Dispatch is by
// production tag with a recurse-into-children default, so productions the
// walker does not recognize degrade gracefully instead of failing.
type walker struct {
	meta *QueryMetadata
}

func (w *walker) walk(n *parser.Node) {
	switch n.Tag() {
	case "table_factor":
		table, alias := splitTableFactor(n)
		w.meta.Tables.Add(table)
		if alias != "" {
			w.meta.Aliases[alias] = table
		}
	case "join_clause":
		w.joinClause(n)
	case "insert_stmt":
		w.insert(n)
	case "update_stmt":
		w.update(n)
	case "delete_stmt":
		w.delete(n)
	case "set_item":
		w.setItem(n)
	case "column":
		w.meta.Columns.Add(n.Text())
	case "function_call":
		w.functionCall(n)
	case "identifier":
		// An unqualified name not known to be an alias is assumed to
		// denote a table.
		name := n.Text()
		if _, bound := w.meta.Aliases[name]; !bound {
			w.meta.Tables.Add(name)
		}
	default:
		for _, c := range n.Children() {
			w.walk(c)
		}
	}
}

// joinClause records one JoinInfo. The alias binding is registered in
// Aliases, but the joined table name lives only inside the JoinInfo; it is
// not added to Tables.
func (w *walker) joinClause(n *parser.Node) {
	var joinType string
	if jt := n.Child("JOIN_TYPE"); jt != nil {
		joinType = strings.Join(strings.Fields(jt.Text()), " ")
	}

	var table, alias string
	if tf := n.Child("table_factor"); tf != nil {
		table, alias = splitTableFactor(tf)
		if alias != "" {
			w.meta.Aliases[alias] = table
		}
	}

	cond := n.Child("expr")
	if cond != nil {
		w.walk(cond)
	}

	// A join without a resolvable table name yields no JoinInfo.
	if table == "" {
		return
	}
	info := JoinInfo{JoinType: joinType, Table: table, Alias: alias}
	if cond != nil {
		info.Condition = cond.Text()
	}
	w.meta.Joins = append(w.meta.Joins, info)
}

func (w *walker) insert(n *parser.Node) {
	if id := n.Child("identifier"); id != nil {
		w.meta.Tables.Add(id.Text())
	}
	// Function calls inside INSERT values still count; the column list, if
	// present, is not walked.
	if rows := n.Child("value_rows"); rows != nil {
		w.walk(rows)
	}
}

func (w *walker) update(n *parser.Node) {
	if id := n.Child("identifier"); id != nil {
		w.meta.Tables.Add(id.Text())
	}
	if set := n.Child("set_list"); set != nil {
		w.walk(set)
	}
	if where := n.Child("where_clause"); where != nil {
		w.walk(where)
	}
}

func (w *walker) delete(n *parser.Node) {
	if id := n.Child("identifier"); id != nil {
		w.meta.Tables.Add(id.Text())
	}
	if where := n.Child("where_clause"); where != nil {
		w.walk(where)
	}
}

func (w *walker) setItem(n *parser.Node) {
	if id := n.Child("identifier"); id != nil {
		w.meta.Columns.Add(id.Text())
	}
	if expr := n.Child("expr"); expr != nil {
		w.walk(expr)
	}
}

func (w *walker) functionCall(n *parser.Node) {
	var name string
	if id := n.Child("identifier"); id != nil {
		name = id.Text()
	}
	if name != "" {
		w.meta.Functions.Add(name)
		if IsAggregate(name) {
			w.meta.Aggregates.Add(name)
		}
	}
	if args := n.Child("expr_list"); args != nil {
		w.walk(args)
	}
}

// splitTableFactor resolves a table_factor into its table name and optional
// alias: the first identifier is the table, a trailing alias_identifier is
// the alias.
func splitTableFactor(n *parser.Node) (table, alias string) {
	if id := n.Child("identifier"); id != nil {
		table = id.Text()
	}
	if al := n.Child("alias_identifier"); al != nil {
		alias = al.Text()
	}
	return table, alias
}

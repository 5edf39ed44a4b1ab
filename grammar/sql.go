package grammar

// SQL is the grammar for the supported dialect: SELECT (with joins, grouping,
// ordering, and UNION), INSERT, UPDATE, and DELETE. The start production is
// "sql". Whitespace and -- comments are insignificant between terminals and
// are handled by the parser, never by a production.
var SQL *Grammar

func init() {
	g, err := New(sqlRules)
	if err != nil {
		panic(err)
	}
	SQL = g
}

var sqlRules = map[string]Rule{
	"sql": Seq(Ref("statement"), Star(Ref("union_clause"))),

	"union_clause": Seq(Keyword("UNION"), Opt(Keyword("ALL")), Ref("select_stmt")),

	"statement": Choice(
		Ref("select_stmt"),
		Ref("insert_stmt"),
		Ref("update_stmt"),
		Ref("delete_stmt"),
	),

	"select_stmt": Seq(
		Keyword("SELECT"),
		Opt(Ref("distinct")),
		Ref("projection"),
		Keyword("FROM"),
		Ref("from_item"),
		Star(Ref("join_clause")),
		Opt(Ref("where_clause")),
		Opt(Ref("group_by_clause")),
		Opt(Ref("having_clause")),
		Opt(Ref("order_by_clause")),
		Opt(Ref("limit_clause")),
	),

	"insert_stmt": Seq(
		Keyword("INSERT"), Keyword("INTO"), Ref("identifier"),
		Opt(Ref("column_list")),
		Keyword("VALUES"), Ref("value_rows"),
	),

	"update_stmt": Seq(
		Keyword("UPDATE"), Ref("identifier"),
		Keyword("SET"), Ref("set_list"),
		Opt(Ref("where_clause")),
	),

	"delete_stmt": Seq(
		Keyword("DELETE"), Keyword("FROM"), Ref("identifier"),
		Opt(Ref("where_clause")),
	),

	"column_list":     Seq(Literal("("), Ref("identifier_list"), Literal(")")),
	"identifier_list": Seq(Ref("identifier"), Star(Seq(Literal(","), Ref("identifier")))),

	"value_rows": Seq(Ref("value_row"), Star(Seq(Literal(","), Ref("value_row")))),
	"value_row":  Seq(Literal("("), Ref("expr_list"), Literal(")")),

	"set_list": Seq(Ref("set_item"), Star(Seq(Literal(","), Ref("set_item")))),
	"set_item": Seq(Ref("identifier"), Literal("="), Ref("expr")),

	"distinct": Keyword("DISTINCT"),

	"projection":      Choice(Literal("*"), Ref("projection_list")),
	"projection_list": Seq(Ref("projection_item"), Star(Seq(Literal(","), Ref("projection_item")))),
	"projection_item": Seq(Ref("expr"), Opt(Seq(Opt(Keyword("AS")), Ref("alias")))),

	"from_item": Ref("table_factor"),

	// First identifier is the table name; a trailing identifier, with or
	// without AS, is its alias.
	"table_factor": Seq(
		Ref("identifier"),
		Opt(Seq(Opt(Keyword("AS")), Ref("alias_identifier"))),
	),

	"join_clause": Seq(
		Opt(Ref("JOIN_TYPE")),
		Keyword("JOIN"),
		Ref("table_factor"),
		Keyword("ON"),
		Ref("expr"),
	),

	"JOIN_TYPE": Choice(
		Seq(Keyword("LEFT"), Opt(Keyword("OUTER"))),
		Seq(Keyword("RIGHT"), Opt(Keyword("OUTER"))),
		Seq(Keyword("FULL"), Opt(Keyword("OUTER"))),
		Keyword("INNER"),
		Keyword("OUTER"),
	),

	"where_clause":    Seq(Keyword("WHERE"), Ref("expr")),
	"group_by_clause": Seq(Keyword("GROUP"), Keyword("BY"), Ref("expr_list")),
	"having_clause":   Seq(Keyword("HAVING"), Ref("expr")),

	"order_by_clause": Seq(Keyword("ORDER"), Keyword("BY"), Ref("order_list")),
	"order_list":      Seq(Ref("order_item"), Star(Seq(Literal(","), Ref("order_item")))),
	"order_item":      Seq(Ref("expr"), Opt(Choice(Keyword("ASC"), Keyword("DESC")))),

	"limit_clause": Seq(Keyword("LIMIT"), Ref("number")),

	// Expression precedence: OR < AND < NOT < comparison < additive <
	// multiplicative < unary < primary.
	"expr":     Ref("or_expr"),
	"or_expr":  Seq(Ref("and_expr"), Star(Seq(Keyword("OR"), Ref("and_expr")))),
	"and_expr": Seq(Ref("not_expr"), Star(Seq(Keyword("AND"), Ref("not_expr")))),
	"not_expr": Seq(Opt(Keyword("NOT")), Ref("comparison")),

	"comparison": Seq(Ref("addition"), Opt(Ref("comparison_suffix"))),
	"comparison_suffix": Choice(
		Seq(Ref("comp_op"), Ref("addition")),
		Seq(Keyword("BETWEEN"), Ref("addition"), Keyword("AND"), Ref("addition")),
		Seq(Keyword("IN"), Literal("("), Ref("in_rhs"), Literal(")")),
		Seq(Keyword("LIKE"), Ref("string")),
		Seq(Keyword("IS"), Opt(Keyword("NOT")), Keyword("NULL")),
	),
	// Two-character operators first: ordered choice would otherwise commit
	// to "<" before seeing "<=".
	"comp_op": Choice(
		Literal("<="), Literal(">="), Literal("!="), Literal("<>"),
		Literal("="), Literal("<"), Literal(">"),
	),
	"in_rhs": Seq(Ref("expr"), Star(Seq(Literal(","), Ref("expr")))),

	"addition": Seq(
		Ref("multiplication"),
		Star(Seq(Choice(Literal("+"), Literal("-")), Ref("multiplication"))),
	),
	"multiplication": Seq(
		Ref("unary"),
		Star(Seq(Choice(Literal("*"), Literal("/")), Ref("unary"))),
	),
	"unary": Seq(Opt(Literal("-")), Ref("primary")),

	"primary": Choice(
		Ref("function_call"),
		Ref("column"),
		Ref("literal"),
		Seq(Literal("("), Ref("expr"), Literal(")")),
	),

	"function_call": Seq(Ref("identifier"), Literal("("), Opt(Ref("expr_list")), Literal(")")),
	"expr_list":     Seq(Ref("expr"), Star(Seq(Literal(","), Ref("expr")))),

	"column": Seq(Ref("identifier"), Opt(Seq(Literal("."), Ref("identifier")))),

	"literal": Choice(Ref("number"), Ref("string"), Ref("boolean"), Keyword("NULL")),
	"boolean": Choice(Keyword("TRUE"), Keyword("FALSE")),

	"number": Number,
	"string": StringLit,

	"identifier":       Ident,
	"alias":            Ident,
	"alias_identifier": Ident,
}

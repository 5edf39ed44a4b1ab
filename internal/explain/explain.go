// Package explain renders a parse tree as indented text for inspection.
package explain

import (
	"fmt"
	"strings"

	"github.com/Lialoonk/sql-query-parser/parser"
)

// Tree returns a line-per-node rendering of the parse tree. Each line shows
// the production tag and source span; leaves also show their matched text.
func Tree(t *parser.Tree) string {
	var sb strings.Builder
	node(&sb, t.Root(), 0)
	return sb.String()
}

func node(sb *strings.Builder, n *parser.Node, depth int) {
	indent := strings.Repeat(" ", depth)
	start, end := n.Span()
	if len(n.Children()) == 0 {
		fmt.Fprintf(sb, "%s%s [%d,%d) %q\n", indent, n.Tag(), start, end, n.Text())
		return
	}
	fmt.Fprintf(sb, "%s%s [%d,%d)\n", indent, n.Tag(), start, end)
	for _, c := range n.Children() {
		node(sb, c, depth+1)
	}
}

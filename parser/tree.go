package parser

// Tree is the result of a successful parse. It owns its nodes; neither the
// tree nor any node is mutated after Parse returns.
type Tree struct {
	src  string
	root *Node
}

// Root returns the node for the start production.
func (t *Tree) Root() *Node { return t.root }

// Source returns the input text the tree was parsed from.
func (t *Tree) Source() string { return t.src }

// Node is one matched production: its tag, the source span it covers, and
// its children in left-to-right match order.
type Node struct {
	tag      string
	start    int
	end      int
	children []*Node
	src      string
}

// Tag returns the production name this node was matched by.
func (n *Node) Tag() string { return n.tag }

// Span returns the half-open source range [start, end) the node covers.
// The start is the first byte of the first matched terminal, so leading
// whitespace and comments are never part of a span.
func (n *Node) Span() (start, end int) { return n.start, n.end }

// Text returns the source text the node matched.
func (n *Node) Text() string { return n.src[n.start:n.end] }

// Children returns the node's children. Callers must not modify the slice.
func (n *Node) Children() []*Node { return n.children }

// Child returns the first child tagged with the given production name, or
// nil if there is none.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

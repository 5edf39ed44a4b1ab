// Package parser evaluates the dialect grammar against input text, producing
// an immutable parse tree or a positioned syntax error.
package parser

import (
	"fmt"

	"github.com/Lialoonk/sql-query-parser/grammar"
)

// Parse parses one full statement, optionally followed by UNION-joined
// statements, using the "sql" start production. The entire input must be
// consumed; trailing text is a syntax error.
func Parse(input string) (*Tree, error) {
	return ParseRule("sql", input)
}

// ParseRule parses input against any named production of the grammar. Like
// Parse, it requires the whole input to match (ignoring trailing whitespace
// and comments).
func ParseRule(name, input string) (*Tree, error) {
	body, ok := grammar.SQL.Rule(name)
	if !ok {
		return nil, fmt.Errorf("unknown production %q", name)
	}

	m := &machine{src: input, furthest: -1}
	start := m.skip(0)
	var children []*Node
	end, ok := m.eval(body, 0, &children)
	if !ok {
		return nil, m.syntaxError()
	}
	if rest := m.skip(end); rest != len(input) {
		m.fail(rest, "end of input")
		return nil, m.syntaxError()
	}
	root := &Node{tag: name, start: start, end: end, children: children, src: input}
	return &Tree{src: input, root: root}, nil
}

// machine is the state of one parse: the input, and the furthest failure
// seen across every alternative tried so far.
type machine struct {
	src      string
	furthest int
	expected []string
}

// eval matches r at pos. On success it appends any produced nodes to out and
// returns the new position; on failure it returns pos unchanged and leaves
// out untouched, so ordered choice can retry the next alternative from the
// original cursor.
func (m *machine) eval(r grammar.Rule, pos int, out *[]*Node) (int, bool) {
	switch t := r.(type) {
	case *grammar.SeqRule:
		var buf []*Node
		cur := pos
		for _, sub := range t.Rules {
			var ok bool
			cur, ok = m.eval(sub, cur, &buf)
			if !ok {
				return pos, false
			}
		}
		*out = append(*out, buf...)
		return cur, true

	case *grammar.ChoiceRule:
		for _, alt := range t.Rules {
			var buf []*Node
			if end, ok := m.eval(alt, pos, &buf); ok {
				*out = append(*out, buf...)
				return end, true
			}
		}
		return pos, false

	case *grammar.OptRule:
		var buf []*Node
		if end, ok := m.eval(t.Rule, pos, &buf); ok {
			*out = append(*out, buf...)
			return end, true
		}
		return pos, true

	case *grammar.RepeatRule:
		cur := pos
		for {
			var buf []*Node
			end, ok := m.eval(t.Rule, cur, &buf)
			if !ok || end == cur {
				return cur, true
			}
			*out = append(*out, buf...)
			cur = end
		}

	case *grammar.RefRule:
		// Grammar construction validated every reference, so the lookup
		// cannot miss.
		body, _ := grammar.SQL.Rule(t.Name)
		start := m.skip(pos)
		var children []*Node
		end, ok := m.eval(body, pos, &children)
		if !ok {
			return pos, false
		}
		*out = append(*out, &Node{tag: t.Name, start: start, end: end, children: children, src: m.src})
		return end, true

	case *grammar.KeywordRule:
		return m.matchKeyword(t.Word, pos)

	case *grammar.LiteralRule:
		return m.matchLiteral(t.Text, pos)

	case *grammar.TermRule:
		switch t.Kind {
		case grammar.TermIdent:
			return m.matchIdent(pos)
		case grammar.TermNumber:
			return m.matchNumber(pos)
		default:
			return m.matchString(pos)
		}
	}
	return pos, false
}

func (m *machine) matchKeyword(word string, pos int) (int, bool) {
	s := m.skip(pos)
	e := s + len(word)
	if e <= len(m.src) && equalFold(m.src[s:e], word) && !identCharAt(m.src, e) {
		return e, true
	}
	m.fail(s, word)
	return pos, false
}

func (m *machine) matchLiteral(text string, pos int) (int, bool) {
	s := m.skip(pos)
	e := s + len(text)
	if e <= len(m.src) && m.src[s:e] == text {
		return e, true
	}
	m.fail(s, "'"+text+"'")
	return pos, false
}

func (m *machine) matchIdent(pos int) (int, bool) {
	s := m.skip(pos)
	if s >= len(m.src) || !identStart(m.src[s]) {
		m.fail(s, "identifier")
		return pos, false
	}
	e := s + 1
	for e < len(m.src) && identChar(m.src[e]) {
		e++
	}
	if grammar.IsReserved(m.src[s:e]) {
		m.fail(s, "identifier")
		return pos, false
	}
	return e, true
}

func (m *machine) matchNumber(pos int) (int, bool) {
	s := m.skip(pos)
	e := s
	if e < len(m.src) && m.src[e] == '-' {
		e++
	}
	digits := e
	for e < len(m.src) && isDigit(m.src[e]) {
		e++
	}
	if e == digits {
		m.fail(s, "number")
		return pos, false
	}
	if e < len(m.src) && m.src[e] == '.' && e+1 < len(m.src) && isDigit(m.src[e+1]) {
		e++
		for e < len(m.src) && isDigit(m.src[e]) {
			e++
		}
	}
	return e, true
}

func (m *machine) matchString(pos int) (int, bool) {
	s := m.skip(pos)
	if s >= len(m.src) || m.src[s] != '\'' {
		m.fail(s, "string")
		return pos, false
	}
	for e := s + 1; e < len(m.src); e++ {
		if m.src[e] == '\'' {
			return e + 1, true
		}
	}
	m.fail(s, "string")
	return pos, false
}

// skip advances past whitespace and -- line comments. It is applied before
// every terminal, which keeps both out of the tree entirely.
func (m *machine) skip(pos int) int {
	for pos < len(m.src) {
		switch c := m.src[pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f':
			pos++
		case c == '-' && pos+1 < len(m.src) && m.src[pos+1] == '-':
			for pos < len(m.src) && m.src[pos] != '\n' {
				pos++
			}
		default:
			return pos
		}
	}
	return pos
}

// fail records a terminal failure for the furthest-position error heuristic.
func (m *machine) fail(pos int, expected string) {
	if pos < m.furthest {
		return
	}
	if pos > m.furthest {
		m.furthest = pos
		m.expected = m.expected[:0]
	}
	for _, e := range m.expected {
		if e == expected {
			return
		}
	}
	m.expected = append(m.expected, expected)
}

func (m *machine) syntaxError() *SyntaxError {
	pos := m.furthest
	if pos < 0 {
		pos = 0
	}
	expected := make([]string, len(m.expected))
	copy(expected, m.expected)
	return &SyntaxError{Pos: pos, Expected: expected}
}

func identStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func identChar(c byte) bool {
	return identStart(c) || isDigit(c)
}

func identCharAt(s string, i int) bool {
	return i < len(s) && identChar(s[i])
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// equalFold is an ASCII-only case-insensitive comparison. Keywords are all
// ASCII, so the unicode folding of strings.EqualFold is not needed.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

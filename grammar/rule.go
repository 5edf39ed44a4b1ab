// Package grammar defines the productions of the supported SQL dialect as
// data: named rules built from sequence, ordered choice, optionality,
// repetition, and terminal matchers. The grammar carries no matching
// behavior of its own; the parser package evaluates it against input text.
package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// Rule is one node of a production body. The concrete types below form a
// closed set; the parser dispatches on them exhaustively.
type Rule interface {
	rule()
}

// SeqRule matches every sub-rule in order.
type SeqRule struct {
	Rules []Rule
}

// ChoiceRule tries each alternative left to right and commits to the first
// that matches (PEG ordered choice).
type ChoiceRule struct {
	Rules []Rule
}

// OptRule matches its sub-rule zero or one time.
type OptRule struct {
	Rule Rule
}

// RepeatRule greedily matches its sub-rule zero or more times.
type RepeatRule struct {
	Rule Rule
}

// RefRule references another named production. Matching a reference
// produces a parse node tagged with the production name.
type RefRule struct {
	Name string
}

// KeywordRule matches a reserved word case-insensitively. The match must
// end at a word boundary, so SELECT does not match the prefix of SELECTED.
type KeywordRule struct {
	Word string
}

// LiteralRule matches punctuation or an operator exactly.
type LiteralRule struct {
	Text string
}

// TermKind selects one of the primitive terminal matchers.
type TermKind int

const (
	// TermIdent matches letter/underscore followed by alphanumerics or
	// underscores, excluding reserved keywords.
	TermIdent TermKind = iota
	// TermNumber matches an optionally negated integer or decimal.
	TermNumber
	// TermString matches a single-quoted string with no escapes.
	TermString
)

// TermRule is a primitive terminal matcher.
type TermRule struct {
	Kind TermKind
}

func (*SeqRule) rule()     {}
func (*ChoiceRule) rule()  {}
func (*OptRule) rule()     {}
func (*RepeatRule) rule()  {}
func (*RefRule) rule()     {}
func (*KeywordRule) rule() {}
func (*LiteralRule) rule() {}
func (*TermRule) rule()    {}

// Seq builds a sequence rule.
func Seq(rules ...Rule) Rule { return &SeqRule{Rules: rules} }

// Choice builds an ordered-choice rule.
func Choice(rules ...Rule) Rule { return &ChoiceRule{Rules: rules} }

// Opt builds an optional rule.
func Opt(r Rule) Rule { return &OptRule{Rule: r} }

// Star builds a zero-or-more repetition rule.
func Star(r Rule) Rule { return &RepeatRule{Rule: r} }

// Ref builds a reference to a named production.
func Ref(name string) Rule { return &RefRule{Name: name} }

// Keyword builds a case-insensitive keyword terminal.
func Keyword(word string) Rule { return &KeywordRule{Word: word} }

// Literal builds an exact-text terminal.
func Literal(text string) Rule { return &LiteralRule{Text: text} }

// Terminal singletons shared by the production map.
var (
	Ident     Rule = &TermRule{Kind: TermIdent}
	Number    Rule = &TermRule{Kind: TermNumber}
	StringLit Rule = &TermRule{Kind: TermString}
)

// Grammar is a validated, immutable set of named productions.
type Grammar struct {
	rules map[string]Rule
}

// New validates the production map and returns a Grammar. Every RefRule
// must name a production present in the map.
func New(rules map[string]Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("grammar has no productions")
	}
	for name, body := range rules {
		if err := checkRefs(body, rules); err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
	}
	return &Grammar{rules: rules}, nil
}

func checkRefs(r Rule, rules map[string]Rule) error {
	switch t := r.(type) {
	case *SeqRule:
		for _, sub := range t.Rules {
			if err := checkRefs(sub, rules); err != nil {
				return err
			}
		}
	case *ChoiceRule:
		for _, sub := range t.Rules {
			if err := checkRefs(sub, rules); err != nil {
				return err
			}
		}
	case *OptRule:
		return checkRefs(t.Rule, rules)
	case *RepeatRule:
		return checkRefs(t.Rule, rules)
	case *RefRule:
		if _, ok := rules[t.Name]; !ok {
			return fmt.Errorf("reference to unknown production %q", t.Name)
		}
	}
	return nil
}

// Rule returns the body of a named production.
func (g *Grammar) Rule(name string) (Rule, bool) {
	r, ok := g.rules[name]
	return r, ok
}

// Names returns all production names in sorted order.
func (g *Grammar) Names() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsReserved reports whether word is a reserved keyword of the dialect,
// matched case-insensitively. Reserved words are never identifiers.
func IsReserved(word string) bool {
	_, ok := reserved[strings.ToUpper(word)]
	return ok
}

var reserved = make(map[string]struct{})

func init() {
	for _, w := range []string{
		"SELECT", "FROM", "WHERE", "JOIN", "ON", "USING", "AS",
		"AND", "OR", "NOT", "IN", "LIKE", "BETWEEN", "IS", "NULL",
		"TRUE", "FALSE", "UNION", "ALL", "DISTINCT",
		"GROUP", "BY", "HAVING", "ORDER", "ASC", "DESC", "LIMIT",
		"INNER", "LEFT", "RIGHT", "FULL", "OUTER",
		"INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE",
	} {
		reserved[w] = struct{}{}
	}
}

package analyzer

import (
	"encoding/json"
	"sort"
	"strings"
)

// Set is a set of strings that serializes as a sorted JSON array. Only
// membership is part of the contract; the sort keeps output deterministic.
type Set map[string]struct{}

// NewSet returns a set containing the given values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set.
func (s Set) Add(v string) { s[v] = struct{}{} }

// Contains reports whether v is in the set.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members in sorted order.
func (s Set) Values() []string {
	vals := make([]string, 0, len(s))
	for v := range s {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}

// MarshalJSON encodes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes a JSON array into the set.
func (s *Set) UnmarshalJSON(data []byte) error {
	var vals []string
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	*s = NewSet(vals...)
	return nil
}

// JoinInfo describes one join clause in source order.
type JoinInfo struct {
	// JoinType is the join-type text (INNER, LEFT OUTER, ...), empty for a
	// bare JOIN.
	JoinType string `json:"join_type,omitempty"`
	// Table is the joined table name; always non-empty.
	Table string `json:"table"`
	// Alias is the table alias, if one was bound.
	Alias string `json:"alias,omitempty"`
	// Condition is the literal source text of the ON expression.
	Condition string `json:"condition"`
}

// QueryMetadata is everything one analysis pass extracts from a statement.
type QueryMetadata struct {
	Tables     Set               `json:"tables"`
	Columns    Set               `json:"columns"`
	Aliases    map[string]string `json:"aliases"`
	Functions  Set               `json:"functions"`
	Aggregates Set               `json:"aggregates"`
	Joins      []JoinInfo        `json:"joins"`
}

// NewQueryMetadata returns an empty accumulator. Every Analyze call starts
// from a fresh one; accumulators are never shared between calls.
func NewQueryMetadata() *QueryMetadata {
	return &QueryMetadata{
		Tables:     NewSet(),
		Columns:    NewSet(),
		Aliases:    make(map[string]string),
		Functions:  NewSet(),
		Aggregates: NewSet(),
		Joins:      []JoinInfo{},
	}
}

// aggregates is the fixed allow-list of aggregate function names, matched
// case-insensitively.
var aggregates = map[string]struct{}{
	"SUM":   {},
	"COUNT": {},
	"AVG":   {},
	"MIN":   {},
	"MAX":   {},
}

// IsAggregate reports whether name is an aggregate function, ignoring case.
func IsAggregate(name string) bool {
	_, ok := aggregates[strings.ToUpper(name)]
	return ok
}

package parser

import (
	"fmt"
	"strings"
)

// SyntaxError is the only error Parse can produce. Pos is the furthest byte
// offset any alternative reached before the overall parse failed, and
// Expected lists the constructs that could have continued the parse there.
type SyntaxError struct {
	Pos      int
	Expected []string
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at position %d", e.Pos)
	}
	return fmt.Sprintf("syntax error at position %d: expected %s",
		e.Pos, strings.Join(e.Expected, " or "))
}

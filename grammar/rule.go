package grammar

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/utils"
)

// Rule is a grammar rule (production), consisting of a left hand side
// non-terminal and an ordered right hand side of symbols.
// Rules are immutable once constructed.
type Rule struct {
	LHS    Symbol       // left hand side non-terminal
	Serial int          // ordinal number of this rule within its grammar
	rhs    []Symbol     // right hand side
	syms   *SymbolTable // for printing
}

func newRule(serial int, lhs Symbol, rhs []Symbol, syms *SymbolTable) *Rule {
	return &Rule{
		LHS:    lhs,
		Serial: serial,
		rhs:    append([]Symbol(nil), rhs...),
		syms:   syms,
	}
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Len returns the length of the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// At returns the symbol at position i of the right hand side.
func (r *Rule) At(i int) Symbol {
	return r.rhs[i]
}

// IsEpsilon is true for rules deriving the empty word in one step.
// For augmented rules, a right hand side consisting of the end marker
// only is considered empty.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0 || (len(r.rhs) == 1 && r.rhs[0] == EndMarker)
}

// Equals is structural equality: same LHS and same RHS.
func (r *Rule) Equals(other *Rule) bool {
	return CompareRules(r, other) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("[%s] ::= [", r.name(r.LHS)))
	for i, sym := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(r.name(sym))
	}
	b.WriteString("]")
	return b.String()
}

func (r *Rule) name(sym Symbol) string {
	if r.syms == nil {
		return fmt.Sprintf("%d", sym)
	}
	return r.syms.Name(sym)
}

// CompareRules orders rules by (LHS, RHS), comparing right hand sides
// lexicographically by symbol. It returns -1, 0 or +1. A nil rule sorts first.
func CompareRules(r1, r2 *Rule) int {
	switch {
	case r1 == r2:
		return 0
	case r1 == nil:
		return -1
	case r2 == nil:
		return 1
	}
	if c := compareSymbols(r1.LHS, r2.LHS); c != 0 {
		return c
	}
	for i := 0; i < len(r1.rhs) && i < len(r2.rhs); i++ {
		if c := compareSymbols(r1.rhs[i], r2.rhs[i]); c != 0 {
			return c
		}
	}
	return utils.IntComparator(len(r1.rhs), len(r2.rhs))
}

// RuleComparator is CompareRules as a comparator for ordered gods containers.
func RuleComparator(a, b interface{}) int {
	return CompareRules(a.(*Rule), b.(*Rule))
}

func compareSymbols(a, b Symbol) int {
	return utils.IntComparator(int(a), int(b))
}

// Dotted returns a string representation of r with a dot in front of
// right hand side position dot, e.g. "S ➞ a • S b".
func (r *Rule) Dotted(dot int) string {
	var b bytes.Buffer
	b.WriteString(r.name(r.LHS))
	b.WriteString(" ➞")
	for i, sym := range r.rhs {
		if i == dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(r.name(sym))
	}
	if dot >= len(r.rhs) {
		b.WriteString(" •")
	}
	return b.String()
}

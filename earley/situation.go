package earley

import (
	"fmt"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/cfgrec"
	"github.com/npillmayer/cfgrec/grammar"
)

// Situation is an Earley item: a rule of the augmented grammar, the chart
// column where matching the rule began (Origin), and the number of right hand
// side symbols matched so far (Dot).
//
// Situations are values. Advancing a situation creates a new one.
type Situation struct {
	rule   *grammar.Rule
	Origin uint64
	Dot    int
}

func newSituation(rule *grammar.Rule, origin uint64, dot int) Situation {
	return Situation{rule: rule, Origin: origin, Dot: dot}
}

// Rule returns the (augmented) rule of a situation.
func (s Situation) Rule() *grammar.Rule {
	return s.rule
}

// Next returns the symbol after the dot. For completed situations this is
// the end marker.
func (s Situation) Next() grammar.Symbol {
	if s.Dot >= s.rule.Len() {
		return grammar.EndMarker
	}
	return s.rule.At(s.Dot)
}

// Completed is true if the whole right hand side has been matched, i.e. the
// dot is in front of the end marker.
func (s Situation) Completed() bool {
	return s.Next() == grammar.EndMarker
}

// Advance returns a new situation with the dot moved one symbol to the right.
func (s Situation) Advance() Situation {
	return Situation{rule: s.rule, Origin: s.Origin, Dot: s.Dot + 1}
}

// Span returns the input span covered by s, given the column s lives in.
func (s Situation) Span(column uint64) cfgrec.Span {
	return cfgrec.Span{s.Origin, column}
}

func (s Situation) String() string {
	return fmt.Sprintf("[%s, %d]", s.rule.Dotted(s.Dot), s.Origin)
}

// compareSituations orders situations by rule (structurally), origin and dot.
// It is a comparator for gods containers.
func compareSituations(a, b interface{}) int {
	s1 := a.(Situation)
	s2 := b.(Situation)
	if c := grammar.CompareRules(s1.rule, s2.rule); c != 0 {
		return c
	}
	if c := utils.UInt64Comparator(s1.Origin, s2.Origin); c != 0 {
		return c
	}
	return utils.IntComparator(s1.Dot, s2.Dot)
}

package grammar

// Augmented is the augmented form of a grammar, which recognizers operate on.
// Every right hand side is terminated by EndMarker, and a rule
//
//    S' ➞ S $
//
// for start symbol S is appended as the last rule. With this rule, recognizing
// the whole input amounts to completing a single rule.
//
// An Augmented grammar is immutable and safe for concurrent use.
type Augmented struct {
	g        *Grammar
	rules    []*Rule
	byLHS    map[Symbol][]*Rule
	nonterms []Symbol
}

// Augment creates the augmented grammar for g. It does not validate g, as this has
// been done by the grammar builder.
func Augment(g *Grammar) *Augmented {
	a := &Augmented{
		g:     g,
		rules: make([]*Rule, 0, len(g.rules)+1),
		byLHS: make(map[Symbol][]*Rule),
	}
	for _, r := range g.rules {
		rhs := append(r.RHS(), EndMarker)
		a.add(newRule(r.Serial, r.LHS, rhs, g.symbols))
	}
	a.add(newRule(len(g.rules), AugmentedStart, []Symbol{g.start, EndMarker}, g.symbols))
	a.nonterms = g.symbols.Nonterminals()
	tracer().Debugf("augmented grammar %q has %d rules", g.Name, len(a.rules))
	return a
}

func (a *Augmented) add(r *Rule) {
	a.rules = append(a.rules, r)
	a.byLHS[r.LHS] = append(a.byLHS[r.LHS], r)
}

// Grammar returns the user grammar a has been built from.
func (a *Augmented) Grammar() *Grammar {
	return a.g
}

// Symbols returns the symbol table, shared with the user grammar.
func (a *Augmented) Symbols() *SymbolTable {
	return a.g.symbols
}

// Size returns the number of augmented rules, including the start rule.
func (a *Augmented) Size() int {
	return len(a.rules)
}

// Rule returns augmented rule number n, or nil if n is out of range.
func (a *Augmented) Rule(n int) *Rule {
	if n < 0 || n >= len(a.rules) {
		return nil
	}
	return a.rules[n]
}

// StartRule returns the synthetic rule S' ➞ S $.
func (a *Augmented) StartRule() *Rule {
	return a.rules[len(a.rules)-1]
}

// RulesFor returns all rules with left hand side N, in grammar order.
// Clients must not modify the returned slice.
func (a *Augmented) RulesFor(N Symbol) []*Rule {
	return a.byLHS[N]
}

// Nonterminals returns all non-terminals in ID order, AugmentedStart included.
// Clients must not modify the returned slice.
func (a *Augmented) Nonterminals() []Symbol {
	return a.nonterms
}

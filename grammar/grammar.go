package grammar

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// ErrInvalidGrammar is the error wrapped by every grammar validation failure.
var ErrInvalidGrammar = errors.New("invalid grammar")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidGrammar, fmt.Sprintf(format, args...))
}

// Grammar is a context-free grammar: a start symbol and an ordered list of rules.
// Grammars are created by a GrammarBuilder and are immutable afterwards.
type Grammar struct {
	Name    string
	start   Symbol
	rules   []*Rule
	symbols *SymbolTable
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number n, or nil if n is out of range.
func (g *Grammar) Rule(n int) *Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Rules returns the rules of the grammar, in the order they have been defined.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// Symbols returns the symbol table of the grammar.
func (g *Grammar) Symbols() *SymbolTable {
	return g.symbols
}

// SymbolByName finds a symbol by name.
func (g *Grammar) SymbolByName(name string) (Symbol, bool) {
	return g.symbols.Resolve(name)
}

// Terminal returns the terminal with a given name. The second return value is
// false if name is not a terminal of g.
func (g *Grammar) Terminal(name string) (Symbol, bool) {
	sym, ok := g.symbols.Resolve(name)
	if !ok || !g.symbols.IsTerminal(sym) {
		return 0, false
	}
	return sym, true
}

// EachNonTerminal iterates over the user non-terminals in ID order.
func (g *Grammar) EachNonTerminal(mapper func(name string, N Symbol)) {
	for _, N := range g.symbols.Nonterminals() {
		if N != AugmentedStart {
			mapper(g.symbols.Name(N), N)
		}
	}
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Create one with NewGrammarBuilder,
// add rules and then call Grammar() to receive a validated grammar.
type GrammarBuilder struct {
	name  string
	start string
	rules []pendingRule
}

type symref struct {
	name string
	kind Kind
}

type pendingRule struct {
	lhs string
	rhs []symref
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// Start sets the start symbol. If it is not set, the LHS of the first rule
// is the start symbol.
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: name}
}

// RuleBuilder is a builder type for a single rule. It is created by
// GrammarBuilder.LHS(…).
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []symref
}

// N appends a non-terminal to the right hand side of a rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, symref{name: name, kind: Nonterminal})
	return rb
}

// T appends a terminal to the right hand side of a rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, symref{name: name, kind: Terminal})
	return rb
}

// End closes a rule and adds it to the grammar.
func (rb *RuleBuilder) End() {
	rb.gb.rules = append(rb.gb.rules, pendingRule{lhs: rb.lhs, rhs: rb.rhs})
}

// Epsilon closes a rule with an empty right hand side. Symbols added to the
// right hand side before are discarded.
func (rb *RuleBuilder) Epsilon() {
	rb.rhs = nil
	rb.End()
}

// Grammar validates the rules collected so far and returns a grammar.
//
// Symbols are interned in order of first mention. Exact duplicate rules are dropped.
// Errors wrap ErrInvalidGrammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.rules) == 0 {
		return nil, invalid("grammar %q has no rules", gb.name)
	}
	g := &Grammar{
		Name:    gb.name,
		symbols: NewSymbolTable(),
	}
	dupes := treeset.NewWith(RuleComparator)
	var defined, used symset
	for _, pr := range gb.rules {
		lhs, err := gb.intern(g.symbols, symref{name: pr.lhs, kind: Nonterminal})
		if err != nil {
			return nil, err
		}
		defined = defined.add(lhs)
		rhs := make([]Symbol, len(pr.rhs))
		for i, ref := range pr.rhs {
			if rhs[i], err = gb.intern(g.symbols, ref); err != nil {
				return nil, err
			}
			if ref.kind == Nonterminal {
				used = used.add(rhs[i])
			}
		}
		r := newRule(len(g.rules), lhs, rhs, g.symbols)
		if dupes.Contains(r) {
			tracer().Debugf("grammar %q: dropping duplicate rule %v", gb.name, r)
			continue
		}
		dupes.Add(r)
		g.rules = append(g.rules, r)
	}
	for _, N := range g.symbols.Nonterminals() {
		if used.contains(N) && !defined.contains(N) {
			return nil, invalid("non-terminal %q is used, but has no rules", g.symbols.Name(N))
		}
	}
	start := gb.start
	if start == "" {
		start = gb.rules[0].lhs
	}
	S, ok := g.symbols.Resolve(start)
	if !ok || !defined.contains(S) {
		return nil, invalid("start symbol %q has no rules", start)
	}
	g.start = S
	tracer().Debugf("grammar %q: %d rules, %d symbols, start symbol %s", g.Name,
		len(g.rules), g.symbols.Size(), start)
	return g, nil
}

func (gb *GrammarBuilder) intern(symtab *SymbolTable, ref symref) (Symbol, error) {
	if ref.name == "" {
		return 0, invalid("empty symbol name")
	}
	sym, found := symtab.ResolveOrDefine(ref.name, ref.kind)
	if sym.IsReserved() {
		return 0, invalid("symbol name %q is reserved", ref.name)
	}
	if found && symtab.Kind(sym) != ref.kind {
		return 0, invalid("symbol %q used as %s and as %s", ref.name, symtab.Kind(sym), ref.kind)
	}
	return sym, nil
}

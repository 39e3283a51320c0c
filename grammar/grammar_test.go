package grammar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func balanced(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Balanced")
	b.LHS("S").T("a").N("S").T("b").End() // S → a S b
	b.LHS("S").Epsilon()                  // S → ε
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func names(g *Grammar, syms []Symbol) []string {
	n := make([]string, len(syms))
	for i, sym := range syms {
		n[i] = g.Symbols().Name(sym)
	}
	return n
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.grammar")
	defer teardown()
	//
	g := balanced(t)
	g.Dump()
	if g.Size() != 2 {
		t.Fatalf("expected 2 rules, have %d", g.Size())
	}
	if name := g.Symbols().Name(g.Start()); name != "S" {
		t.Errorf("expected start symbol S, is %s", name)
	}
	if diff := cmp.Diff([]string{"a", "S", "b"}, names(g, g.Rule(0).RHS())); diff != "" {
		t.Errorf("unexpected RHS of rule 0 (-want +got):\n%s", diff)
	}
	if !g.Rule(1).IsEpsilon() {
		t.Errorf("expected rule 1 to be an epsilon rule: %v", g.Rule(1))
	}
	if g.Rule(2) != nil {
		t.Errorf("expected rule 2 to be nil")
	}
	// symbols are interned in order of first mention, after the reserved ones
	S, _ := g.SymbolByName("S")
	a, _ := g.SymbolByName("a")
	b, _ := g.SymbolByName("b")
	if diff := cmp.Diff([]Symbol{2, 3, 4}, []Symbol{S, a, b}); diff != "" {
		t.Errorf("unexpected symbol IDs (-want +got):\n%s", diff)
	}
	if _, ok := g.Terminal("S"); ok {
		t.Errorf("S must not be a terminal")
	}
	if _, ok := g.Terminal("a"); !ok {
		t.Errorf("a should be a terminal")
	}
}

func TestExplicitStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("T").T("b").End()
	b.LHS("S").T("a").End()
	b.Start("S")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if name := g.Symbols().Name(g.Start()); name != "S" {
		t.Errorf("expected start symbol S, is %s", name)
	}
	var nonterms []string
	g.EachNonTerminal(func(name string, N Symbol) {
		nonterms = append(nonterms, name)
	})
	if diff := cmp.Diff([]string{"T", "S"}, nonterms); diff != "" {
		t.Errorf("unexpected non-terminals (-want +got):\n%s", diff)
	}
}

func TestDuplicateRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("S").N("S").End()
	b.LHS("S").T("a").End()
	b.LHS("S").N("S").N("S").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 {
		t.Errorf("expected duplicate rule to be dropped, have %d rules", g.Size())
	}
	for i, r := range g.Rules() {
		if r.Serial != i {
			t.Errorf("expected rule %v to have serial %d, has %d", r, i, r.Serial)
		}
	}
}

func TestInvalidGrammars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.grammar")
	defer teardown()
	//
	tests := []struct {
		name  string
		build func(b *GrammarBuilder)
	}{
		{"no rules", func(b *GrammarBuilder) {}},
		{"empty name", func(b *GrammarBuilder) { b.LHS("S").T("").End() }},
		{"reserved end marker", func(b *GrammarBuilder) { b.LHS("S").T("$").End() }},
		{"reserved start", func(b *GrammarBuilder) { b.LHS("S'").T("a").End() }},
		{"kind clash", func(b *GrammarBuilder) {
			b.LHS("S").T("a").End()
			b.LHS("a").T("b").End()
		}},
		{"undefined non-terminal", func(b *GrammarBuilder) { b.LHS("S").N("A").End() }},
		{"undefined start", func(b *GrammarBuilder) {
			b.LHS("S").T("a").End()
			b.Start("X")
		}},
	}
	for _, test := range tests {
		b := NewGrammarBuilder(test.name)
		test.build(b)
		g, err := b.Grammar()
		if err == nil {
			t.Errorf("%s: expected an error, got grammar %v", test.name, g)
			continue
		}
		if !errors.Is(err, ErrInvalidGrammar) {
			t.Errorf("%s: expected error to wrap ErrInvalidGrammar, is %v", test.name, err)
		}
		t.Logf("%s: %v", test.name, err)
	}
}

func TestUnreachableTolerated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("T").T("b").End()
	if _, err := b.Grammar(); err != nil {
		t.Errorf("unreachable non-terminal should be tolerated, got %v", err)
	}
}

func TestCompareRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").End()        // 0
	b.LHS("S").T("a").N("S").End() // 1
	b.LHS("S").N("S").End()        // 2
	b.LHS("A").T("a").End()        // 3
	b.LHS("S").T("a").N("A").End() // 4
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	r := g.Rules()
	if CompareRules(r[0], r[1]) >= 0 {
		t.Errorf("a prefix must sort before its extension: %v vs %v", r[0], r[1])
	}
	if CompareRules(r[2], r[0]) >= 0 { // S has a lower ID than a
		t.Errorf("expected %v < %v", r[2], r[0])
	}
	if CompareRules(r[0], r[3]) >= 0 { // S has a lower ID than A
		t.Errorf("expected LHS to be compared first: %v vs %v", r[0], r[3])
	}
	if CompareRules(r[1], r[4]) >= 0 {
		t.Errorf("expected %v < %v", r[1], r[4])
	}
	clone := newRule(99, r[4].LHS, r[4].RHS(), nil)
	if !clone.Equals(r[4]) || RuleComparator(clone, r[4]) != 0 {
		t.Errorf("expected structural equality of %v and %v", clone, r[4])
	}
	if CompareRules(nil, r[0]) != -1 || CompareRules(r[0], nil) != 1 {
		t.Errorf("nil rules should sort first")
	}
}

func TestAugment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.grammar")
	defer teardown()
	//
	g := balanced(t)
	a := Augment(g)
	a.Dump()
	if a.Size() != g.Size()+1 {
		t.Fatalf("expected %d augmented rules, have %d", g.Size()+1, a.Size())
	}
	for i := 0; i < g.Size(); i++ {
		want := append(g.Rule(i).RHS(), EndMarker)
		if diff := cmp.Diff(want, a.Rule(i).RHS()); diff != "" {
			t.Errorf("rule %d not augmented correctly (-want +got):\n%s", i, diff)
		}
	}
	start := a.StartRule()
	if start.LHS != AugmentedStart {
		t.Errorf("expected start rule LHS to be S', is %v", start)
	}
	if diff := cmp.Diff([]Symbol{g.Start(), EndMarker}, start.RHS()); diff != "" {
		t.Errorf("unexpected start rule (-want +got):\n%s", diff)
	}
	if start.String() != "[S'] ::= [S $]" {
		t.Errorf("unexpected start rule string %q", start.String())
	}
	if !a.Rule(1).IsEpsilon() {
		t.Errorf("augmented epsilon rule should still be an epsilon rule: %v", a.Rule(1))
	}
	S, _ := g.SymbolByName("S")
	if len(a.RulesFor(S)) != 2 || len(a.RulesFor(AugmentedStart)) != 1 {
		t.Errorf("unexpected rule index by LHS")
	}
	if diff := cmp.Diff([]Symbol{AugmentedStart, S}, a.Nonterminals()); diff != "" {
		t.Errorf("unexpected non-terminals (-want +got):\n%s", diff)
	}
	// the user grammar stays untouched
	if g.Rule(0).Len() != 3 {
		t.Errorf("augmentation modified user rule %v", g.Rule(0))
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.grammar")
	defer teardown()
	//
	g1 := balanced(t)
	g2 := balanced(t)
	if g1.Fingerprint() != g2.Fingerprint() {
		t.Errorf("expected equal grammars to have equal fingerprints")
	}
	b := NewGrammarBuilder("Balanced")
	b.LHS("S").T("a").N("S").T("c").End()
	b.LHS("S").Epsilon()
	g3, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g1.Fingerprint() == g3.Fingerprint() {
		t.Errorf("expected different grammars to have different fingerprints")
	}
}

func TestDotted(t *testing.T) {
	g := balanced(t)
	r := g.Rule(0)
	if s := r.Dotted(1); s != "S ➞ a • S b" {
		t.Errorf("unexpected dotted rule %q", s)
	}
	if s := r.Dotted(3); s != "S ➞ a S b •" {
		t.Errorf("unexpected dotted rule %q", s)
	}
	if s := g.Rule(1).Dotted(0); s != "S ➞ •" {
		t.Errorf("unexpected dotted epsilon rule %q", s)
	}
}

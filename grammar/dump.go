package grammar

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Dump is a debugging helper. It traces the rules of g at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %s", g.symbols.Name(g.start))
	dumpRules(g.rules)
	tracer().Debugf("-------------------------------------------------------")
}

// Dump is a debugging helper. It traces the rules of a at debug level.
func (a *Augmented) Dump() {
	tracer().Debugf("--- %s (augmented) --------------------------------", a.g.Name)
	dumpRules(a.rules)
	tracer().Debugf("-------------------------------------------------------")
}

func dumpRules(rules []*Rule) {
	for i, r := range rules {
		tracer().Debugf("%3d: %s", i, r)
	}
}

// Fingerprint returns a hash of the structure of g: its start symbol and
// its rules, by symbol names. Grammars with equal rule lists (in equal order)
// and equal start symbols have equal fingerprints, regardless of their names.
func (g *Grammar) Fingerprint() string {
	type rule struct {
		LHS string
		RHS []string
	}
	shape := struct {
		Start string
		Rules []rule
	}{
		Start: g.symbols.Name(g.start),
		Rules: make([]rule, len(g.rules)),
	}
	for i, r := range g.rules {
		shape.Rules[i].LHS = g.symbols.Name(r.LHS)
		shape.Rules[i].RHS = make([]string, len(r.rhs))
		for j, sym := range r.rhs {
			shape.Rules[i].RHS[j] = g.symbols.Name(sym)
		}
	}
	h, err := structhash.Hash(shape, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %q: %v", g.Name, err)
		return fmt.Sprintf("%s@%p", g.Name, g)
	}
	return h
}

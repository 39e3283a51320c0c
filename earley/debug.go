package earley

import (
	"bytes"
	"sort"

	"github.com/npillmayer/cfgrec/grammar"
)

func dumpColumn(c *chart, pos uint64, symbols *grammar.SymbolTable) {
	tracer().Debugf("--- Column %04d ------------------------------------", pos)
	for _, sym := range expectedSymbols(c, pos) {
		tracer().Debugf("%6s: %s", symbols.Name(sym), situationSetString(c.expecting(pos, sym), pos))
	}
}

// expectedSymbols returns the keys of column pos in ascending order.
func expectedSymbols(c *chart, pos uint64) []grammar.Symbol {
	syms := make([]grammar.Symbol, 0, len(c.columns[pos]))
	for sym := range c.columns[pos] {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

func situationSetString(situations []Situation, pos uint64) string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for _, s := range situations {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(s.rule.Dotted(s.Dot))
		b.WriteString(" ")
		b.WriteString(s.Span(pos).String())
	}
	b.WriteString(" }")
	return b.String()
}

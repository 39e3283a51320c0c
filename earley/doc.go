/*
Package earley implements an Earley recognizer for context-free grammars.

An Earley recognizer decides whether an input word is derivable from the start
symbol of a grammar. It accepts every context-free grammar, including
ambiguous, left-recursive and epsilon-producing ones, and runs in at most cubic
time in the length of the input.

The recognizer fills a chart with one column per input position. Every column
holds "situations" (Earley items): a rule of the augmented grammar, a dot
marking how much of the rule's right hand side has been matched, and the origin
column where matching began. Situations of a column are indexed by the symbol
they expect next, which lets prediction, scanning and completion find their
candidates by direct lookup.

Usage

	b := grammar.NewGrammarBuilder("Balanced")
	b.LHS("S").T("a").N("S").T("b").End()  // S ➞ a S b
	b.LHS("S").Epsilon()                   // S ➞ ε
	g, err := b.Grammar()
	…
	r := earley.NewRecognizer(g)
	r.RecognizeString("aabb")              // true
	r.RecognizeString("aab")               // false

A Recognizer is immutable. Every call allocates its own chart, so clients may
call a Recognizer from several goroutines at once. RecognizeAll does just that
for a batch of words.

Further Reading

A very approachable tutorial on Earley recognizers is
http://loup-vaillant.fr/tutorials/earley-parsing/recogniser.

"Parsing Techniques" by Dick Grune and Ceriel J.H. Jacobs
(https://dickgrune.com/Books/PTAPG_2nd_Edition/), Section 7.2, covers the algorithm
in depth.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgrec.earley'.
func tracer() tracing.Trace {
	return tracing.Select("cfgrec.earley")
}

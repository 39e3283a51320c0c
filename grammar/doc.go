/*
Package grammar implements symbols, rules and context-free grammars for the
recognizer of package earley.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Every terminal
stands for exactly one position of an input word. Grammars may contain
epsilon-productions.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").T("a").N("S").T("b").End()  // S  ->  a S b
    b.LHS("S").Epsilon()                   // S  ->
    g, err := b.Grammar()

The start symbol is the left hand side of the first rule, unless clients set it
with b.Start(…). This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [a S b]
   1: [S] ::= []

Symbols

Symbol names are interned into small integer IDs, kept in a SymbolTable owned by
the grammar. Two IDs are reserved and never handed out for user symbols:
EndMarker, which terminates every right hand side of an augmented grammar, and
AugmentedStart, the left hand side of the synthetic start rule.

Augmentation

Recognizers do not work on the user grammar directly, but on its augmented form:

   a := grammar.Augment(g)
   a.Dump()

   0: [S]  ::= [a S b $]
   1: [S]  ::= [$]
   2: [S'] ::= [S $]

The augmented grammar is immutable and may be shared between goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgrec.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cfgrec.grammar")
}

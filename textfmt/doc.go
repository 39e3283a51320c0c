/*
Package textfmt reads grammars and recognition problems in a simple line
oriented text format:

    2 2 3          # non-terminals, terminals, rules
    SA             # non-terminals, one letter each
    ab             # terminals, one character each
    S -> aSb
    S -> A
    A ->           # empty derivation
    S              # start symbol
    3              # number of words
    ab aabb aab

(Comments are not part of the format.) Non-terminals are the upper case letters
A to Z. Terminals are any other characters except '$' and '&', which are
reserved. A derivation is a sequence of declared symbols, written without
blanks, and may be empty. Words are separated by white space, with each
character standing for one terminal.

ReadGrammar reads everything up to and including the start symbol, ReadProblem
reads the words as well. Answers are written one per line as YES or NO.

Input is tokenized with lexmachine, through package scanner/lexmach.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package textfmt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgrec.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cfgrec.scanner")
}

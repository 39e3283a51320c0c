/*
Package scanner defines an interface for scanners of the input layer, which
reads grammar definitions and query words.

An adapter for lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/cfgrec"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgrec.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cfgrec.scanner")
}

// EOF is identical to text/scanner.EOF.
const EOF = scanner.EOF

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() cfgrec.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   cfgrec.TokType
	lexeme string
	Val    interface{}
	span   cfgrec.Span
}

var _ cfgrec.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ cfgrec.TokType, lexeme string, span cfgrec.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() cfgrec.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() cfgrec.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("<%d|%q>", t.kind, t.lexeme)
}

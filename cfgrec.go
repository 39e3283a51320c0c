package cfgrec

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to the input layer to define them.
type TokType int

// Tokens represent input tokens. They are produced by the scanners of the input
// layer, which reads grammar definitions and query words.
//
// An example would be a token for a grammar rule arrow:
//
//    TokType = Arrow       // identifier for this kind of tokens (application specific)
//    Lexeme  = "->"        // lexeme how it appeared in the input stream
//    Value   = nil         // no value attached
//    Span    = 2…4         // occured from position 2 in the input line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. For every
// Earley situation, the span covers the input from the situation's origin
// to the chart column it lives in. A span denotes a start position and the
// position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/cfgrec"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.scanner")
	defer teardown()
	//
	tok := MakeDefaultToken(7, "->", cfgrec.Span{2, 4})
	if tok.TokType() != 7 || tok.Lexeme() != "->" || tok.Value() != nil {
		t.Errorf("unexpected token %v", tok)
	}
	if tok.Span().Len() != 2 {
		t.Errorf("expected token span of length 2, is %v", tok.Span())
	}
	if tok.String() != `<7|"->">` {
		t.Errorf("unexpected token string %q", tok.String())
	}
	eof := MakeDefaultToken(EOF, "", cfgrec.Span{})
	if eof.String() != "<EOF>" || !eof.Span().IsNull() {
		t.Errorf("unexpected EOF token %v", eof)
	}
	LogError(errors.New("test error"))
}

package textfmt

import (
	"fmt"
	"sync"

	"github.com/npillmayer/cfgrec"
	"github.com/npillmayer/cfgrec/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token types of the text format.
const (
	tokWord cfgrec.TokType = iota + 1
	tokArrow
	tokNewline
)

var tokenIds = map[string]int{
	"WORD":    int(tokWord),
	"ARROW":   int(tokArrow),
	"NEWLINE": int(tokNewline),
}

var (
	lexerOnce sync.Once // monitors one-time creation of the DFA
	lmAdapter *lexmach.LMAdapter
	lmErr     error
)

// Lexer returns the lexmachine adapter for the text format. The DFA is compiled
// once and shared.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		// ARROW has to be added before WORD, which matches "->" as well
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`\-\>`), makeToken("ARROW"))
			lexer.Add([]byte(`\r?\n`), makeToken("NEWLINE"))
			lexer.Add([]byte(`[^ \t\r\n]+`), makeToken("WORD"))
			lexer.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
		}
		lmAdapter, lmErr = lexmach.NewLMAdapter(init, nil, nil, tokenIds)
	})
	return lmAdapter, lmErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}

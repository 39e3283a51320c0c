package textfmt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/cfgrec"
	"github.com/npillmayer/cfgrec/grammar"
	"github.com/npillmayer/cfgrec/scanner"
)

// ErrSyntax is the error returned for malformed input, wrapped with the line
// it occurred in. Well-formed input describing an invalid grammar results in
// an error wrapping grammar.ErrInvalidGrammar instead.
var ErrSyntax = errors.New("syntax error")

// Reserved characters, not allowed in terminals, derivations and words.
const (
	endChar   = '$'
	startChar = '&'
)

// Problem is a grammar together with the words to recognize.
type Problem struct {
	Grammar *grammar.Grammar
	Words   []string
}

// ReadGrammar reads a grammar: the header line with the number of
// non-terminals, terminals and rules, the alphabets, the rules and the start
// symbol. Anything following the start symbol is not read.
func ReadGrammar(r io.Reader) (*grammar.Grammar, error) {
	p, err := newParser(r)
	if err != nil {
		return nil, err
	}
	return p.grammar()
}

// ReadProblem reads a grammar, followed by the number of words and the words.
func ReadProblem(r io.Reader) (*Problem, error) {
	p, err := newParser(r)
	if err != nil {
		return nil, err
	}
	g, err := p.grammar()
	if err != nil {
		return nil, err
	}
	n, err := p.number("number of words")
	if err != nil {
		return nil, err
	}
	problem := &Problem{Grammar: g, Words: make([]string, 0, n)}
	for i := 0; i < n; i++ {
		w, err := p.word("word")
		if err != nil {
			return nil, err
		}
		for _, ch := range w {
			if isNonterminal(ch) || isReserved(ch) {
				return nil, p.errorf(ErrSyntax, "incorrect word %q", w)
			}
		}
		problem.Words = append(problem.Words, w)
	}
	tracer().Debugf("read %d words for grammar %q", n, g.Name)
	return problem, nil
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	scan    scanner.Tokenizer
	tok     cfgrec.Token // lookahead
	line    int          // line of the lookahead
	scanErr error        // first error reported by the scanner
}

func newParser(r io.Reader) (*parser, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lm.Scanner(string(input))
	if err != nil {
		return nil, err
	}
	p := &parser{scan: sc, line: 1}
	sc.SetErrorHandler(func(e error) {
		if p.scanErr == nil {
			p.scanErr = e
		}
	})
	p.tok = sc.NextToken()
	return p, nil
}

func (p *parser) next() {
	if p.tok.TokType() == tokNewline {
		p.line++
	}
	p.tok = p.scan.NextToken()
}

func (p *parser) skipNewlines() {
	for p.tok.TokType() == tokNewline {
		p.next()
	}
}

func (p *parser) errorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", sentinel, p.line, fmt.Sprintf(format, args...))
}

// word reads the next word, which may be on a later line.
func (p *parser) word(what string) (string, error) {
	p.skipNewlines()
	if p.scanErr != nil {
		return "", p.errorf(ErrSyntax, "%v", p.scanErr)
	}
	switch p.tok.TokType() {
	case tokWord, tokArrow: // "->" may be a pair of terminals
		w := p.tok.Lexeme()
		p.next()
		return w, nil
	case scanner.EOF:
		return "", p.errorf(ErrSyntax, "unexpected end of input, expected %s", what)
	}
	return "", p.errorf(ErrSyntax, "unexpected %q, expected %s", p.tok.Lexeme(), what)
}

func (p *parser) number(what string) (int, error) {
	w, err := p.word(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(w)
	if err != nil || n < 0 {
		return 0, p.errorf(ErrSyntax, "%s must be a non-negative number, is %q", what, w)
	}
	return n, nil
}

// rule reads "<lhs> -> <derivation>", where the derivation may be empty.
func (p *parser) rule() (lhs rune, rhs string, err error) {
	w, err := p.word("left hand side of rule")
	if err != nil {
		return 0, "", err
	}
	runes := []rune(w)
	if len(runes) != 1 || !isNonterminal(runes[0]) {
		return 0, "", p.errorf(grammar.ErrInvalidGrammar, "incorrect non-terminal %q", w)
	}
	if p.tok.TokType() != tokArrow {
		return 0, "", p.errorf(ErrSyntax, "expected -> after %q", w)
	}
	p.next()
	switch p.tok.TokType() {
	case tokNewline, scanner.EOF:
		return runes[0], "", nil
	}
	// a derivation consisting of the terminals '-' and '>' is scanned as an arrow
	rhs = p.tok.Lexeme()
	p.next()
	return runes[0], rhs, nil
}

// alphabet reads a declaration line of n symbols.
func (p *parser) alphabet(n int, what string, valid func(rune) bool) (map[rune]bool, error) {
	symbols := make(map[rune]bool, n)
	if n == 0 {
		return symbols, nil
	}
	w, err := p.word(what)
	if err != nil {
		return nil, err
	}
	for _, ch := range w {
		if !valid(ch) {
			return nil, p.errorf(grammar.ErrInvalidGrammar, "incorrect %s %q", what, ch)
		}
		symbols[ch] = true
	}
	if len([]rune(w)) != n {
		return nil, p.errorf(ErrSyntax, "expected %d %s, have %q", n, what, w)
	}
	return symbols, nil
}

func (p *parser) grammar() (*grammar.Grammar, error) {
	ntCount, err := p.number("number of non-terminals")
	if err != nil {
		return nil, err
	}
	tCount, err := p.number("number of terminals")
	if err != nil {
		return nil, err
	}
	ruleCount, err := p.number("number of rules")
	if err != nil {
		return nil, err
	}
	nonterms, err := p.alphabet(ntCount, "non-terminals", isNonterminal)
	if err != nil {
		return nil, err
	}
	terms, err := p.alphabet(tCount, "terminals", func(ch rune) bool {
		return !isNonterminal(ch) && !isReserved(ch)
	})
	if err != nil {
		return nil, err
	}
	b := grammar.NewGrammarBuilder("G")
	for i := 0; i < ruleCount; i++ {
		lhs, rhs, err := p.rule()
		if err != nil {
			return nil, err
		}
		if !nonterms[lhs] {
			return nil, p.errorf(grammar.ErrInvalidGrammar, "undeclared non-terminal %q", lhs)
		}
		rb := b.LHS(string(lhs))
		if rhs == "" {
			rb.Epsilon()
			continue
		}
		for _, ch := range rhs {
			switch {
			case isReserved(ch):
				return nil, p.errorf(grammar.ErrInvalidGrammar, "incorrect derivation %q", rhs)
			case nonterms[ch]:
				rb.N(string(ch))
			case terms[ch]:
				rb.T(string(ch))
			default:
				return nil, p.errorf(grammar.ErrInvalidGrammar, "undeclared symbol %q in derivation %q", ch, rhs)
			}
		}
		rb.End()
	}
	w, err := p.word("start symbol")
	if err != nil {
		return nil, err
	}
	start := []rune(w)
	if len(start) != 1 || !isNonterminal(start[0]) || !nonterms[start[0]] {
		return nil, p.errorf(grammar.ErrInvalidGrammar, "incorrect start %q", w)
	}
	b.Start(w)
	g, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", p.line, err)
	}
	tracer().Debugf("read grammar with %d rules, start symbol %s", g.Size(), w)
	return g, nil
}

func isNonterminal(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isReserved(ch rune) bool {
	return ch == endChar || ch == startChar
}

// --- Answers ---------------------------------------------------------------

// Answer returns the textual answer for a recognition result.
func Answer(accept bool) string {
	if accept {
		return "YES"
	}
	return "NO"
}

// WriteAnswers writes one answer per line.
func WriteAnswers(w io.Writer, answers []bool) error {
	var b strings.Builder
	for _, accept := range answers {
		b.WriteString(Answer(accept))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

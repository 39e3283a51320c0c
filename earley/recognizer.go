package earley

import (
	"context"
	"fmt"

	"github.com/npillmayer/cfgrec/grammar"
	"github.com/npillmayer/schuko/gconf"
	"golang.org/x/sync/errgroup"
)

// Recognizer is an Earley recognizer for a grammar. Create one with NewRecognizer.
//
// A Recognizer holds nothing but the augmented grammar, which is read-only. It is
// therefore safe for concurrent use.
type Recognizer struct {
	ga        *grammar.Augmented
	dumpChart bool // trace every closed column
}

// NewRecognizer creates a recognizer for grammar g. g has to be a valid
// grammar, as returned by a grammar.GrammarBuilder.
func NewRecognizer(g *grammar.Grammar) *Recognizer {
	ga := grammar.Augment(g)
	ga.Dump()
	return &Recognizer{ga: ga, dumpChart: configFlag("earley-dump-chart")}
}

// configFlag reads a boolean configuration key. Without an initialized global
// configuration every flag is off.
func configFlag(key string) (on bool) {
	defer func() {
		if r := recover(); r != nil {
			on = false
		}
	}()
	return gconf.GetBool(key)
}

// Grammar returns the augmented grammar a recognizer works on.
func (r *Recognizer) Grammar() *grammar.Augmented {
	return r.ga
}

// Recognize decides whether word is derivable from the start symbol of the grammar.
// word is a sequence of terminals of the grammar. If it contains any other
// symbol, Recognize returns false.
func (r *Recognizer) Recognize(word []grammar.Symbol) bool {
	accept, _ := r.RecognizeContext(context.Background(), word)
	return accept
}

// RecognizeString is a convenience method for grammars with single-character
// terminal names. It maps every rune of s to the terminal of that name and
// recognizes the resulting word. A rune which is not a terminal of the grammar
// is never derivable.
func (r *Recognizer) RecognizeString(s string) bool {
	word, ok := r.Word(s)
	if !ok {
		return false
	}
	return r.Recognize(word)
}

// Word maps the runes of s to terminals, by name. It returns false if a rune
// is not a terminal of the grammar.
func (r *Recognizer) Word(s string) ([]grammar.Symbol, bool) {
	word := make([]grammar.Symbol, 0, len(s))
	for _, ch := range s {
		t, ok := r.ga.Grammar().Terminal(string(ch))
		if !ok {
			tracer().Debugf("%q is not a terminal of grammar %q", ch, r.ga.Grammar().Name)
			return nil, false
		}
		word = append(word, t)
	}
	return word, true
}

// RecognizeContext is Recognize with a deadline. ctx is checked before every
// round of prediction and completion. If ctx is done, RecognizeContext stops
// and returns false together with an error wrapping ctx.Err().
func (r *Recognizer) RecognizeContext(ctx context.Context, word []grammar.Symbol) (bool, error) {
	for i, sym := range word {
		if !r.ga.Symbols().IsTerminal(sym) {
			tracer().Debugf("word contains non-terminal symbol %s at position %d",
				r.ga.Symbols().Name(sym), i)
			return false, nil
		}
	}
	c, err := r.fill(ctx, word)
	if err != nil {
		return false, err
	}
	n := uint64(len(word))
	accept := c.contains(n, newSituation(r.ga.StartRule(), 0, 1)) // [S' ➞ S • $, 0] in column n
	tracer().Infof("grammar %q: word of length %d accepted = %v", r.ga.Grammar().Name, n, accept)
	return accept, nil
}

// fill creates a chart for word and fills it column by column. If a column
// stays empty after scanning, fill stops early; all later columns would stay
// empty as well.
func (r *Recognizer) fill(ctx context.Context, word []grammar.Symbol) (*chart, error) {
	c := newChart(len(word))
	c.add(0, newSituation(r.ga.StartRule(), 0, 0)) // [S' ➞ • S $, 0] in column 0, under S
	if err := r.closeColumn(ctx, c, 0); err != nil {
		return nil, err
	}
	for i := range word {
		pos := uint64(i)
		r.scan(c, pos, word)
		if c.size(pos+1) == 0 {
			tracer().Debugf("no situation expects %s at position %d, rejecting",
				r.ga.Symbols().Name(word[i]), i)
			break
		}
		if err := r.closeColumn(ctx, c, pos+1); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// closeColumn runs prediction and completion on column pos until neither adds
// a situation. Afterwards no situation derivable without consuming more input is
// missing from the column.
func (r *Recognizer) closeColumn(ctx context.Context, c *chart, pos uint64) error {
	rounds := 0
	for changed := true; changed; rounds++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("earley: recognition aborted at column %d: %w", pos, err)
		}
		predicted := r.predict(c, pos)
		completed := r.complete(c, pos)
		changed = predicted || completed
	}
	tracer().Debugf("column %d closed after %d rounds, %d situations", pos, rounds, c.size(pos))
	if r.dumpChart {
		dumpColumn(c, pos, r.ga.Symbols())
	}
	return nil
}

// RecognizeAll recognizes a batch of words concurrently, each run with a chart of
// its own. At most limit runs are active at a time; limit ≤ 0 means no limit.
// Results are in the order of words. If ctx is done, RecognizeAll returns the
// first error encountered.
func (r *Recognizer) RecognizeAll(ctx context.Context, words [][]grammar.Symbol, limit int) ([]bool, error) {
	results := make([]bool, len(words))
	group, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	for i, word := range words {
		i, word := i, word
		group.Go(func() error {
			accept, err := r.RecognizeContext(gctx, word)
			results[i] = accept
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package textfmt

import (
	"context"

	"github.com/npillmayer/cfgrec/earley"
	"github.com/npillmayer/cfgrec/grammar"
)

// Answers recognizes the words of a problem and returns the results in input
// order. With parallel > 1, up to parallel words are recognized concurrently.
// A word containing a character which is not a terminal of the grammar is not
// derivable.
func (p *Problem) Answers(ctx context.Context, parallel int) ([]bool, error) {
	r := earley.NewRecognizer(p.Grammar)
	answers := make([]bool, len(p.Words))
	if parallel <= 1 {
		for i, w := range p.Words {
			word, ok := r.Word(w)
			if !ok {
				continue
			}
			accept, err := r.RecognizeContext(ctx, word)
			if err != nil {
				return nil, err
			}
			answers[i] = accept
		}
		return answers, nil
	}
	var words [][]grammar.Symbol
	var index []int // index of words[k] in p.Words
	for i, w := range p.Words {
		if word, ok := r.Word(w); ok {
			words = append(words, word)
			index = append(index, i)
		}
	}
	results, err := r.RecognizeAll(ctx, words, parallel)
	if err != nil {
		return nil, err
	}
	for k, accept := range results {
		answers[index[k]] = accept
	}
	return answers, nil
}

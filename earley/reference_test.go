package earley

import (
	"testing"

	"github.com/npillmayer/cfgrec/grammar"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// derivable decides membership by brute force: derives[N][i][j] holds if
// non-terminal N derives word[i:j]. The table is computed as a least fixpoint.
func derivable(g *grammar.Grammar, word []grammar.Symbol) bool {
	n := len(word)
	derives := make(map[grammar.Symbol][][]bool)
	for _, N := range g.Symbols().Nonterminals() {
		tab := make([][]bool, n+1)
		for i := range tab {
			tab[i] = make([]bool, n+1)
		}
		derives[N] = tab
	}
	// matches reports whether rhs derives word[i:j]
	var matches func(rhs []grammar.Symbol, i, j int) bool
	matches = func(rhs []grammar.Symbol, i, j int) bool {
		if len(rhs) == 0 {
			return i == j
		}
		sym := rhs[0]
		if g.Symbols().IsTerminal(sym) {
			return i < j && word[i] == sym && matches(rhs[1:], i+1, j)
		}
		for k := i; k <= j; k++ {
			if derives[sym][i][k] && matches(rhs[1:], k, j) {
				return true
			}
		}
		return false
	}
	for changed := true; changed; {
		changed = false
		for _, rule := range g.Rules() {
			for i := 0; i <= n; i++ {
				for j := i; j <= n; j++ {
					if !derives[rule.LHS][i][j] && matches(rule.RHS(), i, j) {
						derives[rule.LHS][i][j] = true
						changed = true
					}
				}
			}
		}
	}
	return derives[g.Start()][0][n]
}

// allWords returns every word over alphabet up to length maxlen, the empty
// word included.
func allWords(alphabet string, maxlen int) []string {
	words := []string{""}
	last := []string{""}
	for l := 1; l <= maxlen; l++ {
		var next []string
		for _, w := range last {
			for _, ch := range alphabet {
				next = append(next, w+string(ch))
			}
		}
		words = append(words, next...)
		last = next
	}
	return words
}

func TestAgainstReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgrec.earley")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelError)
	grammars := []*grammar.Grammar{
		makeGrammar(t, "Balanced", "S → aSb", "S →"),
		makeGrammar(t, "Concat", "S → SS", "S → a", "S → b"),
		makeGrammar(t, "Dyck", "S → SS", "S → aSb", "S →"),
		makeGrammar(t, "Palindromes", "S → aSa", "S → bSb", "S → a", "S → b", "S →"),
		makeGrammar(t, "EqualCount", "S → aB", "S → bA", "A → a", "A → aS", "A → bAA",
			"B → b", "B → bS", "B → aBB"),
		makeGrammar(t, "Nullables", "S → ABA", "A → aA", "A →", "B → Bb", "B → A"),
		makeGrammar(t, "HiddenLeftRec", "S → ASb", "S → a", "A →"),
	}
	for _, g := range grammars {
		r := NewRecognizer(g)
		for _, input := range allWords("ab", 6) {
			word, ok := r.Word(input)
			if !ok { // grammar does not use every letter
				continue
			}
			if want, got := derivable(g, word), r.Recognize(word); want != got {
				t.Errorf("grammar %s, word %q: expected accept=%v, got %v", g.Name, input, want, got)
			}
		}
	}
}

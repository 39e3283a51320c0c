package earley

// predict expands situations waiting on a non-terminal N in column pos:
// for every rule N ➞ γ it adds the situation [N ➞ • γ, pos] to column pos.
// All non-terminals are considered, including the augmented start symbol.
//
// predict returns true if a situation has been added.
func (r *Recognizer) predict(c *chart, pos uint64) bool {
	changed := false
	for _, N := range r.ga.Nonterminals() {
		if !c.hasWaiters(pos, N) {
			continue
		}
		for _, rule := range r.ga.RulesFor(N) {
			if c.add(pos, newSituation(rule, pos, 0)) {
				changed = true
			}
		}
	}
	return changed
}

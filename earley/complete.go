package earley

import (
	"github.com/npillmayer/cfgrec/grammar"
)

// complete handles all situations of column pos which have matched their
// whole right hand side. For each such [B ➞ γ •, k], every situation in column k
// waiting for B is advanced over B and added to column pos.
//
// Column k may be column pos itself (for epsilon derivations), thus complete
// iterates over snapshots.
//
// complete returns true if a situation has been added.
func (r *Recognizer) complete(c *chart, pos uint64) bool {
	changed := false
	for _, done := range c.expecting(pos, grammar.EndMarker) {
		B := done.rule.LHS
		for _, waiting := range c.expecting(done.Origin, B) {
			if c.add(pos, waiting.Advance()) {
				changed = true
			}
		}
	}
	return changed
}

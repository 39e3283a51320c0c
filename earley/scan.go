package earley

import (
	"fmt"

	"github.com/npillmayer/cfgrec/grammar"
)

// scan consumes input symbol word[pos]: every situation in column pos expecting
// it is advanced over it and added to column pos+1. scan is the only
// operation reading the input and the only one writing to another column.
//
// If no situation expects word[pos], scan is a no-op and all subsequent
// columns will stay empty.
func (r *Recognizer) scan(c *chart, pos uint64, word []grammar.Symbol) {
	if pos >= uint64(len(word)) {
		panic(fmt.Sprintf("earley: scan at position %d beyond input of length %d", pos, len(word)))
	}
	for _, s := range c.expecting(pos, word[pos]) {
		c.add(pos+1, s.Advance())
	}
}

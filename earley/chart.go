package earley

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cfgrec/grammar"
)

// A column maps the symbol a situation expects next to the set of situations
// expecting it. Completed situations are stored under the end marker.
type column map[grammar.Symbol]*treeset.Set

// chart is the dynamic programming table of a single recognizer run.
// It holds one column per input position, plus one for the position behind
// the last input symbol. Charts grow by insertion only.
type chart struct {
	columns []column
}

func newChart(wordlen int) *chart {
	c := &chart{columns: make([]column, wordlen+1)}
	for i := range c.columns {
		c.columns[i] = column{}
	}
	return c
}

// add inserts situation s into column pos, keyed by the symbol s expects next.
// It returns false if s was already present.
func (c *chart) add(pos uint64, s Situation) bool {
	col := c.columns[pos]
	next := s.Next()
	set, ok := col[next]
	if !ok {
		set = treeset.NewWith(compareSituations)
		col[next] = set
	}
	if set.Contains(s) {
		return false
	}
	set.Add(s)
	return true
}

// contains checks if situation s is present in column pos.
func (c *chart) contains(pos uint64, s Situation) bool {
	set, ok := c.columns[pos][s.Next()]
	return ok && set.Contains(s)
}

// expecting returns a snapshot of the situations in column pos which
// expect symbol sym next. Callers may add to the chart while iterating
// over the snapshot.
func (c *chart) expecting(pos uint64, sym grammar.Symbol) []Situation {
	set, ok := c.columns[pos][sym]
	if !ok {
		return nil
	}
	situations := make([]Situation, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		situations = append(situations, it.Value().(Situation))
	}
	return situations
}

// hasWaiters is true if a situation in column pos expects sym next.
func (c *chart) hasWaiters(pos uint64, sym grammar.Symbol) bool {
	set, ok := c.columns[pos][sym]
	return ok && !set.Empty()
}

// size counts the situations in column pos.
func (c *chart) size(pos uint64) int {
	n := 0
	for _, set := range c.columns[pos] {
		n += set.Size()
	}
	return n
}

// length returns the number of columns.
func (c *chart) length() int {
	return len(c.columns)
}

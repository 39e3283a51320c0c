package grammar

import (
	"fmt"
)

// Symbol is an interned grammar symbol. Symbols are small integers, handed out
// by a SymbolTable in order of first mention.
type Symbol int32

// Reserved symbols. User symbols start at firstUserSymbol.
const (
	EndMarker       Symbol = 0 // end-of-production marker
	AugmentedStart  Symbol = 1 // synthetic start symbol of an augmented grammar
	firstUserSymbol Symbol = 2
)

// Display names of the reserved symbols. They are not available as names for
// user symbols.
const (
	EndMarkerName      = "$"
	AugmentedStartName = "S'"
)

// Kind is the category of a symbol.
type Kind int8

// Symbol kinds.
const (
	Undefined Kind = iota
	Terminal
	Nonterminal
	Marker // the end-of-production marker
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Nonterminal:
		return "non-terminal"
	case Marker:
		return "marker"
	}
	return "undefined"
}

// IsReserved is true for the sentinel symbols EndMarker and AugmentedStart.
func (sym Symbol) IsReserved() bool {
	return sym < firstUserSymbol
}

// === Symbol Tables =========================================================

// SymbolTable interns symbol names. It is map-like in one direction (name → ID)
// and slice-like in the other (ID → name, kind).
//
// Symbol tables are filled by the grammar builder and are read-only afterwards.
type SymbolTable struct {
	ids   map[string]Symbol
	names []string
	kinds []Kind
}

// NewSymbolTable creates a symbol table which contains the reserved symbols only.
func NewSymbolTable() *SymbolTable {
	symtab := &SymbolTable{
		ids:   make(map[string]Symbol),
		names: []string{EndMarkerName, AugmentedStartName},
		kinds: []Kind{Marker, Nonterminal},
	}
	symtab.ids[EndMarkerName] = EndMarker
	symtab.ids[AugmentedStartName] = AugmentedStart
	return symtab
}

// Resolve checks for a symbol in the table.
// Returns the symbol and true, or false if the name is unknown.
func (t *SymbolTable) Resolve(name string) (Symbol, bool) {
	sym, ok := t.ids[name]
	return sym, ok
}

// ResolveOrDefine finds a symbol in the table, inserts a new one if not found.
// Returns the symbol and a flag, signalling wether the symbol
// has already been present. The kind of an existing symbol is not changed.
func (t *SymbolTable) ResolveOrDefine(name string, kind Kind) (Symbol, bool) {
	if sym, ok := t.ids[name]; ok {
		return sym, true
	}
	sym := Symbol(len(t.names))
	t.names = append(t.names, name)
	t.kinds = append(t.kinds, kind)
	t.ids[name] = sym
	return sym, false
}

// Name returns the name of a symbol. Unknown symbols are printed by ID.
func (t *SymbolTable) Name(sym Symbol) string {
	if sym < 0 || int(sym) >= len(t.names) {
		return fmt.Sprintf("<sym %d>", sym)
	}
	return t.names[sym]
}

// Kind returns the kind of a symbol, or Undefined for unknown symbols.
func (t *SymbolTable) Kind(sym Symbol) Kind {
	if sym < 0 || int(sym) >= len(t.kinds) {
		return Undefined
	}
	return t.kinds[sym]
}

// IsTerminal is true if sym is a user terminal.
func (t *SymbolTable) IsTerminal(sym Symbol) bool {
	return t.Kind(sym) == Terminal
}

// IsNonterminal is true if sym is a non-terminal, including AugmentedStart.
func (t *SymbolTable) IsNonterminal(sym Symbol) bool {
	return t.Kind(sym) == Nonterminal
}

// Size counts the symbols in a symbol table, including the reserved ones.
func (t *SymbolTable) Size() int {
	return len(t.names)
}

// Each iterates over each symbol in the table in ID order, executing a mapper function.
func (t *SymbolTable) Each(mapper func(Symbol, string, Kind)) {
	for i, name := range t.names {
		mapper(Symbol(i), name, t.kinds[i])
	}
}

// Terminals returns the user terminals in ID order.
func (t *SymbolTable) Terminals() []Symbol {
	return t.ofKind(Terminal)
}

// Nonterminals returns the non-terminals in ID order, AugmentedStart included.
func (t *SymbolTable) Nonterminals() []Symbol {
	return t.ofKind(Nonterminal)
}

func (t *SymbolTable) ofKind(k Kind) []Symbol {
	syms := make([]Symbol, 0, len(t.kinds))
	for i, kind := range t.kinds {
		if kind == k {
			syms = append(syms, Symbol(i))
		}
	}
	return syms
}

package table

import (
	"fmt"
	"strings"
	"sync"

	"semantica/internal/semantics/symbols"
	"semantica/internal/source"
)

// DefaultCapacity is the symbol limit used when no configuration overrides it
const DefaultCapacity = 1000

// SymbolTable holds the symbols of one compilation unit in declaration order.
// It is append-only: symbols are never updated or removed.
type SymbolTable struct {
	mu       sync.Mutex
	symbols  []symbols.Symbol
	index    map[string]int
	capacity int
}

var _ symbols.Table = (*SymbolTable)(nil)

// NewSymbolTable creates an empty table. A capacity <= 0 means unbounded.
func NewSymbolTable(capacity int) *SymbolTable {
	if capacity < 0 {
		capacity = 0
	}
	return &SymbolTable{
		symbols:  make([]symbols.Symbol, 0),
		index:    make(map[string]int),
		capacity: capacity,
	}
}

// Declare adds a symbol to the table
func (st *SymbolTable) Declare(name, typ string) (*symbols.Symbol, error) {
	return st.DeclareAt(name, typ, nil)
}

// DeclareAt is Declare with the location of the declaring node attached
func (st *SymbolTable) DeclareAt(name, typ string, loc *source.Location) (*symbols.Symbol, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.index[name]; exists {
		return nil, &DuplicateDeclarationError{Name: name}
	}
	if st.capacity > 0 && len(st.symbols) >= st.capacity {
		return nil, &CapacityExceededError{Name: name, Capacity: st.capacity}
	}

	st.symbols = append(st.symbols, symbols.Symbol{Name: name, Type: typ, Decl: loc})
	st.index[name] = len(st.symbols) - 1

	sym := st.symbols[len(st.symbols)-1]
	return &sym, nil
}

// Lookup finds the symbol declared with exactly this name
func (st *SymbolTable) Lookup(name string) (*symbols.Symbol, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	i, ok := st.index[name]
	if !ok {
		return nil, false
	}
	sym := st.symbols[i]
	return &sym, true
}

// TypeOf returns the declared type of name, or false if it was never declared
func (st *SymbolTable) TypeOf(name string) (string, bool) {
	sym, ok := st.Lookup(name)
	if !ok {
		return "", false
	}
	return sym.Type, true
}

func (st *SymbolTable) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.symbols)
}

// Capacity returns the configured limit, 0 when unbounded
func (st *SymbolTable) Capacity() int {
	return st.capacity
}

// Symbols returns a copy of all symbols in declaration order
func (st *SymbolTable) Symbols() []symbols.Symbol {
	st.mu.Lock()
	defer st.mu.Unlock()
	result := make([]symbols.Symbol, len(st.symbols))
	copy(result, st.symbols)
	return result
}

func (st *SymbolTable) String() string {
	var b strings.Builder
	for i, sym := range st.Symbols() {
		fmt.Fprintf(&b, "%3d  %-20s %s\n", i, sym.Name, sym.Type)
	}
	return b.String()
}

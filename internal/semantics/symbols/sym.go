package symbols

import "semantica/internal/source"

// Table is the contract the analysis pass needs from a symbol table.
// Declared here so collaborators can depend on it without importing the implementation.
type Table interface {
	Declare(name, typ string) (*Symbol, error)
	Lookup(name string) (*Symbol, bool)
	TypeOf(name string) (string, bool)
	Len() int
}

// Symbol is an identifier-to-type binding produced by a declaration
type Symbol struct {
	Name string // case-sensitive identifier text
	Type string // type tag as written, e.g. "int"; not validated here
	Decl *source.Location
}

package ast

import (
	"semantica/internal/source"
	"semantica/internal/tokens"
)

// IdentifierExpr represents an identifier
type IdentifierExpr struct {
	Name string
	source.Location
}

func (i *IdentifierExpr) INode()                {} // Implements Node interface
func (i *IdentifierExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// BasicLit represents a number, string or boolean literal
type BasicLit struct {
	Kind  tokens.TOKEN
	Value string
	source.Location
}

func (b *BasicLit) INode()                {} // Implements Node interface
func (b *BasicLit) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BasicLit) Loc() *source.Location { return &b.Location }

// TypeName is the type tag written in a declaration, kept verbatim
type TypeName struct {
	Name string
	source.Location
}

func (t *TypeName) INode()                {} // Implements Node interface
func (t *TypeName) Loc() *source.Location { return &t.Location }

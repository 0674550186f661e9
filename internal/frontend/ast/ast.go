package ast

import (
	"semantica/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	Expr()
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Decl represents a declaration
type Decl interface {
	Node
	Decl()
}

// Identifiers returns every identifier referenced (not declared) by node, in source order
func Identifiers(node Node) []*IdentifierExpr {
	switch n := node.(type) {
	case *IdentifierExpr:
		return []*IdentifierExpr{n}
	case *AssignStmt:
		return append(Identifiers(n.Target), Identifiers(n.Value)...)
	case *ExprStmt:
		return Identifiers(n.X)
	}
	return nil
}

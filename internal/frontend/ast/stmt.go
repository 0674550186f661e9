package ast

import (
	"semantica/internal/source"
)

// Module is one parsed compilation unit
type Module struct {
	FullPath string
	Nodes    []Node
	source.Location
}

func (m *Module) INode()                {} // Implements Node interface
func (m *Module) Loc() *source.Location { return &m.Location }

// VarDecl represents `var name type;`
type VarDecl struct {
	Name *IdentifierExpr
	Type *TypeName
	source.Location
}

func (v *VarDecl) INode()                {} // Implements Node interface
func (v *VarDecl) Stmt()                 {} // Stmt is a marker interface for all statements
func (v *VarDecl) Decl()                 {} // Decl is a marker interface for all declarations
func (v *VarDecl) Loc() *source.Location { return &v.Location }

// AssignStmt represents `target = value;`
type AssignStmt struct {
	Target *IdentifierExpr
	Value  Expression
	source.Location
}

func (a *AssignStmt) INode()                {} // Implements Node interface
func (a *AssignStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

// ExprStmt is an expression used as a statement, e.g. `x;`
type ExprStmt struct {
	X Expression
	source.Location
}

func (e *ExprStmt) INode()                {} // Implements Node interface
func (e *ExprStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (e *ExprStmt) Loc() *source.Location { return &e.Location }

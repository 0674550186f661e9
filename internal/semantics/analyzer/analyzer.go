package analyzer

import (
	"errors"
	"io"

	"semantica/colors"
	"semantica/internal/diagnostics"
	"semantica/internal/frontend/ast"
	"semantica/internal/semantics/table"
	"semantica/internal/source"
	str "semantica/internal/utils/strings"
)

// Analyzer runs the semantic pass of one compilation unit. It owns the
// unit's symbol table: declarations are inserted in source order and every
// identifier use is looked up at the point it appears.
type Analyzer struct {
	table    *table.SymbolTable
	diag     *diagnostics.DiagnosticBag
	fatal    *diagnostics.FatalReporter
	failFast bool
	failed   bool
	debug    io.Writer
}

// New creates an analyzer. With failFast the first semantic error goes through
// fatal and the pass stops; otherwise errors are collected in diag.
func New(st *table.SymbolTable, diag *diagnostics.DiagnosticBag, fatal *diagnostics.FatalReporter, failFast bool) *Analyzer {
	return &Analyzer{
		table:    st,
		diag:     diag,
		fatal:    fatal,
		failFast: failFast,
	}
}

// WithDebug prints the symbol table to w once the pass ends
func (a *Analyzer) WithDebug(w io.Writer) *Analyzer {
	a.debug = w
	return a
}

// Table returns the symbol table populated by the pass
func (a *Analyzer) Table() *table.SymbolTable {
	return a.table
}

// Failed reports whether a semantic error was found
func (a *Analyzer) Failed() bool {
	return a.failed
}

// AnalyzeModule checks every statement of mod in order. It returns false if a
// semantic error was reported.
func (a *Analyzer) AnalyzeModule(mod *ast.Module) bool {
	for _, node := range mod.Nodes {
		a.analyzeNode(node)
		if a.failed && a.failFast {
			break
		}
	}

	if a.debug != nil {
		a.dumpTable()
	}
	return !a.failed
}

func (a *Analyzer) analyzeNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.VarDecl:
		a.declare(n)
	default:
		for _, ident := range ast.Identifiers(n) {
			if !a.resolve(ident) && a.failFast {
				return
			}
		}
	}
}

func (a *Analyzer) declare(decl *ast.VarDecl) {
	name := decl.Name.Name
	_, err := a.table.DeclareAt(name, decl.Type.Name, decl.Name.Loc())
	if err == nil {
		return
	}

	var capErr *table.CapacityExceededError
	switch {
	case errors.Is(err, table.ErrDuplicateDeclaration):
		var prev *source.Location
		if sym, ok := a.table.Lookup(name); ok {
			prev = sym.Decl
		}
		a.report(diagnostics.RedeclaredSymbol(decl.Name.Loc(), prev, name))
	case errors.As(err, &capErr):
		a.report(diagnostics.TooManySymbols(decl.Name.Loc(), name, capErr.Capacity))
	default:
		a.report(diagnostics.NewError(err.Error()).WithPrimaryLabel(decl.Name.Loc(), ""))
	}
}

// resolve looks up a used identifier; an absent name is an undeclared identifier
func (a *Analyzer) resolve(ident *ast.IdentifierExpr) bool {
	if _, ok := a.table.TypeOf(ident.Name); ok {
		return true
	}
	a.report(diagnostics.UndefinedSymbol(ident.Loc(), ident.Name))
	return false
}

func (a *Analyzer) report(diag *diagnostics.Diagnostic) {
	a.failed = true
	if a.failFast {
		a.fatal.FatalDiagnostic(diag)
		return
	}
	a.diag.Add(diag)
}

func (a *Analyzer) dumpTable() {
	colors.CYAN.Fprintf(a.debug, "symbol table (%s)\n", str.Count(a.table.Len(), "symbol", "symbols"))
	colors.GREY.Fprintf(a.debug, "%s", a.table.String())
}

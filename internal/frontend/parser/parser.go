package parser

import (
	"fmt"

	"semantica/internal/diagnostics"
	"semantica/internal/frontend/ast"
	"semantica/internal/source"
	"semantica/internal/tokens"
)

// Parser holds temporary state during parsing of a single file.
type Parser struct {
	tokens      []tokens.Token
	current     int
	diagnostics *diagnostics.DiagnosticBag
	filepath    string
}

// Parse builds a module from tokens. Syntax errors are reported to diag and the
// offending statement is skipped up to the next ';'.
func Parse(toks []tokens.Token, filepath string, diag *diagnostics.DiagnosticBag) *ast.Module {
	parser := &Parser{
		tokens:      toks,
		diagnostics: diag,
		filepath:    filepath,
	}

	return parser.parseModule()
}

func (p *Parser) parseModule() *ast.Module {
	module := &ast.Module{
		FullPath: p.filepath,
		Nodes:    []ast.Node{},
	}

	for !p.isAtEnd() {
		node, ok := p.parseStmt()
		if !ok {
			p.synchronize()
			continue
		}
		module.Nodes = append(module.Nodes, node)
	}

	return module
}

func (p *Parser) parseStmt() (ast.Node, bool) {
	switch {
	case p.match(tokens.VAR_TOKEN):
		return p.parseVarDecl()
	case p.match(tokens.IDENTIFIER_TOKEN) && p.next().Kind == tokens.EQUALS_TOKEN:
		return p.parseAssign()
	default:
		return p.parseExprStmt()
	}
}

// var <name> <type> ;
func (p *Parser) parseVarDecl() (ast.Node, bool) {
	start := p.advance()

	name, ok := p.expect(tokens.IDENTIFIER_TOKEN, "variable name")
	if !ok {
		return nil, false
	}
	typ, ok := p.expect(tokens.IDENTIFIER_TOKEN, "type name")
	if !ok {
		return nil, false
	}
	end, ok := p.expect(tokens.SEMICOLON_TOKEN, "';'")
	if !ok {
		return nil, false
	}

	return &ast.VarDecl{
		Name:     p.identifier(name),
		Type:     &ast.TypeName{Name: typ.Value, Location: *p.location(typ.Start, typ.End)},
		Location: *p.location(start.Start, end.End),
	}, true
}

// <name> = <expr> ;
func (p *Parser) parseAssign() (ast.Node, bool) {
	target := p.identifier(p.advance())
	p.advance() // '='

	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	end, ok := p.expect(tokens.SEMICOLON_TOKEN, "';'")
	if !ok {
		return nil, false
	}

	return &ast.AssignStmt{
		Target:   target,
		Value:    value,
		Location: *p.location(*target.Start, end.End),
	}, true
}

func (p *Parser) parseExprStmt() (ast.Node, bool) {
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	end, ok := p.expect(tokens.SEMICOLON_TOKEN, "';'")
	if !ok {
		return nil, false
	}

	return &ast.ExprStmt{
		X:        x,
		Location: *p.location(*x.Loc().Start, end.End),
	}, true
}

func (p *Parser) parseExpr() (ast.Expression, bool) {
	tok := p.peek()
	switch tok.Kind {
	case tokens.IDENTIFIER_TOKEN:
		return p.identifier(p.advance()), true
	case tokens.NUMBER_TOKEN, tokens.STRING_TOKEN, tokens.TRUE_TOKEN, tokens.FALSE_TOKEN:
		p.advance()
		return &ast.BasicLit{Kind: tok.Kind, Value: tok.Value, Location: *p.location(tok.Start, tok.End)}, true
	}
	p.error(fmt.Sprintf("unexpected token %q, expected an expression", tok.Value))
	return nil, false
}

func (p *Parser) identifier(tok tokens.Token) *ast.IdentifierExpr {
	return &ast.IdentifierExpr{Name: tok.Value, Location: *p.location(tok.Start, tok.End)}
}

func (p *Parser) location(start, end source.Position) *source.Location {
	return source.NewLocation(&p.filepath, &start, &end)
}

// synchronize skips tokens up to and including the next ';'
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.advance().Kind == tokens.SEMICOLON_TOKEN {
			return
		}
	}
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Kind == tokens.EOF_TOKEN
}

func (p *Parser) peek() tokens.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) next() tokens.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind tokens.TOKEN, what string) (tokens.Token, bool) {
	if p.match(kind) {
		return p.advance(), true
	}
	p.error(fmt.Sprintf("unexpected token %q, expected %s", p.peek().Value, what))
	return p.peek(), false
}

// error reports a parsing error at the current token
func (p *Parser) error(msg string) {
	tok := p.peek()
	p.diagnostics.Add(
		diagnostics.NewError(msg).
			WithCode(diagnostics.ErrUnexpectedToken).
			WithPrimaryLabel(p.location(tok.Start, tok.End), ""),
	)
}

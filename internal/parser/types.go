package parser

import (
	"wave/internal/ast"
	"wave/internal/token"
)

// parseType recognises the small closed set of type prefixes the grammar
// adds on top of expressions; anything else falls through to parseExpr —
// identifiers, qualified names, and any expression that denotes a type are
// accepted as types without a separate type grammar.
func (p *Parser) parseType() (ast.Index, bool) {
	switch p.peekKind() {
	case token.AND:
		_, _, anchor := p.advance()
		kind := ast.REF_TYPE
		switch {
		case p.at(token.MUT):
			p.advance()
			kind = ast.REF_MUT_TYPE
		case p.at(token.OWN):
			p.advance()
			kind = ast.REF_OWN_TYPE
		}
		inner, ok := p.parseType()
		if !ok {
			return ast.Invalid, false
		}
		return p.b.AddNode(kind, anchor, ast.UnaryData(inner)), true

	case token.LBRACKET:
		_, _, anchor := p.advance()
		length, ok := p.parseExpr()
		if !ok {
			return ast.Invalid, false
		}
		if _, ok := p.expect(token.RBRACKET, "a closing ']'"); !ok {
			return ast.Invalid, false
		}
		elem, ok := p.parseType()
		if !ok {
			return ast.Invalid, false
		}
		return p.b.AddNode(ast.ARRAY_TYPE, anchor, ast.BinaryData(length, elem)), true

	default:
		return p.parseExpr()
	}
}

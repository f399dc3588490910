package parser

import (
	"wave/internal/ast"
	"wave/internal/token"
)

// parseTopLevel runs the top-level loop: parse one declaration at a time
// until EOF, synchronising to the next likely declaration start whenever
// one fails.
func (p *Parser) parseTopLevel() []ast.Index {
	p.skipNewlines()

	var decls []ast.Index
	for !p.at(token.EOF) {
		idx, ok := p.parseDecl()
		if !ok {
			p.nextDecl()
			idx, ok = p.parseDecl()
		}
		if ok {
			decls = append(decls, idx)
		}
		p.skipNewlines()
	}
	return decls
}

// parseDecl dispatches on the current token to one of the declaration
// forms. It never consumes the offending token itself on failure (except
// for BAD, which always advances) — recovery is the caller's job via
// nextDecl.
func (p *Parser) parseDecl() (ast.Index, bool) {
	switch p.peekKind() {
	case token.IDENTIFIER:
		return p.parseInit()
	case token.IMPORT:
		return p.parseImport(false)
	case token.FOREIGN:
		return p.parseForeign()
	case token.AT, token.WHEN, token.USING:
		// Reserved for future directive/conditional-compilation support;
		// not yet part of the declaration grammar.
		return ast.Invalid, false
	case token.BAD:
		p.pos++
		return ast.Invalid, false
	default:
		p.errorfHint(
			"try a name binding like 'name :: value', an 'import', or a 'foreign' block",
			"invalid declaration, found %s", p.peekKind().String(),
		)
		return ast.Invalid, false
	}
}

// nextDecl synchronises after a failed declaration parse. It always
// advances past the current (offending) token before scanning, guaranteeing
// forward progress even when parseDecl already left the cursor sitting on
// what looks like a sync point (e.g. the reserved-stub AT/WHEN/USING
// tokens, which parseDecl rejects without consuming).
func (p *Parser) nextDecl() {
	if p.at(token.EOF) {
		return
	}
	p.pos++
	for {
		if p.at(token.EOF) || p.atAny(token.FOREIGN, token.IMPORT, token.WHEN, token.USING, token.AT) {
			return
		}
		if p.at(token.IDENTIFIER) && isInitStarter(p.peekAt(1)) {
			return
		}
		p.pos++
	}
}

func isInitStarter(k token.Kind) bool {
	return k == token.COLON || k == token.COLON_COLON || k == token.COLON_EQ
}

// parseInit parses a named initialiser: `ident :: expr`, `ident := expr`,
// `ident : type : expr`, or `ident : type = expr`. The identifier has not
// yet been consumed.
func (p *Parser) parseInit() (ast.Index, bool) {
	_, _, nameAnchor := p.advance() // IDENTIFIER; the node's own anchor is its name

	switch p.peekKind() {
	case token.COLON_COLON:
		p.advance()
		expr, ok := p.parseExpr()
		if !ok {
			return ast.Invalid, false
		}
		return p.b.AddNode(ast.CONST, nameAnchor, ast.VariableData(ast.Invalid, expr)), true

	case token.COLON_EQ:
		p.advance()
		expr, ok := p.parseExpr()
		if !ok {
			return ast.Invalid, false
		}
		return p.b.AddNode(ast.VAR, nameAnchor, ast.VariableData(ast.Invalid, expr)), true

	case token.COLON:
		p.advance()
		typ, ok := p.parseType()
		if !ok {
			return ast.Invalid, false
		}
		switch p.peekKind() {
		case token.COLON:
			p.advance()
			expr, ok := p.parseExpr()
			if !ok {
				return ast.Invalid, false
			}
			return p.b.AddNode(ast.CONST, nameAnchor, ast.VariableData(typ, expr)), true
		case token.EQ:
			p.advance()
			expr, ok := p.parseExpr()
			if !ok {
				return ast.Invalid, false
			}
			return p.b.AddNode(ast.VAR, nameAnchor, ast.VariableData(typ, expr)), true
		default:
			p.errorf("expected one of ':' or '=', found %s", p.peekKind().String())
			return ast.Invalid, false
		}

	default:
		p.errorf("expected one of '::', ':=' or ':' after identifier, found %s", p.peekKind().String())
		return ast.Invalid, false
	}
}

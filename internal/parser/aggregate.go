package parser

import (
	"wave/internal/ast"
	"wave/internal/token"
)

// parseStruct parses "struct { fields }". Fields are comma-separated (the
// resolved form of the two historical grammars the source shows — see
// DESIGN.md), with an optional trailing newline before the closing brace.
func (p *Parser) parseStruct() (ast.Index, bool) {
	_, _, anchor := p.advance() // STRUCT
	if _, ok := p.expect(token.LBRACE, "a '{' to open a struct body"); !ok {
		return ast.Invalid, false
	}

	mark := p.b.ScratchMark()
	p.skipNewlines()
	fieldCount := 0

	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		nameAnchor, ok := p.expect(token.IDENTIFIER, "a field name")
		if !ok {
			break
		}

		typ := ast.Invalid
		def := ast.Invalid
		switch p.peekKind() {
		case token.COLON_EQ:
			p.advance()
			d, ok := p.parseExpr()
			if !ok {
				break
			}
			def = d
		case token.COLON:
			p.advance()
			t, ok := p.parseType()
			if !ok {
				break
			}
			typ = t
			if p.at(token.EQ) {
				p.advance()
				d, ok := p.parseExpr()
				if ok {
					def = d
				}
			}
		default:
			p.errorf("expected ':' or ':=' after a field name, found %s", p.peekKind().String())
		}

		p.b.PushScratch(ast.Node{Kind: ast.FIELD, Token: nameAnchor, Data: ast.ParamData(typ, def)})
		fieldCount++

		p.skipNewlines()
		if p.at(token.COMMA) {
			p.advance()
			p.skipNewlines()
			continue
		}
		break
	}

	p.skipNewlines()
	p.expect(token.RBRACE, "a closing '}' for the struct body")

	start, end := p.b.MaterializeRange(mark)
	kind := ast.STRUCT
	if fieldCount <= 2 {
		kind = ast.STRUCT_TWO
	}
	return p.b.AddNode(kind, anchor, ast.RangeData(start, end)), true
}

// parseEnum parses "enum [name] { variants }". A variant is "NAME [= expr]"
// (VARIANT_SIMPLE) or "NAME(fields)" (VARIANT_TWO for <= 2 fields, else
// VARIANT); variants may be separated by a newline, a comma, or both.
func (p *Parser) parseEnum() (ast.Index, bool) {
	_, _, anchor := p.advance() // ENUM
	if p.at(token.IDENTIFIER) {
		_, _, nameAnchor := p.advance()
		anchor = nameAnchor
	}
	if _, ok := p.expect(token.LBRACE, "a '{' to open an enum body"); !ok {
		return ast.Invalid, false
	}

	mark := p.b.ScratchMark()
	p.skipNewlines()
	variantCount := 0

	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		nameAnchor, ok := p.expect(token.IDENTIFIER, "a variant name")
		if !ok {
			break
		}

		switch {
		case p.at(token.LPAREN):
			p.advance()
			fStart, fEnd, fCount := p.parseVariantFields()
			p.expect(token.RPAREN, "a closing ')' for the variant fields")
			if fCount == 0 {
				p.errorf("enum variant '%s' has empty parentheses", tokenText(p, nameAnchor))
				p.b.PushScratch(ast.Node{Kind: ast.VARIANT_SIMPLE, Token: nameAnchor, Data: ast.UnaryData(ast.Invalid)})
			} else {
				kind := ast.VARIANT
				if fCount <= 2 {
					kind = ast.VARIANT_TWO
				}
				p.b.PushScratch(ast.Node{Kind: kind, Token: nameAnchor, Data: ast.RangeData(fStart, fEnd)})
			}
		case p.at(token.EQ):
			p.advance()
			val := ast.Invalid
			if v, ok := p.parseExpr(); ok {
				val = v
			}
			p.b.PushScratch(ast.Node{Kind: ast.VARIANT_SIMPLE, Token: nameAnchor, Data: ast.UnaryData(val)})
		default:
			p.b.PushScratch(ast.Node{Kind: ast.VARIANT_SIMPLE, Token: nameAnchor, Data: ast.UnaryData(ast.Invalid)})
		}
		variantCount++

		p.skipNewlines()
		if p.at(token.COMMA) {
			p.advance()
			p.skipNewlines()
		}
	}

	p.expect(token.RBRACE, "a closing '}' for the enum body")

	start, end := p.b.MaterializeRange(mark)
	kind := ast.ENUM
	if variantCount <= 2 {
		kind = ast.ENUM_TWO
	}
	return p.b.AddNode(kind, anchor, ast.RangeData(start, end)), true
}

// parseVariantFields parses a variant's parenthesised field list up to (but
// not consuming) the closing ")". Each field is either positional (just a
// type) or named ("name: type"); both are stored as FIELD nodes, matching
// struct fields, so the printer and any later pass can treat them
// uniformly.
func (p *Parser) parseVariantFields() (start, end ast.Index, count int) {
	mark := p.b.ScratchMark()

	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		var nameAnchor uint32
		if p.at(token.IDENTIFIER) && p.peekAt(1) == token.COLON {
			_, _, a := p.advance()
			nameAnchor = a
			p.advance() // COLON
		} else {
			nameAnchor = uint32(p.pos)
		}

		typ, ok := p.parseType()
		if !ok {
			break
		}
		p.b.PushScratch(ast.Node{Kind: ast.FIELD, Token: nameAnchor, Data: ast.ParamData(typ, ast.Invalid)})
		count++

		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}

	s, e := p.b.MaterializeRange(mark)
	return s, e, count
}

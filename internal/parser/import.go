package parser

import (
	"wave/internal/ast"
	"wave/internal/token"
)

// parseImport parses "import NAME [ { name_list | ... } ] [ as NAME ]", or
// the same shape after a consumed "foreign" keyword when foreign is true.
// The IMPORT keyword itself has not yet been consumed.
func (p *Parser) parseImport(foreign bool) (ast.Index, bool) {
	p.advance() // IMPORT

	nameAnchor, ok := p.expect(token.IDENTIFIER, "a module name after 'import'")
	if !ok {
		return ast.Invalid, false
	}

	symbols := ast.Invalid
	complex := false

	switch {
	case p.at(token.LBRACE):
		complex = true
		_, _, braceAnchor := p.advance()
		mark := p.b.ScratchMark()
		p.skipNewlines()
		for !p.at(token.RBRACE) && !p.at(token.EOF) {
			idAnchor, ok := p.expect(token.IDENTIFIER, "an identifier in the import list")
			if !ok {
				p.b.RestoreScratch(mark)
				break
			}
			p.b.PushScratch(ast.Node{Kind: ast.IDENTIFIER, Token: idAnchor})
			p.skipNewlines()
			if p.at(token.COMMA) {
				p.advance()
				p.skipNewlines()
				continue
			}
			break
		}
		p.skipNewlines()
		p.expect(token.RBRACE, "a closing '}' for the import list")
		start, end := p.b.MaterializeRange(mark)
		symbols = p.b.AddNode(ast.RANGE, braceAnchor, ast.RangeData(start, end))

	case p.at(token.ELLIPSIS):
		complex = true
		_, _, ellipsisAnchor := p.advance()
		symbols = p.b.AddNode(ast.ALL_SYMBOLS, ellipsisAnchor, ast.Data{})
	}

	alias := ast.Invalid
	if p.at(token.AS) {
		p.advance()
		if aliasAnchor, ok := p.expect(token.IDENTIFIER, "an identifier after 'as'"); ok {
			alias = p.b.AddNode(ast.IDENTIFIER, aliasAnchor, ast.Data{})
		}
	}

	kind := ast.IMPORT
	switch {
	case foreign && complex:
		kind = ast.FOREIGN_IMPORT_COMPLEX
	case foreign:
		kind = ast.FOREIGN_IMPORT
	case complex:
		kind = ast.IMPORT_COMPLEX
	}
	return p.b.AddNode(kind, nameAnchor, ast.BinaryData(alias, symbols)), true
}

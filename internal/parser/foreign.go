package parser

import (
	"wave/internal/ast"
	"wave/internal/token"
)

// parseForeign parses "foreign import ..." (delegated to parseImport) or a
// "foreign { decls }" block, whose body is parsed recursively as ordinary
// top-level declarations. The FOREIGN keyword has not yet been consumed.
//
// The body range tracks only the first and last child declaration's own
// index, not a scratch-materialised contiguous run: unlike struct fields or
// enum variants, a declaration's subtree (a function's whole body, say) can
// be arbitrarily large, so forcing contiguity here would mean duplicating
// entire declarations into a second copy. The range may therefore contain
// interior nodes that belong to a child declaration's own subtree rather
// than being children of FOREIGN directly — the invariants section only
// requires strict same-kind contiguity for struct/enum/param bodies.
func (p *Parser) parseForeign() (ast.Index, bool) {
	_, _, anchor := p.advance() // FOREIGN

	if p.at(token.IMPORT) {
		return p.parseImport(true)
	}

	idx := p.b.ReserveNode()
	if _, ok := p.expect(token.LBRACE, "a '{' to open a foreign block"); !ok {
		p.b.PopNode(idx)
		return ast.Invalid, false
	}

	var first, last ast.Index
	p.skipNewlines()
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		child, ok := p.parseDecl()
		if !ok {
			p.nextDecl()
			continue
		}
		if first == ast.Invalid {
			first = child
		}
		last = child
		p.skipNewlines()
	}
	p.expect(token.RBRACE, "a closing '}' for the foreign block")

	p.b.SetNode(idx, ast.FOREIGN, anchor, ast.RangeData(first, last))
	return idx, true
}

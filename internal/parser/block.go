package parser

import (
	"wave/internal/ast"
	"wave/internal/token"
)

// parseBlock parses "{ ... }". Statement parsing is not yet part of the
// grammar this parser implements; each token inside the braces is treated
// as its own placeholder INVALID statement so a non-empty block still
// terminates, while an empty block (the only form exercised by declared
// function bodies today) produces the documented empty BLOCK{0,0}. A
// future statement grammar slots in here, one case per statement kind,
// still going through the same scratch-materialize protocol used below.
func (p *Parser) parseBlock() (ast.Index, bool) {
	_, _, anchor := p.advance() // LBRACE
	p.skipNewlines()

	mark := p.b.ScratchMark()
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		_, _, stmtAnchor := p.advance()
		p.b.PushScratch(ast.Node{Kind: ast.INVALID, Token: stmtAnchor})
		p.skipNewlines()
	}
	p.expect(token.RBRACE, "a closing '}' for the block")

	start, end := p.b.MaterializeRange(mark)
	return p.b.AddNode(ast.BLOCK, anchor, ast.RangeData(start, end)), true
}

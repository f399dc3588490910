// Package parser turns a token stream into a structure-of-arrays syntax
// tree. It is a hand-written, top-down recursive-descent parser with a
// Pratt-style precedence climber for expressions; it never fails outright —
// syntax errors become diagnostics and the parser synchronises to the next
// likely declaration and keeps going.
package parser

import (
	"fmt"

	"wave/internal/ast"
	"wave/internal/diag"
	"wave/internal/lexer"
	"wave/internal/source"
	"wave/internal/token"
)

// Parser holds the transient state of a single file's parse: a cursor into
// the token stream produced by the lexer, the node builder, and the
// diagnostic bag both stages report into.
type Parser struct {
	file source.FileID
	src  []byte
	toks lexer.LexedSrc
	pos  int

	b   *ast.Builder
	bag *diag.Bag
}

// Parse lexes and parses src (belonging to file) into a Tree. It always
// succeeds structurally: syntax errors are appended to the returned bag as
// diagnostics rather than aborting the parse.
func Parse(file source.FileID, src []byte) (ast.Tree, *diag.Bag) {
	bag := diag.NewBag(0)
	toks := lexer.Lex(file, src, bag)

	p := &Parser{
		file: file,
		src:  src,
		toks: toks,
		b:    ast.NewBuilder(toks.NumTokens()),
		bag:  bag,
	}

	decls := p.parseTopLevel()
	tree := p.b.Build(decls)
	tree.File = file
	tree.Src = src
	tree.Toks = toks
	return tree, bag
}

// --- token cursor ---

func (p *Parser) peekKind() token.Kind {
	return p.toks.Kind[p.pos]
}

// peekAt returns the kind of the token n slots ahead of the cursor,
// clamping to the final (EOF) token past the end of the stream.
func (p *Parser) peekAt(n int) token.Kind {
	i := p.pos + n
	if i >= p.toks.NumTokens() {
		i = p.toks.NumTokens() - 1
	}
	return p.toks.Kind[i]
}

func (p *Parser) curStart() uint32 {
	return p.toks.Start[p.pos]
}

// skipTrivia advances past NEWLINE, COMMENT, DOC_COMMENT and
// MULTILINE_COMMENT tokens. Comments are tokenised rather than skipped by
// the lexer so callers that care (a future formatter) can see them; nothing
// in this parser attaches them to the tree yet, so every call site that
// doesn't care skips them here.
func (p *Parser) skipTrivia() {
	for {
		switch p.peekKind() {
		case token.NEWLINE, token.COMMENT, token.DOC_COMMENT, token.MULTILINE_COMMENT:
			p.pos++
		default:
			return
		}
	}
}

// skipNewlines advances past NEWLINE tokens only, leaving comments alone.
func (p *Parser) skipNewlines() {
	for p.peekKind() == token.NEWLINE {
		p.pos++
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.peekKind() == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	cur := p.peekKind()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// advance consumes and returns the current token's (kind, start) pair,
// along with the index it occupied in the stream (the anchor to store on a
// node that reads this token).
func (p *Parser) advance() (token.Kind, uint32, uint32) {
	k := p.toks.Kind[p.pos]
	start := p.toks.Start[p.pos]
	anchor := uint32(p.pos)
	if k != token.EOF {
		p.pos++
	}
	return k, start, anchor
}

// expect consumes the current token if it matches k, reporting a
// diagnostic and leaving the cursor in place otherwise.
func (p *Parser) expect(k token.Kind, label string) (uint32, bool) {
	if p.at(k) {
		_, _, anchor := p.advance()
		return anchor, true
	}
	p.errorf("expected %s, found %s", k.String(), p.peekKind().String())
	return uint32(p.pos), false
}

func (p *Parser) curSpan() source.Span {
	start := p.curStart()
	return source.Span{File: p.file, Start: start, End: start + lexer.TokenLength(p.src, start)}
}

func (p *Parser) errorf(format string, args ...any) {
	p.bag.Add(diag.Error(p.curSpan(), fmt.Sprintf(format, args...), "here"))
}

func (p *Parser) errorfHint(hint, format string, args ...any) {
	p.bag.Add(diag.Error(p.curSpan(), fmt.Sprintf(format, args...), "here", hint))
}

// tokenText returns the source text of the token at stream index tokenIdx.
func tokenText(p *Parser, tokenIdx uint32) string {
	start := p.toks.Start[tokenIdx]
	return string(lexer.TokenText(p.src, start))
}

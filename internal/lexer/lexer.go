// Package lexer turns raw source bytes into a dense, structure-of-arrays
// token stream. Lexing always succeeds structurally: unrecognised bytes
// become BAD tokens and lexical problems are recorded as diagnostics, never
// as a Go error, so a caller can always hand the resulting stream to the
// parser.
package lexer

import (
	"wave/internal/diag"
	"wave/internal/source"
	"wave/internal/token"
)

// utf8RuneSelf is the smallest byte value that can only appear as the lead
// or continuation byte of a multi-byte UTF-8 sequence.
const utf8RuneSelf = 0x80

// LexedSrc is the parallel-array token stream a single Lex call produces.
// Kind[i] and Start[i] describe the i'th token; the stream always ends with
// an EOF token whose Start equals len(source).
type LexedSrc struct {
	File  source.FileID
	Kind  []token.Kind
	Start []uint32
}

// NumTokens returns the number of tokens in the stream.
func (ls LexedSrc) NumTokens() int {
	return len(ls.Kind)
}

// Token reconstructs the i'th token as a token.Token value.
func (ls LexedSrc) Token(i int) token.Token {
	return token.Token{Kind: ls.Kind[i], Start: ls.Start[i]}
}

// lexer holds the transient state of a single Lex call.
type lexer struct {
	file source.FileID
	cur  cursor
	kind []token.Kind
	start []uint32
	bag  *diag.Bag
}

// Lex scans src (belonging to file) into a token stream. It always
// terminates and always returns a stream whose final token is EOF anchored
// at len(src); diagnostics encountered along the way are appended to bag in
// source order. bag may be nil, in which case diagnostics are discarded.
func Lex(file source.FileID, src []byte, bag *diag.Bag) LexedSrc {
	if bag == nil {
		bag = diag.NewBag(0)
	}

	// Reserve capacity for roughly one token per eight bytes, matching the
	// density the original tokenizer was tuned for.
	capacity := len(src)/8 + 1

	lx := &lexer{
		file:  file,
		cur:   newCursor(src),
		kind:  make([]token.Kind, 0, capacity),
		start: make([]uint32, 0, capacity),
		bag:   bag,
	}
	lx.run()

	return LexedSrc{File: file, Kind: lx.kind, Start: lx.start}
}

func (lx *lexer) run() {
	for {
		lx.skipSpaces()
		if lx.cur.eof() {
			break
		}

		start := lx.cur.mark()
		ch := lx.cur.peek()

		var k token.Kind
		switch {
		case ch == '\n':
			lx.cur.bump()
			k = token.NEWLINE
		case ch == '\r' && lx.cur.peekAt(1) == '\n':
			lx.cur.bump()
			lx.cur.bump()
			k = token.NEWLINE
		case ch == '/' && (lx.cur.peekAt(1) == '/' || lx.cur.peekAt(1) == '*'):
			k = lx.scanComment()
		case isIdentStart(ch):
			k = lx.scanIdentOrKeyword()
		case ch >= utf8RuneSelf:
			k = lx.scanIdentOrKeyword()
		case isDecDigit(ch):
			k = lx.scanNumber()
		case ch == '\'':
			k = lx.scanChar()
		case ch == '"':
			k = lx.scanString()
		default:
			k = lx.scanOperatorOrPunct()
		}

		lx.emit(k, start)
	}

	lx.emit(token.EOF, lx.cur.mark())
}

func (lx *lexer) emit(k token.Kind, start uint32) {
	lx.kind = append(lx.kind, k)
	lx.start = append(lx.start, start)
}

// skipSpaces consumes runs of ' ' and '\t'. Newlines are significant tokens
// and are left for the caller.
func (lx *lexer) skipSpaces() {
	for {
		switch lx.cur.peek() {
		case ' ', '\t':
			lx.cur.bump()
		default:
			return
		}
	}
}

// spanFrom builds a Span covering [start, current cursor offset).
func (lx *lexer) spanFrom(start uint32) source.Span {
	return source.Span{File: lx.file, Start: start, End: lx.cur.off}
}

func (lx *lexer) errorAt(span source.Span, message, label string, hint ...string) {
	lx.bag.Add(diag.Error(span, message, label, hint...))
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDecDigit(b) || b >= utf8RuneSelf
}

func isDecDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

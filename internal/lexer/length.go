package lexer

import "wave/internal/diag"

// TokenLength recomputes the byte length of the token starting at offset
// start in src by re-running the same first-byte dispatch Lex uses. The
// token's kind is not needed as an input: the first byte alone determined
// which scanner produced it, the same way it did during the original pass.
// Keeping the stream down to two words per token (kind, start) means a
// caller that needs a token's text — the printer, the diagnostic snippet
// renderer — always goes through here rather than storing a length.
func TokenLength(src []byte, start uint32) uint32 {
	lx := &lexer{cur: newCursor(src), bag: diag.NewBag(0)}
	lx.cur.off = start
	if lx.cur.eof() {
		return 0
	}

	ch := lx.cur.peek()
	switch {
	case ch == '\n':
		lx.cur.bump()
	case ch == '\r' && lx.cur.peekAt(1) == '\n':
		lx.cur.bump()
		lx.cur.bump()
	case ch == '/' && (lx.cur.peekAt(1) == '/' || lx.cur.peekAt(1) == '*'):
		lx.scanComment()
	case isIdentStart(ch):
		lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		lx.scanIdentOrKeyword()
	case isDecDigit(ch):
		lx.scanNumber()
	case ch == '\'':
		lx.scanChar()
	case ch == '"':
		lx.scanString()
	default:
		lx.scanOperatorOrPunct()
	}
	return lx.cur.off - start
}

// TokenText returns the source slice covered by the token starting at
// start, using TokenLength to find its extent.
func TokenText(src []byte, start uint32) []byte {
	end := start + TokenLength(src, start)
	return src[start:end]
}

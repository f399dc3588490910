package lexer

import "wave/internal/token"

// scanComment is entered with the cursor positioned on the leading '/' of a
// '//' or '/*' sequence (guaranteed by the caller, which only dispatches
// here when peekAt(1) is '/' or '*'). Comments are tokenised rather than
// skipped so a consumer (the parser, a formatter) can deterministically
// decide what to do with them.
func (lx *lexer) scanComment() token.Kind {
	lx.cur.bump() // first '/'

	switch lx.cur.peek() {
	case '/':
		lx.cur.bump()

		doc := lx.cur.peek() == '/'
		if doc {
			lx.cur.bump()
		}
		for !lx.cur.eof() && lx.cur.peek() != '\n' && lx.cur.peek() != '\r' {
			lx.cur.bump()
		}
		if doc {
			return token.DOC_COMMENT
		}
		return token.COMMENT

	case '*':
		lx.cur.bump()
		depth := 1
		for depth > 0 && !lx.cur.eof() {
			if lx.cur.peek() == '/' && lx.cur.peekAt(1) == '*' {
				lx.cur.bump()
				lx.cur.bump()
				depth++
				continue
			}
			if lx.cur.peek() == '*' && lx.cur.peekAt(1) == '/' {
				lx.cur.bump()
				lx.cur.bump()
				depth--
				continue
			}
			lx.cur.bump()
		}
		return token.MULTILINE_COMMENT

	default:
		// Unreachable: the caller only dispatches here when peekAt(1) is
		// '/' or '*'.
		return token.SLASH
	}
}

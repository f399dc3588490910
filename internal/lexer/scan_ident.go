package lexer

import "wave/internal/token"

// scanIdentOrKeyword consumes an identifier starting at the cursor (an
// ASCII letter, '_', or UTF-8 lead byte, already confirmed by the caller)
// and classifies it as IDENTIFIER or the matching keyword Kind.
func (lx *lexer) scanIdentOrKeyword() token.Kind {
	start := lx.cur.mark()

	for !lx.cur.eof() && isIdentContinue(lx.cur.peek()) {
		lx.cur.bump()
	}

	text := lx.cur.src[start:lx.cur.off]
	return token.LookupKeyword(string(text))
}

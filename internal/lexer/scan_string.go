package lexer

import "wave/internal/token"

// scanString consumes an ordinary or triple-quoted string literal starting
// at the opening '"' (confirmed by the caller). An ordinary string that
// hits a newline before its closing quote stops at, and advances over, the
// newline, emitting a diagnostic — the original scanner's behaviour, kept
// deliberately.
func (lx *lexer) scanString() token.Kind {
	start := lx.cur.mark()

	if lx.cur.peek() == '"' && lx.cur.peekAt(1) == '"' && lx.cur.peekAt(2) == '"' {
		return lx.scanMultilineString(start)
	}
	return lx.scanOrdinaryString(start)
}

func (lx *lexer) scanOrdinaryString(start uint32) token.Kind {
	lx.cur.bump() // opening '"'

	terminated := false
	for !lx.cur.eof() {
		switch lx.cur.peek() {
		case '"':
			lx.cur.bump()
			terminated = true
		case '\n':
			lx.cur.bump()
		case '\\':
			lx.scanEscape()
			continue
		default:
			lx.cur.bump()
			continue
		}
		break
	}

	if !terminated {
		lx.errorAt(lx.spanFrom(start), "unterminated string", "missing '\"'",
			"add a closing '\"' where the string should end")
	}
	return token.STRING
}

func (lx *lexer) scanMultilineString(start uint32) token.Kind {
	lx.cur.bump()
	lx.cur.bump()
	lx.cur.bump() // opening '"""'

	terminated := false
	for !lx.cur.eof() {
		if lx.cur.peek() == '"' && lx.cur.peekAt(1) == '"' && lx.cur.peekAt(2) == '"' {
			lx.cur.bump()
			lx.cur.bump()
			lx.cur.bump()
			terminated = true
			break
		}
		if lx.cur.peek() == '\\' {
			lx.scanEscape()
			continue
		}
		lx.cur.bump()
	}

	if !terminated {
		lx.errorAt(lx.spanFrom(start), "unterminated multiline string", "missing '\"\"\"'",
			"add a closing '\"\"\"' where the string should end")
	}
	return token.MULTILINE_STRING
}

package lexer

import "wave/internal/token"

// isEscapeable is the fixed set of characters valid immediately after a
// backslash (excluding the \xHH form, handled separately).
var isEscapeable = map[byte]bool{
	'\\': true, '\'': true, '"': true, '0': true,
	't': true, 'v': true, 'r': true, 'n': true, 'b': true, 'a': true,
}

// scanEscape is entered with the cursor on the backslash of an escape
// sequence and consumes it, diagnosing but not rejecting malformed forms.
func (lx *lexer) scanEscape() {
	start := lx.cur.mark()
	lx.cur.bump() // '\\'

	if lx.cur.peek() == 'x' {
		lx.cur.bump()
		if digitValue(lx.cur.peek()) < 0 {
			lx.errorAt(lx.spanFrom(start), "invalid escape",
				"expected a hex digit after '\\x'")
			return
		}
		lx.cur.bump()
		if digitValue(lx.cur.peek()) >= 0 {
			lx.cur.bump()
		}
		return
	}

	if isEscapeable[lx.cur.peek()] {
		lx.cur.bump()
		return
	}

	lx.errorAt(lx.spanFrom(start), "invalid escape",
		"this character cannot follow a backslash")
	if !lx.cur.eof() {
		lx.cur.bump()
	}
}

// scanChar consumes a 'c' char literal starting at the opening quote
// (confirmed by the caller). An unterminated literal is diagnosed and
// recovery skips to the end of the line.
func (lx *lexer) scanChar() token.Kind {
	start := lx.cur.mark()
	lx.cur.bump() // opening '\''

	if lx.cur.peek() == '\\' {
		lx.scanEscape()
	} else if !lx.cur.eof() {
		lx.cur.bump()
	}

	if lx.cur.peek() == '\'' {
		lx.cur.bump()
		return token.CHAR
	}

	lx.errorAt(lx.spanFrom(start), "unterminated character literal", "add a quote here")
	for !lx.cur.eof() && lx.cur.peek() != '\n' {
		lx.cur.bump()
	}
	return token.CHAR
}

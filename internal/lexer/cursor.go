package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// cursor is a byte-offset position within a single file's source text.
type cursor struct {
	src   []byte
	off   uint32
	limit uint32
}

func newCursor(src []byte) cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return cursor{src: src, off: 0, limit: limit}
}

func (c *cursor) eof() bool {
	return c.off >= c.limit
}

// peek returns the current byte, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peekAt returns the byte n positions ahead of the cursor, or 0 if out of
// range.
func (c *cursor) peekAt(n uint32) byte {
	i := c.off + n
	if i >= c.limit {
		return 0
	}
	return c.src[i]
}

// bump consumes and returns the current byte, or 0 at EOF.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// mark captures the current offset so a span can be derived later.
func (c *cursor) mark() uint32 {
	return c.off
}

// eat consumes the next byte if it equals b.
func (c *cursor) eat(b byte) bool {
	if !c.eof() && c.src[c.off] == b {
		c.off++
		return true
	}
	return false
}

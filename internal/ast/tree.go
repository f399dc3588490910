package ast

import (
	"wave/internal/lexer"
	"wave/internal/source"
)

// Tree is the finished, immutable syntax tree for one file: the
// pre-order node array plus the extra-payload arena and the list of
// top-level declaration indices.
//
// Src and Toks are the source bytes and token stream the parser built
// this tree from. They are carried on the tree (rather than discarded
// once parsing finishes) so a node's anchor token — Token[i], an index
// into Toks, not a byte offset — can still be resolved back to its
// source text after Parse returns: the printer needs this for identifier
// and literal spelling.
type Tree struct {
	File  source.FileID
	Src   []byte
	Toks  lexer.LexedSrc
	Kind  []Kind
	Token []uint32
	Data  []Data
	Extra []byte
	Decls []Index
}

// NumNodes returns the number of nodes in the tree, including the root.
func (t *Tree) NumNodes() int { return len(t.Kind) }

// KindOf returns the kind of node i.
func (t *Tree) KindOf(i Index) Kind { return t.Kind[i] }

// TokenOf returns the anchor token index of node i.
func (t *Tree) TokenOf(i Index) uint32 { return t.Token[i] }

// DataOf returns the payload of node i.
func (t *Tree) DataOf(i Index) Data { return t.Data[i] }

// TokenText returns the source spelling of node i's anchor token.
func (t *Tree) TokenText(i Index) string {
	tokIdx := t.Token[i]
	start := t.Toks.Start[tokIdx]
	return string(lexer.TokenText(t.Src, start))
}

// TokenSpan returns the source span covered by node i's anchor token.
func (t *Tree) TokenSpan(i Index) source.Span {
	tokIdx := t.Token[i]
	start := t.Toks.Start[tokIdx]
	return source.Span{File: t.File, Start: start, End: start + lexer.TokenLength(t.Src, start)}
}

// Valid reports whether i is a valid, non-root node index within the tree.
// The root (index 0) is a real node but is never a legitimate child
// reference, so this excludes it the same way the parser's own "invalid"
// sentinel does.
func (t *Tree) Valid(i Index) bool {
	return i != Invalid && int(i) < len(t.Kind)
}

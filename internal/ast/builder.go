package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Node is a provisional, not-yet-placed node value. The parser's scratch
// stack holds these while building a list (struct fields, enum variants,
// parameters, block statements, name lists); once the list's closing
// delimiter is seen, the stack's tail is moved into the Builder's main
// arrays in one contiguous burst.
type Node struct {
	Kind  Kind
	Token uint32
	Data  Data
}

// Builder assembles a Tree incrementally: reserve/set for parents whose
// data depends on children not yet parsed, and a scratch stack for
// deferred, bulk reparenting of list children into contiguous ranges.
type Builder struct {
	kind  []Kind
	token []uint32
	data  []Data
	extra []byte

	scratch []Node
}

// NewBuilder creates a Builder with capacity pre-reserved for roughly
// numTokens/3 nodes (the density the parser this package feeds was tuned
// for) and immediately places the mandatory ROOT node at index 0.
func NewBuilder(numTokens int) *Builder {
	capacity := numTokens/3 + 1
	b := &Builder{
		kind:  make([]Kind, 0, capacity),
		token: make([]uint32, 0, capacity),
		data:  make([]Data, 0, capacity),
		extra: make([]byte, 0, 64),
	}
	b.AddNode(ROOT, 0, Data{})
	return b
}

// Len returns the number of nodes currently in the main array.
func (b *Builder) Len() int { return len(b.kind) }

// AddNode appends a fully-known node and returns its index.
func (b *Builder) AddNode(kind Kind, tok uint32, data Data) Index {
	idx := b.indexOf(len(b.kind))
	b.kind = append(b.kind, kind)
	b.token = append(b.token, tok)
	b.data = append(b.data, data)
	return idx
}

// ReserveNode appends a zero-valued placeholder and returns its stable
// index, to be filled in later by SetNode once the node's children (and
// thus its Data) are known.
func (b *Builder) ReserveNode() Index {
	return b.AddNode(INVALID, 0, Data{})
}

// SetNode overwrites a previously reserved node. idx must have come from
// ReserveNode and must not yet have been popped.
func (b *Builder) SetNode(idx Index, kind Kind, tok uint32, data Data) {
	i := int(idx)
	if i < 0 || i >= len(b.kind) {
		panic(fmt.Errorf("ast: SetNode: index %d out of range (len=%d)", idx, len(b.kind)))
	}
	b.kind[i] = kind
	b.token[i] = tok
	b.data[i] = data
}

// PopNode removes the last node in the array. It is only valid to call
// this when idx is exactly the current tail; anything else means a
// speculative parse tried to roll back past nodes it didn't itself append,
// which is a parser bug.
func (b *Builder) PopNode(idx Index) {
	last := b.indexOf(len(b.kind) - 1)
	if idx != last {
		panic(fmt.Errorf("ast: PopNode: %d is not the tail node (%d)", idx, last))
	}
	b.kind = b.kind[:len(b.kind)-1]
	b.token = b.token[:len(b.token)-1]
	b.data = b.data[:len(b.data)-1]
}

// NodeMark returns the current length of the main node array, to be
// passed to TruncateNodes later. Unlike PopNode (which only ever unwinds
// the single tail node a caller itself just reserved), a mark lets a
// speculative parse that reserved placeholders and then appended real
// child nodes before failing partway through — a function literal's
// parameter list, say — discard everything it produced in one step.
func (b *Builder) NodeMark() int {
	return len(b.kind)
}

// TruncateNodes discards every node appended since mark (from
// NodeMark), whatever mix of reserved placeholders and real nodes they
// are.
func (b *Builder) TruncateNodes(mark int) {
	b.kind = b.kind[:mark]
	b.token = b.token[:mark]
	b.data = b.data[:mark]
}

func (b *Builder) indexOf(i int) Index {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("ast: node index overflow: %w", err))
	}
	return Index(v)
}

// PushScratch appends a provisional node onto the scratch stack.
func (b *Builder) PushScratch(n Node) {
	b.scratch = append(b.scratch, n)
}

// ScratchMark returns the current scratch stack depth, to be passed back
// to MaterializeRange (or restored directly to unwind a failed list on a
// speculative-parse rollback).
func (b *Builder) ScratchMark() int {
	return len(b.scratch)
}

// RestoreScratch truncates the scratch stack back to a previously recorded
// mark, discarding anything pushed since. Used when a speculative parse of
// a list fails and its provisional entries must not survive.
func (b *Builder) RestoreScratch(mark int) {
	b.scratch = b.scratch[:mark]
}

// MaterializeRange moves every scratch entry pushed since mark into the
// main node array as a contiguous run, in order, and returns the inclusive
// {start, end} range now occupied by those nodes. If nothing was pushed
// since mark, it returns {0, 0} (the empty-body sentinel).
func (b *Builder) MaterializeRange(mark int) (start, end Index) {
	pending := b.scratch[mark:]
	if len(pending) == 0 {
		b.scratch = b.scratch[:mark]
		return Invalid, Invalid
	}

	start = b.indexOf(len(b.kind))
	for _, n := range pending {
		b.kind = append(b.kind, n.Kind)
		b.token = append(b.token, n.Token)
		b.data = append(b.data, n.Data)
	}
	end = b.indexOf(len(b.kind) - 1)

	b.scratch = b.scratch[:mark]
	return start, end
}

// AppendExtra appends raw bytes to the extra arena and returns the byte
// offset they start at. Extra-buffer offsets are stable for the tree's
// lifetime since the arena is append-only.
func (b *Builder) AppendExtra(data []byte) uint32 {
	off := b.indexOf(len(b.extra))
	b.extra = append(b.extra, data...)
	return uint32(off)
}

// Build finalises the Builder into an immutable Tree.
func (b *Builder) Build(decls []Index) Tree {
	return Tree{
		Kind:  b.kind,
		Token: b.token,
		Data:  b.data,
		Extra: b.extra,
		Decls: decls,
	}
}

// Extra exposes the extra arena written so far, before Build hands the
// same bytes to Tree.Extra; the parser does not call it.
func (b *Builder) Extra() []byte { return b.extra }

package ast

import "testing"

func TestNewBuilderPlacesRootAtZero(t *testing.T) {
	b := NewBuilder(0)
	if b.Len() != 1 {
		t.Fatalf("expected exactly the root node, got len=%d", b.Len())
	}
	tree := b.Build(nil)
	if tree.KindOf(0) != ROOT {
		t.Fatalf("expected node 0 to be ROOT, got %v", tree.KindOf(0))
	}
}

func TestReserveThenSetNode(t *testing.T) {
	b := NewBuilder(0)
	idx := b.ReserveNode()
	child := b.AddNode(IDENTIFIER, 3, Data{})
	b.SetNode(idx, CONST, 1, VariableData(Invalid, child))

	tree := b.Build([]Index{idx})
	if tree.KindOf(idx) != CONST {
		t.Fatalf("expected CONST, got %v", tree.KindOf(idx))
	}
	_, expr := tree.DataOf(idx).Variable()
	if expr != child {
		t.Fatalf("expected expr to point at child %d, got %d", child, expr)
	}
}

func TestPopNodeOnlyAtTail(t *testing.T) {
	b := NewBuilder(0)
	idx := b.ReserveNode()
	b.PopNode(idx) // tail, should not panic
	if b.Len() != 1 {
		t.Fatalf("expected pop to remove the reserved node, len=%d", b.Len())
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected PopNode on a non-tail index to panic")
		}
	}()
	first := b.ReserveNode()
	b.ReserveNode()
	b.PopNode(first)
}

func TestTruncateNodesDiscardsReservedAndRealNodes(t *testing.T) {
	b := NewBuilder(0)
	mark := b.NodeMark()

	protoIdx := b.ReserveNode()
	funcIdx := b.ReserveNode()
	b.AddNode(IDENTIFIER, 5, Data{}) // a real child appended after the reservations

	b.TruncateNodes(mark)
	if b.Len() != mark {
		t.Fatalf("expected TruncateNodes to restore len to %d, got %d", mark, b.Len())
	}

	// The array is usable again afterwards: a fresh reservation lands at
	// the same index the truncated attempt used.
	again := b.ReserveNode()
	if again != protoIdx {
		t.Fatalf("expected the freed index %d to be reused, got %d", protoIdx, again)
	}
	_ = funcIdx
}

func TestMaterializeRangeEmptyIsZeroZero(t *testing.T) {
	b := NewBuilder(0)
	mark := b.ScratchMark()
	start, end := b.MaterializeRange(mark)
	if start != Invalid || end != Invalid {
		t.Fatalf("expected {0,0} for an empty list, got {%d,%d}", start, end)
	}
}

func TestMaterializeRangeIsContiguous(t *testing.T) {
	b := NewBuilder(0)
	mark := b.ScratchMark()
	b.PushScratch(Node{Kind: FIELD, Token: 1})
	b.PushScratch(Node{Kind: FIELD, Token: 2})
	b.PushScratch(Node{Kind: FIELD, Token: 3})
	start, end := b.MaterializeRange(mark)

	if end-start != 2 {
		t.Fatalf("expected 3 contiguous nodes, got range {%d,%d}", start, end)
	}
	tree := b.Build(nil)
	for i := start; i <= end; i++ {
		if tree.KindOf(i) != FIELD {
			t.Fatalf("node %d: expected FIELD, got %v", i, tree.KindOf(i))
		}
	}
}

func TestNestedScratchListsDoNotInterfere(t *testing.T) {
	b := NewBuilder(0)
	outerMark := b.ScratchMark()
	b.PushScratch(Node{Kind: VARIANT_SIMPLE, Token: 1})

	innerMark := b.ScratchMark()
	b.PushScratch(Node{Kind: FIELD, Token: 2})
	b.PushScratch(Node{Kind: FIELD, Token: 3})
	innerStart, innerEnd := b.MaterializeRange(innerMark)
	if innerEnd-innerStart != 1 {
		t.Fatalf("expected 2 inner nodes, got {%d,%d}", innerStart, innerEnd)
	}

	outerStart, outerEnd := b.MaterializeRange(outerMark)
	if outerEnd-outerStart != 0 {
		t.Fatalf("expected 1 outer node, got {%d,%d}", outerStart, outerEnd)
	}
}

func TestFuncProtoOneRoundTrip(t *testing.T) {
	b := NewBuilder(0)
	off := b.WriteFuncProtoOne(FuncProtoOne{Param: 7, CallingConvention: Invalid})
	tree := b.Build(nil)
	got := tree.ReadFuncProtoOne(off)
	if got.Param != 7 || got.CallingConvention != Invalid {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestFuncProtoRoundTrip(t *testing.T) {
	b := NewBuilder(0)
	off := b.WriteFuncProto(FuncProto{ParamsStart: 3, ParamsEnd: 5, CallingConvention: 9})
	tree := b.Build(nil)
	got := tree.ReadFuncProto(off)
	if got.ParamsStart != 3 || got.ParamsEnd != 5 || got.CallingConvention != 9 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

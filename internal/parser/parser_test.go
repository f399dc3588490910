package parser

import (
	"testing"

	"wave/internal/ast"
	"wave/internal/source"
)

func mustParse(t *testing.T, src string) (ast.Tree, []string) {
	t.Helper()
	tree, bag := Parse(source.FileID(1), []byte(src))
	msgs := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		msgs = append(msgs, d.Message)
	}
	return tree, msgs
}

func TestParseEmptySourceIsJustRoot(t *testing.T) {
	tree, msgs := mustParse(t, "")
	if tree.NumNodes() != 1 || tree.KindOf(0) != ast.ROOT {
		t.Fatalf("expected a lone ROOT node, got %d nodes, kind[0]=%v", tree.NumNodes(), tree.KindOf(0))
	}
	if len(tree.Decls) != 0 {
		t.Fatalf("expected no decls, got %v", tree.Decls)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
}

func TestParseEmptyFunctionLiteral(t *testing.T) {
	tree, msgs := mustParse(t, "main :: () {\n}")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
	if len(tree.Decls) != 1 {
		t.Fatalf("expected exactly one decl, got %d", len(tree.Decls))
	}

	constIdx := tree.Decls[0]
	if tree.KindOf(constIdx) != ast.CONST {
		t.Fatalf("expected CONST, got %v", tree.KindOf(constIdx))
	}
	typ, expr := tree.DataOf(constIdx).Variable()
	if typ != ast.Invalid {
		t.Fatalf("expected no declared type, got %v", typ)
	}
	if tree.KindOf(expr) != ast.FUNC {
		t.Fatalf("expected FUNC, got %v", tree.KindOf(expr))
	}

	protoIdx, body := tree.DataOf(expr).Func()
	if tree.KindOf(protoIdx) != ast.FUNC_PROTO_ONE {
		t.Fatalf("expected FUNC_PROTO_ONE, got %v", tree.KindOf(protoIdx))
	}
	extraOff, returnType := tree.DataOf(protoIdx).FuncProto()
	if returnType != ast.Invalid {
		t.Fatalf("expected no return type, got %v", returnType)
	}
	proto := tree.ReadFuncProtoOne(extraOff)
	if proto.Param != ast.Invalid || proto.CallingConvention != ast.Invalid {
		t.Fatalf("expected an empty prototype, got %+v", proto)
	}

	if tree.KindOf(body) != ast.BLOCK {
		t.Fatalf("expected BLOCK body, got %v", tree.KindOf(body))
	}
	start, end := tree.DataOf(body).Range()
	if start != ast.Invalid || end != ast.Invalid {
		t.Fatalf("expected an empty block, got range {%d,%d}", start, end)
	}
}

func TestParseStructTwoFields(t *testing.T) {
	tree, msgs := mustParse(t, "foo :: struct {bar: int, baz: [5]int\n}")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}

	_, structIdx := tree.DataOf(tree.Decls[0]).Variable()
	if tree.KindOf(structIdx) != ast.STRUCT_TWO {
		t.Fatalf("expected STRUCT_TWO, got %v", tree.KindOf(structIdx))
	}
	start, end := tree.DataOf(structIdx).Range()
	if end-start != 1 {
		t.Fatalf("expected exactly two fields, got range {%d,%d}", start, end)
	}

	barType, _ := tree.DataOf(start).Param()
	if tree.KindOf(barType) != ast.IDENTIFIER {
		t.Fatalf("expected bar's type to be an IDENTIFIER, got %v", tree.KindOf(barType))
	}

	bazType, _ := tree.DataOf(end).Param()
	if tree.KindOf(bazType) != ast.ARRAY_TYPE {
		t.Fatalf("expected baz's type to be an ARRAY_TYPE, got %v", tree.KindOf(bazType))
	}
	length, elem := tree.DataOf(bazType).Binary()
	if tree.KindOf(length) != ast.INT_LIT {
		t.Fatalf("expected array length to be an INT literal, got %v", tree.KindOf(length))
	}
	if tree.KindOf(elem) != ast.IDENTIFIER {
		t.Fatalf("expected array element type to be an IDENTIFIER, got %v", tree.KindOf(elem))
	}
}

func TestParseEnumTwoVariants(t *testing.T) {
	tree, msgs := mustParse(t, "foo :: enum {hello(int)\n world}")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}

	_, enumIdx := tree.DataOf(tree.Decls[0]).Variable()
	if tree.KindOf(enumIdx) != ast.ENUM_TWO {
		t.Fatalf("expected ENUM_TWO, got %v", tree.KindOf(enumIdx))
	}
	start, end := tree.DataOf(enumIdx).Range()
	if end-start != 1 {
		t.Fatalf("expected exactly two variants, got range {%d,%d}", start, end)
	}

	if tree.KindOf(start) != ast.VARIANT_TWO {
		t.Fatalf("expected first variant to be VARIANT_TWO, got %v", tree.KindOf(start))
	}
	fStart, fEnd := tree.DataOf(start).Range()
	if fStart != fEnd {
		t.Fatalf("expected exactly one positional field, got range {%d,%d}", fStart, fEnd)
	}
	fieldType, _ := tree.DataOf(fStart).Param()
	if tree.KindOf(fieldType) != ast.IDENTIFIER {
		t.Fatalf("expected the positional field's type to be an IDENTIFIER, got %v", tree.KindOf(fieldType))
	}

	if tree.KindOf(end) != ast.VARIANT_SIMPLE {
		t.Fatalf("expected second variant to be VARIANT_SIMPLE, got %v", tree.KindOf(end))
	}
}

func TestParseComplexImportWithAlias(t *testing.T) {
	tree, msgs := mustParse(t, "import foo { baz, fizzbuzz } as bar")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
	if len(tree.Decls) != 1 {
		t.Fatalf("expected exactly one decl, got %d", len(tree.Decls))
	}

	idx := tree.Decls[0]
	if tree.KindOf(idx) != ast.IMPORT_COMPLEX {
		t.Fatalf("expected IMPORT_COMPLEX, got %v", tree.KindOf(idx))
	}
	alias, symbols := tree.DataOf(idx).Binary()
	if tree.KindOf(alias) != ast.IDENTIFIER {
		t.Fatalf("expected an alias IDENTIFIER, got %v", tree.KindOf(alias))
	}
	if tree.KindOf(symbols) != ast.RANGE {
		t.Fatalf("expected a RANGE of symbols, got %v", tree.KindOf(symbols))
	}
	start, end := tree.DataOf(symbols).Range()
	if end-start != 1 {
		t.Fatalf("expected exactly two symbols, got range {%d,%d}", start, end)
	}
	if tree.KindOf(start) != ast.IDENTIFIER || tree.KindOf(end) != ast.IDENTIFIER {
		t.Fatalf("expected both symbols to be IDENTIFIER nodes")
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	// 2 * 1 - 2 * 3 should parse as (2*1) - (2*3), not left-to-right flat.
	tree, msgs := mustParse(t, "hello :: 2 * 1 - 2 * 3")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}

	_, expr := tree.DataOf(tree.Decls[0]).Variable()
	if tree.KindOf(expr) != ast.SUB_EXPR {
		t.Fatalf("expected the top-level operator to be SUB_EXPR, got %v", tree.KindOf(expr))
	}
	lhs, rhs := tree.DataOf(expr).Binary()
	if tree.KindOf(lhs) != ast.MUL_EXPR || tree.KindOf(rhs) != ast.MUL_EXPR {
		t.Fatalf("expected both operands of '-' to be MUL_EXPR, got %v and %v", tree.KindOf(lhs), tree.KindOf(rhs))
	}
}

func TestParseInvalidDeclarationRecovers(t *testing.T) {
	tree, msgs := mustParse(t, "+ bad\nok :: 1")
	if len(msgs) == 0 {
		t.Fatalf("expected a diagnostic for the invalid declaration")
	}
	if len(tree.Decls) != 1 {
		t.Fatalf("expected recovery to still find the trailing decl, got %d decls", len(tree.Decls))
	}
	if tree.KindOf(tree.Decls[0]) != ast.CONST {
		t.Fatalf("expected the recovered decl to be CONST, got %v", tree.KindOf(tree.Decls[0]))
	}
}

func TestParseFunctionVsParenExprDisambiguation(t *testing.T) {
	tree, msgs := mustParse(t, "x :: (1 + 2)")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
	_, expr := tree.DataOf(tree.Decls[0]).Variable()
	if tree.KindOf(expr) != ast.PAREN_EXPR {
		t.Fatalf("expected PAREN_EXPR, got %v", tree.KindOf(expr))
	}
}

// TestParseFuncLitRecoversAfterLaterParamFails reproduces a case where the
// first parameter's type is parsed as a real node before a later parameter
// fails: parseFunc must still unwind cleanly instead of assuming the two
// nodes it reserved are the array's tail.
func TestParseFuncLitRecoversAfterLaterParamFails(t *testing.T) {
	tree, msgs := mustParse(t, "f :: (a: int, b: )\nok :: 1")
	if len(msgs) == 0 {
		t.Fatalf("expected a diagnostic for the malformed parameter list")
	}
	if len(tree.Decls) != 2 {
		t.Fatalf("expected recovery to still find both decls, got %d decls", len(tree.Decls))
	}
	if tree.KindOf(tree.Decls[1]) != ast.CONST {
		t.Fatalf("expected the trailing decl to be CONST, got %v", tree.KindOf(tree.Decls[1]))
	}
}

package ast

// Index is a 32-bit index into the node array or the extra buffer. 0 means
// "invalid/absent" everywhere it is used as a child reference; as a node
// array index it also names the mandatory root node.
type Index uint32

// Invalid is the zero Index, doubling as both "no node" and "the root".
const Invalid Index = 0

// IsValid reports whether i refers to a real, non-root node. Callers that
// need to distinguish "the root" from "absent" must compare against
// Invalid directly and consult context; within expression/type/param
// payloads, 0 always means absent.
func (i Index) IsValid() bool { return i != Invalid }

// Data is the fixed-size payload every node carries, reinterpreted
// according to its Kind. It is deliberately a plain pair of 32-bit fields:
// inspecting the original AST's payload union shows every variant is one or
// two Index-sized fields, so a single {A, B} shape covers binary
// expressions, unary expressions, ranges, function nodes and prototypes
// alike without a tagged union.
type Data struct {
	A, B uint32
}

// Binary reads Data as {lhs, rhs}, used by every binary-expression kind and
// by CONST/VAR ({type, expr}), IMPORT_COMPLEX/FOREIGN_IMPORT_COMPLEX
// ({alias, symbols}), and FIELD/PARAM-shaped nodes.
func (d Data) Binary() (lhs, rhs Index) { return Index(d.A), Index(d.B) }

// BinaryData builds a Data from a {lhs, rhs} pair.
func BinaryData(lhs, rhs Index) Data { return Data{uint32(lhs), uint32(rhs)} }

// Unary reads Data as {expr}, used by unary-expression kinds and by
// REF_TYPE/REF_MUT_TYPE/REF_OWN_TYPE.
func (d Data) Unary() Index { return Index(d.A) }

// UnaryData builds a Data from a single child index.
func UnaryData(expr Index) Data { return Data{uint32(expr), 0} }

// Range reads Data as an inclusive {start, end} sibling range, used by
// STRUCT/STRUCT_TWO, ENUM/ENUM_TWO, VARIANT bodies, BLOCK, and RANGE nodes.
// {0, 0} means empty.
func (d Data) Range() (start, end Index) { return Index(d.A), Index(d.B) }

// RangeData builds a Data from a {start, end} pair.
func RangeData(start, end Index) Data { return Data{uint32(start), uint32(end)} }

// Func reads Data as {protoNode, body}, used by FUNC nodes.
func (d Data) Func() (protoNode, body Index) { return Index(d.A), Index(d.B) }

// FuncData builds a Data from a {protoNode, body} pair.
func FuncData(protoNode, body Index) Data { return Data{uint32(protoNode), uint32(body)} }

// FuncProto reads Data as {extraOffset, returnType}, used by FUNC_PROTO and
// FUNC_PROTO_ONE. extraOffset indexes into the Builder's Extra buffer,
// where a FuncProtoOne or FuncProto record (matching the node's Kind) is
// stored.
func (d Data) FuncProto() (extraOffset uint32, returnType Index) {
	return d.A, Index(d.B)
}

// FuncProtoData builds a Data from a {extraOffset, returnType} pair.
func FuncProtoData(extraOffset uint32, returnType Index) Data {
	return Data{extraOffset, uint32(returnType)}
}

// Param reads Data as {type, defaultExpr}, used by PARAM/VARPARAM nodes.
func (d Data) Param() (typ, defaultExpr Index) { return Index(d.A), Index(d.B) }

// ParamData builds a Data from a {type, defaultExpr} pair.
func ParamData(typ, defaultExpr Index) Data { return Data{uint32(typ), uint32(defaultExpr)} }

// Variable is an alias of Binary, used by CONST/VAR ({type, expr}).
func (d Data) Variable() (typ, expr Index) { return d.Binary() }

// VariableData is an alias of BinaryData.
func VariableData(typ, expr Index) Data { return BinaryData(typ, expr) }

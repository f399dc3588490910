package ast

import "encoding/binary"

// FuncProtoOne is the extra-buffer shape for a FUNC_PROTO_ONE node: a
// prototype with zero or one parameters. param is Invalid when there are
// none.
type FuncProtoOne struct {
	Param             Index
	CallingConvention Index // STRING_LIT node, or Invalid
}

// FuncProto is the extra-buffer shape for a FUNC_PROTO node: a prototype
// with two or more parameters, stored as a sibling range.
type FuncProto struct {
	ParamsStart       Index
	ParamsEnd         Index
	CallingConvention Index
}

const funcProtoOneSize = 8
const funcProtoSize = 12

// WriteFuncProtoOne appends a FuncProtoOne record to the extra arena and
// returns its byte offset.
func (b *Builder) WriteFuncProtoOne(p FuncProtoOne) uint32 {
	var buf [funcProtoOneSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(p.Param))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(p.CallingConvention))
	return b.AppendExtra(buf[:])
}

// WriteFuncProto appends a FuncProto record to the extra arena and returns
// its byte offset.
func (b *Builder) WriteFuncProto(p FuncProto) uint32 {
	var buf [funcProtoSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(p.ParamsStart))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(p.ParamsEnd))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(p.CallingConvention))
	return b.AppendExtra(buf[:])
}

// ReadFuncProtoOne reinterprets the bytes at offset as a FuncProtoOne.
// Callers must only call this for an offset written by WriteFuncProtoOne
// for a FUNC_PROTO_ONE node; the shape is encoded in the owning node's
// Kind, not in the buffer itself.
func (t *Tree) ReadFuncProtoOne(offset uint32) FuncProtoOne {
	buf := t.Extra[offset : offset+funcProtoOneSize]
	return FuncProtoOne{
		Param:             Index(binary.LittleEndian.Uint32(buf[0:4])),
		CallingConvention: Index(binary.LittleEndian.Uint32(buf[4:8])),
	}
}

// ReadFuncProto reinterprets the bytes at offset as a FuncProto.
func (t *Tree) ReadFuncProto(offset uint32) FuncProto {
	buf := t.Extra[offset : offset+funcProtoSize]
	return FuncProto{
		ParamsStart:       Index(binary.LittleEndian.Uint32(buf[0:4])),
		ParamsEnd:         Index(binary.LittleEndian.Uint32(buf[4:8])),
		CallingConvention: Index(binary.LittleEndian.Uint32(buf[8:12])),
	}
}

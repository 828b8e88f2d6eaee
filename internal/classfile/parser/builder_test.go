package parser

import (
	"encoding/binary"

	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

func newCursorFor(b []byte) *reader.Cursor {
	return reader.New(b)
}

// classBuilder assembles raw class-file bytes for tests. It mirrors the
// linear, fixed-order structure the decoder itself expects (§4.6 of the
// specification this decoder implements) so tests read as a sequence of
// "write this field" calls instead of opaque hex blobs.
type classBuilder struct {
	buf []byte
}

func newClassBuilder() *classBuilder {
	return &classBuilder{}
}

func (b *classBuilder) u1(v byte) *classBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *classBuilder) u2(v uint16) *classBuilder {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *classBuilder) u4(v uint32) *classBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *classBuilder) u8(v uint64) *classBuilder {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *classBuilder) bytes(p []byte) *classBuilder {
	b.buf = append(b.buf, p...)
	return b
}

// utf8Body appends a CONSTANT_Utf8_info body (tag already written by caller):
// u2 length + raw bytes.
func (b *classBuilder) utf8Body(s string) *classBuilder {
	b.u2(uint16(len(s)))
	b.buf = append(b.buf, []byte(s)...)
	return b
}

func (b *classBuilder) bytesOut() []byte {
	return b.buf
}

// minimalEmptyClass builds the bytes for a class equivalent to
// `public class Empty {}` compiled for Java 8 (major=52): one constructor
// <init>()V whose Code is `aload_0; invokespecial; return`, matching the
// spec's "Empty class" end-to-end scenario.
func minimalEmptyClass() []byte {
	b := newClassBuilder()

	b.u4(0xCAFEBABE)
	b.u2(0)  // minor
	b.u2(52) // major (Java 8)

	// Constant pool: count = 10 (slots 1..9)
	b.u2(10)
	// #1 Methodref #2.#3
	b.u1(10).u2(2).u2(3)
	// #2 Class #4
	b.u1(7).u2(4)
	// #3 NameAndType #5:#6
	b.u1(12).u2(5).u2(6)
	// #4 Utf8 "java/lang/Object"
	b.u1(1).utf8Body("java/lang/Object")
	// #5 Utf8 "<init>"
	b.u1(1).utf8Body("<init>")
	// #6 Utf8 "()V"
	b.u1(1).utf8Body("()V")
	// #7 Class #8
	b.u1(7).u2(8)
	// #8 Utf8 "Empty"
	b.u1(1).utf8Body("Empty")
	// #9 Utf8 "Code"
	b.u1(1).utf8Body("Code")

	b.u2(0x0021)    // access_flags: PUBLIC | SUPER
	b.u2(7)         // this_class -> #7 (Empty)
	b.u2(2)         // super_class -> #2 (java/lang/Object)
	b.u2(0)         // interfaces_count
	b.u2(0)         // fields_count

	// methods_count = 1
	b.u2(1)
	b.u2(0x0001) // access_flags: PUBLIC
	b.u2(5)      // name_index -> <init>
	b.u2(6)      // descriptor_index -> ()V
	b.u2(1)      // attributes_count = 1

	// Code attribute
	b.u2(9) // name_index -> "Code"
	code := []byte{0x2a, 0xb7, 0x00, 0x01, 0xb1} // aload_0, invokespecial #1, return
	// attribute_length = max_stack(2) + max_locals(2) + code_length(4) + len(code)
	//                    + exception_table_length(2) + attributes_count(2)
	attrLen := 2 + 2 + 4 + len(code) + 2 + 2
	b.u4(uint32(attrLen))
	b.u2(1) // max_stack
	b.u2(1) // max_locals
	b.u4(uint32(len(code)))
	b.bytes(code)
	b.u2(0) // exception_table_length
	b.u2(0) // Code's own attributes_count

	b.u2(0) // class-level attributes_count

	return b.bytesOut()
}

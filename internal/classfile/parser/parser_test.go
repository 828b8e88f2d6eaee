package parser

import (
	"testing"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

func TestParseEmptyClass(t *testing.T) {
	cf, err := Parse(minimalEmptyClass())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cf.MajorVersion != 52 {
		t.Fatalf("MajorVersion = %d, want 52", cf.MajorVersion)
	}
	if !cf.AccessFlags.Has(model.FlagPublic) || !cf.AccessFlags.Has(model.FlagSuper) {
		t.Fatalf("AccessFlags = %+v, want PUBLIC|SUPER", cf.AccessFlags)
	}
	name, err := cf.ConstantPool.ClassName(cf.ThisClass, "this_class")
	if err != nil {
		t.Fatalf("ClassName: %v", err)
	}
	if name != "Empty" {
		t.Fatalf("this_class = %q, want Empty", name)
	}
	if len(cf.Methods) != 1 {
		t.Fatalf("len(Methods) = %d, want 1", len(cf.Methods))
	}
	m := cf.Methods[0]
	if !m.AccessFlags.Has(model.FlagPublic) {
		t.Fatal("<init> should be PUBLIC")
	}
	if len(m.Attributes) != 1 || m.Attributes[0].Kind != model.AttrCode {
		t.Fatalf("expected a single Code attribute, got %+v", m.Attributes)
	}
	code := m.Attributes[0].Body.(*model.CodeAttribute)
	if len(code.Code) != 5 {
		t.Fatalf("Code length = %d, want 5", len(code.Code))
	}
	if len(cf.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics on a well-formed class, got %v", cf.Diagnostics)
	}
}

func TestParseSyntheticFinalPrivateAccessFlags(t *testing.T) {
	// A field access_flags mask of 0x10 | 0x1000 | 0x0002 = {SYNTHETIC, FINAL, PRIVATE}.
	af := model.DecodeAccessFlags(0x10|0x1000|0x0002, model.ContextField)
	want := []model.AccessFlagBit{model.FlagSynthetic, model.FlagFinal, model.FlagPrivate}
	for _, w := range want {
		if !af.Has(w) {
			t.Fatalf("expected %s set in %+v", w, af)
		}
	}
	if len(af.Flags) != len(want) {
		t.Fatalf("expected exactly %d flags, got %+v", len(want), af.Flags)
	}
	if af.Residue != 0 {
		t.Fatalf("expected no residue, got 0x%04x", af.Residue)
	}
}

func TestParseUnknownAttributeIsPreservedRaw(t *testing.T) {
	b := newClassBuilder().
		u4(0xCAFEBABE).u2(0).u2(52).
		u2(3). // constant pool count = 3
		u1(byte(model.TagUtf8)).utf8Body("X-Vendor-Meta").
		u1(byte(model.TagClass)).u2(0). // unused dummy, name_index 0 never resolved
		u2(0x0020).                     // access_flags
		u2(0).                          // this_class (invalid but unused by this test)
		u2(0).                          // super_class
		u2(0).                          // interfaces_count
		u2(0).                          // fields_count
		u2(0).                          // methods_count
		u2(1)                           // attributes_count = 1

	b.u2(1) // attribute_name_index -> #1 "X-Vendor-Meta"
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	b.u4(uint32(len(payload)))
	b.bytes(payload)

	cf, err := Parse(b.bytesOut())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cf.Attributes) != 1 {
		t.Fatalf("expected 1 class attribute, got %d", len(cf.Attributes))
	}
	a := cf.Attributes[0]
	if a.Kind != "" {
		t.Fatalf("unknown attribute should have empty Kind, got %q", a.Kind)
	}
	if a.Name != "X-Vendor-Meta" {
		t.Fatalf("Name = %q, want X-Vendor-Meta", a.Name)
	}
	if len(a.RawBytes) != 4 {
		t.Fatalf("RawBytes = % x, want 4 preserved bytes", a.RawBytes)
	}
}

func TestParseTruncatedInputIsUnexpectedEOF(t *testing.T) {
	_, err := Parse([]byte{0xCA, 0xFE, 0xBA})
	if err == nil {
		t.Fatal("expected an error decoding 3 bytes")
	}
	if _, ok := err.(*reader.ErrUnexpectedEOF); !ok {
		t.Fatalf("expected *reader.ErrUnexpectedEOF, got %T (%v)", err, err)
	}
}

func TestParseTrailingBytesIsFatal(t *testing.T) {
	valid := minimalEmptyClass()
	withTrailer := append(append([]byte(nil), valid...), 0x00)
	_, err := Parse(withTrailer)
	if err == nil {
		t.Fatal("expected TrailingBytes error")
	}
	if _, ok := err.(*model.TrailingBytesError); !ok {
		t.Fatalf("expected *model.TrailingBytesError, got %T (%v)", err, err)
	}
}

func TestParseStackMapTableFullFrame(t *testing.T) {
	frames, err := parseStackMapTableBytes(t, fullFrameStackMapTableBody())
	if err != nil {
		t.Fatalf("parseStackMapTable: %v", err)
	}
	if len(frames.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames.Frames))
	}
	f := frames.Frames[0]
	if f.Kind != model.FrameFull {
		t.Fatalf("Kind = %v, want FrameFull", f.Kind)
	}
	if f.OffsetDelta != 10 {
		t.Fatalf("OffsetDelta = %d, want 10", f.OffsetDelta)
	}
	if len(f.Locals) != 1 || f.Locals[0].Tag != model.VInteger {
		t.Fatalf("Locals = %+v, want one VInteger", f.Locals)
	}
	if len(f.Stack) != 1 || f.Stack[0].Tag != model.VObject || f.Stack[0].CpIndex != 42 {
		t.Fatalf("Stack = %+v, want one VObject(cp=42)", f.Stack)
	}
}

// fullFrameStackMapTableBody builds the body of a StackMapTable attribute
// (after name_index/length) containing a single full_frame (frame_type 255):
// offset_delta=10, one local (Integer), one stack item (Object, cp index 42).
func fullFrameStackMapTableBody() []byte {
	b := newClassBuilder().
		u2(1).        // number_of_entries
		u1(255).      // frame_type: full_frame
		u2(10).       // offset_delta
		u2(1).        // number_of_locals
		u1(byte(model.VInteger)).
		u2(1). // number_of_stack_items
		u1(byte(model.VObject)).u2(42)
	return b.bytesOut()
}

func parseStackMapTableBytes(t *testing.T, body []byte) (*model.StackMapTableAttribute, error) {
	t.Helper()
	result, err := decodeAttributeBody(newCursorFor(body), model.AttrStackMapTable, uint32(len(body)), nil, nil)
	if err != nil {
		return nil, err
	}
	return result.(*model.StackMapTableAttribute), nil
}

// TestParseStackMapTableReservedFrameTypeIsRecoverable verifies that a
// reserved frame_type aborts only the table being decoded: the frames seen
// before it survive, the table is marked Invalid, a diagnostic is recorded,
// and no error reaches the caller (so the enclosing Code attribute, and the
// whole class file, keep decoding).
func TestParseStackMapTableReservedFrameTypeIsRecoverable(t *testing.T) {
	body := newClassBuilder().
		u2(2).   // number_of_entries
		u1(10).  // frame_type: same_frame, offset_delta=10
		u1(200). // frame_type: reserved (128..246)
		bytesOut()

	var diags []model.Diagnostic
	result, err := decodeAttributeBody(newCursorFor(body), model.AttrStackMapTable, uint32(len(body)), nil, &diags)
	if err != nil {
		t.Fatalf("decodeAttributeBody: %v", err)
	}
	table := result.(*model.StackMapTableAttribute)

	if !table.Invalid {
		t.Fatalf("expected StackMapTableAttribute to be marked Invalid")
	}
	if len(table.Frames) != 1 || table.Frames[0].Kind != model.FrameSame {
		t.Fatalf("Frames = %+v, want one FrameSame", table.Frames)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	reservedErr, ok := diags[0].Err.(*model.ReservedFrameTypeError)
	if !ok {
		t.Fatalf("diags[0].Err = %T, want *model.ReservedFrameTypeError", diags[0].Err)
	}
	if reservedErr.Value != 200 {
		t.Fatalf("ReservedFrameTypeError.Value = %d, want 200", reservedErr.Value)
	}
}

// TestParseAnnotationsUnknownElementValueTagTruncatesArray verifies that an
// unknown element_value tag aborts only the annotation being decoded: the
// annotations array is truncated at that point, a diagnostic is recorded,
// and no error reaches the caller.
func TestParseAnnotationsUnknownElementValueTagTruncatesArray(t *testing.T) {
	body := newClassBuilder().
		u2(2).          // num_annotations
		u2(1).          // annotation[0].type_index
		u2(1).          // num_element_value_pairs
		u2(5).          // element_value_pairs[0].element_name_index
		u1('I').u2(7).  // element_value: int, const_value_index=7
		u2(2).          // annotation[1].type_index
		u2(1).          // num_element_value_pairs
		u2(5).          // element_value_pairs[0].element_name_index
		u1('?')         // element_value: unknown tag
	b := body.bytesOut()

	var diags []model.Diagnostic
	c := newCursorFor(b)
	anns, err := parseAnnotations(c, &diags)
	if err != nil {
		t.Fatalf("parseAnnotations: %v", err)
	}
	if len(anns) != 1 {
		t.Fatalf("expected 1 annotation to survive, got %d", len(anns))
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if _, ok := diags[0].Err.(*model.UnknownElementValueTagError); !ok {
		t.Fatalf("diags[0].Err = %T, want *model.UnknownElementValueTagError", diags[0].Err)
	}
}

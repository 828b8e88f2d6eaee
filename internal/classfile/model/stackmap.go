package model

// VerificationTypeTag is the one-byte tag of a VerificationTypeInfo entry (JVMS 4.7.4).
type VerificationTypeTag byte

const (
	VTop               VerificationTypeTag = 0
	VInteger           VerificationTypeTag = 1
	VFloat             VerificationTypeTag = 2
	VDouble            VerificationTypeTag = 3
	VLong              VerificationTypeTag = 4
	VNull              VerificationTypeTag = 5
	VUninitializedThis VerificationTypeTag = 6
	VObject            VerificationTypeTag = 7
	VUninitialized     VerificationTypeTag = 8
)

// VerificationTypeInfo describes one local or stack slot's expected type at
// a stack map frame. CpIndex is meaningful only for VObject (a Class
// constant pool index); Offset only for VUninitialized (a code offset of
// the `new` instruction that created the not-yet-initialized value).
type VerificationTypeInfo struct {
	Tag     VerificationTypeTag
	CpIndex int // VObject
	Offset  int // VUninitialized
}

// StackMapFrameKind selects which of the seven frame encodings a
// StackMapFrame carries (JVMS 4.7.4).
type StackMapFrameKind int

const (
	FrameSame StackMapFrameKind = iota
	FrameSameLocals1StackItem
	FrameSameLocals1StackItemExtended
	FrameChop
	FrameSameExtended
	FrameAppend
	FrameFull
)

// StackMapFrame is one entry of a StackMapTable, tagged by Kind per the
// frame_type ranges in §4.5.2.
type StackMapFrame struct {
	Kind         StackMapFrameKind
	FrameType    byte // the raw leading byte, preserved for diagnostics
	OffsetDelta  int
	ChopK        int                    // FrameChop: 251 - frame_type
	Locals       []VerificationTypeInfo // FrameAppend, FrameFull
	Stack        []VerificationTypeInfo // FrameSameLocals1StackItem(Extended): single-element; FrameFull
}

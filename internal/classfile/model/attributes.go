package model

// Attribute is a named, length-prefixed extension slot attached to a class,
// field, method, Code, or record component (JVMS 4.7). Body holds one of the
// concrete *Attribute structs below, selected by Kind; for an unrecognised
// name, Kind is empty and Body is nil — Name/RawBytes carry the payload
// verbatim instead.
type Attribute struct {
	Kind   AttributeKind // empty for an unrecognised attribute
	Name   string        // resolved attribute_name_index
	Length uint32        // declared attribute_length

	Body AttributeBody // nil when Kind is empty (unrecognised attribute)

	RawBytes []byte // set only for an unrecognised attribute
}

// AttributeBody is implemented by every recognised attribute's payload type.
type AttributeBody interface {
	isAttributeBody()
}

type ConstantValueAttribute struct {
	ValueIndex int
}

func (*ConstantValueAttribute) isAttributeBody() {}

type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType int // 0 means "catches all" (finally)
}

type CodeAttribute struct {
	MaxStack      uint16
	MaxLocals     uint16
	Code          []byte        // raw opcode bytes
	Instructions  []Instruction // one entry per byte, per §4.7's byte-granular recognizer
	ExceptionTable []ExceptionTableEntry
	Attributes    []Attribute // nested attributes: LineNumberTable, LocalVariable(Type)Table, StackMapTable, ...
}

func (*CodeAttribute) isAttributeBody() {}

// Instruction is one opcode byte annotated with its mnemonic. Operand widths
// are not parsed (§4.7 is a deliberate non-goal), so Instructions has one
// entry per raw byte in Code, not one per actual instruction.
type Instruction struct {
	Offset   int
	Opcode   byte
	Mnemonic string
}

type StackMapTableAttribute struct {
	Frames []StackMapFrame

	// Invalid is set when a reserved frame_type (128..246) was encountered
	// partway through: Frames holds every frame decoded before that point,
	// and the table as a whole can no longer be trusted for verification.
	Invalid bool
}

func (*StackMapTableAttribute) isAttributeBody() {}

type ExceptionsAttribute struct {
	ExceptionIndexTable []int
}

func (*ExceptionsAttribute) isAttributeBody() {}

type InnerClassEntry struct {
	InnerClassInfoIndex   int
	OuterClassInfoIndex   int // 0 if not a member
	InnerNameIndex        int // 0 if anonymous
	InnerClassAccessFlags AccessFlags
}

type InnerClassesAttribute struct {
	Classes []InnerClassEntry
}

func (*InnerClassesAttribute) isAttributeBody() {}

type EnclosingMethodAttribute struct {
	ClassIndex  int
	MethodIndex int // 0 if not enclosed by a method or constructor
}

func (*EnclosingMethodAttribute) isAttributeBody() {}

type SyntheticAttribute struct{}

func (*SyntheticAttribute) isAttributeBody() {}

type DeprecatedAttribute struct{}

func (*DeprecatedAttribute) isAttributeBody() {}

type SignatureAttribute struct {
	SignatureIndex int
}

func (*SignatureAttribute) isAttributeBody() {}

type SourceFileAttribute struct {
	SourceFileIndex int
}

func (*SourceFileAttribute) isAttributeBody() {}

type SourceDebugExtensionAttribute struct {
	DebugExtension []byte // modified UTF-8, not length-prefixed internally
}

func (*SourceDebugExtensionAttribute) isAttributeBody() {}

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type LineNumberTableAttribute struct {
	Entries []LineNumberEntry
}

func (*LineNumberTableAttribute) isAttributeBody() {}

type LocalVariableEntry struct {
	StartPC         uint16
	Length          uint16
	NameIndex       int
	DescriptorIndex int
	Index           uint16
}

type LocalVariableTableAttribute struct {
	Entries []LocalVariableEntry
}

func (*LocalVariableTableAttribute) isAttributeBody() {}

type LocalVariableTypeEntry struct {
	StartPC        uint16
	Length         uint16
	NameIndex      int
	SignatureIndex int
	Index          uint16
}

type LocalVariableTypeTableAttribute struct {
	Entries []LocalVariableTypeEntry
}

func (*LocalVariableTypeTableAttribute) isAttributeBody() {}

type BootstrapMethod struct {
	MethodRef int
	Arguments []int
}

type BootstrapMethodsAttribute struct {
	Methods []BootstrapMethod
}

func (*BootstrapMethodsAttribute) isAttributeBody() {}

type MethodParameterEntry struct {
	NameIndex   int // 0 if unnamed
	AccessFlags AccessFlags
}

type MethodParametersAttribute struct {
	Parameters []MethodParameterEntry
}

func (*MethodParametersAttribute) isAttributeBody() {}

type ModulePackagesAttribute struct {
	PackageIndexes []int
}

func (*ModulePackagesAttribute) isAttributeBody() {}

type ModuleMainClassAttribute struct {
	MainClassIndex int
}

func (*ModuleMainClassAttribute) isAttributeBody() {}

type NestHostAttribute struct {
	HostClassIndex int
}

func (*NestHostAttribute) isAttributeBody() {}

type NestMembersAttribute struct {
	Classes []int
}

func (*NestMembersAttribute) isAttributeBody() {}

type RecordComponent struct {
	NameIndex       int
	DescriptorIndex int
	Attributes      []Attribute // Signature, RuntimeVisible/InvisibleAnnotations, ... recursive
}

type RecordAttribute struct {
	Components []RecordComponent
}

func (*RecordAttribute) isAttributeBody() {}

type PermittedSubclassesAttribute struct {
	Classes []int
}

func (*PermittedSubclassesAttribute) isAttributeBody() {}

type AnnotationDefaultAttribute struct {
	Value ElementValue
}

func (*AnnotationDefaultAttribute) isAttributeBody() {}

type RuntimeAnnotationsAttribute struct {
	Annotations []Annotation
}

func (*RuntimeAnnotationsAttribute) isAttributeBody() {}

type ParameterAnnotations struct {
	Annotations []Annotation
}

type RuntimeParameterAnnotationsAttribute struct {
	Parameters []ParameterAnnotations
}

func (*RuntimeParameterAnnotationsAttribute) isAttributeBody() {}

type RuntimeTypeAnnotationsAttribute struct {
	Annotations []TypeAnnotation
}

func (*RuntimeTypeAnnotationsAttribute) isAttributeBody() {}

// UnrecognisedAttribute is never assigned to Attribute.Body — an unknown
// attribute leaves Body nil and carries its payload directly on Attribute
// (Name/RawBytes), per §4.4's "retain {name, raw_bytes}" contract. The type
// exists so callers that want a uniform AttributeBody switch have something
// to type-switch on if they choose to wrap it themselves; the dispatcher
// itself does not produce one.
type UnrecognisedAttribute struct {
	Name     string
	RawBytes []byte
}

func (*UnrecognisedAttribute) isAttributeBody() {}

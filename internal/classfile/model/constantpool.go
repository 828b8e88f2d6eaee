package model

import "fmt"

// ConstantPoolEntry is one 1-indexed slot of the constant pool. Exactly one
// of the typed fields below is meaningful, selected by Tag. Long/Double
// entries occupy two adjacent slots; the second has Unusable set.
type ConstantPoolEntry struct {
	Tag ConstantTag

	// Utf8
	Utf8Value     string
	Utf8RawBytes  []byte // the exact bytes as they appeared, for round-trip (§8)
	Utf8DecodeErr bool   // set when modified-UTF-8 decoding failed; Utf8Value is unset

	// Integer / Float
	IntValue   int32
	FloatValue float32

	// Long / Double
	LongValue   int64
	DoubleValue float64

	// Class, String, MethodType, Module, Package: one name/descriptor/value index
	NameIndex int // also used for Class.name_index, String.string_index, MethodType.descriptor_index,
	// Module.name_index, Package.name_index

	// Fieldref / Methodref / InterfaceMethodref
	ClassIndex       int
	NameAndTypeIndex int

	// NameAndType
	DescriptorIndex int

	// MethodHandle
	ReferenceKind  ReferenceKind
	ReferenceIndex int

	// Dynamic / InvokeDynamic
	BootstrapMethodAttrIndex int
	// NameAndTypeIndex reused above

	// Unusable: the second slot of a Long/Double pair
	Unusable bool
}

// ConstantPool is the 1-indexed (slot 0 reserved) table of constants at the
// head of a class file. len(Entries) always equals the declared
// constant_pool_count, counting slot 0 and unusable slots.
type ConstantPool struct {
	Entries []ConstantPoolEntry // Entries[0] is the reserved sentinel, never produced by the decoder
}

// Count returns the declared constant_pool_count (len(Entries)).
func (p *ConstantPool) Count() int {
	return len(p.Entries)
}

// InRange reports whether i is a non-reserved slot index (1..count-1). The
// unusable second slot of a Long/Double is in range; callers check Unusable.
func (p *ConstantPool) InRange(i int) bool {
	return i >= 1 && i < len(p.Entries)
}

// Get returns the entry at i, or an error if i is out of range.
func (p *ConstantPool) Get(i int) (*ConstantPoolEntry, error) {
	if !p.InRange(i) {
		return nil, &IndexOutOfRangeError{Index: i, PoolSize: len(p.Entries)}
	}
	return &p.Entries[i], nil
}

// Utf8 resolves index i as a Utf8 entry, enforcing the expected tag.
func (p *ConstantPool) Utf8(i int, where string) (string, error) {
	e, err := p.Get(i)
	if err != nil {
		return "", err
	}
	if e.Tag != TagUtf8 {
		return "", &WrongConstantKindError{Where: where, Index: i, Expected: TagUtf8, Got: e.Tag}
	}
	return e.Utf8Value, nil
}

// ExpectTag resolves index i and enforces it carries the expected tag,
// returning the entry itself for further field access.
func (p *ConstantPool) ExpectTag(i int, want ConstantTag, where string) (*ConstantPoolEntry, error) {
	e, err := p.Get(i)
	if err != nil {
		return nil, err
	}
	if e.Tag != want {
		return nil, &WrongConstantKindError{Where: where, Index: i, Expected: want, Got: e.Tag}
	}
	return e, nil
}

// ClassName resolves a Class entry at i down to its name string.
func (p *ConstantPool) ClassName(i int, where string) (string, error) {
	e, err := p.ExpectTag(i, TagClass, where)
	if err != nil {
		return "", err
	}
	return p.Utf8(e.NameIndex, where+".name_index")
}

// IndexOutOfRangeError is §7's IndexOutOfRange.
type IndexOutOfRangeError struct {
	Where    string
	Index    int
	PoolSize int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for constant pool of size %d (%s)", e.Index, e.PoolSize, e.Where)
}

// WrongConstantKindError is §7's WrongConstantKind.
type WrongConstantKindError struct {
	Where    string
	Index    int
	Expected ConstantTag
	Got      ConstantTag
}

func (e *WrongConstantKindError) Error() string {
	return fmt.Sprintf("%s: index %d expected %s, got %s", e.Where, e.Index, e.Expected, e.Got)
}

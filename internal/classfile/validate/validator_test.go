package validate

import (
	"testing"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
)

func poolWith(entries ...model.ConstantPoolEntry) model.ConstantPool {
	// entries[0] becomes index 1, and so on; index 0 stays the reserved sentinel.
	all := append([]model.ConstantPoolEntry{{}}, entries...)
	return model.ConstantPool{Entries: all}
}

func TestClassFileValidThisAndSuperClass(t *testing.T) {
	pool := poolWith(
		model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "Empty"},        // #1
		model.ConstantPoolEntry{Tag: model.TagClass, NameIndex: 1},             // #2 -> Empty
		model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "java/lang/Object"}, // #3
		model.ConstantPoolEntry{Tag: model.TagClass, NameIndex: 3},             // #4 -> java/lang/Object
	)
	cf := &model.ClassFile{ConstantPool: pool, ThisClass: 2, SuperClass: 4}

	res := ClassFile(cf)
	if !res.Valid {
		t.Fatalf("expected valid, got issues: %v", res.Issues)
	}
}

func TestClassFileThisClassOutOfRange(t *testing.T) {
	pool := poolWith(model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "x"})
	cf := &model.ClassFile{ConstantPool: pool, ThisClass: 99}

	res := ClassFile(cf)
	if res.Valid {
		t.Fatal("expected invalid for out-of-range this_class")
	}
	if len(res.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestClassFileThisClassWrongKind(t *testing.T) {
	// this_class pointing at a Utf8 instead of a Class entry.
	pool := poolWith(model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "x"})
	cf := &model.ClassFile{ConstantPool: pool, ThisClass: 1}

	res := ClassFile(cf)
	if res.Valid {
		t.Fatal("expected invalid for this_class resolving to a non-Class entry")
	}
	found := false
	for _, issue := range res.Issues {
		if _, ok := issue.(*model.WrongConstantKindError); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a WrongConstantKindError among issues, got %v", res.Issues)
	}
}

func TestClassFileFieldNameAndDescriptor(t *testing.T) {
	pool := poolWith(
		model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "Empty"}, // #1
		model.ConstantPoolEntry{Tag: model.TagClass, NameIndex: 1},     // #2
		model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "count"}, // #3
		model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "I"},     // #4
	)
	cf := &model.ClassFile{
		ConstantPool: pool,
		ThisClass:    2,
		Fields: []model.FieldInfo{
			{NameIndex: 3, DescriptorIndex: 4},
		},
	}

	res := ClassFile(cf)
	if !res.Valid {
		t.Fatalf("expected valid, got issues: %v", res.Issues)
	}
}

func TestClassFileFieldBadDescriptorIndex(t *testing.T) {
	pool := poolWith(
		model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "Empty"}, // #1
		model.ConstantPoolEntry{Tag: model.TagClass, NameIndex: 1},     // #2
		model.ConstantPoolEntry{Tag: model.TagUtf8, Utf8Value: "count"}, // #3
	)
	cf := &model.ClassFile{
		ConstantPool: pool,
		ThisClass:    2,
		Fields: []model.FieldInfo{
			{NameIndex: 3, DescriptorIndex: 77},
		},
	}

	res := ClassFile(cf)
	if res.Valid {
		t.Fatal("expected invalid for out-of-range descriptor_index")
	}
}

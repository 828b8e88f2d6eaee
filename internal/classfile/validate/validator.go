// Package validate performs the structural cross-reference checks spec.md
// §8 calls out as testable properties but which §7 leaves to the caller to
// escalate: every constant pool index referenced from outside the pool must
// be in range and must name the kind of entry its context requires.
package validate

import (
	"fmt"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
)

// Result collects every structural reference problem found in a ClassFile.
// An empty Result means every index referenced structurally resolves to a
// slot of the expected kind.
type Result struct {
	Valid  bool
	Issues []error
}

func (r *Result) fail(err error) {
	r.Valid = false
	r.Issues = append(r.Issues, err)
}

// ClassFile validates this_class, super_class, interfaces, every
// field/method name_index and descriptor_index, InnerClasses entries, and
// recurses into every attribute table reachable from the class, per §8's
// quantified invariant on structurally-referenced constant pool indices.
func ClassFile(cf *model.ClassFile) *Result {
	r := &Result{Valid: true}
	pool := &cf.ConstantPool

	if _, err := pool.ClassName(cf.ThisClass, "this_class"); err != nil {
		r.fail(err)
	}
	// super_class is 0 only for java.lang.Object itself.
	if cf.SuperClass != 0 {
		if _, err := pool.ClassName(cf.SuperClass, "super_class"); err != nil {
			r.fail(err)
		}
	}
	for i, idx := range cf.Interfaces {
		if _, err := pool.ClassName(idx, fmt.Sprintf("interfaces[%d]", i)); err != nil {
			r.fail(err)
		}
	}

	for i, f := range cf.Fields {
		checkNameAndDescriptor(r, pool, fmt.Sprintf("fields[%d]", i), f.NameIndex, f.DescriptorIndex)
		checkAttributes(r, pool, fmt.Sprintf("fields[%d].attributes", i), f.Attributes)
	}
	for i, m := range cf.Methods {
		checkNameAndDescriptor(r, pool, fmt.Sprintf("methods[%d]", i), m.NameIndex, m.DescriptorIndex)
		checkAttributes(r, pool, fmt.Sprintf("methods[%d].attributes", i), m.Attributes)
	}
	checkAttributes(r, pool, "attributes", cf.Attributes)

	return r
}

func checkNameAndDescriptor(r *Result, pool *model.ConstantPool, where string, nameIdx, descIdx int) {
	if _, err := pool.Utf8(nameIdx, where+".name_index"); err != nil {
		r.fail(err)
	}
	if _, err := pool.Utf8(descIdx, where+".descriptor_index"); err != nil {
		r.fail(err)
	}
}

func checkAttributes(r *Result, pool *model.ConstantPool, where string, attrs []model.Attribute) {
	for i, a := range attrs {
		loc := fmt.Sprintf("%s[%d:%s]", where, i, a.Name)
		switch body := a.Body.(type) {
		case *model.InnerClassesAttribute:
			for j, ic := range body.Classes {
				if _, err := pool.ClassName(ic.InnerClassInfoIndex, fmt.Sprintf("%s.classes[%d].inner_class_info_index", loc, j)); err != nil {
					r.fail(err)
				}
				if ic.OuterClassInfoIndex != 0 {
					if _, err := pool.ClassName(ic.OuterClassInfoIndex, fmt.Sprintf("%s.classes[%d].outer_class_info_index", loc, j)); err != nil {
						r.fail(err)
					}
				}
			}
		case *model.ExceptionsAttribute:
			for j, idx := range body.ExceptionIndexTable {
				if _, err := pool.ClassName(idx, fmt.Sprintf("%s.exception_index_table[%d]", loc, j)); err != nil {
					r.fail(err)
				}
			}
		case *model.ConstantValueAttribute:
			if _, err := pool.Get(body.ValueIndex); err != nil {
				r.fail(err)
			}
		case *model.CodeAttribute:
			checkAttributes(r, pool, loc+".attributes", body.Attributes)
		case *model.RecordAttribute:
			for j, comp := range body.Components {
				checkNameAndDescriptor(r, pool, fmt.Sprintf("%s.components[%d]", loc, j), comp.NameIndex, comp.DescriptorIndex)
				checkAttributes(r, pool, fmt.Sprintf("%s.components[%d].attributes", loc, j), comp.Attributes)
			}
		}
	}
}

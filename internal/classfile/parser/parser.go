// Package parser decodes the byte stream of a Java class file into the
// structured model.ClassFile value, per the JVM Specification §4.1.
package parser

import (
	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

/*
Parse reads one complete class file from b and returns its structural
decoding. The pass is strictly linear, in the order JVMS 4.1 mandates:

	magic              u4, must equal 0xCAFEBABE
	minor_version      u2
	major_version      u2
	constant_pool      variable-length, see parseConstantPool
	access_flags       u2, class context
	this_class         u2
	super_class        u2
	interfaces         u2 count + that many u2
	fields             u2 count + FieldInfo
	methods            u2 count + MethodInfo
	attributes         u2 count + Attribute

A non-zero cursor.Remaining() after the final attribute is TrailingBytes.
Fatal errors (BadMagic, UnexpectedEof, TrailingBytes, BadConstantTag) abort
decoding and return a non-nil error; everything else recoverable is
appended to the returned ClassFile's Diagnostics.
*/
func Parse(b []byte) (*model.ClassFile, error) {
	c := reader.New(b)
	cf := &model.ClassFile{}

	magic, err := c.ReadU4()
	if err != nil {
		return nil, err
	}
	if magic != model.Magic {
		return nil, &model.BadMagicError{Observed: magic}
	}

	cf.MinorVersion, err = c.ReadU2()
	if err != nil {
		return nil, err
	}
	cf.MajorVersion, err = c.ReadU2()
	if err != nil {
		return nil, err
	}

	pool, err := parseConstantPool(c, &cf.Diagnostics)
	if err != nil {
		return nil, err
	}
	cf.ConstantPool = pool

	accessFlags, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	cf.AccessFlags = model.DecodeAccessFlags(accessFlags, model.ContextClass)

	thisClass, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	cf.ThisClass = int(thisClass)

	superClass, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	cf.SuperClass = int(superClass)

	interfacesCount, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	cf.Interfaces = make([]int, interfacesCount)
	for i := range cf.Interfaces {
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		cf.Interfaces[i] = int(idx)
	}

	cf.Fields, err = parseFields(c, &cf.ConstantPool, &cf.Diagnostics)
	if err != nil {
		return nil, err
	}

	cf.Methods, err = parseMethods(c, &cf.ConstantPool, &cf.Diagnostics)
	if err != nil {
		return nil, err
	}

	cf.Attributes, err = parseAttributeTable(c, &cf.ConstantPool, &cf.Diagnostics)
	if err != nil {
		return nil, err
	}

	if c.Remaining() != 0 {
		return nil, &model.TrailingBytesError{N: c.Remaining()}
	}

	return cf, nil
}

func parseFields(c *reader.Cursor, pool *model.ConstantPool, diags *[]model.Diagnostic) ([]model.FieldInfo, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	fields := make([]model.FieldInfo, count)
	for i := range fields {
		flags, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		nameIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		descIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		attrs, err := parseAttributeTable(c, pool, diags)
		if err != nil {
			return nil, err
		}
		fields[i] = model.FieldInfo{
			AccessFlags:     model.DecodeAccessFlags(flags, model.ContextField),
			NameIndex:       int(nameIdx),
			DescriptorIndex: int(descIdx),
			Attributes:      attrs,
		}
	}
	return fields, nil
}

func parseMethods(c *reader.Cursor, pool *model.ConstantPool, diags *[]model.Diagnostic) ([]model.MethodInfo, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	methods := make([]model.MethodInfo, count)
	for i := range methods {
		flags, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		nameIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		descIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		attrs, err := parseAttributeTable(c, pool, diags)
		if err != nil {
			return nil, err
		}
		methods[i] = model.MethodInfo{
			AccessFlags:     model.DecodeAccessFlags(flags, model.ContextMethod),
			NameIndex:       int(nameIdx),
			DescriptorIndex: int(descIdx),
			Attributes:      attrs,
		}
	}
	return methods, nil
}

package parser

import (
	"fmt"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

// attributeKindByName is the fixed table §4.4 dispatches on, keyed by the
// resolved attribute_name_index string.
var attributeKindByName = map[string]model.AttributeKind{
	"ConstantValue":                         model.AttrConstantValue,
	"Code":                                  model.AttrCode,
	"StackMapTable":                         model.AttrStackMapTable,
	"Exceptions":                            model.AttrExceptions,
	"InnerClasses":                          model.AttrInnerClasses,
	"EnclosingMethod":                       model.AttrEnclosingMethod,
	"Synthetic":                             model.AttrSynthetic,
	"Signature":                             model.AttrSignature,
	"SourceFile":                            model.AttrSourceFile,
	"SourceDebugExtension":                  model.AttrSourceDebugExtension,
	"LineNumberTable":                       model.AttrLineNumberTable,
	"LocalVariableTable":                    model.AttrLocalVariableTable,
	"LocalVariableTypeTable":                model.AttrLocalVariableTypeTable,
	"Deprecated":                            model.AttrDeprecated,
	"RuntimeVisibleAnnotations":             model.AttrRuntimeVisibleAnnotations,
	"RuntimeInvisibleAnnotations":           model.AttrRuntimeInvisibleAnnotations,
	"RuntimeVisibleParameterAnnotations":    model.AttrRuntimeVisibleParameterAnnotations,
	"RuntimeInvisibleParameterAnnotations":  model.AttrRuntimeInvisibleParameterAnnotations,
	"RuntimeVisibleTypeAnnotations":         model.AttrRuntimeVisibleTypeAnnotations,
	"RuntimeInvisibleTypeAnnotations":       model.AttrRuntimeInvisibleTypeAnnotations,
	"AnnotationDefault":                     model.AttrAnnotationDefault,
	"BootstrapMethods":                      model.AttrBootstrapMethods,
	"MethodParameters":                      model.AttrMethodParameters,
	"Module":                                model.AttrModule,
	"ModulePackages":                        model.AttrModulePackages,
	"ModuleMainClass":                       model.AttrModuleMainClass,
	"NestHost":                              model.AttrNestHost,
	"NestMembers":                           model.AttrNestMembers,
	"Record":                                model.AttrRecord,
	"PermittedSubclasses":                   model.AttrPermittedSubclasses,
}

// parseAttributeTable reads a u2 count followed by that many attributes,
// the shape shared by class, field, method, Code, and Record-component
// attribute tables.
func parseAttributeTable(c *reader.Cursor, pool *model.ConstantPool, diags *[]model.Diagnostic) ([]model.Attribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	attrs := make([]model.Attribute, 0, count)
	for i := 0; i < int(count); i++ {
		a, err := parseAttribute(c, pool, diags)
		if err != nil {
			return attrs, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// parseAttribute is the §4.4 dispatcher: read name_index + length, resolve
// the name, route to the matching body decoder, and enforce that exactly
// `length` bytes were consumed — resyncing the cursor on mismatch so one
// malformed attribute cannot derail the rest of the class file.
func parseAttribute(c *reader.Cursor, pool *model.ConstantPool, diags *[]model.Diagnostic) (model.Attribute, error) {
	nameIndex, err := c.ReadU2()
	if err != nil {
		return model.Attribute{}, err
	}
	length, err := c.ReadU4()
	if err != nil {
		return model.Attribute{}, err
	}

	name, nameErr := pool.Utf8(int(nameIndex), "attribute_name_index")
	bodyStart := c.Position()
	bodyEnd := bodyStart + int(length)

	attr := model.Attribute{Name: name, Length: length}

	if nameErr != nil {
		// Can't even identify the attribute; treat as unknown and skip its declared length.
		raw, err := c.ReadSlice(int(length))
		if err != nil {
			return attr, err
		}
		attr.RawBytes = append([]byte(nil), raw...)
		*diags = append(*diags, model.Diagnostic{Err: nameErr})
		return attr, nil
	}

	kind, known := attributeKindByName[name]
	if !known {
		raw, err := c.ReadSlice(int(length))
		if err != nil {
			return attr, err
		}
		attr.RawBytes = append([]byte(nil), raw...)
		return attr, nil
	}

	attr.Kind = kind
	body, bodyErr := decodeAttributeBody(c, kind, length, pool, diags)
	if bodyErr != nil {
		return attr, bodyErr
	}
	attr.Body = body

	actual := c.Position() - bodyStart
	if actual != int(length) {
		*diags = append(*diags, model.Diagnostic{
			Err: &model.AttributeLengthMismatchError{Name: name, Expected: length, Actual: actual},
		})
		if err := c.SeekTo(bodyEnd); err != nil {
			return attr, err
		}
	}

	return attr, nil
}

func decodeAttributeBody(c *reader.Cursor, kind model.AttributeKind, length uint32, pool *model.ConstantPool, diags *[]model.Diagnostic) (model.AttributeBody, error) {
	switch kind {
	case model.AttrConstantValue:
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &model.ConstantValueAttribute{ValueIndex: int(idx)}, nil

	case model.AttrCode:
		return parseCodeAttribute(c, pool, diags)

	case model.AttrStackMapTable:
		return parseStackMapTable(c, diags)

	case model.AttrExceptions:
		count, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		idxs := make([]int, count)
		for i := range idxs {
			v, err := c.ReadU2()
			if err != nil {
				return nil, err
			}
			idxs[i] = int(v)
		}
		return &model.ExceptionsAttribute{ExceptionIndexTable: idxs}, nil

	case model.AttrInnerClasses:
		return parseInnerClasses(c)

	case model.AttrEnclosingMethod:
		classIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		methodIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &model.EnclosingMethodAttribute{ClassIndex: int(classIdx), MethodIndex: int(methodIdx)}, nil

	case model.AttrSynthetic:
		return &model.SyntheticAttribute{}, nil

	case model.AttrDeprecated:
		return &model.DeprecatedAttribute{}, nil

	case model.AttrSignature:
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &model.SignatureAttribute{SignatureIndex: int(idx)}, nil

	case model.AttrSourceFile:
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &model.SourceFileAttribute{SourceFileIndex: int(idx)}, nil

	case model.AttrSourceDebugExtension:
		raw, err := c.ReadSlice(int(length))
		if err != nil {
			return nil, err
		}
		return &model.SourceDebugExtensionAttribute{DebugExtension: append([]byte(nil), raw...)}, nil

	case model.AttrLineNumberTable:
		return parseLineNumberTable(c)

	case model.AttrLocalVariableTable:
		return parseLocalVariableTable(c)

	case model.AttrLocalVariableTypeTable:
		return parseLocalVariableTypeTable(c)

	case model.AttrBootstrapMethods:
		return parseBootstrapMethods(c)

	case model.AttrMethodParameters:
		return parseMethodParameters(c)

	case model.AttrModule:
		return parseModule(c)

	case model.AttrModulePackages:
		count, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		idxs := make([]int, count)
		for i := range idxs {
			v, err := c.ReadU2()
			if err != nil {
				return nil, err
			}
			idxs[i] = int(v)
		}
		return &model.ModulePackagesAttribute{PackageIndexes: idxs}, nil

	case model.AttrModuleMainClass:
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &model.ModuleMainClassAttribute{MainClassIndex: int(idx)}, nil

	case model.AttrNestHost:
		idx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &model.NestHostAttribute{HostClassIndex: int(idx)}, nil

	case model.AttrNestMembers:
		count, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		idxs := make([]int, count)
		for i := range idxs {
			v, err := c.ReadU2()
			if err != nil {
				return nil, err
			}
			idxs[i] = int(v)
		}
		return &model.NestMembersAttribute{Classes: idxs}, nil

	case model.AttrRecord:
		return parseRecord(c, pool, diags)

	case model.AttrPermittedSubclasses:
		count, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		idxs := make([]int, count)
		for i := range idxs {
			v, err := c.ReadU2()
			if err != nil {
				return nil, err
			}
			idxs[i] = int(v)
		}
		return &model.PermittedSubclassesAttribute{Classes: idxs}, nil

	case model.AttrAnnotationDefault:
		ev, err := parseElementValue(c)
		if err != nil {
			return nil, err
		}
		return &model.AnnotationDefaultAttribute{Value: ev}, nil

	case model.AttrRuntimeVisibleAnnotations, model.AttrRuntimeInvisibleAnnotations:
		anns, err := parseAnnotations(c, diags)
		if err != nil {
			return nil, err
		}
		return &model.RuntimeAnnotationsAttribute{Annotations: anns}, nil

	case model.AttrRuntimeVisibleParameterAnnotations, model.AttrRuntimeInvisibleParameterAnnotations:
		return parseParameterAnnotations(c, diags)

	case model.AttrRuntimeVisibleTypeAnnotations, model.AttrRuntimeInvisibleTypeAnnotations:
		return parseTypeAnnotations(c, diags)

	default:
		return nil, fmt.Errorf("internal: no body decoder registered for %s", kind)
	}
}

func parseInnerClasses(c *reader.Cursor) (*model.InnerClassesAttribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	entries := make([]model.InnerClassEntry, count)
	for i := range entries {
		inner, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		outer, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		name, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		flags, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		entries[i] = model.InnerClassEntry{
			InnerClassInfoIndex:   int(inner),
			OuterClassInfoIndex:   int(outer),
			InnerNameIndex:        int(name),
			InnerClassAccessFlags: model.DecodeAccessFlags(flags, model.ContextInnerClass),
		}
	}
	return &model.InnerClassesAttribute{Classes: entries}, nil
}

func parseLineNumberTable(c *reader.Cursor) (*model.LineNumberTableAttribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	entries := make([]model.LineNumberEntry, count)
	for i := range entries {
		startPC, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		lineNumber, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		entries[i] = model.LineNumberEntry{StartPC: startPC, LineNumber: lineNumber}
	}
	return &model.LineNumberTableAttribute{Entries: entries}, nil
}

func parseLocalVariableTable(c *reader.Cursor) (*model.LocalVariableTableAttribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	entries := make([]model.LocalVariableEntry, count)
	for i := range entries {
		startPC, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		length, err := c.ReadU2()
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
		index, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		entries[i] = model.LocalVariableEntry{
			StartPC: startPC, Length: length,
			NameIndex: int(nameIdx), DescriptorIndex: int(descIdx), Index: index,
		}
	}
	return &model.LocalVariableTableAttribute{Entries: entries}, nil
}

func parseLocalVariableTypeTable(c *reader.Cursor) (*model.LocalVariableTypeTableAttribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	entries := make([]model.LocalVariableTypeEntry, count)
	for i := range entries {
		startPC, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		length, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		nameIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		sigIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		index, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		entries[i] = model.LocalVariableTypeEntry{
			StartPC: startPC, Length: length,
			NameIndex: int(nameIdx), SignatureIndex: int(sigIdx), Index: index,
		}
	}
	return &model.LocalVariableTypeTableAttribute{Entries: entries}, nil
}

func parseBootstrapMethods(c *reader.Cursor) (*model.BootstrapMethodsAttribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	methods := make([]model.BootstrapMethod, count)
	for i := range methods {
		methodRef, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		argCount, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		args := make([]int, argCount)
		for j := range args {
			v, err := c.ReadU2()
			if err != nil {
				return nil, err
			}
			args[j] = int(v)
		}
		methods[i] = model.BootstrapMethod{MethodRef: int(methodRef), Arguments: args}
	}
	return &model.BootstrapMethodsAttribute{Methods: methods}, nil
}

// parseMethodParameters has a u1 count, unlike every other *_count field in
// this attribute family, which are u2 (§4.5 table).
func parseMethodParameters(c *reader.Cursor) (*model.MethodParametersAttribute, error) {
	count, err := c.ReadU1()
	if err != nil {
		return nil, err
	}
	params := make([]model.MethodParameterEntry, count)
	for i := range params {
		nameIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		flags, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		params[i] = model.MethodParameterEntry{
			NameIndex:   int(nameIdx),
			AccessFlags: model.DecodeAccessFlags(flags, model.ContextMethodParameter),
		}
	}
	return &model.MethodParametersAttribute{Parameters: params}, nil
}

func parseRecord(c *reader.Cursor, pool *model.ConstantPool, diags *[]model.Diagnostic) (*model.RecordAttribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	components := make([]model.RecordComponent, count)
	for i := range components {
		nameIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		descIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		attrs, err := parseAttributeTable(c, pool, diags) // recursive: a component carries its own attribute table
		if err != nil {
			return nil, err
		}
		components[i] = model.RecordComponent{
			NameIndex: int(nameIdx), DescriptorIndex: int(descIdx), Attributes: attrs,
		}
	}
	return &model.RecordAttribute{Components: components}, nil
}

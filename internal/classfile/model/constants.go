package model

import "fmt"

// ConstantTag is the one-byte tag prefixing every constant pool entry (JVMS 4.4).
type ConstantTag byte

const (
	TagUtf8               ConstantTag = 1
	TagInteger            ConstantTag = 3
	TagFloat              ConstantTag = 4
	TagLong               ConstantTag = 5
	TagDouble             ConstantTag = 6
	TagClass              ConstantTag = 7
	TagString             ConstantTag = 8
	TagFieldref           ConstantTag = 9
	TagMethodref          ConstantTag = 10
	TagInterfaceMethodref ConstantTag = 11
	TagNameAndType        ConstantTag = 12
	TagMethodHandle       ConstantTag = 15
	TagMethodType         ConstantTag = 16
	TagDynamic            ConstantTag = 17
	TagInvokeDynamic      ConstantTag = 18
	TagModule             ConstantTag = 19
	TagPackage            ConstantTag = 20
)

func (t ConstantTag) String() string {
	switch t {
	case TagUtf8:
		return "Utf8"
	case TagInteger:
		return "Integer"
	case TagFloat:
		return "Float"
	case TagLong:
		return "Long"
	case TagDouble:
		return "Double"
	case TagClass:
		return "Class"
	case TagString:
		return "String"
	case TagFieldref:
		return "Fieldref"
	case TagMethodref:
		return "Methodref"
	case TagInterfaceMethodref:
		return "InterfaceMethodref"
	case TagNameAndType:
		return "NameAndType"
	case TagMethodHandle:
		return "MethodHandle"
	case TagMethodType:
		return "MethodType"
	case TagDynamic:
		return "Dynamic"
	case TagInvokeDynamic:
		return "InvokeDynamic"
	case TagModule:
		return "Module"
	case TagPackage:
		return "Package"
	default:
		return fmt.Sprintf("ConstantTag(0x%02x)", byte(t))
	}
}

// ReferenceKind is the method-handle reference_kind byte (JVMS 4.4.8).
type ReferenceKind byte

const (
	RefGetField         ReferenceKind = 1
	RefGetStatic        ReferenceKind = 2
	RefPutField         ReferenceKind = 3
	RefPutStatic        ReferenceKind = 4
	RefInvokeVirtual    ReferenceKind = 5
	RefInvokeStatic     ReferenceKind = 6
	RefInvokeSpecial    ReferenceKind = 7
	RefNewInvokeSpecial ReferenceKind = 8
	RefInvokeInterface  ReferenceKind = 9
)

// AccessFlagContext selects which named-bit domain an access-flags mask is
// interpreted under; the same numeric bit means different things in each.
type AccessFlagContext int

const (
	ContextClass AccessFlagContext = iota
	ContextField
	ContextMethod
	ContextInnerClass
	ContextMethodParameter
	ContextModule
	ContextModuleRequires
	ContextModuleExports
	ContextModuleOpens
)

// AttributeKind names a recognised attribute body decoder. Unknown attributes
// don't get a kind; their Attribute keeps Name and RawBytes with a nil Body.
type AttributeKind string

const (
	AttrConstantValue                        AttributeKind = "ConstantValue"
	AttrCode                                  AttributeKind = "Code"
	AttrStackMapTable                        AttributeKind = "StackMapTable"
	AttrExceptions                           AttributeKind = "Exceptions"
	AttrInnerClasses                         AttributeKind = "InnerClasses"
	AttrEnclosingMethod                      AttributeKind = "EnclosingMethod"
	AttrSynthetic                            AttributeKind = "Synthetic"
	AttrSignature                            AttributeKind = "Signature"
	AttrSourceFile                           AttributeKind = "SourceFile"
	AttrSourceDebugExtension                 AttributeKind = "SourceDebugExtension"
	AttrLineNumberTable                      AttributeKind = "LineNumberTable"
	AttrLocalVariableTable                   AttributeKind = "LocalVariableTable"
	AttrLocalVariableTypeTable               AttributeKind = "LocalVariableTypeTable"
	AttrDeprecated                           AttributeKind = "Deprecated"
	AttrRuntimeVisibleAnnotations             AttributeKind = "RuntimeVisibleAnnotations"
	AttrRuntimeInvisibleAnnotations           AttributeKind = "RuntimeInvisibleAnnotations"
	AttrRuntimeVisibleParameterAnnotations    AttributeKind = "RuntimeVisibleParameterAnnotations"
	AttrRuntimeInvisibleParameterAnnotations  AttributeKind = "RuntimeInvisibleParameterAnnotations"
	AttrRuntimeVisibleTypeAnnotations         AttributeKind = "RuntimeVisibleTypeAnnotations"
	AttrRuntimeInvisibleTypeAnnotations       AttributeKind = "RuntimeInvisibleTypeAnnotations"
	AttrAnnotationDefault                    AttributeKind = "AnnotationDefault"
	AttrBootstrapMethods                     AttributeKind = "BootstrapMethods"
	AttrMethodParameters                     AttributeKind = "MethodParameters"
	AttrModule                               AttributeKind = "Module"
	AttrModulePackages                       AttributeKind = "ModulePackages"
	AttrModuleMainClass                      AttributeKind = "ModuleMainClass"
	AttrNestHost                             AttributeKind = "NestHost"
	AttrNestMembers                          AttributeKind = "NestMembers"
	AttrRecord                               AttributeKind = "Record"
	AttrPermittedSubclasses                  AttributeKind = "PermittedSubclasses"
)

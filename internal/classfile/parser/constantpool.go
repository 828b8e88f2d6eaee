package parser

import (
	"math"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

/*
parseConstantPool reads the constant_pool_count (u2) and then that many - 1
tagged entries, per JVMS 4.4. Index 0 is a reserved sentinel never produced
by the class file itself; Long/Double entries consume two logical slots,
the second marked Unusable. A malformed Utf8 entry's bytes are kept raw
with Utf8DecodeErr set rather than aborting the whole pool (§7, BadUtf8 is
recoverable); every other malformed entry is fatal (BadConstantTag).
*/
func parseConstantPool(c *reader.Cursor, diags *[]model.Diagnostic) (model.ConstantPool, error) {
	count, err := c.ReadU2()
	if err != nil {
		return model.ConstantPool{}, err
	}

	pool := model.ConstantPool{Entries: make([]model.ConstantPoolEntry, count)}

	for i := 1; i < int(count); i++ {
		tagByte, err := c.ReadU1()
		if err != nil {
			return pool, err
		}
		tag := model.ConstantTag(tagByte)

		entry := model.ConstantPoolEntry{Tag: tag}

		switch tag {
		case model.TagUtf8:
			length, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			raw, err := c.ReadSlice(int(length))
			if err != nil {
				return pool, err
			}
			entry.Utf8RawBytes = append([]byte(nil), raw...)
			if s, ok := decodeModifiedUTF8(raw); ok {
				entry.Utf8Value = s
			} else {
				entry.Utf8DecodeErr = true
				*diags = append(*diags, model.Diagnostic{Err: &model.BadUtf8Error{AtIndex: i}})
			}

		case model.TagInteger:
			v, err := c.ReadU4()
			if err != nil {
				return pool, err
			}
			entry.IntValue = int32(v)

		case model.TagFloat:
			v, err := c.ReadU4()
			if err != nil {
				return pool, err
			}
			entry.FloatValue = math.Float32frombits(v)

		case model.TagLong:
			v, err := c.ReadU8()
			if err != nil {
				return pool, err
			}
			entry.LongValue = int64(v) // signed two's complement, per §9's decision
			pool.Entries[i] = entry
			i++
			if i < int(count) {
				pool.Entries[i] = model.ConstantPoolEntry{Unusable: true}
			}
			continue

		case model.TagDouble:
			v, err := c.ReadU8()
			if err != nil {
				return pool, err
			}
			entry.DoubleValue = math.Float64frombits(v)
			pool.Entries[i] = entry
			i++
			if i < int(count) {
				pool.Entries[i] = model.ConstantPoolEntry{Unusable: true}
			}
			continue

		case model.TagClass, model.TagMethodType, model.TagModule, model.TagPackage:
			idx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			entry.NameIndex = int(idx)

		case model.TagString:
			idx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			entry.NameIndex = int(idx) // string_index reuses NameIndex

		case model.TagFieldref, model.TagMethodref, model.TagInterfaceMethodref:
			classIdx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			natIdx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			entry.ClassIndex = int(classIdx)
			entry.NameAndTypeIndex = int(natIdx)

		case model.TagNameAndType:
			nameIdx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			descIdx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			entry.NameIndex = int(nameIdx)
			entry.DescriptorIndex = int(descIdx)

		case model.TagMethodHandle:
			refKind, err := c.ReadU1()
			if err != nil {
				return pool, err
			}
			refIdx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			entry.ReferenceKind = model.ReferenceKind(refKind)
			entry.ReferenceIndex = int(refIdx)

		case model.TagDynamic, model.TagInvokeDynamic:
			bootstrapIdx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			natIdx, err := c.ReadU2()
			if err != nil {
				return pool, err
			}
			entry.BootstrapMethodAttrIndex = int(bootstrapIdx)
			entry.NameAndTypeIndex = int(natIdx)

		default:
			return pool, &model.BadConstantTagError{Tag: tagByte, AtIndex: i}
		}

		pool.Entries[i] = entry
	}

	return pool, nil
}

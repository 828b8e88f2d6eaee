package parser

import (
	"errors"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

// parseTypeAnnotations reads a u2 count followed by that many TypeAnnotation
// structures (§4.5.4, JVMS 4.7.20): target_info, then type_path, then an
// ordinary annotation body (type_index + element-value pairs).
//
// An unrecognised target_type or element_value tag (§7) is fatal only
// within the annotation being decoded: it is recorded as a Diagnostic and
// the annotations array is truncated at that point, keeping every
// TypeAnnotation decoded so far.
func parseTypeAnnotations(c *reader.Cursor, diags *[]model.Diagnostic) (*model.RuntimeTypeAnnotationsAttribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	anns := make([]model.TypeAnnotation, 0, count)
	for i := 0; i < int(count); i++ {
		a, err := parseTypeAnnotation(c)
		if err != nil {
			var targetErr *model.UnknownTargetTypeError
			var tagErr *model.UnknownElementValueTagError
			if errors.As(err, &targetErr) || errors.As(err, &tagErr) {
				*diags = append(*diags, model.Diagnostic{Err: err})
				break
			}
			return nil, err
		}
		anns = append(anns, a)
	}
	return &model.RuntimeTypeAnnotationsAttribute{Annotations: anns}, nil
}

func parseTypeAnnotation(c *reader.Cursor) (model.TypeAnnotation, error) {
	targetType, err := c.ReadU1()
	if err != nil {
		return model.TypeAnnotation{}, err
	}

	ta := model.TypeAnnotation{TargetType: targetType}

	switch {
	case targetType == 0x00 || targetType == 0x01:
		ta.TargetKind = model.TargetTypeParameter
		v, err := c.ReadU1()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		ta.TypeParameterIndex = v

	case targetType == 0x10:
		ta.TargetKind = model.TargetSupertype
		v, err := c.ReadU2()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		ta.SupertypeIndex = int(v)

	case targetType == 0x11 || targetType == 0x12:
		ta.TargetKind = model.TargetTypeParameterBound
		idx, err := c.ReadU1()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		bound, err := c.ReadU1()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		ta.TypeParameterIndex = idx
		ta.BoundIndex = bound

	case targetType >= 0x13 && targetType <= 0x15:
		ta.TargetKind = model.TargetEmpty

	case targetType == 0x16:
		ta.TargetKind = model.TargetFormalParameter
		v, err := c.ReadU1()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		ta.FormalParameterIndex = v

	case targetType == 0x17:
		ta.TargetKind = model.TargetThrows
		v, err := c.ReadU2()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		ta.ThrowsTypeIndex = int(v)

	case targetType == 0x40 || targetType == 0x41:
		ta.TargetKind = model.TargetLocalvar
		tableLength, err := c.ReadU2()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		table := make([]model.LocalvarTargetEntry, tableLength)
		for i := range table {
			startPC, err := c.ReadU2()
			if err != nil {
				return model.TypeAnnotation{}, err
			}
			length, err := c.ReadU2()
			if err != nil {
				return model.TypeAnnotation{}, err
			}
			index, err := c.ReadU2()
			if err != nil {
				return model.TypeAnnotation{}, err
			}
			table[i] = model.LocalvarTargetEntry{StartPC: startPC, Length: length, Index: index}
		}
		ta.LocalvarTable = table

	case targetType == 0x42:
		ta.TargetKind = model.TargetCatch
		v, err := c.ReadU2()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		ta.ExceptionTableIndex = int(v)

	case targetType >= 0x43 && targetType <= 0x46:
		ta.TargetKind = model.TargetOffset
		v, err := c.ReadU2()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		ta.Offset = int(v)

	case targetType >= 0x47 && targetType <= 0x4B:
		ta.TargetKind = model.TargetTypeArgument
		off, err := c.ReadU2()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		idx, err := c.ReadU1()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		ta.Offset = int(off)
		ta.TypeArgumentIndex = idx

	default:
		return model.TypeAnnotation{}, &model.UnknownTargetTypeError{Tag: targetType}
	}

	pathLength, err := c.ReadU1()
	if err != nil {
		return model.TypeAnnotation{}, err
	}
	path := make([]model.TypePathEntry, pathLength)
	for i := range path {
		kind, err := c.ReadU1()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		argIdx, err := c.ReadU1()
		if err != nil {
			return model.TypeAnnotation{}, err
		}
		path[i] = model.TypePathEntry{TypePathKind: kind, TypeArgumentIndex: argIdx}
	}
	ta.TypePath = path

	typeIndex, err := c.ReadU2()
	if err != nil {
		return model.TypeAnnotation{}, err
	}
	ta.TypeIndex = int(typeIndex)

	pairs, err := parseElementValuePairs(c)
	if err != nil {
		return model.TypeAnnotation{}, err
	}
	ta.ElementValuePairs = pairs

	return ta, nil
}

package parser

import (
	"errors"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

// parseAnnotations reads a u2 count followed by that many Annotation
// structures (JVMS 4.7.16), the shape shared by RuntimeVisible/Invisible
// Annotations.
//
// An unknown element_value tag (§7) is fatal only within the annotation
// being decoded: it is recorded as a Diagnostic and the annotations array
// is truncated at that point, keeping every Annotation decoded so far.
func parseAnnotations(c *reader.Cursor, diags *[]model.Diagnostic) ([]model.Annotation, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	anns := make([]model.Annotation, 0, count)
	for i := 0; i < int(count); i++ {
		a, err := parseAnnotation(c)
		if err != nil {
			var tagErr *model.UnknownElementValueTagError
			if errors.As(err, &tagErr) {
				*diags = append(*diags, model.Diagnostic{Err: tagErr})
				break
			}
			return anns, err
		}
		anns = append(anns, a)
	}
	return anns, nil
}

func parseAnnotation(c *reader.Cursor) (model.Annotation, error) {
	typeIndex, err := c.ReadU2()
	if err != nil {
		return model.Annotation{}, err
	}
	pairs, err := parseElementValuePairs(c)
	if err != nil {
		return model.Annotation{}, err
	}
	return model.Annotation{TypeIndex: int(typeIndex), ElementValuePairs: pairs}, nil
}

func parseElementValuePairs(c *reader.Cursor) ([]model.ElementValuePair, error) {
	numPairs, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	pairs := make([]model.ElementValuePair, numPairs)
	for i := range pairs {
		nameIdx, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		ev, err := parseElementValue(c)
		if err != nil {
			return nil, err
		}
		pairs[i] = model.ElementValuePair{NameIndex: int(nameIdx), Value: ev}
	}
	return pairs, nil
}

// parseElementValue decodes one element_value (§4.5.3): a tagged union,
// recursive through '@' (nested annotation) and '[' (array).
func parseElementValue(c *reader.Cursor) (model.ElementValue, error) {
	tagByte, err := c.ReadU1()
	if err != nil {
		return model.ElementValue{}, err
	}
	tag := model.ElementValueTag(tagByte)
	ev := model.ElementValue{Tag: tag}

	switch tag {
	case model.EVByte, model.EVChar, model.EVDouble, model.EVFloat, model.EVInt,
		model.EVLong, model.EVShort, model.EVBoolean, model.EVString:
		idx, err := c.ReadU2()
		if err != nil {
			return model.ElementValue{}, err
		}
		ev.ConstValueIndex = int(idx)

	case model.EVEnum:
		typeNameIdx, err := c.ReadU2()
		if err != nil {
			return model.ElementValue{}, err
		}
		constNameIdx, err := c.ReadU2()
		if err != nil {
			return model.ElementValue{}, err
		}
		ev.TypeNameIndex = int(typeNameIdx)
		ev.ConstNameIndex = int(constNameIdx)

	case model.EVClass:
		idx, err := c.ReadU2()
		if err != nil {
			return model.ElementValue{}, err
		}
		ev.ClassInfoIndex = int(idx)

	case model.EVAnnotation:
		nested, err := parseAnnotation(c)
		if err != nil {
			return model.ElementValue{}, err
		}
		ev.NestedAnnotation = &nested

	case model.EVArray:
		numValues, err := c.ReadU2()
		if err != nil {
			return model.ElementValue{}, err
		}
		values := make([]model.ElementValue, numValues)
		for i := range values {
			v, err := parseElementValue(c)
			if err != nil {
				return model.ElementValue{}, err
			}
			values[i] = v
		}
		ev.Values = values

	default:
		return model.ElementValue{}, &model.UnknownElementValueTagError{Tag: tagByte}
	}

	return ev, nil
}

// parseParameterAnnotations reads a **u1** num_parameters (unlike the u2
// counts everywhere else in this family) followed by one annotations array
// per parameter (JVMS 4.7.18/4.7.19).
func parseParameterAnnotations(c *reader.Cursor, diags *[]model.Diagnostic) (*model.RuntimeParameterAnnotationsAttribute, error) {
	numParams, err := c.ReadU1()
	if err != nil {
		return nil, err
	}
	params := make([]model.ParameterAnnotations, numParams)
	for i := range params {
		anns, err := parseAnnotations(c, diags)
		if err != nil {
			return nil, err
		}
		params[i] = model.ParameterAnnotations{Annotations: anns}
	}
	return &model.RuntimeParameterAnnotationsAttribute{Parameters: params}, nil
}

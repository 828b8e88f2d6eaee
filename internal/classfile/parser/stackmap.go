package parser

import (
	"errors"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

// parseStackMapTable reads a StackMapTable attribute (§4.5.2, JVMS 4.7.4):
// a u2 entry count followed by that many variable-shaped frames, the shape
// of each selected by its leading frame_type byte.
//
// A reserved frame_type (§7) is fatal only within this table: it is
// recorded as a Diagnostic, decoding stops with the frames seen so far,
// and Invalid is set — the enclosing Code attribute and the rest of the
// class file continue decoding normally.
func parseStackMapTable(c *reader.Cursor, diags *[]model.Diagnostic) (*model.StackMapTableAttribute, error) {
	count, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	frames := make([]model.StackMapFrame, 0, count)
	for i := 0; i < int(count); i++ {
		f, err := parseStackMapFrame(c)
		if err != nil {
			var reservedErr *model.ReservedFrameTypeError
			if errors.As(err, &reservedErr) {
				*diags = append(*diags, model.Diagnostic{Err: reservedErr})
				return &model.StackMapTableAttribute{Frames: frames, Invalid: true}, nil
			}
			return nil, err
		}
		frames = append(frames, f)
	}
	return &model.StackMapTableAttribute{Frames: frames}, nil
}

func parseStackMapFrame(c *reader.Cursor) (model.StackMapFrame, error) {
	frameType, err := c.ReadU1()
	if err != nil {
		return model.StackMapFrame{}, err
	}

	switch {
	case frameType <= 63:
		return model.StackMapFrame{
			Kind: model.FrameSame, FrameType: frameType, OffsetDelta: int(frameType),
		}, nil

	case frameType <= 127:
		vti, err := parseVerificationTypeInfo(c)
		if err != nil {
			return model.StackMapFrame{}, err
		}
		return model.StackMapFrame{
			Kind: model.FrameSameLocals1StackItem, FrameType: frameType,
			OffsetDelta: int(frameType) - 64, Stack: []model.VerificationTypeInfo{vti},
		}, nil

	case frameType == 247:
		offsetDelta, err := c.ReadU2()
		if err != nil {
			return model.StackMapFrame{}, err
		}
		vti, err := parseVerificationTypeInfo(c)
		if err != nil {
			return model.StackMapFrame{}, err
		}
		return model.StackMapFrame{
			Kind: model.FrameSameLocals1StackItemExtended, FrameType: frameType,
			OffsetDelta: int(offsetDelta), Stack: []model.VerificationTypeInfo{vti},
		}, nil

	case frameType >= 248 && frameType <= 250:
		offsetDelta, err := c.ReadU2()
		if err != nil {
			return model.StackMapFrame{}, err
		}
		return model.StackMapFrame{
			Kind: model.FrameChop, FrameType: frameType,
			OffsetDelta: int(offsetDelta), ChopK: 251 - int(frameType),
		}, nil

	case frameType == 251:
		offsetDelta, err := c.ReadU2()
		if err != nil {
			return model.StackMapFrame{}, err
		}
		return model.StackMapFrame{
			Kind: model.FrameSameExtended, FrameType: frameType, OffsetDelta: int(offsetDelta),
		}, nil

	case frameType >= 252 && frameType <= 254:
		offsetDelta, err := c.ReadU2()
		if err != nil {
			return model.StackMapFrame{}, err
		}
		n := int(frameType) - 251
		locals := make([]model.VerificationTypeInfo, n)
		for i := range locals {
			vti, err := parseVerificationTypeInfo(c)
			if err != nil {
				return model.StackMapFrame{}, err
			}
			locals[i] = vti
		}
		return model.StackMapFrame{
			Kind: model.FrameAppend, FrameType: frameType,
			OffsetDelta: int(offsetDelta), Locals: locals,
		}, nil

	case frameType == 255:
		offsetDelta, err := c.ReadU2()
		if err != nil {
			return model.StackMapFrame{}, err
		}
		numLocals, err := c.ReadU2()
		if err != nil {
			return model.StackMapFrame{}, err
		}
		locals := make([]model.VerificationTypeInfo, numLocals)
		for i := range locals {
			vti, err := parseVerificationTypeInfo(c)
			if err != nil {
				return model.StackMapFrame{}, err
			}
			locals[i] = vti
		}
		numStack, err := c.ReadU2()
		if err != nil {
			return model.StackMapFrame{}, err
		}
		stack := make([]model.VerificationTypeInfo, numStack)
		for i := range stack {
			vti, err := parseVerificationTypeInfo(c)
			if err != nil {
				return model.StackMapFrame{}, err
			}
			stack[i] = vti
		}
		return model.StackMapFrame{
			Kind: model.FrameFull, FrameType: frameType,
			OffsetDelta: int(offsetDelta), Locals: locals, Stack: stack,
		}, nil

	default: // 128..246 reserved
		return model.StackMapFrame{}, &model.ReservedFrameTypeError{Value: frameType}
	}
}

func parseVerificationTypeInfo(c *reader.Cursor) (model.VerificationTypeInfo, error) {
	tag, err := c.ReadU1()
	if err != nil {
		return model.VerificationTypeInfo{}, err
	}
	vti := model.VerificationTypeInfo{Tag: model.VerificationTypeTag(tag)}
	switch model.VerificationTypeTag(tag) {
	case model.VObject:
		idx, err := c.ReadU2()
		if err != nil {
			return model.VerificationTypeInfo{}, err
		}
		vti.CpIndex = int(idx)
	case model.VUninitialized:
		off, err := c.ReadU2()
		if err != nil {
			return model.VerificationTypeInfo{}, err
		}
		vti.Offset = int(off)
	}
	return vti, nil
}

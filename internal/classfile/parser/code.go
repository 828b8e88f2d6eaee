package parser

import (
	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/opcodes"
	"github.com/mabhi256/jclassdump/internal/classfile/reader"
)

/*
parseCodeAttribute reads a Code attribute (§4.5.1, JVMS 4.7.3):

	max_stack, max_locals   u2 each
	code_length             u4
	code                    code_length raw opcode bytes
	exception_table_length  u2
	exception_table         4×u2 per entry
	attributes_count        u2
	attributes              nested attribute table, dispatched recursively
	                        through parseAttributeTable with this Code as host

The opcode recognizer runs byte-by-byte over code (§4.7): it does not
track operand widths, so Instructions has exactly code_length entries,
one per raw byte, not one per actual instruction boundary.
*/
func parseCodeAttribute(c *reader.Cursor, pool *model.ConstantPool, diags *[]model.Diagnostic) (*model.CodeAttribute, error) {
	maxStack, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	maxLocals, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	codeLength, err := c.ReadU4()
	if err != nil {
		return nil, err
	}
	code, err := c.ReadSlice(int(codeLength))
	if err != nil {
		return nil, err
	}
	codeCopy := append([]byte(nil), code...)

	instructions := make([]model.Instruction, len(codeCopy))
	for i, b := range codeCopy {
		instructions[i] = model.Instruction{Offset: i, Opcode: b, Mnemonic: opcodes.Mnemonic(b)}
	}

	exceptionTableLength, err := c.ReadU2()
	if err != nil {
		return nil, err
	}
	exceptionTable := make([]model.ExceptionTableEntry, exceptionTableLength)
	for i := range exceptionTable {
		startPC, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		endPC, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		handlerPC, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		catchType, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		exceptionTable[i] = model.ExceptionTableEntry{
			StartPC: startPC, EndPC: endPC, HandlerPC: handlerPC, CatchType: int(catchType),
		}
	}

	nested, err := parseAttributeTable(c, pool, diags)
	if err != nil {
		return nil, err
	}

	return &model.CodeAttribute{
		MaxStack:       maxStack,
		MaxLocals:      maxLocals,
		Code:           codeCopy,
		Instructions:   instructions,
		ExceptionTable: exceptionTable,
		Attributes:     nested,
	}, nil
}

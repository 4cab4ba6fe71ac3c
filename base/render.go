package base

import (
	"fmt"
)

const (
	Illegal       = "<illegal>"
	UnknownOp     = "<unk>"
	mnemonicWidth = 8
)

// Lookuper finds the operation for a decoded instruction.
type Lookuper interface {
	Lookup(in Instruction) (*Op, bool)
}

// Render formats a decoded instruction as assembly text. The mnemonic is
// padded to a fixed column; operations the lookup doesn't know render as
// "<unk>" followed by the operands of their format.
func Render(in Instruction, ops Lookuper) string {
	name, operands := UnknownOp, OperandsFormat
	if o, ok := ops.Lookup(in); ok {
		name, operands = o.Name, o.Operands
	}

	switch {
	case operands == OperandsNone:
		return name
	case operands == OperandsShift && in.Format == I:
		return fmt.Sprintf("%-*s %s, %s, 0x%X", mnemonicWidth, name, in.Rd, in.Rs1, in.Imm&0x1F)
	}

	switch in.Format {
	case R:
		return fmt.Sprintf("%-*s %s, %s, %s", mnemonicWidth, name, in.Rd, in.Rs1, in.Rs2)
	case I:
		return fmt.Sprintf("%-*s %s, %s, 0x%X", mnemonicWidth, name, in.Rd, in.Rs1, in.Imm)
	case S, SB:
		return fmt.Sprintf("%-*s %s, %s, 0x%X", mnemonicWidth, name, in.Rs1, in.Rs2, in.Imm)
	case U, UJ:
		return fmt.Sprintf("%-*s %s, 0x%X", mnemonicWidth, name, in.Rd, in.Imm)
	default:
		return name
	}
}

// IsIllegal reports whether w can never be a valid 32-bit instruction.
func IsIllegal(w uint32) bool {
	return w&0xFFFF == 0 || w == 0xFFFFFFFF
}

// Translate decodes and renders one 32-bit instruction word.
func Translate(w uint32, table *OpcodeTable) string {
	if IsIllegal(w) {
		return Illegal
	}

	op := Opcode(w & 0x7F)
	format, ok := table.Format(op)
	if !ok {
		return fmt.Sprintf("(op = %s)", op)
	}
	return Render(Decode(w, format, op), table)
}

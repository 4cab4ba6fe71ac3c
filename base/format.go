package base

import (
	"fmt"
)

// Format is one of the base 32-bit instruction encodings.
type Format uint8

const (
	FormatInvalid Format = iota
	R
	I
	S
	SB
	U
	UJ
)

func (f Format) String() string {
	switch f {
	case R:
		return "R"
	case I:
		return "I"
	case S:
		return "S"
	case SB:
		return "SB"
	case U:
		return "U"
	case UJ:
		return "UJ"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Opcode is the 7-bit major opcode in bits 6..0 of every 32-bit instruction.
type Opcode uint8

func (op Opcode) String() string {
	return fmt.Sprintf("0x%02X", uint8(op))
}

type Register uint8

func (r Register) String() string {
	return fmt.Sprintf("x%d", uint8(r))
}

// Instruction is a decoded base-format instruction. Only the fields its
// format defines are set; the rest are zero.
//
// Imm holds the immediate as assembled from the instruction bits, without
// sign extension: 12 bits for I and S, 13 for SB, 21 for UJ, and the upper
// 20 bits in place for U.
type Instruction struct {
	Format Format
	Opcode Opcode
	Rd     Register
	Rs1    Register
	Rs2    Register
	Funct3 uint8
	Funct7 uint8
	Imm    uint32
}

func (in Instruction) String() string {
	switch in.Format {
	case R:
		return fmt.Sprintf("op: %s, fmt: R, funct7: 0x%02X, rs2: %s, rs1: %s, funct3: 0x%X, rd: %s", in.Opcode, in.Funct7, in.Rs2, in.Rs1, in.Funct3, in.Rd)
	case I:
		return fmt.Sprintf("op: %s, fmt: I, imm: 0x%03X, rs1: %s, funct3: 0x%X, rd: %s", in.Opcode, in.Imm, in.Rs1, in.Funct3, in.Rd)
	case S, SB:
		return fmt.Sprintf("op: %s, fmt: %s, imm: 0x%04X, rs2: %s, rs1: %s, funct3: 0x%X", in.Opcode, in.Format, in.Imm, in.Rs2, in.Rs1, in.Funct3)
	case U, UJ:
		return fmt.Sprintf("op: %s, fmt: %s, imm: 0x%08X, rd: %s", in.Opcode, in.Format, in.Imm, in.Rd)
	default:
		return fmt.Sprintf("op: %s, fmt: %s", in.Opcode, in.Format)
	}
}

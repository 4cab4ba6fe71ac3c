package base

// Decode splits a 32-bit instruction word into the fields of the given base
// format. The opcode is passed in rather than re-read because callers have
// already used it to find the format.
func Decode(w uint32, format Format, opcode Opcode) Instruction {
	in := Instruction{Format: format, Opcode: opcode}

	switch format {
	case R:
		in.Funct7 = uint8(bits(w, 31, 25))
		in.Rs2 = Register(bits(w, 24, 20))
		in.Rs1 = Register(bits(w, 19, 15))
		in.Funct3 = uint8(bits(w, 14, 12))
		in.Rd = Register(bits(w, 11, 7))
	case I:
		in.Imm = bits(w, 31, 20)
		in.Rs1 = Register(bits(w, 19, 15))
		in.Funct3 = uint8(bits(w, 14, 12))
		in.Rd = Register(bits(w, 11, 7))
	case S:
		in.Imm = bits(w, 31, 25)<<5 | bits(w, 11, 7)
		in.Rs2 = Register(bits(w, 24, 20))
		in.Rs1 = Register(bits(w, 19, 15))
		in.Funct3 = uint8(bits(w, 14, 12))
	case SB:
		// imm[12|10:5] rs2 rs1 funct3 imm[4:1|11]; imm[0] is always zero.
		in.Imm = bits(w, 31, 31)<<12 |
			bits(w, 7, 7)<<11 |
			bits(w, 30, 25)<<5 |
			bits(w, 11, 8)<<1
		in.Rs2 = Register(bits(w, 24, 20))
		in.Rs1 = Register(bits(w, 19, 15))
		in.Funct3 = uint8(bits(w, 14, 12))
	case U:
		in.Imm = w & rangeMask(31, 12)
		in.Rd = Register(bits(w, 11, 7))
	case UJ:
		// imm[20|10:1|11|19:12] rd; imm[0] is always zero.
		in.Imm = bits(w, 31, 31)<<20 |
			bits(w, 19, 12)<<12 |
			bits(w, 20, 20)<<11 |
			bits(w, 30, 21)<<1
		in.Rd = Register(bits(w, 11, 7))
	}

	return in
}

// rangeMask returns a mask with bits top down to bottom (inclusive) set.
func rangeMask(top, bottom uint) uint32 {
	return (1 << (top + 1)) - (1 << bottom)
}

// bits returns bits top..bottom of w, shifted down to bit zero.
func bits(w uint32, top, bottom uint) uint32 {
	return (w & rangeMask(top, bottom)) >> bottom
}

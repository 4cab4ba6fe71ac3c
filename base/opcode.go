package base

// MajorOpcode is one of the 7-bit opcodes that select an instruction's
// base format.
type MajorOpcode struct {
	Name   string
	Num    Opcode
	Format Format

	// AQRL is set for opcodes whose funct7 carries acquire/release flags
	// in its two low bits.
	AQRL bool
}

var majorOpcodes = []*MajorOpcode{
	{Name: "LOAD", Num: 0x03, Format: I},
	{Name: "MISC-MEM", Num: 0x0F, Format: I},
	{Name: "OP-IMM", Num: 0x13, Format: I},
	{Name: "AUIPC", Num: 0x17, Format: U},
	{Name: "STORE", Num: 0x23, Format: S},
	{Name: "AMO", Num: 0x2F, Format: R, AQRL: true},
	{Name: "OP", Num: 0x33, Format: R},
	{Name: "LUI", Num: 0x37, Format: U},
	{Name: "BRANCH", Num: 0x63, Format: SB},
	{Name: "JALR", Num: 0x67, Format: I},
	{Name: "JAL", Num: 0x6F, Format: UJ},
	{Name: "SYSTEM", Num: 0x73, Format: I},
}

// MajorOpcodes returns the known major opcodes in numeric order.
func MajorOpcodes() []*MajorOpcode {
	ret := make([]*MajorOpcode, len(majorOpcodes))
	copy(ret, majorOpcodes)
	return ret
}

func majorOpcode(op Opcode) (*MajorOpcode, bool) {
	for _, m := range majorOpcodes {
		if m.Num == op {
			return m, true
		}
	}
	return nil, false
}

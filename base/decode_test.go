package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeMask(t *testing.T) {
	assert.Equal(t, uint32(0x0000007F), rangeMask(6, 0))
	assert.Equal(t, uint32(0xFFFFF000), rangeMask(31, 12))
	assert.Equal(t, uint32(0xFFFFFFFF), rangeMask(31, 0))
	assert.Equal(t, uint32(0x80000000), rangeMask(31, 31))
	assert.Equal(t, uint32(0x00000080), rangeMask(7, 7))
}

func TestDecode(t *testing.T) {
	for _, tt := range []struct {
		desc   string
		word   uint32
		format Format
		want   Instruction
	}{
		{
			desc:   "add x3, x1, x2",
			word:   0x002081B3,
			format: R,
			want:   Instruction{Format: R, Opcode: 0x33, Rd: 3, Rs1: 1, Rs2: 2},
		},
		{
			desc:   "sub x3, x1, x2",
			word:   0x402081B3,
			format: R,
			want:   Instruction{Format: R, Opcode: 0x33, Rd: 3, Rs1: 1, Rs2: 2, Funct7: 0x20},
		},
		{
			desc:   "funct7 uses all seven bits",
			word:   0xFE0000B3,
			format: R,
			want:   Instruction{Format: R, Opcode: 0x33, Rd: 1, Funct7: 0x7F},
		},
		{
			desc:   "addi x1, x1, -1",
			word:   0xFFF08093,
			format: I,
			want:   Instruction{Format: I, Opcode: 0x13, Rd: 1, Rs1: 1, Imm: 0xFFF},
		},
		{
			desc:   "sw x2, 8(x1)",
			word:   0x0020A423,
			format: S,
			want:   Instruction{Format: S, Opcode: 0x23, Rs1: 1, Rs2: 2, Funct3: 2, Imm: 8},
		},
		{
			desc:   "store imm uses all high bits",
			word:   0xFE000FA3,
			format: S,
			want:   Instruction{Format: S, Opcode: 0x23, Imm: 0xFFF},
		},
		{
			desc:   "beq x1, x2, 16",
			word:   0x00208863,
			format: SB,
			want:   Instruction{Format: SB, Opcode: 0x63, Rs1: 1, Rs2: 2, Imm: 16},
		},
		{
			desc:   "beq x0, x0, -2",
			word:   0xFE000FE3,
			format: SB,
			want:   Instruction{Format: SB, Opcode: 0x63, Imm: 0x1FFE},
		},
		{
			desc:   "lui x5, 0x12345",
			word:   0x123452B7,
			format: U,
			want:   Instruction{Format: U, Opcode: 0x37, Rd: 5, Imm: 0x12345000},
		},
		{
			desc:   "jal x1, 2048",
			word:   0x001000EF,
			format: UJ,
			want:   Instruction{Format: UJ, Opcode: 0x6F, Rd: 1, Imm: 0x800},
		},
		{
			desc:   "jal x0, -4",
			word:   0xFFDFF06F,
			format: UJ,
			want:   Instruction{Format: UJ, Opcode: 0x6F, Imm: 0x1FFFFC},
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			got := Decode(tt.word, tt.format, Opcode(tt.word&0x7F))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBranchBitZeroClear(t *testing.T) {
	for _, w := range []uint32{0xFFFFFFE3, 0x00000F63, 0x12345663} {
		assert.Zero(t, Decode(w, SB, 0x63).Imm&1, "%#08x", w)
	}
	for _, w := range []uint32{0xFFFFFFEF, 0x0010006F, 0xABCDE06F} {
		assert.Zero(t, Decode(w, UJ, 0x6F).Imm&1, "%#08x", w)
	}
}

func TestDecodeUpperLowBitsClear(t *testing.T) {
	in := Decode(0xFFFFFFB7, U, 0x37)
	assert.Equal(t, uint32(0xFFFFF000), in.Imm)
	assert.Equal(t, Register(31), in.Rd)
}

func TestInstructionString(t *testing.T) {
	in := Decode(0x002081B3, R, 0x33)
	assert.Equal(t, "op: 0x33, fmt: R, funct7: 0x00, rs2: x2, rs1: x1, funct3: 0x0, rd: x3", in.String())

	in = Decode(0x123452B7, U, 0x37)
	assert.Equal(t, "op: 0x37, fmt: U, imm: 0x12345000, rd: x5", in.String())
}

func TestMajorOpcodes(t *testing.T) {
	majors := MajorOpcodes()
	assert.Len(t, majors, 12)

	table := NewOpcodeTable()
	for _, m := range majors {
		f, ok := table.Format(m.Num)
		assert.True(t, ok, "%s (%s)", m.Name, m.Num)
		assert.Equal(t, m.Format, f, "%s", m.Name)
	}
}

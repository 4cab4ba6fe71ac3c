package tables

import (
	"fmt"

	"github.com/rsalmin/asdis/isa"
	"github.com/sirupsen/logrus"
)

// Compact register fields (crd, crs1, crs2) address x8..x15. Immediates are
// named for how they display: imm6, nzimm10 and nzimm18 are signed values
// of that many bits, off9 and off12 are signed jump offsets, and uimm and
// shamt are unsigned.
var rv32cSource = []string{
	`"<illegal>", 0000000000000000`,
	`"c.addi4spn crd, uimm", 000, uimm[5:4|9:6|2|3], crd[2:0], 00`,
	`"c.lw crd, uimm(crs1)", 010, uimm[5:3], crs1[2:0], uimm[2|6], crd[2:0], 00`,
	`"c.sw crs2, uimm(crs1)", 110, uimm[5:3], crs1[2:0], uimm[2|6], crs2[2:0], 00`,
	`"c.nop", 000, imm6[5], 00000, imm6[4:0], 01`,
	`"c.addi rd, imm6", 000, imm6[5], rd[4:0], imm6[4:0], 01`,
	`"c.jal off12", 001, off12[11|4|9:8|10|6|7|3:1|5], 01`,
	`"c.li rd, imm6", 010, imm6[5], rd[4:0], imm6[4:0], 01`,
	`"c.addi16sp nzimm10", 011, nzimm10[9], 00010, nzimm10[4|6|8:7|5], 01`,
	`"c.lui rd, nzimm18", 011, nzimm18[17], rd[4:0], nzimm18[16:12], 01`,
	`"c.srli crd, shamt", 100, shamt[5], 00, crd[2:0], shamt[4:0], 01`,
	`"c.srai crd, shamt", 100, shamt[5], 01, crd[2:0], shamt[4:0], 01`,
	`"c.andi crd, imm6", 100, imm6[5], 10, crd[2:0], imm6[4:0], 01`,
	`"c.sub crd, crs2", 100011, crd[2:0], 00, crs2[2:0], 01`,
	`"c.xor crd, crs2", 100011, crd[2:0], 01, crs2[2:0], 01`,
	`"c.or crd, crs2", 100011, crd[2:0], 10, crs2[2:0], 01`,
	`"c.and crd, crs2", 100011, crd[2:0], 11, crs2[2:0], 01`,
	`"c.j off12", 101, off12[11|4|9:8|10|6|7|3:1|5], 01`,
	`"c.beqz crs1, off9", 110, off9[8|4:3], crs1[2:0], off9[7:6|2:1|5], 01`,
	`"c.bnez crs1, off9", 111, off9[8|4:3], crs1[2:0], off9[7:6|2:1|5], 01`,
	`"c.slli rd, shamt", 000, shamt[5], rd[4:0], shamt[4:0], 10`,
	`"c.lwsp rd, uimm", 010, uimm[5], rd[4:0], uimm[4:2|7:6], 10`,
	`"c.jr rs1", 1000, rs1[4:0], 0000010`,
	`"c.mv rd, rs2", 1000, rd[4:0], rs2[4:0], 10`,
	`"c.ebreak", 1001000000000010`,
	`"c.jalr rs1", 1001, rs1[4:0], 0000010`,
	`"c.add rd, rs2", 1001, rd[4:0], rs2[4:0], 10`,
	`"c.swsp rs2, uimm", 110, uimm[5:2|7:6], rs2[4:0], 10`,
}

// CompactFormatters returns the field formatters used by the RV32C table.
// Tables loaded from text can use them too if they follow the same field
// names.
func CompactFormatters() isa.Formatters {
	ireg := isa.ArgIntReg.Formatter(5)
	creg := isa.ArgCompressedReg.Formatter(3)
	return isa.Formatters{
		"rd":      ireg,
		"rs1":     ireg,
		"rs2":     ireg,
		"crd":     creg,
		"crs1":    creg,
		"crs2":    creg,
		"imm6":    isa.ArgSignedImmediate.Formatter(6),
		"nzimm10": isa.ArgSignedImmediate.Formatter(10),
		"nzimm18": isa.ArgSignedImmediate.Formatter(18),
		"off9":    isa.ArgOffset.Formatter(9),
		"off12":   isa.ArgOffset.Formatter(12),
		"uimm":    isa.ArgUnsignedImmediate.Formatter(0),
		"shamt":   isa.ArgUnsignedImmediate.Formatter(0),
	}
}

// RV32C builds the table of 16-bit compressed instructions.
func RV32C() (*isa.Table[uint16], error) {
	width := isa.Compact{}
	entries := make([]*isa.Entry[uint16], 0, len(rv32cSource))
	for i, src := range rv32cSource {
		e, err := isa.ParseInstruction[uint16](width, src)
		if err != nil {
			return nil, fmt.Errorf("RV32C entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	table := isa.NewTable[uint16](width, entries, CompactFormatters())
	logrus.WithFields(logrus.Fields{
		"table":   "RV32C",
		"entries": len(entries),
	}).Debug("built instruction table")
	return table, nil
}

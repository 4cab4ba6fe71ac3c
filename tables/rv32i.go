package tables

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/rsalmin/asdis/isa"
	"github.com/sirupsen/logrus"
)

//go:embed rv32i.tbl
var rv32iSource string

func rv32iFormatters() isa.Formatters {
	ireg := isa.ArgIntReg.Formatter(5)
	return isa.Formatters{
		"rd":    ireg,
		"rs1":   ireg,
		"rs2":   ireg,
		"imm12": isa.ArgSignedImmediate.Formatter(12),
		"off13": isa.ArgOffset.Formatter(13),
		"off21": isa.ArgOffset.Formatter(21),
	}
}

// RV32I builds the table of 32-bit base integer instructions.
func RV32I() (*isa.Table[uint32], error) {
	table, err := isa.LoadTable[uint32](strings.NewReader(rv32iSource), isa.RV32{}, rv32iFormatters())
	if err != nil {
		return nil, fmt.Errorf("RV32I table: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"table":   "RV32I",
		"entries": len(table.Entries()),
	}).Debug("built instruction table")
	return table, nil
}

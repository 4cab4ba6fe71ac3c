package isa

import (
	"fmt"
)

// FieldFormatter renders a decoded field value for display.
type FieldFormatter func(v uint32) string

// Formatters maps field names to the formatter used when rendering them.
// Fields with no entry are shown as unsigned hex.
type Formatters map[string]FieldFormatter

type ArgType string

const (
	ArgGeneral           ArgType = "arg"
	ArgIntReg            ArgType = "ireg"
	ArgCompressedReg     ArgType = "creg"
	ArgOffset            ArgType = "offset"
	ArgSignedImmediate   ArgType = "simm"
	ArgUnsignedImmediate ArgType = "uimm"
)

// compressedRegBase is the first integer register reachable through a
// 3-bit compressed register field.
const compressedRegBase = 8

// Formatter returns the display formatter for values of this type. encWidth
// is the number of significant bits in the decoded value, counting from bit
// zero, and is only used by the signed types to find the sign bit.
func (t ArgType) Formatter(encWidth uint) FieldFormatter {
	switch t {
	case ArgIntReg:
		return func(v uint32) string {
			return fmt.Sprintf("x%d", v)
		}
	case ArgCompressedReg:
		return func(v uint32) string {
			return fmt.Sprintf("x%d", v+compressedRegBase)
		}
	case ArgOffset, ArgSignedImmediate:
		return func(v uint32) string {
			return formatSigned(signExtend(v, encWidth))
		}
	default:
		return formatHex
	}
}

func formatHex(v uint32) string {
	return fmt.Sprintf("0x%X", v)
}

func formatSigned(v int32) string {
	if v < 0 {
		return fmt.Sprintf("-0x%X", -int64(v))
	}
	return fmt.Sprintf("0x%X", v)
}

// signExtend treats bit width-1 of v as the sign bit.
func signExtend(v uint32, width uint) int32 {
	if width == 0 || width >= 32 {
		return int32(v)
	}
	shift := 32 - width
	return int32(v<<shift) >> shift
}
